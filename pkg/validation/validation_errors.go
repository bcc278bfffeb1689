package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Messages overrides the generated message for a field. Keys are either
// "field.tag" for a single rule or "field" for every rule on that field.
type Messages map[string]string

// FormatValidationErrors converts validator.ValidationErrors into one message
// per field. Only the first failing rule of a field is reported.
func FormatValidationErrors(err error, messages Messages) map[string]string {
	out := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		out["_"] = err.Error()
		return out
	}

	for _, e := range validationErrors {
		field := e.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = messageFor(e, messages)
	}
	return out
}

func messageFor(e validator.FieldError, messages Messages) string {
	if msg, ok := messages[e.Field()+"."+e.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[e.Field()]; ok {
		return msg
	}
	return formatSingleError(e)
}

// formatSingleError is the fallback when no message was configured.
func formatSingleError(e validator.FieldError) string {
	label := fieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)
	case "email":
		return fmt.Sprintf("%s is not a valid email address", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

// fieldLabel turns "phone" or "contactName" into "Phone" / "Contact Name".
func fieldLabel(field string) string {
	var result strings.Builder
	for i, r := range field {
		if i == 0 {
			result.WriteString(strings.ToUpper(string(r)))
			continue
		}
		if r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
