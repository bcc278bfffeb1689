package contact

import (
	"html"
	"strings"

	"bdgc-website/internal/domain"
	"bdgc-website/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// Field names as posted by the form.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldService = "service"
	FieldMessage = "message"
)

// markupMessages replace the rule message when a free-text field holds HTML.
var markupMessages = domain.FieldErrors{
	FieldName:    "Please remove HTML from your name",
	FieldMessage: "Please remove HTML from your message",
}

var fieldMessages = validation.Messages{
	FieldName:    "Name must be at least 2 characters",
	FieldEmail:   "Please enter a valid email address",
	FieldPhone:   "Please enter a valid phone number",
	FieldService: "Please select a service",
	FieldMessage: "Message must be at least 10 characters",
}

// contactFields carries the normalized input through go-playground/validator.
type contactFields struct {
	Name    string `json:"name" validate:"min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"min=10"`
	Service string `json:"service" validate:"service_category"`
	Message string `json:"message" validate:"min=10"`
}

// Validator turns a raw ContactRequest into a ContactSubmission. Every field
// is checked independently and all failures are reported together.
type Validator struct {
	validate *validator.Validate
	policy   *bluemonday.Policy
}

func NewValidator() *Validator {
	v := validation.New()
	services := make([]string, 0, len(domain.ServiceCategories))
	for _, s := range domain.ServiceCategories {
		services = append(services, string(s))
	}
	// registration only fails on an empty tag or nil func
	_ = validation.RegisterEnum(v, "service_category", services)

	return &Validator{
		validate: v,
		policy:   bluemonday.StrictPolicy(),
	}
}

// Validate returns the normalized submission, or a non-empty FieldErrors when
// any rule fails. It has no side effects.
//
// Name, email and message are trimmed. Phone is checked as entered. Free text
// is relayed verbatim; text containing markup is rejected, never rewritten.
func (v *Validator) Validate(req domain.ContactRequest) (domain.ContactSubmission, domain.FieldErrors) {
	fields := contactFields{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   req.Phone,
		Service: req.Service,
		Message: strings.TrimSpace(req.Message),
	}

	var errs domain.FieldErrors
	if err := v.validate.Struct(fields); err != nil {
		errs = domain.FieldErrors(validation.FormatValidationErrors(err, fieldMessages))
	}
	for field, text := range map[string]string{FieldName: fields.Name, FieldMessage: fields.Message} {
		if v.hasMarkup(text) {
			if errs == nil {
				errs = domain.FieldErrors{}
			}
			errs[field] = markupMessages[field]
		}
	}
	if len(errs) > 0 {
		return domain.ContactSubmission{}, errs
	}

	return domain.ContactSubmission{
		Name:    fields.Name,
		Email:   fields.Email,
		Phone:   fields.Phone,
		Service: domain.ServiceCategory(fields.Service),
		Message: fields.Message,
	}, nil
}

// hasMarkup reports whether the strict policy would drop anything from s.
// Plain text only comes back escaped, the same as html.EscapeString. Carriage
// returns are left out of the comparison since the tokenizer escapes them.
func (v *Validator) hasMarkup(s string) bool {
	s = strings.ReplaceAll(s, "\r", "")
	return v.policy.Sanitize(s) != html.EscapeString(s)
}
