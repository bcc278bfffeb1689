package domain

import (
	"context"
	"errors"
)

// ContactRequest is the raw contact form as posted by the browser. Nothing in
// it is trusted until the validator has produced a ContactSubmission.
type ContactRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	Service  string `json:"service" form:"service"`
	Message  string `json:"message" form:"message"`
	Honeypot string `json:"honeypot" form:"honeypot"`
}

// ContactSubmission is a validated quote request. It is relayed once and then
// dropped; it is never stored.
type ContactSubmission struct {
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Service ServiceCategory `json:"service"`
	Message string          `json:"message"`
}

// FieldErrors maps a form field name to a human readable message.
type FieldErrors map[string]string

// Ack is what the relay endpoint returns for an accepted submission.
type Ack struct {
	Message string `json:"message,omitempty"`
}

// FormState is the lifecycle of a contact form instance.
type FormState string

const (
	FormIdle       FormState = "idle"
	FormSubmitting FormState = "submitting"
	FormSuccess    FormState = "success"
	FormError      FormState = "error"
)

// ContactResult is the outcome of one submit attempt, shaped for the
// presentation layer.
type ContactResult struct {
	State       FormState      `json:"state"`
	FieldErrors FieldErrors    `json:"field_errors,omitempty"`
	Fields      ContactRequest `json:"fields"`
	// Err is set when the relay failed; it is never serialised to clients.
	Err error `json:"-"`
}

// Submitter sends a validated submission to the form relay.
type Submitter interface {
	Submit(ctx context.Context, sub ContactSubmission) (*Ack, error)
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the request and relays it
	SendContactMessage(ctx context.Context, req *ContactRequest) (*ContactResult, error)
}

var (
	// ErrContactUnavailable means the relay has no usable credentials.
	ErrContactUnavailable = errors.New("contact service is not configured")
	// ErrRelayFailed wraps transport and rejection errors from the relay.
	ErrRelayFailed = errors.New("contact relay failed")
)
