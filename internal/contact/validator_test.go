package contact_test

import (
	"testing"

	"bdgc-website/internal/contact"
	"bdgc-website/internal/domain"

	"github.com/stretchr/testify/assert"
)

func validRequest() domain.ContactRequest {
	return domain.ContactRequest{
		Name:    "Jo",
		Email:   "a@b.com",
		Phone:   "1234567890",
		Service: "Painting",
		Message: "0123456789",
	}
}

func TestValidate_Valid(t *testing.T) {
	v := contact.NewValidator()

	sub, errs := v.Validate(validRequest())

	assert.Empty(t, errs)
	assert.Equal(t, domain.ContactSubmission{
		Name:    "Jo",
		Email:   "a@b.com",
		Phone:   "1234567890",
		Service: domain.ServicePainting,
		Message: "0123456789",
	}, sub)
}

func TestValidate_SingleFieldFailures(t *testing.T) {
	v := contact.NewValidator()

	tests := []struct {
		name   string
		mutate func(r *domain.ContactRequest)
		field  string
		msg    string
	}{
		{"short name", func(r *domain.ContactRequest) { r.Name = "J" }, contact.FieldName, "Name must be at least 2 characters"},
		{"blank padded name", func(r *domain.ContactRequest) { r.Name = "  J  " }, contact.FieldName, "Name must be at least 2 characters"},
		{"bad email", func(r *domain.ContactRequest) { r.Email = "not-an-email" }, contact.FieldEmail, "Please enter a valid email address"},
		{"empty email", func(r *domain.ContactRequest) { r.Email = "" }, contact.FieldEmail, "Please enter a valid email address"},
		{"short phone", func(r *domain.ContactRequest) { r.Phone = "555-1234" }, contact.FieldPhone, "Please enter a valid phone number"},
		{"unknown service", func(r *domain.ContactRequest) { r.Service = "Landscaping" }, contact.FieldService, "Please select a service"},
		{"no service", func(r *domain.ContactRequest) { r.Service = "" }, contact.FieldService, "Please select a service"},
		{"short message", func(r *domain.ContactRequest) { r.Message = "  too short  " }, contact.FieldMessage, "Message must be at least 10 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, errs := v.Validate(req)

			assert.Equal(t, domain.FieldErrors{tt.field: tt.msg}, errs)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	v := contact.NewValidator()

	_, errs := v.Validate(domain.ContactRequest{Name: "J", Email: "x", Phone: "1", Service: "?", Message: "hi"})

	assert.Len(t, errs, 5)
	for _, f := range []string{contact.FieldName, contact.FieldEmail, contact.FieldPhone, contact.FieldService, contact.FieldMessage} {
		assert.Contains(t, errs, f)
	}
}

func TestValidate_Normalizes(t *testing.T) {
	v := contact.NewValidator()
	req := validRequest()
	req.Name = "  Tom & Jerry's Diner "
	req.Email = " tom@example.com "
	req.Message = "  Need a deck 12' x 16', budget < $5k & \"soon\"\r\nThanks  "

	sub, errs := v.Validate(req)

	assert.Empty(t, errs)
	assert.Equal(t, "Tom & Jerry's Diner", sub.Name)
	assert.Equal(t, "tom@example.com", sub.Email)
	assert.Equal(t, "Need a deck 12' x 16', budget < $5k & \"soon\"\r\nThanks", sub.Message)
}

func TestValidate_PhoneIsNotTrimmed(t *testing.T) {
	v := contact.NewValidator()

	req := validRequest()
	req.Phone = "123456789 "
	sub, errs := v.Validate(req)
	assert.Empty(t, errs)
	assert.Equal(t, "123456789 ", sub.Phone)

	req.Phone = " 12345678 "
	_, errs = v.Validate(req)
	assert.Empty(t, errs)

	req.Phone = "12345678 "
	_, errs = v.Validate(req)
	assert.Equal(t, domain.FieldErrors{contact.FieldPhone: "Please enter a valid phone number"}, errs)
}

func TestValidate_RejectsMarkup(t *testing.T) {
	v := contact.NewValidator()

	tests := []struct {
		name   string
		mutate func(r *domain.ContactRequest)
		want   domain.FieldErrors
	}{
		{
			name:   "angle bracketed words",
			mutate: func(r *domain.ContactRequest) { r.Message = "Please quote <kitchen> and <bath> remodel" },
			want:   domain.FieldErrors{contact.FieldMessage: "Please remove HTML from your message"},
		},
		{
			name:   "script in message",
			mutate: func(r *domain.ContactRequest) { r.Message = "<script>alert(1)</script>Need a new deck built" },
			want:   domain.FieldErrors{contact.FieldMessage: "Please remove HTML from your message"},
		},
		{
			name:   "bold name",
			mutate: func(r *domain.ContactRequest) { r.Name = "<b>Tom</b>" },
			want:   domain.FieldErrors{contact.FieldName: "Please remove HTML from your name"},
		},
		{
			name: "reported alongside other errors",
			mutate: func(r *domain.ContactRequest) {
				r.Email = "nope"
				r.Message = "<i>x</i>"
			},
			want: domain.FieldErrors{
				contact.FieldEmail:   "Please enter a valid email address",
				contact.FieldMessage: "Please remove HTML from your message",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			sub, errs := v.Validate(req)

			assert.Equal(t, tt.want, errs)
			assert.Equal(t, domain.ContactSubmission{}, sub)
		})
	}
}

func TestValidate_EveryServiceAccepted(t *testing.T) {
	v := contact.NewValidator()
	for _, s := range domain.ServiceCategories {
		req := validRequest()
		req.Service = string(s)

		sub, errs := v.Validate(req)

		assert.Empty(t, errs, s)
		assert.Equal(t, s, sub.Service)
	}
}

func TestIsSpam(t *testing.T) {
	assert.False(t, contact.IsSpam(""))
	for _, s := range []string{"x", " ", "http://spam.example", "0"} {
		assert.True(t, contact.IsSpam(s), s)
	}
}
