package site

import (
	"net/url"
	"strconv"
	"strings"

	"bdgc-website/internal/content"
	"bdgc-website/internal/domain"
	"bdgc-website/internal/seo"
	"bdgc-website/internal/theme"
)

// PageState is the part of the UI state that lives in the query string:
// gallery filter, lightbox selection and carousel position, plus the service
// a "Request a quote" link pre-selects in the contact form.
type PageState struct {
	Category    domain.Category
	Project     int
	Testimonial int
	Service     domain.ServiceCategory
}

func (s PageState) href(anchor string) string {
	q := url.Values{}
	if s.Category != "" && s.Category != domain.CategoryAll {
		q.Set("category", string(s.Category))
	}
	if s.Project > 0 {
		q.Set("project", strconv.Itoa(s.Project))
	}
	if s.Testimonial > 0 {
		q.Set("testimonial", strconv.Itoa(s.Testimonial))
	}
	if s.Service != "" {
		q.Set("service", string(s.Service))
	}
	var b strings.Builder
	b.WriteString("/")
	if len(q) > 0 {
		b.WriteString("?")
		b.WriteString(q.Encode())
	}
	if anchor != "" {
		b.WriteString("#")
		b.WriteString(anchor)
	}
	return b.String()
}

// URL is the current state without an anchor.
func (s PageState) URL() string { return s.href("") }

// FilterURL switches the gallery filter. The lightbox stays as it is.
func (s PageState) FilterURL(c domain.Category) string {
	s.Category = c
	return s.href("projects")
}

func (s PageState) OpenURL(id int) string {
	s.Project = id
	return s.href("projects")
}

func (s PageState) CloseURL() string {
	s.Project = 0
	return s.href("projects")
}

func (s PageState) TestimonialURL(i int) string {
	s.Testimonial = i
	return s.href("testimonials")
}

// QuoteURL jumps to the contact form with the category's service selected.
// It is empty for tags without a form option.
func (s PageState) QuoteURL(c domain.Category) string {
	svc, ok := c.Service()
	if !ok {
		return ""
	}
	s.Service = svc
	return s.href("contact")
}

// FormView is the contact form as rendered.
type FormView struct {
	State       domain.FormState
	Fields      domain.ContactRequest
	FieldErrors domain.FieldErrors
	Error       string
	Services    []domain.ServiceCategory
}

func newFormView(res *domain.ContactResult) FormView {
	f := FormView{State: domain.FormIdle, Services: domain.ServiceCategories}
	if res != nil {
		f.State = res.State
		f.Fields = res.Fields
		f.FieldErrors = res.FieldErrors
	}
	return f
}

// Selected reports whether s is the service currently chosen.
func (f FormView) Selected(s domain.ServiceCategory) bool {
	return f.Fields.Service == string(s)
}

// PageView is the data of page.html.
type PageView struct {
	Site         *content.Site
	Meta         seo.Meta
	Theme        theme.Theme
	CSRFToken    string
	State        PageState
	Gallery      *domain.GalleryView
	Testimonials *domain.TestimonialView
	Form         FormView
	Year         int
}
