package site

import (
	"testing"

	"bdgc-website/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestPageState_URLs(t *testing.T) {
	home := PageState{Category: domain.CategoryAll}
	painting := PageState{Category: domain.CategoryPainting, Project: 7, Testimonial: 2}

	assert.Equal(t, "/", home.URL())
	assert.Equal(t, "/?category=Painting#projects", home.FilterURL(domain.CategoryPainting))
	assert.Equal(t, "/?category=Painting&project=8&testimonial=2#projects", painting.OpenURL(8))
	assert.Equal(t, "/?category=Painting&testimonial=2#projects", painting.CloseURL())
	assert.Equal(t, "/?category=Painting&project=7#testimonials", painting.TestimonialURL(0))
}

func TestPageState_QuoteURL(t *testing.T) {
	home := PageState{Category: domain.CategoryAll}

	tests := []struct {
		category domain.Category
		want     string
	}{
		{domain.CategoryPainting, "/?service=Painting#contact"},
		{domain.CategoryPlumbing, "/?service=Plumbing+Services#contact"},
		{domain.CategoryRemodeling, "/?service=Building+%26+Remodeling#contact"},
		{domain.CategoryAll, ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, home.QuoteURL(tt.category))
		})
	}
}

func TestFormView_Selected(t *testing.T) {
	f := newFormView(&domain.ContactResult{
		State:  domain.FormIdle,
		Fields: domain.ContactRequest{Service: string(domain.ServiceRoofing)},
	})

	assert.True(t, f.Selected(domain.ServiceRoofing))
	assert.False(t, f.Selected(domain.ServiceOther))
	assert.Equal(t, domain.ServiceCategories, f.Services)
}
