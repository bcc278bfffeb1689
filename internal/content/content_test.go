package content_test

import (
	"testing"

	"bdgc-website/internal/content"
	"bdgc-website/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	site, err := content.Load()
	require.NoError(t, err)

	assert.Equal(t, "B&D General Contractor LLC", site.Business.Name)
	assert.Len(t, site.Projects, 8)
	assert.Len(t, site.Testimonials, 6)
	assert.Len(t, site.Services, 4)
	assert.Len(t, site.Reasons, 6)
	assert.Len(t, site.Process, 6)

	painting := 0
	for _, p := range site.Projects {
		if p.Category == domain.CategoryPainting {
			painting++
		}
	}
	assert.Equal(t, 2, painting)

	for _, c := range domain.Categories {
		_, ok := site.ServiceFor(c)
		assert.True(t, ok, "service for %s", c)
	}
}

func TestParse_RejectsBadShape(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "no testimonials",
			doc:     minimal + "testimonials: []\n",
			wantErr: "no testimonials",
		},
		{
			name: "rating out of range",
			doc: minimal + `testimonials:
  - { id: 1, name: A, rating: 6 }
`,
			wantErr: "rating 6 out of 1..5",
		},
		{
			name: "duplicate project id",
			doc: `business: { name: X }
services: ` + allServices + `
testimonials: [{ id: 1, name: A, rating: 5 }]
projects:
  - { id: 1, title: One, category: Painting }
  - { id: 1, title: Two, category: Painting }
`,
			wantErr: "project 1: duplicate id",
		},
		{
			name: "unknown project category",
			doc: `business: { name: X }
services: ` + allServices + `
testimonials: [{ id: 1, name: A, rating: 5 }]
projects: [{ id: 1, title: One, category: Roofing }]
`,
			wantErr: `unknown category "Roofing"`,
		},
		{
			name: "category without service",
			doc: `business: { name: X }
services: [{ title: Paint, category: Painting }]
testimonials: [{ id: 1, name: A, rating: 5 }]
projects: [{ id: 1, title: One, category: Painting }]
`,
			wantErr: `category "Plumbing" has no service`,
		},
		{
			name:    "unknown key",
			doc:     minimal + "testimonials: [{ id: 1, name: A, rating: 5 }]\nbanner: hi\n",
			wantErr: "content: decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := content.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

const allServices = `
  - { title: R, category: Remodeling }
  - { title: P, category: Plumbing }
  - { title: E, category: Electrical }
  - { title: A, category: Painting }
`

const minimal = `business: { name: X }
services: ` + allServices + `
projects: [{ id: 1, title: One, category: Painting }]
`
