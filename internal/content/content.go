// Package content holds the static copy of the site: services, projects,
// testimonials and the rest of the single page. It is compiled into the
// binary and checked once at startup.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"bdgc-website/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteYAML []byte

type Business struct {
	Name       string  `yaml:"name"`
	ShortName  string  `yaml:"short_name"`
	Tagline    string  `yaml:"tagline"`
	URL        string  `yaml:"url"`
	Logo       string  `yaml:"logo"`
	Phone      string  `yaml:"phone"`
	PhoneHref  string  `yaml:"phone_href"`
	Email      string  `yaml:"email"`
	Locality   string  `yaml:"locality"`
	Region     string  `yaml:"region"`
	PostalCode string  `yaml:"postal_code"`
	Country    string  `yaml:"country"`
	AreaServed string  `yaml:"area_served"`
	PriceRange string  `yaml:"price_range"`
	Founded    int     `yaml:"founded"`
	Latitude   float64 `yaml:"latitude"`
	Longitude  float64 `yaml:"longitude"`
	Hours      []Hours `yaml:"hours"`
}

type Hours struct {
	Days   []string `yaml:"days"`
	Opens  string   `yaml:"opens"`
	Closes string   `yaml:"closes"`
}

type SEO struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	OGImage     string   `yaml:"og_image"`
	ThemeColor  string   `yaml:"theme_color"`
	Keywords    []string `yaml:"keywords"`
}

type Link struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Hero struct {
	Heading string `yaml:"heading"`
	Text    string `yaml:"text"`
	Badges  []Stat `yaml:"badges"`
}

type Service struct {
	Title       string          `yaml:"title"`
	Category    domain.Category `yaml:"category"`
	Description string          `yaml:"description"`
	Features    []string        `yaml:"features"`
}

type Reason struct {
	Title       string `yaml:"title"`
	Stat        string `yaml:"stat"`
	StatLabel   string `yaml:"stat_label"`
	Description string `yaml:"description"`
}

type Step struct {
	Number      string `yaml:"number"`
	Title       string `yaml:"title"`
	Duration    string `yaml:"duration"`
	Description string `yaml:"description"`
}

type About struct {
	Heading     string   `yaml:"heading"`
	Paragraphs  []string `yaml:"paragraphs"`
	Credentials []string `yaml:"credentials"`
	Stats       []Stat   `yaml:"stats"`
}

type ContactInfo struct {
	Label       string `yaml:"label"`
	Value       string `yaml:"value"`
	Href        string `yaml:"href"`
	Description string `yaml:"description"`
}

// Site is the whole page copy.
type Site struct {
	Business     Business             `yaml:"business"`
	SEO          SEO                  `yaml:"seo"`
	Nav          []Link               `yaml:"nav"`
	Hero         Hero                 `yaml:"hero"`
	Services     []Service            `yaml:"services"`
	Reasons      []Reason             `yaml:"reasons"`
	Process      []Step               `yaml:"process"`
	Projects     []domain.GalleryItem `yaml:"projects"`
	Testimonials []domain.Testimonial `yaml:"testimonials"`
	About        About                `yaml:"about"`
	ContactInfo  []ContactInfo        `yaml:"contact_info"`
	Social       []Link               `yaml:"social"`
}

// Load decodes the embedded catalog and validates its shape.
func Load() (*Site, error) {
	return Parse(siteYAML)
}

// Parse decodes a catalog document. Unknown keys are rejected.
func Parse(data []byte) (*Site, error) {
	var s Site
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the invariants the controllers rely on: a non-empty
// testimonial list, unique ids, ratings within 1..5, known category tags, and
// for every tag a service entry and a contact form option.
func (s *Site) Validate() error {
	var errs []error

	if s.Business.Name == "" {
		errs = append(errs, errors.New("business name is empty"))
	}
	if len(s.Projects) == 0 {
		errs = append(errs, errors.New("no projects"))
	}
	if len(s.Testimonials) == 0 {
		errs = append(errs, errors.New("no testimonials"))
	}

	seen := make(map[int]bool, len(s.Projects))
	for _, p := range s.Projects {
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("project %d: duplicate id", p.ID))
		}
		seen[p.ID] = true
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("project %d: empty title", p.ID))
		}
		if !isConcrete(p.Category) {
			errs = append(errs, fmt.Errorf("project %d: unknown category %q", p.ID, p.Category))
		}
	}

	seen = make(map[int]bool, len(s.Testimonials))
	for _, t := range s.Testimonials {
		if seen[t.ID] {
			errs = append(errs, fmt.Errorf("testimonial %d: duplicate id", t.ID))
		}
		seen[t.ID] = true
		if t.Rating < 1 || t.Rating > 5 {
			errs = append(errs, fmt.Errorf("testimonial %d: rating %d out of 1..5", t.ID, t.Rating))
		}
	}

	for _, svc := range s.Services {
		if !isConcrete(svc.Category) {
			errs = append(errs, fmt.Errorf("service %q: unknown category %q", svc.Title, svc.Category))
		}
	}
	for _, c := range domain.Categories {
		if _, ok := s.ServiceFor(c); !ok {
			errs = append(errs, fmt.Errorf("category %q has no service", c))
		}
		if _, ok := c.Service(); !ok {
			errs = append(errs, fmt.Errorf("category %q has no contact form option", c))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("content: invalid catalog: %w", errors.Join(errs...))
	}
	return nil
}

// ServiceFor returns the service card for a category tag.
func (s *Site) ServiceFor(c domain.Category) (Service, bool) {
	for _, svc := range s.Services {
		if svc.Category == c {
			return svc, true
		}
	}
	return Service{}, false
}

func isConcrete(c domain.Category) bool {
	for _, known := range domain.Categories {
		if c == known {
			return true
		}
	}
	return false
}
