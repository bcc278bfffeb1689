package domain

import "fmt"

// ServiceCategory is the closed list of services a visitor can ask a quote for.
type ServiceCategory string

const (
	ServiceRemodeling ServiceCategory = "Building & Remodeling"
	ServicePlumbing   ServiceCategory = "Plumbing Services"
	ServiceElectrical ServiceCategory = "Electrical Services"
	ServiceCarpentry  ServiceCategory = "Carpentry"
	ServicePainting   ServiceCategory = "Painting"
	ServiceRoofing    ServiceCategory = "Roofing"
	ServiceOther      ServiceCategory = "Other"
)

// ServiceCategories lists the form options in display order.
var ServiceCategories = []ServiceCategory{
	ServiceRemodeling,
	ServicePlumbing,
	ServiceElectrical,
	ServiceCarpentry,
	ServicePainting,
	ServiceRoofing,
	ServiceOther,
}

// ParseServiceCategory returns the category whose label is exactly s.
func ParseServiceCategory(s string) (ServiceCategory, error) {
	for _, c := range ServiceCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown service category %q", s)
}

// Category is the tag shared by the gallery filter and the services listing.
type Category string

const (
	// CategoryAll is the implicit filter that selects the whole catalog.
	CategoryAll        Category = "All"
	CategoryRemodeling Category = "Remodeling"
	CategoryPlumbing   Category = "Plumbing"
	CategoryElectrical Category = "Electrical"
	CategoryPainting   Category = "Painting"
)

// Categories lists the concrete tags in display order. CategoryAll is not
// part of it.
var Categories = []Category{
	CategoryRemodeling,
	CategoryPlumbing,
	CategoryElectrical,
	CategoryPainting,
}

var categoryServices = map[Category]ServiceCategory{
	CategoryRemodeling: ServiceRemodeling,
	CategoryPlumbing:   ServicePlumbing,
	CategoryElectrical: ServiceElectrical,
	CategoryPainting:   ServicePainting,
}

// ParseCategory accepts "All" or one of Categories.
func ParseCategory(s string) (Category, error) {
	if s == string(CategoryAll) {
		return CategoryAll, nil
	}
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Service returns the contact form option a category corresponds to.
func (c Category) Service() (ServiceCategory, bool) {
	s, ok := categoryServices[c]
	return s, ok
}
