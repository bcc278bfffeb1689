package seo

import (
	"strings"

	"bdgc-website/internal/content"

	"github.com/goccy/go-json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// GeneralContractor returns the LocalBusiness payload for the contractor.
func GeneralContractor(site *content.Site, siteURL string) map[string]any {
	b := site.Business
	m := map[string]any{
		"@context":   "https://schema.org",
		"@type":      "GeneralContractor",
		"@id":        siteURL,
		"name":       b.Name,
		"url":        siteURL,
		"telephone":  telephone(b.PhoneHref),
		"email":      b.Email,
		"priceRange": b.PriceRange,
		"address": map[string]any{
			"@type":           "PostalAddress",
			"addressLocality": b.Locality,
			"addressRegion":   b.Region,
			"postalCode":      b.PostalCode,
			"addressCountry":  b.Country,
		},
		"areaServed": map[string]any{
			"@type": "State",
			"name":  b.AreaServed,
		},
	}
	if b.Logo != "" {
		m["image"] = absolute(siteURL, b.Logo)
	}
	if b.Founded > 0 {
		m["foundingDate"] = b.Founded
	}
	if b.Latitude != 0 || b.Longitude != 0 {
		m["geo"] = map[string]any{
			"@type":     "GeoCoordinates",
			"latitude":  b.Latitude,
			"longitude": b.Longitude,
		}
	}
	if len(b.Hours) > 0 {
		hours := make([]map[string]any, 0, len(b.Hours))
		for _, h := range b.Hours {
			hours = append(hours, map[string]any{
				"@type":     "OpeningHoursSpecification",
				"dayOfWeek": h.Days,
				"opens":     h.Opens,
				"closes":    h.Closes,
			})
		}
		m["openingHoursSpecification"] = hours
	}
	if len(site.Social) > 0 {
		same := make([]string, 0, len(site.Social))
		for _, s := range site.Social {
			same = append(same, s.Href)
		}
		m["sameAs"] = same
	}
	if len(site.Services) > 0 {
		offers := make([]map[string]any, 0, len(site.Services))
		for _, s := range site.Services {
			offers = append(offers, map[string]any{
				"@type": "Offer",
				"itemOffered": map[string]any{
					"@type":       "Service",
					"name":        s.Title,
					"description": s.Description,
				},
			})
		}
		m["hasOfferCatalog"] = map[string]any{
			"@type":           "OfferCatalog",
			"name":            "General Contracting Services",
			"itemListElement": offers,
		}
	}
	if n := len(site.Testimonials); n > 0 {
		total := 0
		for _, t := range site.Testimonials {
			total += t.Rating
		}
		m["aggregateRating"] = map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": float64(total) / float64(n),
			"reviewCount": n,
			"bestRating":  5,
		}
	}
	return m
}

// telephone turns "tel:+19739342059" into "+19739342059".
func telephone(href string) string {
	return strings.TrimPrefix(href, "tel:")
}
