// Package seo builds page metadata, the schema.org payload, robots.txt and
// the sitemap from the site content.
package seo

import (
	"strings"

	"bdgc-website/internal/content"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
	Locale      string
}

type Twitter struct {
	Card        string
	Title       string
	Description string
	Image       string
}

type Meta struct {
	Title       string
	Description string
	Keywords    string
	Canonical   string
	Robots      string
	ThemeColor  string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

// Build assembles the metadata of the home page. siteURL has no trailing
// slash.
func Build(site *content.Site, siteURL string) Meta {
	image := absolute(siteURL, site.SEO.OGImage)
	return Meta{
		Title:       site.SEO.Title,
		Description: site.SEO.Description,
		Keywords:    strings.Join(site.SEO.Keywords, ", "),
		Canonical:   siteURL + "/",
		Robots:      "index, follow",
		ThemeColor:  site.SEO.ThemeColor,
		OG: OpenGraph{
			Title:       site.SEO.Title,
			Description: site.SEO.Description,
			Image:       image,
			Type:        "website",
			URL:         siteURL + "/",
			SiteName:    site.Business.Name,
			Locale:      "en_US",
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       site.SEO.Title,
			Description: site.SEO.Description,
			Image:       image,
		},
		JSONLD: []string{JSON(GeneralContractor(site, siteURL))},
	}
}

func absolute(siteURL, ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return siteURL + "/" + strings.TrimPrefix(ref, "/")
}
