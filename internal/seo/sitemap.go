package seo

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

// Sitemap lists the single page of the site.
func Sitemap(siteURL string, lastMod time.Time) ([]byte, error) {
	set := urlset{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{{
			Loc:        siteURL + "/",
			LastMod:    lastMod.UTC().Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   1,
		}},
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("seo: sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// Robots allows everything except the JSON API and metrics.
func Robots(siteURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /v1/\n")
	b.WriteString("Disallow: /metrics\n")
	fmt.Fprintf(&b, "\nSitemap: %s/sitemap.xml\n", siteURL)
	return b.String()
}
