package site

import (
	"html/template"
	"io/fs"
	"strings"
)

var funcs = template.FuncMap{
	// jsonLD marks a payload built by the seo package as safe script content.
	"jsonLD": func(s string) template.JS { return template.JS(s) },
	// telURL lets tel: links from the content catalog through the URL filter.
	"telURL": func(s string) any {
		if strings.HasPrefix(s, "tel:") {
			return template.URL(s)
		}
		return s
	},
	"stars": func(n int) []struct{} {
		if n < 0 {
			n = 0
		}
		return make([]struct{}, n)
	},
}

// ParseTemplates loads every *.html under templates/ in fsys.
func ParseTemplates(fsys fs.FS) (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(fsys, "templates/*.html")
}
