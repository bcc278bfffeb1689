package middleware

import (
	"bdgc-website/internal/domain"
	"bdgc-website/internal/theme"

	"github.com/gin-gonic/gin"
)

// Theme puts a *theme.Context built from the stored preference into the
// request.
func Theme(store theme.PreferenceStore, fallback theme.Theme) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(domain.KeyTheme), theme.FromRequest(c.Request, store, fallback))
		c.Next()
	}
}

// ThemeContext returns the request's theme context, or a dark one when the
// middleware did not run.
func ThemeContext(c *gin.Context) *theme.Context {
	if v, ok := c.Get(string(domain.KeyTheme)); ok {
		if tc, ok := v.(*theme.Context); ok {
			return tc
		}
	}
	return theme.NewContext(theme.Dark)
}
