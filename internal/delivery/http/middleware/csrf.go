package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"bdgc-website/internal/domain"
	"bdgc-website/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName is the header scripts send the token in
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenFormField is the hidden input server rendered forms carry
	CSRFTokenFormField = "csrf_token"
	// CSRFTokenLength is the length of the generated token in bytes (32 bytes = 64 hex chars)
	CSRFTokenLength = 32
	// CSRFTokenExpiry is how long the token is valid
	CSRFTokenExpiry = 24 * time.Hour
)

type CSRFConfig struct {
	// Secure marks the cookie HTTPS only.
	Secure bool
	// ExemptPaths skip validation but still receive a cookie.
	ExemptPaths []string
}

// generateCSRFToken creates a cryptographically secure random token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFMiddleware implements the double-submit cookie pattern.
//
// Every response carries a csrf_token cookie, and the token is also put in
// the request context so templates can render it into a hidden field. A
// state-changing request must echo the cookie value in the X-CSRF-Token
// header or the csrf_token form field.
func CSRFMiddleware(cfg CSRFConfig) gin.HandlerFunc {
	exempt := make(map[string]bool, len(cfg.ExemptPaths))
	for _, p := range cfg.ExemptPaths {
		exempt[p] = true
	}

	return func(c *gin.Context) {
		csrfCookie, err := c.Cookie(CSRFTokenCookieName)
		if err != nil || csrfCookie == "" {
			newToken, err := generateCSRFToken()
			if err != nil {
				c.Error(apperror.New(http.StatusInternalServerError, "Failed to generate security token", err))
				c.Abort()
				return
			}

			// SameSite=Lax keeps the cookie on top-level navigations only
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(
				CSRFTokenCookieName,
				newToken,
				int(CSRFTokenExpiry.Seconds()),
				"/",
				"",         // Domain (empty = current domain)
				cfg.Secure, // Secure (HTTPS only)
				false,      // HttpOnly = false so JS can read it
			)
			csrfCookie = newToken
			// only the cookie we just set can be compared against
			c.Set("csrf_fresh", true)
		}
		c.Set(string(domain.KeyCSRFToken), csrfCookie)

		if exempt[c.Request.URL.Path] {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if c.GetBool("csrf_fresh") {
			c.Error(apperror.Forbidden("Missing CSRF token"))
			c.Abort()
			return
		}

		token := c.GetHeader(CSRFTokenHeaderName)
		if token == "" {
			token = c.PostForm(CSRFTokenFormField)
		}
		if token == "" {
			c.Error(apperror.Forbidden("Missing CSRF token"))
			c.Abort()
			return
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(csrfCookie)) != 1 {
			c.Error(apperror.Forbidden("Invalid CSRF token"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// CSRFToken returns the token for the current request, for templates.
func CSRFToken(c *gin.Context) string {
	return c.GetString(string(domain.KeyCSRFToken))
}
