// Package theme tracks the light/dark preference of a visitor.
package theme

import (
	"net/http"
	"sync"
	"time"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Parse accepts "light" or "dark".
func Parse(s string) (Theme, bool) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), true
	}
	return "", false
}

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// PreferenceStore persists a visitor's choice between requests.
type PreferenceStore interface {
	Load(r *http.Request) (Theme, bool)
	Save(w http.ResponseWriter, t Theme)
}

// Context is the theme state of one request.
type Context struct {
	mu      sync.Mutex
	current Theme
}

// NewContext falls back to Dark for an invalid initial value.
func NewContext(initial Theme) *Context {
	if _, ok := Parse(string(initial)); !ok {
		initial = Dark
	}
	return &Context{current: initial}
}

// FromRequest starts from the stored preference, or fallback.
func FromRequest(r *http.Request, store PreferenceStore, fallback Theme) *Context {
	if t, ok := store.Load(r); ok {
		return NewContext(t)
	}
	return NewContext(fallback)
}

func (c *Context) Current() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Toggle flips the theme and returns the new value.
func (c *Context) Toggle() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Toggled()
	return c.current
}

const DefaultCookieName = "theme"

// CookieStore keeps the preference in a long lived cookie.
type CookieStore struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

func NewCookieStore(secure bool) *CookieStore {
	return &CookieStore{Name: DefaultCookieName, MaxAge: 365 * 24 * time.Hour, Secure: secure}
}

func (s *CookieStore) Load(r *http.Request) (Theme, bool) {
	ck, err := r.Cookie(s.Name)
	if err != nil {
		return "", false
	}
	return Parse(ck.Value)
}

func (s *CookieStore) Save(w http.ResponseWriter, t Theme) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Name,
		Value:    string(t),
		Path:     "/",
		MaxAge:   int(s.MaxAge.Seconds()),
		Secure:   s.Secure,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}
