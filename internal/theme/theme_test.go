package theme

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_Toggle(t *testing.T) {
	c := NewContext(Dark)
	assert.Equal(t, Light, c.Toggle())
	assert.Equal(t, Dark, c.Toggle())
	assert.Equal(t, Dark, c.Current())
}

func TestNewContext_InvalidFallsBackToDark(t *testing.T) {
	assert.Equal(t, Dark, NewContext("sepia").Current())
}

func TestCookieStore_RoundTrip(t *testing.T) {
	store := NewCookieStore(false)
	w := httptest.NewRecorder()
	store.Save(w, Light)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, DefaultCookieName, cookies[0].Name)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookies[0])
	c := FromRequest(r, store, Dark)
	assert.Equal(t, Light, c.Current())
}

func TestFromRequest_IgnoresBadCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: "neon"})
	assert.Equal(t, Light, FromRequest(r, NewCookieStore(false), Light).Current())
}
