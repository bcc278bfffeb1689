package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ExposesSiteCollectors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncContact(OutcomeSuccess)
	ObserveRelay(120 * time.Millisecond)
	IncRateLimited("contact")

	r := gin.New()
	r.Use(Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	for _, name := range []string{
		`bdgc_site_contact_submissions_total{outcome="success"}`,
		"bdgc_site_relay_duration_seconds_count",
		`bdgc_site_rate_limited_total{scope="contact"}`,
		`bdgc_site_http_requests_total{method="GET",route="/ping",status="204"}`,
	} {
		assert.True(t, strings.Contains(body, name), "missing %s", name)
	}
}
