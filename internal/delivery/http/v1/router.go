package v1

import (
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"bdgc-website/config"
	"bdgc-website/internal/content"
	"bdgc-website/internal/delivery/http/middleware"
	"bdgc-website/internal/delivery/http/response"
	"bdgc-website/internal/delivery/http/site"
	"bdgc-website/internal/domain"
	"bdgc-website/internal/theme"
	"bdgc-website/internal/usecase"
	"bdgc-website/pkg/metrics"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ContactUC   domain.ContactUsecase
	ShowcaseUC  domain.ShowcaseUsecase
	HealthUC    usecase.HealthUsecase
	Site        *content.Site
	Templates   *template.Template
	Static      fs.FS
	RateLimiter *middleware.RateLimiter
	Logger      *slog.Logger
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	secure := cfg.GinMode == gin.ReleaseMode

	r := gin.New()
	r.SetHTMLTemplate(deps.Templates)

	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	contactLimit := deps.RateLimiter.Middleware(middleware.ContactRateLimitConfig(cfg.RateLimitContactThreshold, window))
	themes := theme.NewCookieStore(secure)
	fallbackTheme, ok := theme.Parse(cfg.DefaultTheme)
	if !ok {
		fallbackTheme = theme.Dark
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(metrics.Middleware())
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	r.Use(middleware.SecurityHeadersMiddleware(secure))
	r.Use(middleware.ErrorHandler(deps.Logger)) // must wrap the limiters
	r.Use(deps.RateLimiter.Middleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))

	r.StaticFS("/static", http.FS(deps.Static))
	r.GET("/metrics", metrics.Handler())

	// Page and API share the CSRF cookie and the theme preference
	pages := r.Group("")
	pages.Use(middleware.CSRFMiddleware(middleware.CSRFConfig{
		Secure:      secure,
		ExemptPaths: []string{"/v1/contact", "/v1/health"},
	}))
	pages.Use(middleware.Theme(themes, fallbackTheme))

	site.NewPageHandler(pages, site.PageDeps{
		Site:         deps.Site,
		SiteURL:      cfg.SiteURL,
		ShowcaseUC:   deps.ShowcaseUC,
		ContactUC:    deps.ContactUC,
		Themes:       themes,
		Logger:       deps.Logger,
		ContactLimit: contactLimit,
	})

	v1 := pages.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	NewContactHandler(v1, deps.ContactUC, contactLimit) // Contact form (no auth required)
	NewShowcaseHandler(v1, deps.ShowcaseUC)
	NewThemeHandler(v1, themes)

	return r
}
