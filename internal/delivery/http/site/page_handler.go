// Package site serves the server rendered single page and its companions
// (theme switch, robots.txt, sitemap).
package site

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bdgc-website/internal/content"
	"bdgc-website/internal/delivery/http/middleware"
	"bdgc-website/internal/domain"
	"bdgc-website/internal/seo"
	"bdgc-website/internal/theme"
	"bdgc-website/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	msgSomethingWrong = "Something went wrong. Please try again."
	msgUnavailable    = "The contact form is temporarily unavailable. Please call or email us directly."
)

type PageDeps struct {
	Site       *content.Site
	SiteURL    string
	ShowcaseUC domain.ShowcaseUsecase
	ContactUC  domain.ContactUsecase
	Themes     theme.PreferenceStore
	Logger     *slog.Logger
	// ContactLimit guards POST /contact; nil means no limit.
	ContactLimit gin.HandlerFunc
}

type PageHandler struct {
	site       *content.Site
	siteURL    string
	meta       seo.Meta
	showcaseUC domain.ShowcaseUsecase
	contactUC  domain.ContactUsecase
	themes     theme.PreferenceStore
	logger     *slog.Logger
	started    time.Time
}

// NewPageHandler registers the page routes on r.
func NewPageHandler(r gin.IRoutes, deps PageDeps) *PageHandler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	h := &PageHandler{
		site:       deps.Site,
		siteURL:    deps.SiteURL,
		meta:       seo.Build(deps.Site, deps.SiteURL),
		showcaseUC: deps.ShowcaseUC,
		contactUC:  deps.ContactUC,
		themes:     deps.Themes,
		logger:     logger,
		started:    time.Now(),
	}

	r.GET("/", h.Home)
	if deps.ContactLimit != nil {
		r.POST("/contact", deps.ContactLimit, h.SubmitContact)
	} else {
		r.POST("/contact", h.SubmitContact)
	}
	r.POST("/theme", h.ToggleTheme)
	r.GET("/robots.txt", h.Robots)
	r.GET("/sitemap.xml", h.Sitemap)
	return h
}

// Home renders the page. Invalid query values fall back to defaults.
func (h *PageHandler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, newFormView(nil))
}

// SubmitContact handles the no-script form post and re-renders the page
// with the form's state.
func (h *PageHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(apperror.BadRequest("Invalid form data"))
		return
	}

	res, err := h.contactUC.SendContactMessage(c.Request.Context(), &req)
	if c.Request.Context().Err() != nil {
		// the visitor left; nothing to render
		return
	}

	form := newFormView(res)
	status := http.StatusOK
	switch {
	case errors.Is(err, domain.ErrContactUnavailable):
		form.Error = msgUnavailable
		status = http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrRelayFailed):
		form.Error = msgSomethingWrong
		status = http.StatusBadGateway
	case err != nil:
		h.logger.Error("contact form failed", "error", err, "request_id", c.GetString(string(domain.KeyRequestID)))
		form.Error = msgSomethingWrong
		status = http.StatusInternalServerError
	case len(form.FieldErrors) > 0:
		status = http.StatusUnprocessableEntity
	}
	h.render(c, status, form)
}

// ToggleTheme flips the theme, stores it and sends the visitor back.
func (h *PageHandler) ToggleTheme(c *gin.Context) {
	t := middleware.ThemeContext(c).Toggle()
	h.themes.Save(c.Writer, t)
	c.Redirect(http.StatusSeeOther, safeReturn(c.PostForm("return")))
}

func (h *PageHandler) Robots(c *gin.Context) {
	c.String(http.StatusOK, seo.Robots(h.siteURL))
}

func (h *PageHandler) Sitemap(c *gin.Context) {
	out, err := seo.Sitemap(h.siteURL, h.started)
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", out)
}

func (h *PageHandler) render(c *gin.Context, status int, form FormView) {
	state := parseState(c, len(h.site.Testimonials))
	if form.State == domain.FormIdle && form.Fields.Service == "" {
		form.Fields.Service = string(state.Service)
	}

	gallery, err := h.showcaseUC.Gallery(string(state.Category), state.Project)
	if err != nil && state.Project != 0 {
		// stale or foreign project id: show the filter without the lightbox
		state.Project = 0
		gallery, err = h.showcaseUC.Gallery(string(state.Category), 0)
	}
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	testimonials, err := h.showcaseUC.Testimonials(state.Testimonial)
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}

	c.HTML(status, "page.html", PageView{
		Site:         h.site,
		Meta:         h.meta,
		Theme:        middleware.ThemeContext(c).Current(),
		CSRFToken:    middleware.CSRFToken(c),
		State:        state,
		Gallery:      gallery,
		Testimonials: testimonials,
		Form:         form,
		Year:         time.Now().Year(),
	})
}

func parseState(c *gin.Context, testimonials int) PageState {
	s := PageState{Category: domain.CategoryAll}
	if cat, err := domain.ParseCategory(c.Query("category")); err == nil {
		s.Category = cat
	}
	if id, err := strconv.Atoi(c.Query("project")); err == nil && id > 0 {
		s.Project = id
	}
	if i, err := strconv.Atoi(c.Query("testimonial")); err == nil && i >= 0 && i < testimonials {
		s.Testimonial = i
	}
	if svc, err := domain.ParseServiceCategory(c.Query("service")); err == nil {
		s.Service = svc
	}
	return s
}

// safeReturn only allows local paths.
func safeReturn(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return "/"
	}
	return p
}
