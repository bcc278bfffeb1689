package v1

import (
	"net/http"

	"bdgc-website/internal/delivery/http/middleware"
	"bdgc-website/internal/delivery/http/response"
	"bdgc-website/internal/theme"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	store theme.PreferenceStore
}

func NewThemeHandler(public *gin.RouterGroup, store theme.PreferenceStore) {
	handler := &ThemeHandler{store: store}

	public.GET("/theme", handler.Get)
	public.POST("/theme/toggle", handler.Toggle)
}

func (h *ThemeHandler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, "Theme retrieved", gin.H{"theme": middleware.ThemeContext(c).Current()})
}

func (h *ThemeHandler) Toggle(c *gin.Context) {
	t := middleware.ThemeContext(c).Toggle()
	h.store.Save(c.Writer, t)
	response.Success(c, http.StatusOK, "Theme updated", gin.H{"theme": t})
}
