package v1

import (
	"errors"
	"net/http"
	"strconv"

	"bdgc-website/internal/delivery/http/response"
	"bdgc-website/internal/domain"
	"bdgc-website/internal/gallery"
	"bdgc-website/internal/usecase"
	"bdgc-website/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ShowcaseHandler struct {
	showcaseUC domain.ShowcaseUsecase
}

func NewShowcaseHandler(public *gin.RouterGroup, showcaseUC domain.ShowcaseUsecase) {
	handler := &ShowcaseHandler{
		showcaseUC: showcaseUC,
	}

	public.GET("/gallery", handler.ListGallery)
	public.GET("/gallery/:id", handler.GetGalleryItem)
	public.GET("/testimonials", handler.GetTestimonial)
}

// ListGallery returns the projects matching ?category= (default All).
func (h *ShowcaseHandler) ListGallery(c *gin.Context) {
	view, err := h.showcaseUC.Gallery(c.Query("category"), 0)
	if err != nil {
		c.Error(showcaseError(err))
		return
	}
	response.Success(c, http.StatusOK, "Projects retrieved", view)
}

// GetGalleryItem is the lightbox: the project plus its neighbours within
// ?category=.
func (h *ShowcaseHandler) GetGalleryItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest("Invalid project id"))
		return
	}
	view, err := h.showcaseUC.Gallery(c.Query("category"), id)
	if err != nil {
		c.Error(showcaseError(err))
		return
	}
	response.Success(c, http.StatusOK, "Project retrieved", view)
}

// GetTestimonial returns the carousel positioned at ?index= (default 0).
func (h *ShowcaseHandler) GetTestimonial(c *gin.Context) {
	index := 0
	if raw := c.Query("index"); raw != "" {
		i, err := strconv.Atoi(raw)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid testimonial index"))
			return
		}
		index = i
	}
	view, err := h.showcaseUC.Testimonials(index)
	if err != nil {
		c.Error(showcaseError(err))
		return
	}
	response.Success(c, http.StatusOK, "Testimonial retrieved", view)
}

func showcaseError(err error) *apperror.AppError {
	switch {
	case errors.Is(err, gallery.ErrUnknownCategory):
		return apperror.BadRequest("Unknown category")
	case usecase.IsNotFound(err):
		return apperror.NotFound(err.Error())
	default:
		return apperror.Internal(err)
	}
}
