package v1

import (
	"errors"
	"net/http"

	"bdgc-website/internal/delivery/http/response"
	"bdgc-website/internal/domain"
	"bdgc-website/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required).
// limit, when given, runs before the handler.
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, limit ...gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", append(limit, handler.SubmitContact)...)
}

// SubmitContact validates and relays a quote request.
//
//	200 success (a silently dropped spam post looks the same)
//	422 field errors in error, entered fields in data
//	502 relay failure, fields kept in data for a retry
//	503 relay not configured
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	res, err := h.contactUC.SendContactMessage(c.Request.Context(), &req)
	if c.Request.Context().Err() != nil {
		return
	}
	if err != nil {
		if errors.Is(err, domain.ErrContactUnavailable) {
			c.Error(apperror.Unavailable("Contact service temporarily unavailable", err))
			return
		}
		if errors.Is(err, domain.ErrRelayFailed) {
			c.Error(apperror.BadGateway("Something went wrong. Please try again.", err).WithDetails(res))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	if len(res.FieldErrors) > 0 {
		c.Error(apperror.Unprocessable("Please correct the highlighted fields", res))
		return
	}

	response.Success(c, http.StatusOK, "Thank you! Your message has been sent successfully.", res)
}
