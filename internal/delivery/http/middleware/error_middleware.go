package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"bdgc-website/internal/delivery/http/response"
	"bdgc-website/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError && appErr.Err != nil {
				logger.Error("request failed", "status", appErr.Code, "error", appErr.Err, "request_id", response.RequestID(c))
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}
		// Never expose internal error details to clients.
		logger.Error("internal server error", "error", err, "request_id", response.RequestID(c))
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
