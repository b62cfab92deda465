package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Domenick1991/deskbuddy/internal/apperrors"
	"github.com/Domenick1991/deskbuddy/internal/middleware"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDeskUnavailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		middleware.GetLoggerFromContext(c).Error("request failed", slog.String("error", err.Error()))
		c.JSON(status, errorResponse{Error: "internal error"})
		return
	}
	_ = c.Error(err)
	c.JSON(status, errorResponse{Error: err.Error()})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: message})
}
