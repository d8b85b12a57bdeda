package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"imobicrm/internal/currency"
	"imobicrm/internal/logger"
	"imobicrm/internal/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: message})
}

func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, errorResponse{Error: message})
}

// respondError maps core errors onto HTTP statuses: validation and
// integrity failures are the caller's problem, anything else is ours.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrValidation),
		errors.Is(err, store.ErrReferentialIntegrity),
		errors.Is(err, currency.ErrInvalidAmount):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
