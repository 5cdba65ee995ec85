package handlers

import (
	"errors"
	"net/http"

	"xoadvisor/database"
	"xoadvisor/services/auth"
	"xoadvisor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a service error to its HTTP status. Backend errors are
// reported with the store's message verbatim.
func respondError(c *gin.Context, err error) {
	if ve, ok := utils.IsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: ve.Error(), Fields: ve.Fields})
		return
	}
	switch {
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "Not found"})
	case errors.Is(err, auth.ErrEmailTaken), errors.Is(err, database.ErrDuplicate):
		c.JSON(http.StatusConflict, utils.ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: err.Error()})
	default:
		getLogger(c).Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: backendMessage(err)})
	}
}

// backendMessage strips our wrapping and returns the store's own message.
func backendMessage(err error) string {
	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			return err.Error()
		}
		err = inner
	}
}

func badRequest(c *gin.Context, err error) {
	getLogger(c).Warn("Invalid request body", zap.Error(err))
	c.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "Invalid request: " + err.Error()})
}
