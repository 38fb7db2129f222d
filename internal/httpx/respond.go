package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/peakstore/peakstore-be/internal/apperr"
	"github.com/peakstore/peakstore-be/internal/logger"
)

// Error maps a service error onto the wire taxonomy: ValidationError -> 400,
// NotFoundError -> 404, everything else -> 500 with a generic message. The
// underlying cause of a 500 is logged, never returned to the caller.
func Error(c *gin.Context, err error) {
	switch {
	case apperr.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case apperr.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		logger.FromCtx(c.Request.Context()).Error(
			"request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}
