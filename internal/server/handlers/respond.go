package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hardik699/Hanuram1-sub001/internal/costing"
	"github.com/Hardik699/Hanuram1-sub001/internal/repository/mongodb"
)

// ActorKey is the gin context key holding the acting user id.
const ActorKey = "actor"

// Actor copies the X-User-ID header into the request context. Authentication
// happens upstream; this only makes the caller explicit to handlers.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader("X-User-ID"); id != "" {
			c.Set(ActorKey, id)
		}
		c.Next()
	}
}

func writeError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, costing.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, mongodb.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, logger *zap.Logger, err error) {
	logger.Warn("invalid request body", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}
