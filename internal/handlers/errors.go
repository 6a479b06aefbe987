package handlers

import (
	"errors"
	"net/http"
	"strconv"

	dom "github.com/Thonkla/PlaceMate/internal/domain"
	"github.com/Thonkla/PlaceMate/internal/logger"
	"github.com/Thonkla/PlaceMate/internal/metrics"

	"github.com/gin-gonic/gin"
)

// responder writes error bodies as {"error": "..."} with the status of the error kind.
type responder struct {
	log     logger.Logger
	metrics *metrics.Metrics
}

// statusOf maps an error kind to its HTTP status; 0 means internal.
func statusOf(err error) int {
	switch {
	case errors.Is(err, dom.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, dom.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, dom.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, dom.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, dom.ErrSyncFailed):
		return http.StatusInternalServerError
	}
	return 0
}

// fail writes err. Internal errors are logged and hidden behind internalMsg.
func (r responder) fail(c *gin.Context, op string, err error, internalMsg string) {
	if status := statusOf(err); status != 0 {
		if status == http.StatusInternalServerError {
			c.JSON(status, gin.H{"error": internalMsg})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	r.metrics.Error(op)
	r.log.Error("Request failed", "operation", op, "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
}

func (r responder) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}
