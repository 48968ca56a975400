// Package handler exposes the record services and reporting views over
// HTTP. All errors surface as a JSON {"error": message} body; the mapping
// from domain errors to status codes lives here and nowhere else.
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/lunchledger/internal/service"
	"github.com/mmynk/lunchledger/internal/storage"
)

// errSpec describes the endpoint-specific responses for the error classes
// that vary by endpoint. Validation errors always come back 400 with the
// service's message; everything unrecognized is a 500 with the fallback
// message and no internal detail.
type errSpec struct {
	notFound       string // 404 message; generic if empty
	conflict       string // conflict message; falls through to fallback if empty
	conflictStatus int    // status for conflict responses
	fallback       string // 500 message
}

func respondError(c *gin.Context, err error, spec errSpec) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.Is(err, storage.ErrNotFound):
		msg := spec.notFound
		if msg == "" {
			msg = "Not found"
		}
		c.JSON(http.StatusNotFound, gin.H{"error": msg})
	case errors.Is(err, storage.ErrConflict) && spec.conflict != "":
		c.JSON(spec.conflictStatus, gin.H{"error": spec.conflict})
	default:
		slog.Error("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": spec.fallback})
	}
}

// badRequest rejects a body that does not decode into the expected shape.
func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}
