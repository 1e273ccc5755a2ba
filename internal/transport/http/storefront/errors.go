package storefront

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/domain"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session"
)

// mapError translates domain sentinel errors into an HTTP status and a
// stable error code. Unknown errors become 500.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, context.Canceled):
		return 499, "request_canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded"
	}

	// Not found
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound, "session_not_found"
	case errors.Is(err, catalog.ErrProductNotFound):
		return http.StatusNotFound, "product_not_found"
	}

	return http.StatusInternalServerError, "internal"
}

func (h *Handler) fail(c *gin.Context, err error) {
	code, name := mapError(err)
	if code >= http.StatusInternalServerError {
		h.logger.Error("request failed", requestFields(c, err)...)
		c.JSON(code, gin.H{"error": name})
		return
	}
	c.JSON(code, gin.H{"error": name, "msg": err.Error()})
}
