package ctxutil

import (
	"context"

	"userdir/api/response"
	"userdir/infrastructure/persistence"

	"github.com/gin-gonic/gin"
)

// WithRequestID the request context carrying the gin request id, for the
// application and storage layers.
func WithRequestID(ctx *gin.Context) context.Context {
	requestID := response.GetRequestID(ctx)
	return persistence.ContextWithRequestID(ctx.Request.Context(), requestID)
}
