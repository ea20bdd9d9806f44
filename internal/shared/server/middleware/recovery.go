package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"paperqa-backend/internal/shared/server/respond"
	"paperqa-backend/internal/shared/telemetry"
)

// Recovery converts panics into the standardized 500 response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			documentID, _ := c.Get("documentId")
			telemetry.Error("panic", map[string]any{
				"request_id":  RequestIDFromContext(c),
				"error":       rec,
				"stack":       string(debug.Stack()),
				"path":        c.Request.URL.Path,
				"method":      c.Request.Method,
				"document_id": documentID,
			})
			respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
		}()
		c.Next()
	}
}
