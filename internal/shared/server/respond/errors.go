package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"paperqa-backend/internal/shared/telemetry"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error sends a standardized error response.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if documentID, ok := c.Get("documentId"); ok {
		fields["document_id"] = documentID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// ProcessingFailed reports an unexpected failure behind the generic message
// clients see for any non-validation error.
func ProcessingFailed(c *gin.Context, err error) {
	if err != nil {
		telemetry.Error("processing.failed", map[string]any{
			"request_id": c.GetString("requestId"),
			"error":      err.Error(),
		})
	}
	Error(c, http.StatusInternalServerError, "processing_failed", "processing failed", nil)
}
