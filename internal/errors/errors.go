package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/critique/client/internal/logger"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for critical
//     errors; these log and respond in one place
//   - Never call both logger.ErrorErr() and errors.InternalError() for
//     the same error
//
// For internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond

// standardized error response. The client's message extraction reads
// message first, then error.
type ErrorResponse struct {
	Error   string `json:"error"`             // error code (e.g., "bad_request")
	Message string `json:"message"`           // user-friendly message
	Details string `json:"details,omitempty"` // optional details
}

// standard error codes
const (
	CodeUnauthorized    = "unauthorized"
	CodeValidationError = "validation_error"
	CodeServerError     = "server_error"
	CodeBadRequest      = "bad_request"
	CodeTooManyRequests = "too_many_requests"
)

// returns a 401 unauthorized error
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "authentication required"
	}

	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error:   CodeUnauthorized,
		Message: message,
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "invalid request"
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	})
}

// returns a 400 bad request error for binding/validation failures
func ValidationError(c *gin.Context, err error) {
	message := "request validation failed"
	details := ""

	if err != nil {
		details = err.Error()
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: message,
		Details: details,
	})
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "rate limit exceeded"
	}

	c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Error:   CodeTooManyRequests,
		Message: message,
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	// log full error server-side with context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
	})
}
