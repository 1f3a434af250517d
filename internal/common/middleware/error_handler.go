package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"paygate-onboarding-gateway/internal/common/errors"
	"paygate-onboarding-gateway/internal/common/logger"
)

// ErrorHandler recovers panics and renders them as typed internal errors.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := GetRequestID(c)

		logger.Error().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Interface("panic", recovered).
			Str("stack", string(debug.Stack())).
			Msg("Panic recovered")

		appErr := errors.New(errors.ErrCodeInternal, "Internal server error").
			WithRequestID(requestID).
			WithDetail("panic", fmt.Sprintf("%v", recovered))

		AbortWithAppError(c, appErr)
	})
}

// RequestID assigns every request an id, honoring one supplied by the caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Success   bool             `json:"success"`
	Error     *errors.AppError `json:"error"`
	Timestamp time.Time        `json:"timestamp"`
	RequestID string           `json:"request_id"`
}

// AbortWithAppError converts err to an AppError if needed and writes the
// error envelope. Handlers route every failure through here so nothing
// escapes as an unformatted 500.
func AbortWithAppError(c *gin.Context, err error) {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		appErr = errors.Wrap(err, errors.ErrCodeInternal, "Unexpected error")
	}

	requestID := GetRequestID(c)
	appErr.WithRequestID(requestID)

	logAppError(c, appErr)

	c.AbortWithStatusJSON(httpStatusFor(appErr), ErrorResponse{
		Success:   false,
		Error:     appErr,
		Timestamp: time.Now(),
		RequestID: requestID,
	})
}

func httpStatusFor(appErr *errors.AppError) int {
	switch appErr.Code {
	case errors.ErrCodeValidation, errors.ErrCodeBadRequest:
		return http.StatusBadRequest
	case errors.ErrCodeUnauthorized, errors.ErrCodeSessionNotFound:
		return http.StatusUnauthorized
	case errors.ErrCodeNotFound, errors.ErrCodeDraftNotFound, errors.ErrCodeResultNotFound:
		return http.StatusNotFound
	case errors.ErrCodeConflict, errors.ErrCodeSubmitInFlight:
		return http.StatusConflict
	case errors.ErrCodeCaptchaNotReady, errors.ErrCodeCaptchaFailed, errors.ErrCodeCacheError:
		return http.StatusServiceUnavailable
	case errors.ErrCodeUpstreamRejected, errors.ErrCodeUpstreamUnreachable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func logAppError(c *gin.Context, appErr *errors.AppError) {
	event := logger.Info()
	if appErr.IsInternal() {
		event = logger.Error()
	} else if appErr.Code == errors.ErrCodeUnauthorized {
		event = logger.Warn()
	}

	event.
		Str("request_id", GetRequestID(c)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("error_code", string(appErr.Code)).
		Str("error_message", appErr.Message).
		Err(appErr.Cause).
		Msg("Request failed")
}

// GetRequestID returns the id assigned by the RequestID middleware.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return "unknown"
}
