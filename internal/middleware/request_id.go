package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader carries the request correlation id in both directions.
	RequestIDHeader = echo.HeaderXRequestID

	// RequestIDKey stores the id in the echo context.
	RequestIDKey = "request_id"

	// MaxRequestIDLength bounds an incoming id before it is trusted.
	MaxRequestIDLength = 128
)

// RequestID returns a middleware that gives every request a correlation id.
//
// Behavior:
//   - An incoming X-Request-ID is reused when ValidRequestID accepts it.
//   - Otherwise (absent, too long, or carrying characters outside
//     [A-Za-z0-9._:-]) a new UUID replaces it.
//   - The id is stored on the echo context and set on the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if !ValidRequestID(requestID) {
				requestID = uuid.New().String()
			}

			c.Set(RequestIDKey, requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}

// ValidRequestID reports whether id is non-empty, at most MaxRequestIDLength
// bytes and made only of letters, digits, '.', '_', ':' and '-'.
func ValidRequestID(id string) bool {
	if id == "" || len(id) > MaxRequestIDLength {
		return false
	}

	for i := 0; i < len(id); i++ {
		switch ch := id[i]; {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		case ch == '.', ch == '_', ch == ':', ch == '-':
		default:
			return false
		}
	}
	return true
}

// GetRequestID returns the request id, or "" when RequestID did not run.
func GetRequestID(c echo.Context) string {
	if requestID, ok := c.Get(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
