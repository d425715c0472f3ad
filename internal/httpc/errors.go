package httpc

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the single error shape every failed round-trip is reduced to
// before it reaches calling code. Message prefers the server-supplied
// message, then the transport error, then a generic fallback; Status is 500
// when no response was received at all.
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Code    string `json:"code,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// IsStatus reports whether err is an *APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

func IsUnauthorized(err error) bool { return IsStatus(err, http.StatusUnauthorized) }
func IsForbidden(err error) bool    { return IsStatus(err, http.StatusForbidden) }
func IsNotFound(err error) bool     { return IsStatus(err, http.StatusNotFound) }
