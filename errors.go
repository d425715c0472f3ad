package console

import "github.com/openpulse/console-go/internal/httpc"

// APIError is the normalized error every failed backend call is reduced to.
type APIError = httpc.APIError

// Handler reacts to an unauthorized or forbidden response.
type Handler = httpc.Handler

// Handlers carries replacement handlers for SetErrorHandlers.
type Handlers = httpc.Handlers

// IsUnauthorized reports whether err is a 401 APIError.
func IsUnauthorized(err error) bool { return httpc.IsUnauthorized(err) }

// IsForbidden reports whether err is a 403 APIError.
func IsForbidden(err error) bool { return httpc.IsForbidden(err) }

// IsNotFound reports whether err is a 404 APIError.
func IsNotFound(err error) bool { return httpc.IsNotFound(err) }
