package httpc

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

// Handler reacts to a failed response before the error is returned to the
// caller. Handlers run synchronously on the calling goroutine.
type Handler func(*APIError)

// Handlers carries replacement handlers for Set. Nil slots are left as-is,
// so callers can override one status without touching the other.
type Handlers struct {
	On401 Handler
	On403 Handler
}

// ErrorHandlers dispatches unauthorized/forbidden responses to pluggable
// reactions. One registry is shared by every backend client of a console
// instance; registration replaces a slot atomically and the last
// registration wins.
type ErrorHandlers struct {
	mu    sync.RWMutex
	on401 Handler
	on403 Handler
}

// NewErrorHandlers returns a registry with log-only defaults. The console
// composition root replaces these with session-aware handlers before any
// request is issued; the defaults only exist so a bare client never
// dereferences a nil handler.
func NewErrorHandlers() *ErrorHandlers {
	return &ErrorHandlers{
		on401: func(e *APIError) {
			log.Warn().Int("status", e.Status).Str("message", e.Message).Msg("unauthorized response")
		},
		on403: func(e *APIError) {
			log.Warn().Int("status", e.Status).Str("message", e.Message).Msg("forbidden response")
		},
	}
}

// Set installs the non-nil handlers from hs.
func (h *ErrorHandlers) Set(hs Handlers) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if hs.On401 != nil {
		h.on401 = hs.On401
	}
	if hs.On403 != nil {
		h.on403 = hs.On403
	}
}

// dispatch invokes the handler matching the error's status, if any. It is
// called exactly once per failed round-trip, before the error is returned.
func (h *ErrorHandlers) dispatch(e *APIError) {
	h.mu.RLock()
	on401, on403 := h.on401, h.on403
	h.mu.RUnlock()

	switch e.Status {
	case http.StatusUnauthorized:
		if on401 != nil {
			on401(e)
		}
	case http.StatusForbidden:
		if on403 != nil {
			on403(e)
		}
	}
}
