package httpc

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// TokenSource supplies the current bearer token. An empty string means the
// request goes out unauthenticated and the server decides the rejection.
type TokenSource interface {
	Token() string
}

// bearerTransport injects the session token into every outbound request.
// The request is cloned first so retried requests never see a stale header.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	if tok := t.tokens.Token(); tok != "" {
		cloned.Header.Set("Authorization", "Bearer "+tok)
	}
	return t.base.RoundTrip(cloned)
}

// requestIDTransport stamps each request with an X-Request-ID so backend
// logs can be correlated with console operations.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("X-Request-ID") == "" {
		cloned := req.Clone(req.Context())
		cloned.Header.Set("X-Request-ID", uuid.NewString())
		return t.base.RoundTrip(cloned)
	}
	return t.base.RoundTrip(req)
}

// debugTransport dumps full request/response traffic. It is only installed
// when debug logging is requested; dumps include headers and bodies, so
// keep this out of production environments.
type debugTransport struct {
	base http.RoundTripper
}

func (t *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if dump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(dump)).Msg("HTTP request")
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(dump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether HTTP debug dumps are enabled, via
// either CONSOLE_DEBUG=true or the general DEBUG=true.
func debugLoggingRequested() bool {
	return os.Getenv("CONSOLE_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
