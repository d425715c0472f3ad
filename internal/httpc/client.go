package httpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client performs authenticated JSON calls against one backend base URL.
// The console holds two of these ("cms" and "crm") sharing a single token
// source and a single error-handler registry, so a 401 from either backend
// tears down the same session.
type Client struct {
	name     string
	baseURL  string
	http     *http.Client
	handlers *ErrorHandlers
}

// Config tunes a Client at construction.
type Config struct {
	// Timeout bounds each round-trip end to end. Defaults to 30s.
	Timeout time.Duration
	// Debug installs the request/response dump transport unconditionally;
	// the CONSOLE_DEBUG/DEBUG env variables enable it without code changes.
	Debug bool
	// Transport replaces the base transport (tests use the httptest server's).
	Transport http.RoundTripper
}

// New constructs a Client for the named backend. tokens may be nil for an
// unauthenticated client; handlers may be nil, in which case a registry with
// log-only defaults is created.
func New(name, baseURL string, tokens TokenSource, handlers *ErrorHandlers, cfg Config) *Client {
	if baseURL == "" {
		panic("httpc: baseURL cannot be empty")
	}
	if handlers == nil {
		handlers = NewErrorHandlers()
	}

	base := cfg.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	var rt http.RoundTripper = base
	if cfg.Debug || debugLoggingRequested() {
		rt = &debugTransport{base: rt}
	}
	rt = &requestIDTransport{base: rt}
	if tokens != nil {
		rt = &bearerTransport{base: rt, tokens: tokens}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		name:     name,
		baseURL:  strings.TrimRight(baseURL, "/"),
		handlers: handlers,
		http:     &http.Client{Timeout: timeout, Transport: rt},
	}
}

// Name returns the backend name the client was constructed with.
func (c *Client) Name() string { return c.name }

// Handlers exposes the error-handler registry for registration.
func (c *Client) Handlers() *ErrorHandlers { return c.handlers }

// do issues one request and returns the raw response body on 2xx. Every
// failure comes back as a single *APIError; a 401 or 403 dispatches the
// matching handler synchronously before the error is returned.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Message: err.Error(), Status: http.StatusInternalServerError}
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return nil, &APIError{Message: err.Error(), Status: http.StatusInternalServerError}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// No response at all: network failure, timeout, cancelled context.
		apiErr := &APIError{Message: err.Error(), Status: http.StatusInternalServerError}
		c.handlers.dispatch(apiErr)
		return nil, apiErr
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		apiErr := &APIError{Message: err.Error(), Status: http.StatusInternalServerError}
		c.handlers.dispatch(apiErr)
		return nil, apiErr
	}

	if resp.StatusCode >= 400 {
		apiErr := normalizeError(resp.StatusCode, data)
		c.handlers.dispatch(apiErr)
		return nil, apiErr
	}
	return data, nil
}

// normalizeError builds the APIError for a non-2xx response. The server's
// message field wins; otherwise the HTTP status text; otherwise a generic
// string.
func normalizeError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	_ = json.Unmarshal(body, &payload)

	msg := payload.Message
	if msg == "" {
		msg = http.StatusText(status)
	}
	if msg == "" {
		msg = "an error occurred"
	}
	return &APIError{Message: msg, Status: status, Code: payload.Code}
}

// Get issues a GET for path with optional query parameters (a struct or map
// whose zero-valued fields are omitted) and decodes the payload into T.
func Get[T any](ctx context.Context, c *Client, path string, params any) (T, error) {
	var zero T
	q, err := queryValues(params)
	if err != nil {
		return zero, &APIError{Message: err.Error(), Status: http.StatusInternalServerError}
	}
	data, err := c.do(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return zero, err
	}
	return decode[T](data)
}

func Post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return send[T](ctx, c, http.MethodPost, path, body)
}

func Put[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return send[T](ctx, c, http.MethodPut, path, body)
}

func Patch[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return send[T](ctx, c, http.MethodPatch, path, body)
}

// Delete issues a DELETE and discards any response body.
func Delete(ctx context.Context, c *Client, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

func send[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T
	data, err := c.do(ctx, method, path, nil, body)
	if err != nil {
		return zero, err
	}
	return decode[T](data)
}

func decode[T any](data []byte) (T, error) {
	var out T
	if _, ok := any(out).(struct{}); ok {
		return out, nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, &APIError{Message: err.Error(), Status: http.StatusInternalServerError}
	}
	return out, nil
}

// queryValues flattens a params struct (or map) into URL query values.
// Zero-valued fields never appear, so equivalent filter sets encode to the
// same request regardless of how they were built.
func queryValues(params any) (url.Values, error) {
	if params == nil {
		return nil, nil
	}
	b, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	if len(m) == 0 {
		return nil, nil
	}
	vals := url.Values{}
	for k, v := range m {
		switch t := v.(type) {
		case nil:
			continue
		case string:
			vals.Set(k, t)
		case bool:
			vals.Set(k, strconv.FormatBool(t))
		case float64:
			vals.Set(k, strconv.FormatFloat(t, 'f', -1, 64))
		default:
			nested, err := json.Marshal(t)
			if err != nil {
				return nil, err
			}
			vals.Set(k, string(nested))
		}
	}
	return vals, nil
}
