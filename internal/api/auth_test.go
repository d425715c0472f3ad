package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/openpulse/console-go/internal/httpc"
	"github.com/openpulse/console-go/internal/types"
)

func TestLogin(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/admin/login" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"id":"u1","email":"op@example.com","role":"admin"}}`))
	}))

	resp, err := Login(context.Background(), c, types.LoginRequest{Email: "op@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.Token != "tok-1" || resp.User.ID != "u1" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestLogin_InvalidEmailRejectedLocally(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid request must not reach the backend")
	}))

	if _, err := Login(context.Background(), c, types.LoginRequest{Email: "bad", Password: "secret"}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestMe_Unauthorized(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	}))

	_, err := Me(context.Background(), c)
	if !httpc.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}
