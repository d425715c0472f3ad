package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openpulse/console-go/internal/httpc"
	"github.com/openpulse/console-go/internal/types"
)

func newTestClient(t *testing.T, handler http.Handler) *httpc.Client {
	t.Helper()
	hs := httptest.NewServer(handler)
	t.Cleanup(hs.Close)
	return httpc.New("crm", hs.URL, nil, nil, httpc.Config{})
}

func TestListCustomers(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/admin/customers" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if got := r.URL.Query().Get("status"); got != "active" {
			t.Errorf("status query = %q, want active", got)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page query = %q, want 2", got)
		}
		_, _ = w.Write([]byte(`{
			"data":[{"id":"c1","name":"Acme","status":"active","created_at":"2025-01-01T00:00:00Z","updated_at":"2025-01-01T00:00:00Z"}],
			"total":1,"page":2,"limit":10,"total_pages":1
		}`))
	}))

	resp, err := ListCustomers(context.Background(), c, types.ListCustomersParams{Page: 2, Limit: 10, Status: types.CustomerActive})
	if err != nil {
		t.Fatalf("ListCustomers returned error: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].ID != "c1" || resp.Total != 1 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestCreateCustomer(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/admin/customers" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req types.CreateCustomerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		if req.Name != "Acme" || req.Email != "hi@acme.com" {
			t.Errorf("unexpected body %+v", req)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"c9","name":"Acme","email":"hi@acme.com","status":"lead","created_at":"2025-01-01T00:00:00Z","updated_at":"2025-01-01T00:00:00Z"}`))
	}))

	cust, err := CreateCustomer(context.Background(), c, types.CreateCustomerRequest{Name: "Acme", Email: "hi@acme.com"})
	if err != nil {
		t.Fatalf("CreateCustomer returned error: %v", err)
	}
	if cust.ID != "c9" || cust.Status != types.CustomerLead {
		t.Fatalf("unexpected customer %+v", cust)
	}
}

func TestCreateCustomer_RejectedLocally(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid request must not reach the backend")
	}))

	if _, err := CreateCustomer(context.Background(), c, types.CreateCustomerRequest{Email: "hi@acme.com"}); err == nil {
		t.Fatal("expected validation error for missing name")
	}
}

func TestAssignCustomerTags(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/admin/customers/c1/tags" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req types.AssignTagsRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if len(req.TagIDs) != 2 || req.TagIDs[0] != "t1" {
			t.Errorf("unexpected body %+v", req)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := AssignCustomerTags(context.Background(), c, "c1", []string{"t1", "t2"}); err != nil {
		t.Fatalf("AssignCustomerTags returned error: %v", err)
	}
}

func TestDeleteCustomer_NotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"customer not found"}`))
	}))

	err := DeleteCustomer(context.Background(), c, "missing")
	if !httpc.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
