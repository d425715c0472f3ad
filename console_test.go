package console

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/openpulse/console-go/internal/session"
)

// newTestConsole wires a Console against fake CMS and CRM backends with
// in-memory session storage and a counting navigator.
func newTestConsole(t *testing.T, cms, crm http.Handler, opts ...Option) (*Console, *int32) {
	t.Helper()
	if cms == nil {
		cms = http.NotFoundHandler()
	}
	if crm == nil {
		crm = http.NotFoundHandler()
	}
	cmsSrv := httptest.NewServer(cms)
	t.Cleanup(cmsSrv.Close)
	crmSrv := httptest.NewServer(crm)
	t.Cleanup(crmSrv.Close)

	var navs int32
	all := append([]Option{
		WithCMSBaseURL(cmsSrv.URL),
		WithCRMBaseURL(crmSrv.URL),
		WithoutPersistence(),
		WithNavigator(func(route string) { atomic.AddInt32(&navs, 1) }),
	}, opts...)

	c, err := New(all...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c, &navs
}

func loginHandler(token string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"` + token + `","user":{"id":"u1","email":"op@example.com","role":"admin"}}`))
	})
	mux.HandleFunc("/admin/me", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"u1","email":"op@example.com","role":"admin"}`))
	})
	return mux
}

func TestConsole_LoginAndSession(t *testing.T) {
	c, _ := newTestConsole(t, loginHandler("tok-1"), nil)

	if err := c.Login(context.Background(), "op@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	sess := c.Session()
	if !sess.IsAuthenticated || sess.Token != "tok-1" || sess.User.Email != "op@example.com" {
		t.Fatalf("unexpected session %+v", sess)
	}
}

func TestConsole_CreateThenListRefetches(t *testing.T) {
	var mu sync.Mutex
	customers := []map[string]any{{"id": "c1", "name": "Acme"}}
	var listCalls int32

	crm := http.NewServeMux()
	crm.HandleFunc("/admin/customers", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			atomic.AddInt32(&listCalls, 1)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": customers, "total": len(customers), "page": 1, "limit": 10, "total_pages": 1,
			})
		case http.MethodPost:
			created := map[string]any{"id": fmt.Sprintf("c%d", len(customers)+1), "name": "Globex"}
			customers = append(customers, created)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(created)
		}
	})

	c, _ := newTestConsole(t, loginHandler("tok-1"), crm)
	if err := c.Login(context.Background(), "op@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	ctx := context.Background()
	first, err := c.Customers().List(ctx, ListCustomersParams{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(first.Data) != 1 {
		t.Fatalf("initial list has %d customers, want 1", len(first.Data))
	}

	// A second read inside the freshness window is a cache hit.
	if _, err := c.Customers().List(ctx, ListCustomersParams{}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if n := atomic.LoadInt32(&listCalls); n != 1 {
		t.Fatalf("backend saw %d list calls before mutation, want 1", n)
	}

	if _, err := c.Customers().Create(ctx, CreateCustomerRequest{Name: "Globex"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	after, err := c.Customers().List(ctx, ListCustomersParams{})
	if err != nil {
		t.Fatalf("List after create: %v", err)
	}
	if len(after.Data) != 2 {
		t.Fatalf("list after create has %d customers, want 2", len(after.Data))
	}
	if n := atomic.LoadInt32(&listCalls); n != 2 {
		t.Fatalf("backend saw %d list calls, want 2", n)
	}
}

func TestConsole_StageUpdateServesDetailFromCache(t *testing.T) {
	var detailGets int32
	crm := http.NewServeMux()
	crm.HandleFunc("/admin/deals/d1", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&detailGets, 1)
		_, _ = w.Write([]byte(`{"id":"d1","name":"Big deal","customer_id":"c1","stage":"proposal","currency":"USD","created_at":"2025-01-01T00:00:00Z","updated_at":"2025-01-01T00:00:00Z"}`))
	})
	crm.HandleFunc("/admin/deals/d1/stage", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		_, _ = w.Write([]byte(`{"id":"d1","name":"Big deal","customer_id":"c1","stage":"won","currency":"USD","created_at":"2025-01-01T00:00:00Z","updated_at":"2025-01-02T00:00:00Z"}`))
	})

	c, _ := newTestConsole(t, loginHandler("tok-1"), crm)
	if err := c.Login(context.Background(), "op@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	ctx := context.Background()
	deal, err := c.Deals().Get(ctx, "d1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if deal.Stage != "proposal" {
		t.Fatalf("stage = %q, want proposal", deal.Stage)
	}

	if _, err := c.Deals().UpdateStage(ctx, "d1", "won"); err != nil {
		t.Fatalf("UpdateStage: %v", err)
	}

	// The mutation response became the cached detail; no extra GET happens.
	got, err := c.Deals().Get(ctx, "d1")
	if err != nil {
		t.Fatalf("Get after stage update: %v", err)
	}
	if got.Stage != "won" {
		t.Fatalf("stage = %q after update, want won", got.Stage)
	}
	if n := atomic.LoadInt32(&detailGets); n != 1 {
		t.Fatalf("backend saw %d detail GETs, want 1", n)
	}
}

func TestConsole_Concurrent401sNavigateOnce(t *testing.T) {
	crm := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	})

	storage := session.NewMemoryStorage()
	_ = storage.Save(session.State{Token: "stale-token"})
	c, navs := newTestConsole(t, loginHandler("tok-1"), crm, WithSessionStorage(storage))

	const readers = 8
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Distinct keys so every read reaches the backend.
			_, err := c.Customers().Get(context.Background(), fmt.Sprintf("c%d", i))
			if !IsUnauthorized(err) {
				t.Errorf("reader %d: expected 401, got %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	if n := atomic.LoadInt32(navs); n != 1 {
		t.Fatalf("%d concurrent 401s navigated %d times, want 1", readers, n)
	}
	if sess := c.Session(); sess.Token != "" || sess.IsAuthenticated {
		t.Fatalf("session survived teardown: %+v", sess)
	}
}

func TestConsole_SetErrorHandlersOverridesTeardown(t *testing.T) {
	crm := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"nope"}`))
	})

	c, navs := newTestConsole(t, loginHandler("tok-1"), crm)
	if err := c.Login(context.Background(), "op@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	var custom int32
	c.SetErrorHandlers(Handlers{On401: func(e *APIError) { atomic.AddInt32(&custom, 1) }})

	if _, err := c.Customers().Get(context.Background(), "c1"); !IsUnauthorized(err) {
		t.Fatalf("expected 401, got %v", err)
	}
	if custom != 1 {
		t.Fatalf("custom handler ran %d times, want 1", custom)
	}
	// The default teardown was replaced, so the session stays intact and no
	// navigation fired.
	if n := atomic.LoadInt32(navs); n != 0 {
		t.Fatalf("navigated %d times with custom handler, want 0", n)
	}
	if sess := c.Session(); !sess.IsAuthenticated {
		t.Fatal("custom 401 handler should leave the session alone")
	}
}

func TestGuard_Decisions(t *testing.T) {
	c, navs := newTestConsole(t, loginHandler("tok-1"), nil)

	// Before any auth check the session state is unknown.
	if d := c.Guard().Check(); d != GuardLoading {
		t.Fatalf("decision = %v before check, want loading", d)
	}

	// No stored token: CheckAuth resolves unauthenticated without network.
	if st := c.CheckAuth(context.Background()); st != AuthUnauthenticated {
		t.Fatalf("CheckAuth = %v, want unauthenticated", st)
	}
	if d := c.Guard().Check(); d != GuardRedirect {
		t.Fatalf("decision = %v, want redirect", d)
	}
	if n := atomic.LoadInt32(navs); n != 1 {
		t.Fatalf("guard navigated %d times, want 1", n)
	}

	if err := c.Login(context.Background(), "op@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if d := c.Guard().Check(); d != GuardAllow {
		t.Fatalf("decision = %v after login, want allow", d)
	}
}

func TestConsole_ForbiddenDoesNotTouchSession(t *testing.T) {
	crm := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"insufficient permissions"}`))
	})

	c, navs := newTestConsole(t, loginHandler("tok-1"), crm)
	if err := c.Login(context.Background(), "op@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := c.Customers().Get(context.Background(), "c1"); !IsForbidden(err) {
		t.Fatalf("expected 403, got %v", err)
	}
	if sess := c.Session(); !sess.IsAuthenticated {
		t.Fatal("403 must not clear the session")
	}
	if n := atomic.LoadInt32(navs); n != 0 {
		t.Fatalf("403 navigated %d times, want 0", n)
	}
}

func TestConsole_CloseIsIdempotent(t *testing.T) {
	c, _ := newTestConsole(t, nil, nil)
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
