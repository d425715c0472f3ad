package session

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/openpulse/console-go/internal/types"
)

// fakeAuthAPI counts backend calls so tests can assert zero-network paths.
type fakeAuthAPI struct {
	loginCalls int32
	meCalls    int32
	loginErr   error
	meErr      error
	user       types.Principal
	token      string
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (*types.LoginResponse, error) {
	atomic.AddInt32(&f.loginCalls, 1)
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &types.LoginResponse{Token: f.token, User: f.user}, nil
}

func (f *fakeAuthAPI) Me(ctx context.Context) (*types.Principal, error) {
	atomic.AddInt32(&f.meCalls, 1)
	if f.meErr != nil {
		return nil, f.meErr
	}
	u := f.user
	return &u, nil
}

func TestLogin_Success(t *testing.T) {
	api := &fakeAuthAPI{token: "tok-1", user: types.Principal{ID: "u1", Email: "op@example.com", Role: "admin"}}
	storage := NewMemoryStorage()
	s := New(storage, api, nil)

	if err := s.Login(context.Background(), "op@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if s.Status() != StatusAuthenticated {
		t.Fatalf("status = %v, want authenticated", s.Status())
	}
	if s.Token() != "tok-1" {
		t.Fatalf("token = %q", s.Token())
	}

	// Credentials were persisted.
	st, err := storage.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Token != "tok-1" || st.User == nil || st.User.Email != "op@example.com" {
		t.Fatalf("persisted state %+v", st)
	}
}

func TestLogin_FailureClearsSession(t *testing.T) {
	api := &fakeAuthAPI{loginErr: errors.New("invalid credentials")}
	s := New(NewMemoryStorage(), api, nil)

	if err := s.Login(context.Background(), "op@example.com", "wrong"); err == nil {
		t.Fatal("expected login error")
	}
	if s.Status() != StatusUnauthenticated {
		t.Fatalf("status = %v, want unauthenticated", s.Status())
	}
	if s.Token() != "" {
		t.Fatalf("token should be cleared, got %q", s.Token())
	}
}

func TestCheckAuth_NoTokenMakesNoNetworkCall(t *testing.T) {
	api := &fakeAuthAPI{}
	s := New(NewMemoryStorage(), api, nil)

	if got := s.CheckAuth(context.Background()); got != StatusUnauthenticated {
		t.Fatalf("CheckAuth = %v, want unauthenticated", got)
	}
	if n := atomic.LoadInt32(&api.meCalls); n != 0 {
		t.Fatalf("Me called %d times for empty token, want 0", n)
	}
}

func TestCheckAuth_ValidToken(t *testing.T) {
	storage := NewMemoryStorage()
	_ = storage.Save(State{Token: "tok-1", User: &types.Principal{ID: "u1"}})
	api := &fakeAuthAPI{user: types.Principal{ID: "u1", Email: "op@example.com"}}
	s := New(storage, api, nil)

	if got := s.CheckAuth(context.Background()); got != StatusAuthenticated {
		t.Fatalf("CheckAuth = %v, want authenticated", got)
	}
	snap := s.Snapshot()
	if !snap.IsAuthenticated || snap.User == nil || snap.User.Email != "op@example.com" {
		t.Fatalf("snapshot %+v", snap)
	}
}

func TestCheckAuth_InvalidTokenTearsDown(t *testing.T) {
	storage := NewMemoryStorage()
	_ = storage.Save(State{Token: "stale", User: &types.Principal{ID: "u1"}})
	api := &fakeAuthAPI{meErr: errors.New("unauthorized")}

	var navs int32
	s := New(storage, api, func(route string) { atomic.AddInt32(&navs, 1) })

	if got := s.CheckAuth(context.Background()); got != StatusUnauthenticated {
		t.Fatalf("CheckAuth = %v, want unauthenticated", got)
	}
	if s.Token() != "" {
		t.Fatal("token should be cleared")
	}
	// Navigation belongs to the 401 handler, never to CheckAuth.
	if navs != 0 {
		t.Fatalf("CheckAuth navigated %d times, want 0", navs)
	}
	st, _ := storage.Load()
	if st.Token != "" {
		t.Fatalf("persisted token should be cleared, got %q", st.Token)
	}
}

func TestLogout_ClearsAndNavigates(t *testing.T) {
	storage := NewMemoryStorage()
	_ = storage.Save(State{Token: "tok-1", User: &types.Principal{ID: "u1"}})

	var gotRoute string
	s := New(storage, &fakeAuthAPI{}, func(route string) { gotRoute = route })
	s.Logout()

	if s.Token() != "" || s.Status() != StatusUnauthenticated {
		t.Fatalf("session not cleared: token=%q status=%v", s.Token(), s.Status())
	}
	if gotRoute != LoginRoute {
		t.Fatalf("navigated to %q, want %q", gotRoute, LoginRoute)
	}
}

func TestExpireSession_ConcurrentCallsNavigateOnce(t *testing.T) {
	storage := NewMemoryStorage()
	_ = storage.Save(State{Token: "tok-1", User: &types.Principal{ID: "u1"}})

	var navs int32
	s := New(storage, &fakeAuthAPI{}, func(route string) { atomic.AddInt32(&navs, 1) })

	const racers = 16
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.ExpireSession()
		}()
	}
	wg.Wait()

	if n := atomic.LoadInt32(&navs); n != 1 {
		t.Fatalf("%d concurrent expirations navigated %d times, want 1", racers, n)
	}
	if s.Status() != StatusUnauthenticated {
		t.Fatalf("status = %v, want unauthenticated", s.Status())
	}
}

func TestClearAuth_NeverNavigates(t *testing.T) {
	var navs int32
	s := New(NewMemoryStorage(), &fakeAuthAPI{}, func(route string) { atomic.AddInt32(&navs, 1) })
	_ = s.Login(context.Background(), "op@example.com", "secret")

	s.ClearAuth()
	if navs != 0 {
		t.Fatalf("ClearAuth navigated %d times, want 0", navs)
	}
	if s.Token() != "" {
		t.Fatal("token should be cleared")
	}
}

func TestFileStorage_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStorage(dir)

	st, err := fs.Load()
	if err != nil {
		t.Fatalf("Load on empty dir: %v", err)
	}
	if st.Token != "" {
		t.Fatalf("fresh storage should be empty, got %+v", st)
	}

	want := State{Token: "tok-1", User: &types.Principal{ID: "u1", Email: "op@example.com"}}
	if err := fs.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := fs.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Token != want.Token || got.User == nil || got.User.ID != "u1" {
		t.Fatalf("loaded %+v, want %+v", got, want)
	}

	if err := fs.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := fs.Clear(); err != nil {
		t.Fatalf("Clear on missing file: %v", err)
	}
	got, _ = fs.Load()
	if got.Token != "" {
		t.Fatalf("state survived Clear: %+v", got)
	}
}

func TestFileStorage_CorruptDocumentIsEmptySession(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStorage(dir)
	if err := fs.Save(State{Token: "tok-1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// Truncate the document mid-write.
	if err := os.WriteFile(fs.path, []byte(`{"token":"tok`), 0o600); err != nil {
		t.Fatalf("corrupting file: %v", err)
	}
	st, err := fs.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Token != "" || st.User != nil {
		t.Fatalf("corrupt document should read as empty, got %+v", st)
	}
}

func TestSnapshot_LoadingStates(t *testing.T) {
	s := New(NewMemoryStorage(), &fakeAuthAPI{}, nil)
	if snap := s.Snapshot(); !snap.IsLoading {
		t.Fatal("StatusUnknown should report loading")
	}
	_ = s.Login(context.Background(), "op@example.com", "secret")
	if snap := s.Snapshot(); snap.IsLoading {
		t.Fatal("authenticated session should not report loading")
	}
}
