package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/openpulse/console-go/internal/types"
)

// LoginRoute is where expired or logged-out sessions are sent.
const LoginRoute = "/login"

// Status is the auth state machine's current state.
type Status int

const (
	// StatusUnknown covers the window between process start and the first
	// CheckAuth; guards render a loading state rather than trusting it.
	StatusUnknown Status = iota
	StatusChecking
	StatusAuthenticated
	StatusUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusChecking:
		return "checking"
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time view of the session for consumers (guards,
// CLI output). IsLoading and IsAuthenticated are derived, never stored.
type Snapshot struct {
	Token           string
	User            *types.Principal
	IsAuthenticated bool
	IsLoading       bool
}

// AuthAPI is the slice of the backend surface the store needs. The console
// wires this to the CMS endpoint module; tests substitute fakes.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*types.LoginResponse, error)
	Me(ctx context.Context) (*types.Principal, error)
}

// Navigator forces the embedding UI to a route. The default is a no-op so
// headless use (CLI, tests) works without wiring one.
type Navigator func(route string)

// Store owns the process's single session. All mutation funnels through its
// methods; the HTTP layer only reads the token via Token().
type Store struct {
	mu       sync.Mutex
	token    string
	user     *types.Principal
	status   Status
	storage  Storage
	api      AuthAPI
	navigate Navigator
}

// New loads any persisted credentials and returns a store in StatusUnknown.
// Call CheckAuth once at process start to validate what was loaded.
func New(storage Storage, api AuthAPI, navigate Navigator) *Store {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	if navigate == nil {
		navigate = func(string) {}
	}
	s := &Store{storage: storage, api: api, navigate: navigate, status: StatusUnknown}
	st, err := storage.Load()
	if err != nil {
		log.Warn().Err(err).Msg("session: failed to load persisted state")
		return s
	}
	s.token, s.user = st.Token, st.User
	return s
}

// Token implements httpc.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Snapshot returns the current derived session view.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Token:           s.token,
		User:            s.user,
		IsAuthenticated: s.status == StatusAuthenticated,
		IsLoading:       s.status == StatusUnknown || s.status == StatusChecking,
	}
}

// Status returns the current state-machine state.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Login authenticates and stores the resulting credentials. On failure the
// store lands in StatusUnauthenticated and the error is returned for the
// caller to present inline.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	s.status = StatusChecking
	s.mu.Unlock()

	resp, err := s.api.Login(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.clearLocked()
		return err
	}
	s.token = resp.Token
	user := resp.User
	s.user = &user
	s.status = StatusAuthenticated
	s.persistLocked()
	loginsTotal.Inc()
	return nil
}

// CheckAuth validates held credentials against the backend and returns the
// resulting status. With no token it resolves immediately, making zero
// network calls. Any validation failure clears the session; the 401 handler
// owns navigation, so CheckAuth itself never redirects.
func (s *Store) CheckAuth(ctx context.Context) Status {
	s.mu.Lock()
	if s.token == "" {
		s.clearLocked()
		status := s.status
		s.mu.Unlock()
		return status
	}
	s.status = StatusChecking
	s.mu.Unlock()

	user, err := s.api.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		log.Debug().Err(err).Msg("session: token validation failed")
		s.clearLocked()
		s.persistLocked()
		return s.status
	}
	s.user = user
	s.status = StatusAuthenticated
	s.persistLocked()
	return s.status
}

// Logout clears the session and navigates to the login entry point.
func (s *Store) Logout() {
	s.mu.Lock()
	s.clearLocked()
	s.persistLocked()
	s.mu.Unlock()
	s.navigate(LoginRoute)
}

// ClearAuth clears the session without navigating. The 401 handler uses
// ExpireSession instead, which performs its own single navigation.
func (s *Store) ClearAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
	s.persistLocked()
}

// ExpireSession is the 401 teardown path: clear credentials and navigate to
// login. Concurrent calls collapse to a single navigation; the state
// transition decides who navigates, so two racing 401s cannot both redirect.
func (s *Store) ExpireSession() {
	s.mu.Lock()
	alreadyCleared := s.token == "" && s.user == nil && s.status == StatusUnauthenticated
	s.clearLocked()
	s.persistLocked()
	s.mu.Unlock()

	if !alreadyCleared {
		teardownsTotal.Inc()
		s.navigate(LoginRoute)
	}
}

// RedirectToLogin triggers navigation without touching session state; the
// auth guard uses it for unauthenticated renders.
func (s *Store) RedirectToLogin() {
	s.navigate(LoginRoute)
}

// clearLocked resets credentials and lands in StatusUnauthenticated.
// Callers hold s.mu.
func (s *Store) clearLocked() {
	s.token = ""
	s.user = nil
	s.status = StatusUnauthenticated
}

// persistLocked writes {token,user} through storage. Persistence failures
// are logged, not surfaced; the in-memory session stays authoritative.
func (s *Store) persistLocked() {
	var err error
	if s.token == "" && s.user == nil {
		err = s.storage.Clear()
	} else {
		err = s.storage.Save(State{Token: s.token, User: s.user})
	}
	if err != nil {
		log.Warn().Err(err).Msg("session: failed to persist state")
	}
}
