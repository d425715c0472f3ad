// Package console is the client SDK for the platform administrative
// console. It speaks to two REST backends (the content platform and the
// CRM) through a shared session, normalizes every failure into a single
// APIError shape, and caches reads behind a keyed TTL cache whose entries
// are invalidated or overwritten by mutations.
package console

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/openpulse/console-go/internal/api"
	"github.com/openpulse/console-go/internal/httpc"
	"github.com/openpulse/console-go/internal/querycache"
	"github.com/openpulse/console-go/internal/session"
	"github.com/openpulse/console-go/internal/types"
)

// Config is read from the environment with the CONSOLE_ prefix; functional
// options override it.
type Config struct {
	CMSBaseURL  string        `envconfig:"CMS_BASE_URL" default:"http://localhost:8080"`
	CRMBaseURL  string        `envconfig:"CRM_BASE_URL" default:"http://localhost:8081"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	// StateDir holds the persisted session document. Defaults to
	// platform-console under the user config directory.
	StateDir string `envconfig:"STATE_DIR"`
}

// Console is the composition root: one session, two backend clients, one
// cache. A process runs exactly one Console.
type Console struct {
	cfg      Config
	session  *session.Store
	cache    *querycache.Store
	handlers *httpc.ErrorHandlers
	cms      *httpc.Client
	crm      *httpc.Client

	// construction scratch, set by options before wiring
	storage   session.Storage
	navigate  session.Navigator
	transport http.RoundTripper
	debug     bool
	cacheOpts []querycache.Option

	closedOnce uint32
}

// authAPI adapts the CMS endpoint module to the session store. Resolution
// happens at call time, after the client is wired.
type authAPI struct{ c *Console }

func (a authAPI) Login(ctx context.Context, email, password string) (*types.LoginResponse, error) {
	return api.Login(ctx, a.c.cms, types.LoginRequest{Email: email, Password: password})
}

func (a authAPI) Me(ctx context.Context) (*types.Principal, error) {
	return api.Me(ctx, a.c.cms)
}

// New builds a Console from the environment and the given options. It does
// no I/O beyond loading the persisted session; call CheckAuth once at
// startup to validate what was loaded.
func New(opts ...Option) (*Console, error) {
	var cfg Config
	if err := envconfig.Process("console", &cfg); err != nil {
		return nil, err
	}

	c := &Console{cfg: cfg, handlers: httpc.NewErrorHandlers()}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.storage == nil {
		dir := c.cfg.StateDir
		if dir == "" {
			base, err := os.UserConfigDir()
			if err != nil {
				base = os.TempDir()
			}
			dir = filepath.Join(base, "platform-console")
		}
		c.storage = session.NewFileStorage(dir)
	}

	c.session = session.New(c.storage, authAPI{c}, c.navigate)

	hcfg := httpc.Config{Timeout: c.cfg.HTTPTimeout, Debug: c.debug, Transport: c.transport}
	c.cms = httpc.New("cms", c.cfg.CMSBaseURL, c.session, c.handlers, hcfg)
	c.crm = httpc.New("crm", c.cfg.CRMBaseURL, c.session, c.handlers, hcfg)

	// Transport-level defaults: unauthorized tears the session down and
	// redirects; forbidden is notification-only and never touches the
	// session. The embedding UI overrides these via SetErrorHandlers.
	c.handlers.Set(httpc.Handlers{
		On401: func(e *httpc.APIError) { c.session.ExpireSession() },
		On403: func(e *httpc.APIError) {
			log.Warn().Str("message", e.Message).Msg("permission denied")
		},
	})

	c.cache = querycache.New(c.cacheOpts...)
	return c, nil
}

// SetErrorHandlers replaces the transport-level defaults with UI-level
// reactions (redirect, toast). Nil slots keep the current handler; the last
// registration wins.
func (c *Console) SetErrorHandlers(hs Handlers) { c.handlers.Set(hs) }

// Login authenticates against the CMS backend and stores the session.
// Failures surface to the caller for inline display.
func (c *Console) Login(ctx context.Context, email, password string) error {
	return c.session.Login(ctx, email, password)
}

// CheckAuth validates persisted credentials. With no stored token it
// resolves without any network call. Invoke once at process start.
func (c *Console) CheckAuth(ctx context.Context) AuthStatus {
	return c.session.CheckAuth(ctx)
}

// Logout clears the session and navigates to the login entry point.
func (c *Console) Logout() { c.session.Logout() }

// ClearAuth clears the session without navigating.
func (c *Console) ClearAuth() { c.session.ClearAuth() }

// Session returns the current derived session view.
func (c *Console) Session() Session { return c.session.Snapshot() }

// Close releases background cache goroutines. Safe to call multiple times.
func (c *Console) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.cache.Close()
	return nil
}
