package console

import (
	"fmt"
	"net/http"
	"time"

	"github.com/openpulse/console-go/internal/session"
)

// Option configures a Console during construction in New. Options run after
// the environment is read and before any client is wired.
type Option func(*Console) error

// SessionStorage persists the session document between runs.
type SessionStorage = session.Storage

// Navigator is invoked when the SDK forces a route change (logout, expired
// session, guard redirect). The default is a no-op for headless use.
type Navigator = session.Navigator

// WithCMSBaseURL overrides the content-platform backend address.
func WithCMSBaseURL(u string) Option {
	return func(c *Console) error {
		if u == "" {
			return fmt.Errorf("cms base url cannot be empty")
		}
		c.cfg.CMSBaseURL = u
		return nil
	}
}

// WithCRMBaseURL overrides the CRM backend address.
func WithCRMBaseURL(u string) Option {
	return func(c *Console) error {
		if u == "" {
			return fmt.Errorf("crm base url cannot be empty")
		}
		c.cfg.CRMBaseURL = u
		return nil
	}
}

// WithHTTPTimeout bounds each round-trip to both backends. Prefer
// per-request context deadlines; this is the coarse safety net.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Console) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.cfg.HTTPTimeout = d
		return nil
	}
}

// WithDebugLogging dumps request/response traffic through zerolog. The
// CONSOLE_DEBUG/DEBUG environment variables enable the same without code
// changes.
func WithDebugLogging(enabled bool) Option {
	return func(c *Console) error {
		c.debug = enabled
		return nil
	}
}

// WithStateDir stores the persisted session under dir.
func WithStateDir(dir string) Option {
	return func(c *Console) error {
		c.cfg.StateDir = dir
		return nil
	}
}

// WithSessionStorage replaces session persistence entirely.
func WithSessionStorage(st SessionStorage) Option {
	return func(c *Console) error {
		c.storage = st
		return nil
	}
}

// WithoutPersistence keeps the session in memory only.
func WithoutPersistence() Option {
	return func(c *Console) error {
		c.storage = session.NewMemoryStorage()
		return nil
	}
}

// WithNavigator installs the route-change hook.
func WithNavigator(nav Navigator) Option {
	return func(c *Console) error {
		c.navigate = nav
		return nil
	}
}

// WithTransport replaces the base HTTP transport for both backend clients;
// tests use it to point the SDK at httptest servers.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Console) error {
		c.transport = rt
		return nil
	}
}
