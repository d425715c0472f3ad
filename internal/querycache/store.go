package querycache

import (
	"context"
	"sync"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// readRetries is the number of retries after a failed read loader. Writes
// never pass through the cache and are never retried; a duplicated mutation
// could repeat server side effects.
const readRetries = 1

// Loader fetches the canonical value for a key from the backend.
type Loader func(ctx context.Context) (any, error)

type entry struct {
	key       Key
	class     Class
	value     any
	fetchedAt time.Time
	staleAt   time.Time
	expireAt  time.Time
}

// Store is a keyed TTL cache over backend reads. Concurrent fetches of the
// same key collapse into one loader invocation; invalidation marks entries
// stale in place rather than evicting, so the old value stays visible until
// the refetch lands.
type Store struct {
	mu         sync.RWMutex
	entries    map[string]*entry
	refreshing map[string]struct{}
	group      singleflight.Group

	now          func() time.Time
	retryInitial time.Duration
	janitorEvery time.Duration

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Option tunes a Store at construction.
type Option func(*Store)

// WithClock substitutes the time source; tests use it to step staleness
// without sleeping.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRetryInterval sets the initial backoff delay for the single read
// retry. Production default is one second.
func WithRetryInterval(d time.Duration) Option {
	return func(s *Store) { s.retryInitial = d }
}

// New constructs a Store and starts its janitor.
func New(opts ...Option) *Store {
	s := &Store{
		entries:      make(map[string]*entry),
		refreshing:   make(map[string]struct{}),
		now:          time.Now,
		retryInitial: time.Second,
		janitorEvery: time.Minute,
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.wg.Add(1)
	go s.janitor()
	return s
}

// Close stops the janitor and all background refreshers. Safe to call more
// than once.
func (s *Store) Close() {
	s.closeOnce.Do(func() { close(s.done) })
	s.wg.Wait()
}

// Fetch returns the cached value for key when fresh; otherwise it runs
// loader (joining any identical in-flight call), stores the result under
// the class's freshness tier and returns it. Joined callers observe the
// first caller's eventual result.
func (s *Store) Fetch(ctx context.Context, key Key, class Class, loader Loader) (any, error) {
	k := key.Encode()
	if v, ok := s.freshValue(k); ok {
		hitsTotal.WithLabelValues(class.Name).Inc()
		return v, nil
	}
	missesTotal.WithLabelValues(class.Name).Inc()

	v, err, _ := s.group.Do(k, func() (any, error) {
		// A caller that arrived after the previous flight stored its result
		// sees the fresh value without another loader run.
		if v, ok := s.freshValue(k); ok {
			return v, nil
		}
		val, err := s.load(ctx, loader)
		if err != nil {
			return nil, err
		}
		s.store(key, class, val)
		s.ensureRefresher(key, class, loader)
		return val, nil
	})
	return v, err
}

// Set overwrites the entry for key with a canonical value, typically a
// mutation response body, sparing the redundant GET a plain invalidation
// would cause.
func (s *Store) Set(key Key, class Class, value any) {
	s.store(key, class, value)
	setsTotal.Inc()
}

// Invalidate marks every entry whose key starts with prefix as stale. The
// stale value is retained until the next Fetch replaces it or the janitor
// collects it.
func (s *Store) Invalidate(prefix Key) {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.key.HasPrefix(prefix) {
			e.staleAt = now
			invalidationsTotal.Inc()
		}
	}
}

// FetchAs is the typed wrapper over Store.Fetch.
func FetchAs[T any](ctx context.Context, s *Store, key Key, class Class, loader func(ctx context.Context) (T, error)) (T, error) {
	v, err := s.Fetch(ctx, key, class, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (s *Store) freshValue(k string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[k]
	if !ok {
		return nil, false
	}
	now := s.now()
	if !now.Before(e.staleAt) || now.After(e.expireAt) {
		return nil, false
	}
	return e.value, true
}

func (s *Store) store(key Key, class Class, value any) {
	now := s.now()
	k := key.Encode()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[k] = &entry{
		key:       key,
		class:     class,
		value:     value,
		fetchedAt: now,
		staleAt:   now.Add(class.StaleTime),
		expireAt:  now.Add(class.GCTime),
	}
}

// load runs the loader with exactly one retry on failure.
func (s *Store) load(ctx context.Context, loader Loader) (any, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.retryInitial
	bo.MaxInterval = 30 * time.Second

	var out any
	op := func() error {
		v, err := loader(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, readRetries), ctx)); err != nil {
		return nil, err
	}
	return out, nil
}

// ensureRefresher starts the background refresh loop for classes that have
// one; at most one loop runs per key.
func (s *Store) ensureRefresher(key Key, class Class, loader Loader) {
	if class.RefreshInterval <= 0 {
		return
	}
	k := key.Encode()
	s.mu.Lock()
	if _, running := s.refreshing[k]; running {
		s.mu.Unlock()
		return
	}
	select {
	case <-s.done:
		s.mu.Unlock()
		return
	default:
	}
	s.refreshing[k] = struct{}{}
	s.wg.Add(1)
	s.mu.Unlock()

	go s.refreshLoop(key, class, loader)
}

func (s *Store) refreshLoop(key Key, class Class, loader Loader) {
	defer s.wg.Done()
	ticker := time.NewTicker(class.RefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			v, err := loader(ctx)
			cancel()
			if err != nil {
				log.Debug().Err(err).Str("key", key.String()).Msg("querycache: background refresh failed")
				continue
			}
			s.store(key, class, v)
			refreshesTotal.Inc()
		}
	}
}

// janitor evicts entries past their retention window.
func (s *Store) janitor() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.janitorEvery)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := s.now()
			s.mu.Lock()
			for k, e := range s.entries {
				if now.After(e.expireAt) {
					delete(s.entries, k)
				}
			}
			s.mu.Unlock()
		}
	}
}
