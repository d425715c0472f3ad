package querycache

import "time"

// Class is the freshness tier of a cached query. Lists churn constantly and
// go stale fast; details live longer; reference data (tags, enumerations)
// changes rarely and is kept longest. One TTL for all three would either
// over-fetch reference data or under-refresh lists.
type Class struct {
	// Name labels metrics.
	Name string
	// StaleTime is how long a stored value is served without refetching.
	StaleTime time.Duration
	// GCTime is how long a value is retained at all; past it the janitor
	// evicts the entry.
	GCTime time.Duration
	// RefreshInterval, when non-zero, re-runs the loader on a fixed cadence
	// regardless of staleness (dashboard aggregates).
	RefreshInterval time.Duration
}

var (
	// Lists: stale after 30s, retained for 2m.
	Lists = Class{Name: "list", StaleTime: 30 * time.Second, GCTime: 2 * time.Minute}
	// Details: stale after 1m, retained for 5m.
	Details = Class{Name: "detail", StaleTime: time.Minute, GCTime: 5 * time.Minute}
	// Reference: stale after 5m, retained for 10m.
	Reference = Class{Name: "reference", StaleTime: 5 * time.Minute, GCTime: 10 * time.Minute}
)

// WithRefreshInterval returns a copy of the class with background refresh
// enabled.
func (c Class) WithRefreshInterval(d time.Duration) Class {
	c.RefreshInterval = d
	return c
}
