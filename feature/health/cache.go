package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL is how long a readiness report is reused.
const DefaultCacheTTL = 2 * time.Second

// readinessCache keeps the last report for a short TTL so that frequent
// orchestrator probes do not hammer the dependencies.
type readinessCache struct {
	mu     sync.RWMutex
	report *Readiness
	built  time.Time
	ttl    time.Duration
	sf     singleflight.Group
}

func (c *readinessCache) fresh() (*Readiness, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.report == nil || c.ttl <= 0 || time.Since(c.built) > c.ttl {
		return nil, false
	}
	return c.report, true
}

// get returns the cached report or builds a new one. Concurrent callers share
// one build via singleflight.
func (c *readinessCache) get(ctx context.Context, build func(context.Context) Readiness) Readiness {
	if report, ok := c.fresh(); ok {
		return *report
	}

	result, _, _ := c.sf.Do("readiness", func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		if report, ok := c.fresh(); ok {
			return report, nil
		}

		// The build is shared, so one caller going away must not cancel it.
		report := build(context.WithoutCancel(ctx))

		c.mu.Lock()
		c.report = &report
		c.built = time.Now()
		c.mu.Unlock()

		return &report, nil
	})

	return *result.(*Readiness)
}
