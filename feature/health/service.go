package health

import (
	"context"
	"sync"
	"time"

	"walkroute/core/database"
	"walkroute/core/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	StatusOK          = "ok"
	StatusFailed      = "failed"
	StatusReady       = "ready"
	StatusUnavailable = "unavailable"
)

// Probe checks one dependency.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

// CheckResult is the outcome of one probe.
type CheckResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Readiness aggregates every probe.
type Readiness struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
}

// Liveness describes the running instance.
type Liveness struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Reload      bool   `json:"reload"`
}

// DatabaseProbe pings the database pool.
func DatabaseProbe(db *gorm.DB) Probe {
	return Probe{
		Name: "database",
		Check: func(ctx context.Context) error {
			return database.Ping(ctx, db)
		},
	}
}

// StorageProbe checks that the bucket exists.
func StorageProbe(client storage.Client, bucket string) Probe {
	return Probe{
		Name: "storage",
		Check: func(ctx context.Context) error {
			return storage.CheckBucket(ctx, client, bucket)
		},
	}
}

// Service answers liveness and readiness queries.
type Service struct {
	environment string
	reload      bool
	probes      []Probe
	timeout     time.Duration
	cache       *readinessCache
	logger      *zap.Logger
}

// NewService creates a new health service.
func NewService(environment string, reload bool, logger *zap.Logger, probes ...Probe) *Service {
	return &Service{
		environment: environment,
		reload:      reload,
		probes:      probes,
		timeout:     5 * time.Second,
		cache:       &readinessCache{ttl: DefaultCacheTTL},
		logger:      logger,
	}
}

// SetCacheTTL changes how long a readiness report is reused. Zero disables
// caching; concurrent requests still share one probe run.
func (s *Service) SetCacheTTL(ttl time.Duration) {
	s.cache.mu.Lock()
	s.cache.ttl = ttl
	s.cache.report = nil
	s.cache.mu.Unlock()
}

// Liveness reports the instance as alive.
func (s *Service) Liveness() Liveness {
	return Liveness{
		Status:      StatusOK,
		Environment: s.environment,
		Reload:      s.reload,
	}
}

// Ready returns the readiness report, reusing a recent one when possible.
func (s *Service) Ready(ctx context.Context) Readiness {
	return s.cache.get(ctx, s.probe)
}

// probe runs all probes concurrently, bounded by the probe timeout.
func (s *Service) probe(ctx context.Context) Readiness {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		mu     sync.Mutex
		checks = make(map[string]CheckResult, len(s.probes))
		g      errgroup.Group
	)

	for _, p := range s.probes {
		g.Go(func() error {
			result := CheckResult{Status: StatusOK}
			if err := p.Check(ctx); err != nil {
				result = CheckResult{Status: StatusFailed, Error: err.Error()}
			}
			mu.Lock()
			checks[p.Name] = result
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	status := StatusReady
	for _, c := range checks {
		if c.Status != StatusOK {
			status = StatusUnavailable
			break
		}
	}

	return Readiness{Status: status, Checks: checks}
}
