package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"walkroute/core/config"
	"walkroute/core/database"
	"walkroute/core/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Dependencies are the optional backing services of one application instance.
// A nil field means the service is disabled or was left out.
type Dependencies struct {
	DB      *gorm.DB
	Storage storage.Client
	Bucket  string
}

// OpenDependencies connects every enabled dependency in parallel. In
// development a failing dependency is logged and left out; in any other
// environment it is an error.
func OpenDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{}
	optional := cfg.Server.IsDevelopment()

	var (
		mu sync.Mutex
		g  errgroup.Group
	)

	tolerate := func(name string, err error) error {
		if optional {
			logger.Warn("Optional dependency unavailable", zap.String("dependency", name), zap.Error(err))
			return nil
		}
		return fmt.Errorf("%s unavailable: %w", name, err)
	}

	if cfg.Database.Enabled {
		g.Go(func() error {
			db, err := database.Connect(cfg.Database)
			if err != nil {
				return tolerate("database", err)
			}
			mu.Lock()
			deps.DB = db
			mu.Unlock()
			logger.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
			return nil
		})
	}

	if cfg.Storage.Enabled {
		g.Go(func() error {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return tolerate("storage", err)
			}

			timeout := time.Duration(cfg.Storage.TimeoutSeconds) * time.Second
			if timeout <= 0 {
				timeout = 30 * time.Second
			}
			checkCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			if err := storage.CheckBucket(checkCtx, client, cfg.Storage.Bucket); err != nil {
				return tolerate("storage", err)
			}
			mu.Lock()
			deps.Storage = client
			deps.Bucket = cfg.Storage.Bucket
			mu.Unlock()
			logger.Info("Connected to storage", zap.String("bucket", cfg.Storage.Bucket))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		_ = deps.Close()
		return nil, err
	}
	return deps, nil
}

// Close releases the database pool. The storage client holds no connections
// that need closing.
func (d *Dependencies) Close() error {
	var errs []error
	if d.DB != nil {
		if err := database.Close(d.DB); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
		d.DB = nil
	}
	return errors.Join(errs...)
}
