package app

import (
	"context"
	"fmt"

	"walkroute/core/config"
	"walkroute/core/launcher"
	"walkroute/core/loader"
	"walkroute/core/middleware/auth"
	"walkroute/core/middleware/rayid"
	"walkroute/core/middleware/requestlog"
	"walkroute/core/runner"
	"walkroute/feature/health"
	"walkroute/feature/settings"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "walkroute/docs/swagger"
)

// @title Walkroute API
// @version 1.0
// @description Operational API of the walking route server.
// @BasePath /

// New builds the application served under launcher.AppLocator.
func New(cfg *config.Config, logger *zap.Logger) (*fiber.App, error) {
	deps, err := OpenDependencies(context.Background(), cfg, logger)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               "walkroute",
		DisableStartupMessage: true, // The runner logs its own startup message
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})
	app.Hooks().OnShutdown(deps.Close)

	// 1. RayID (Must be first to trace everything)
	app.Use(rayid.New())
	// 2. Access log (Zap + RayID)
	app.Use(requestlog.New(logger))

	// 3. Public routes: documentation and health probes
	app.Get("/swagger/*", swagger.HandlerDefault)

	var probes []health.Probe
	if deps.DB != nil {
		probes = append(probes, health.DatabaseProbe(deps.DB))
	}
	if deps.Storage != nil {
		probes = append(probes, health.StorageProbe(deps.Storage, deps.Bucket))
	}
	reload := launcher.OptionsFor(cfg.Server).Reload

	public := loader.NewManager(logger)
	public.Register(health.NewFeature(health.NewService(cfg.Server.Environment, reload, logger, probes...)))

	// 4. Protected API
	protected := loader.NewManager(logger)
	protected.Register(settings.NewFeature(cfg))

	if err := public.LoadAll(app); err != nil {
		_ = deps.Close()
		return nil, err
	}
	api := app.Group("/api", auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
	if err := protected.LoadAll(api); err != nil {
		_ = deps.Close()
		return nil, err
	}

	return app, nil
}

// Factory returns a runner factory that re-reads the configuration found at
// path before every build, so a reload picks up edited settings. The listen
// address is fixed by the first build; a later port change is only reported.
func Factory(path string, logger *zap.Logger) runner.Factory {
	boundPort := 0
	return func() (*fiber.App, error) {
		cfg, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}

		if boundPort == 0 {
			boundPort = cfg.Server.Port
		} else if cfg.Server.Port != boundPort {
			logger.Warn("Port changed, restart to apply it",
				zap.Int("serving_port", boundPort),
				zap.Int("configured_port", cfg.Server.Port))
		}

		return New(cfg, logger)
	}
}

// Registry registers the application under its locator.
func Registry(path string, logger *zap.Logger) runner.Registry {
	return runner.Registry{
		launcher.AppLocator: Factory(path, logger),
	}
}
