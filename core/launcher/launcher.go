package launcher

import (
	"context"
	"fmt"

	"walkroute/core/server"

	"go.uber.org/zap"
)

const (
	// AppLocator names the application the runner should serve.
	AppLocator = "main:app"
	// WildcardHost binds every interface.
	WildcardHost = "0.0.0.0"
	// EnvironmentDevelopment is the only environment that turns reload on.
	EnvironmentDevelopment = server.EnvironmentDevelopment
)

// Options are the arguments handed to a Runner.
type Options struct {
	App    string `json:"app"`
	Host   string `json:"host"`
	Port   int    `json:"port"`
	Reload bool   `json:"reload"`
}

// Runner starts a long-running server. Run blocks until the server stops.
type Runner interface {
	Run(ctx context.Context, opts Options) error
}

// OptionsFor derives the runner arguments from the server settings.
// The host is always the wildcard address and reload follows the
// development environment.
func OptionsFor(settings server.Config) Options {
	return Options{
		App:    AppLocator,
		Host:   WildcardHost,
		Port:   settings.Port,
		Reload: settings.Environment == EnvironmentDevelopment,
	}
}

// Launch makes the single blocking runner call for the given settings.
func Launch(ctx context.Context, runner Runner, settings server.Config, logger *zap.Logger) error {
	opts := OptionsFor(settings)

	logger.Info("Launching server",
		zap.String("app", opts.App),
		zap.String("host", opts.Host),
		zap.Int("port", opts.Port),
		zap.Bool("reload", opts.Reload),
		zap.String("environment", settings.Environment),
	)

	if err := runner.Run(ctx, opts); err != nil {
		return fmt.Errorf("server %s stopped: %w", opts.App, err)
	}
	return nil
}
