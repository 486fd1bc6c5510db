package server

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the TCP port the server binds on every interface.
	Port int `mapstructure:"port" default:"8000"`
	// Environment is the deployment stage (development, staging, production).
	Environment string `mapstructure:"environment" default:"production"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// ReloadDirs is a comma separated list of paths watched in development.
	ReloadDirs string `mapstructure:"reload_dirs" default:"."`
	// ReloadDelayMS debounces bursts of file events before a reload.
	ReloadDelayMS int `mapstructure:"reload_delay_ms" default:"250"`
	// ShutdownTimeoutSeconds bounds graceful shutdown of a running instance.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"10"`
}

// Deployment stages. Only development enables reload and tolerates missing
// dependencies.
const (
	// EnvironmentDevelopment is the local stage.
	EnvironmentDevelopment = "development"
	// EnvironmentStaging is the pre-production stage.
	EnvironmentStaging = "staging"
	// EnvironmentProduction is the default stage.
	EnvironmentProduction = "production"
)

var (
	// ErrInvalidPort is returned when the port is outside the TCP range.
	ErrInvalidPort = errors.New("port must be between 1 and 65535")
	// ErrEmptyEnvironment is returned when no environment is configured.
	ErrEmptyEnvironment = errors.New("environment must be specified")
)

// IsDevelopment reports whether the server runs in the development stage.
// The comparison is exact: "Development" is not development.
func (c Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDevelopment
}

// Validate checks the values the launcher depends on.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: got %d", ErrInvalidPort, c.Port)
	}
	if strings.TrimSpace(c.Environment) == "" {
		return ErrEmptyEnvironment
	}
	return nil
}

// WatchPaths splits ReloadDirs into its non-empty entries.
func (c Config) WatchPaths() []string {
	var paths []string
	for _, p := range strings.Split(c.ReloadDirs, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// ReloadDelay returns the debounce window, falling back to 250ms.
func (c Config) ReloadDelay() time.Duration {
	if c.ReloadDelayMS <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(c.ReloadDelayMS) * time.Millisecond
}

// ShutdownTimeout returns the graceful shutdown bound, falling back to 10s.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
