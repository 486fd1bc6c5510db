package server_test

import (
	"testing"
	"time"

	"walkroute/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		want        bool
	}{
		{"Development", server.EnvironmentDevelopment, true},
		{"Staging", server.EnvironmentStaging, false},
		{"Production", server.EnvironmentProduction, false},
		{"Capitalized", "Development", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Environment: tt.environment}
			assert.Equal(t, tt.want, c.IsDevelopment())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     server.Config
		wantErr error
	}{
		{"Valid", server.Config{Port: 8000, Environment: "production"}, nil},
		{"LowestPort", server.Config{Port: 1, Environment: "staging"}, nil},
		{"HighestPort", server.Config{Port: 65535, Environment: "development"}, nil},
		{"ZeroPort", server.Config{Port: 0, Environment: "production"}, server.ErrInvalidPort},
		{"PortTooHigh", server.Config{Port: 70000, Environment: "production"}, server.ErrInvalidPort},
		{"BlankEnvironment", server.Config{Port: 8000, Environment: "  "}, server.ErrEmptyEnvironment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfig_WatchPaths(t *testing.T) {
	c := server.Config{ReloadDirs: " ., core , ,feature"}
	assert.Equal(t, []string{".", "core", "feature"}, c.WatchPaths())

	assert.Empty(t, server.Config{}.WatchPaths())
}

func TestConfig_Durations(t *testing.T) {
	assert.Equal(t, 250*time.Millisecond, server.Config{}.ReloadDelay())
	assert.Equal(t, 10*time.Second, server.Config{}.ShutdownTimeout())

	c := server.Config{ReloadDelayMS: 50, ShutdownTimeoutSeconds: 3}
	assert.Equal(t, 50*time.Millisecond, c.ReloadDelay())
	assert.Equal(t, 3*time.Second, c.ShutdownTimeout())
}
