package config

import (
	"os"
	"path/filepath"
	"testing"

	"walkroute/core/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable LoadConfig reads so the host environment
// cannot leak into a test. t.Setenv restores the previous values.
func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENVIRONMENT",
		"SERVER_PORT", "SERVER_ENVIRONMENT", "SERVER_API_KEY", "SERVER_RELOAD_DIRS",
		"LOG_LEVEL", "LOG_FORMAT",
		"DATABASE_ENABLED", "DATABASE_DRIVER", "DATABASE_PORT",
		"STORAGE_ENABLED", "STORAGE_BUCKET",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, server.EnvironmentProduction, cfg.Server.Environment)
	assert.Equal(t, ".", cfg.Server.ReloadDirs)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "assets", cfg.Storage.Bucket)
}

func TestLoadConfig_NestedEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SERVER_ENVIRONMENT", "development")
	t.Setenv("DATABASE_ENABLED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.True(t, cfg.Server.IsDevelopment())
	assert.True(t, cfg.Database.Enabled)
}

func TestLoadConfig_PlainAliases(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "443")
	t.Setenv("ENVIRONMENT", "staging")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 443, cfg.Server.Port)
	assert.Equal(t, "staging", cfg.Server.Environment)

	t.Setenv("SERVER_PORT", "1")
	cfg, err = LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Server.Port, "nested name wins over the alias")
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := "SERVER_PORT=8123\nSERVER_ENVIRONMENT=development\nLOG_FORMAT=console\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 8123, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_DotEnvEditsApplyOnReload(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SERVER_ENVIRONMENT=development\nSERVER_PORT=8123\n"), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 8123, cfg.Server.Port)
	assert.Empty(t, os.Getenv("SERVER_ENVIRONMENT"), ".env must not leak into the process environment")

	require.NoError(t, os.WriteFile(envFile, []byte(""), 0o644))

	cfg, err = LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, server.EnvironmentProduction, cfg.Server.Environment)
	assert.Equal(t, 8000, cfg.Server.Port)
}

func TestLoadConfig_ProcessEnvWinsOverDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=8123\nLOG_LEVEL=debug\n"), 0o644))
	t.Setenv("SERVER_PORT", "9000")

	for i := 0; i < 2; i++ {
		cfg, err := LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, 9000, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
	}
	assert.Equal(t, "9000", os.Getenv("SERVER_PORT"))
}

func TestLoadConfig_DotEnvAliases(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PORT=443\nENVIRONMENT=staging\n"), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 443, cfg.Server.Port)
	assert.Equal(t, "staging", cfg.Server.Environment)

	require.NoError(t, os.WriteFile(envFile, []byte("PORT=443\nSERVER_PORT=1\n"), 0o644))
	cfg, err = LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Server.Port, "nested name wins over the alias")
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "70000")

	cfg, err := LoadConfig(t.TempDir())
	assert.ErrorIs(t, err, server.ErrInvalidPort)
	assert.Nil(t, cfg)
}

func TestEnvFile(t *testing.T) {
	assert.Equal(t, ".env", EnvFile("."))
	assert.Equal(t, ".env", EnvFile(""))
	assert.Equal(t, filepath.Join("conf", ".env"), EnvFile("conf"))
}
