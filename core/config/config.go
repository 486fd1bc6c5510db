package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"

	"walkroute/core/database"
	"walkroute/core/logger"
	"walkroute/core/server"
	"walkroute/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server and the launcher.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
}

// envAliases lists plain variable names accepted next to the nested ones.
// The nested name wins when both are set.
var envAliases = map[string]string{
	"server.port":        "PORT",
	"server.environment": "ENVIRONMENT",
}

// LoadConfig loads configuration from environment variables and .env file.
// Process variables win over the .env file, which wins over defaults. The
// file is read on every call and never exported into the process
// environment, so a later call sees edits and removals.
func LoadConfig(path string) (*Config, error) {
	dotenv, err := godotenv.Read(EnvFile(path))
	// A missing file is fine (e.g. production)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", EnvFile(path), err)
	}

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	if err := v.MergeConfigMap(dotenvLayer(v.AllKeys(), dotenv)); err != nil {
		return nil, fmt.Errorf("failed to apply %s: %w", EnvFile(path), err)
	}

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, alias := range envAliases {
		if err := v.BindEnv(key, envName(key), alias); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := config.Server.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server configuration: %w", err)
	}

	return &config, nil
}

// envName is the variable name of a nested key (server.port -> SERVER_PORT).
func envName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// dotenvLayer turns .env entries into a nested config map for the known keys.
// Empty values count as unset, like empty process variables.
func dotenvLayer(keys []string, dotenv map[string]string) map[string]any {
	layer := make(map[string]any)
	for _, key := range keys {
		value := dotenv[envName(key)]
		if value == "" {
			value = dotenv[envAliases[key]]
		}
		if value == "" {
			continue
		}

		parts := strings.Split(key, ".")
		node := layer
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}
	return layer
}

// EnvFile returns the location of the .env file for a config directory.
func EnvFile(path string) string {
	if path == "" || path == "." {
		return ".env"
	}
	return filepath.Join(path, ".env")
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
