// Package config provides configuration management for the walkroute server.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (loaded through godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: port, environment, API key and development reload settings
//   - Database: optional MySQL/SQLite connection details
//   - Storage: optional S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//
// Every key maps to an upper-cased environment variable with dots replaced by
// underscores (server.port -> SERVER_PORT). The launcher settings also accept
// the plain PORT and ENVIRONMENT names.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
