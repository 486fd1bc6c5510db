// Package server holds the HTTP server configuration and constants.
//
// The main entry point reads these settings to decide where the application
// listens and whether it runs with auto-reload. Reload is tied to the
// development environment only.
//
// # Configuration
//
// The Config struct defines the port, the deployment environment, the API key
// and the knobs of the development reloader (watched paths, debounce delay)
// together with the graceful shutdown timeout.
//
// # Usage
//
// This package is embedded by core/config and consumed by core/launcher to
// derive the runner options.
package server
