// Package settings exposes the resolved configuration.
//
// The same Snapshot backs the GET /api/settings endpoint and the `settings`
// CLI command. Passwords, keys and the API key are masked.
package settings
