// Package launcher turns server settings into a single runner call.
//
// The launcher serves the "main:app" application on 0.0.0.0 at the configured
// port. Auto-reload is enabled exactly when the environment is "development".
// Failures are not handled here: whatever the runner returns is passed back to
// the caller, which ends the process.
package launcher
