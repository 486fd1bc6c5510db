// Package runner is the server runner behind the launcher.
//
// A Registry maps application locators such as "main:app" to factories that
// build a *fiber.App. Runner.Run resolves the locator, binds host:port and
// serves until its context is cancelled.
//
// # Reload
//
// With reload enabled the runner watches its paths with fsnotify. A compiled
// binary cannot pick up source edits, so a reload rebuilds the application
// from its factory instead. That re-reads .env and the settings and reopens
// dependencies. Bursts of events are debounced, and hidden directories,
// vendor and node_modules are not watched. If a rebuild fails, the running
// instance stays up.
package runner
