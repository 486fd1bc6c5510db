// Package health exposes liveness and readiness endpoints.
//
// Liveness only says the process serves requests and reports the environment
// and reload mode it was launched with. Readiness runs one probe per
// configured dependency (database ping, storage bucket lookup) concurrently.
// Dependencies that are not configured are not probed.
//
// # HTTP Endpoints
//
//   - GET /health : liveness.
//   - GET /health/ready : readiness, 503 when a probe fails.
package health
