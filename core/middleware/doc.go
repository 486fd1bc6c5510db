// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation to protect endpoints.
//   - rayid: assigns a unique Request ID (RayID) to every incoming request,
//     injecting it into the context and response headers for tracing.
//   - requestlog: structured access log correlated by RayID.
//
// RayID must be registered first so the later middleware can read it.
package middleware
