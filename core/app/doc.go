// Package app assembles the fiber application registered as "main:app".
//
// New opens the optional dependencies and installs the middleware chain
// (RayID, access log, API key auth for /api). It then loads the features
// through the loader. Factory wraps New so every build, including each
// development reload, starts from freshly loaded configuration.
package app
