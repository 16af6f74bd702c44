// Package server runs the daemon's transports.
//
// It binds the HTTP and gRPC listeners that are configured, serves both
// concurrently and stops them gracefully on SIGTERM, SIGINT or SIGQUIT, or
// when the context passed to Run is cancelled.
package server
