package server

import "context"

// Server defines the lifecycle of the daemon's transports.
type Server interface {
	// RunServer serves until a stop signal arrives. Errors are logged.
	RunServer()

	// Run serves until ctx is cancelled, a stop signal arrives or a
	// transport fails, then shuts every transport down.
	Run(ctx context.Context) error

	// Shutdown gracefully stops every transport.
	Shutdown()
}
