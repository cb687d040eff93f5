package server

import "context"

// Server defines the lifecycle of the transport servers of this package.
type Server interface {
	// RunServer starts serving and blocks until a stop signal arrives, ctx
	// is cancelled or the listener fails.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
