package server

import "context"

// Server defines the lifecycle contract of the process.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT.
	RunServer()

	// Run serves requests until ctx is cancelled.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
