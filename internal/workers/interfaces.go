// Package workers runs the background jobs of the server process.
// It defines the Worker interface and a Workers aggregate that starts
// every worker and waits for all of them to return.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled. Implementations must not panic on
// transient failures; they log and retry on the next tick.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
