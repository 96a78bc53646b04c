// Package workers provides the background workers of the identity
// service. It defines the Worker interface and a Workers aggregate that
// runs and stops multiple workers in a unified way.
package workers

import "context"

// Worker is the interface implemented by every background worker.
//
// Run starts the worker and blocks until Shutdown is called;
// implementations are expected to be started on their own goroutine.
// Shutdown stops intake and waits for in-flight work to drain, bounded by
// ctx.
type Worker interface {
	Run()
	Shutdown(ctx context.Context)
}
