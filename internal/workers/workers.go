package workers

import "context"

// Workers aggregates the application's background workers.
type Workers struct {
	workers []Worker
}

// NewWorkers groups the given workers for collective start and stop.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker on its own goroutine and returns immediately.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		go worker.Run()
	}
}

// Shutdown stops all workers, waiting for each to drain within ctx.
func (w *Workers) Shutdown(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Shutdown(ctx)
	}
}
