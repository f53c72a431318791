// Package taskqueue queues acceptance checks for workers.
package taskqueue

import (
	"context"
	"time"
)

// Task asks a worker to run Input through the automaton registered as
// Automaton.
type Task struct {
	// ID is assigned by the producer and copied into the result, so results
	// can be matched with inputs regardless of completion order.
	ID        int
	Automaton string
	Input     string

	EnqueuedAt time.Time
}

// Queue is a simple async task queue interface.
type Queue interface {
	// Enqueue adds a task to the queue. It should respect ctx for cancellation.
	Enqueue(ctx context.Context, t Task) error

	// Dequeue removes and returns the next task, blocking until one is
	// available or the context is cancelled. It returns (nil, nil) once the
	// queue is closed and drained.
	Dequeue(ctx context.Context) (*Task, error)

	// Close stops accepting tasks. Queued tasks can still be dequeued.
	Close()

	// Len returns the approximate number of tasks queued.
	Len() int
}
