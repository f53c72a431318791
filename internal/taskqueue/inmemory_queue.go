package taskqueue

import (
	"context"
	"errors"
	"sync"
)

// ErrQueueClosed is returned by Enqueue after Close.
var ErrQueueClosed = errors.New("taskqueue: queue closed")

// InMemoryQueue is a simple Queue implementation backed by a buffered channel.
// It is safe for concurrent use.
//
// The channel itself is never closed. Close closes done instead, which
// releases producers blocked on a full queue.
type InMemoryQueue struct {
	ch   chan Task
	done chan struct{}
	once sync.Once

	// Enqueue holds mu for reading while it sends. Dequeue takes it for
	// writing once done is closed, so every send that won has landed
	// before the queue reports itself drained.
	mu sync.RWMutex
}

// NewInMemoryQueue creates a new queue with the given capacity.
// For tests and small deployments, a modest capacity (e.g. 1024) is fine.
func NewInMemoryQueue(capacity int) *InMemoryQueue {
	if capacity <= 0 {
		capacity = 1024
	}
	return &InMemoryQueue{
		ch:   make(chan Task, capacity),
		done: make(chan struct{}),
	}
}

// Ensure InMemoryQueue implements Queue.
var _ Queue = (*InMemoryQueue)(nil)

func (q *InMemoryQueue) Enqueue(ctx context.Context, t Task) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	select {
	case <-q.done:
		return ErrQueueClosed
	default:
	}

	select {
	case q.ch <- t:
		return nil
	case <-q.done:
		return ErrQueueClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *InMemoryQueue) Dequeue(ctx context.Context) (*Task, error) {
	select {
	case t := <-q.ch:
		return &t, nil
	case <-q.done:
		// Wait out sends that raced with Close.
		q.mu.Lock()
		q.mu.Unlock()
		select {
		case t := <-q.ch:
			return &t, nil
		default:
			return nil, nil
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops accepting tasks and wakes producers waiting for space. It
// never blocks and may be called more than once.
func (q *InMemoryQueue) Close() {
	q.once.Do(func() { close(q.done) })
}

func (q *InMemoryQueue) Len() int {
	return len(q.ch)
}
