// Package worker runs acceptance checks concurrently.
//
// Checks are queued as tasks and consumed by one or more Workers, each of
// which asks a Catalog whether the named automaton accepts the task input.
// Compiled automata are immutable and cached by the catalog, so any number
// of workers can test inputs against the same automaton in parallel.
//
// Most callers use AcceptAll, which queues a batch of inputs, runs the
// configured number of workers until the queue is drained and returns the
// results in input order:
//
//	results, err := worker.AcceptAll(ctx, catalog, "identifiers", inputs,
//	    worker.Config{Concurrency: 4})
//
// Worker and its ProcessOne and Run methods are useful when the producer
// and the consumers live in different goroutines.
package worker
