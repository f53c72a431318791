package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/petrijr/regular/internal/taskqueue"
	"github.com/petrijr/regular/pkg/api"
)

// Result is the outcome of one queued acceptance check.
type Result struct {
	ID       int
	Input    string
	Accepted bool
	Err      error
}

// Config controls AcceptAll.
type Config struct {
	// Concurrency is the number of goroutines running checks. Values below
	// one mean one.
	Concurrency int
}

// Worker pulls acceptance checks from a Queue and runs them against a
// Catalog.
type Worker struct {
	catalog api.Catalog
	queue   taskqueue.Queue
}

// New creates a new Worker.
func New(catalog api.Catalog, queue taskqueue.Queue) *Worker {
	return &Worker{
		catalog: catalog,
		queue:   queue,
	}
}

// Enqueue schedules input to be tested against the automaton registered as
// name. id is returned unchanged in the matching Result.
func (w *Worker) Enqueue(ctx context.Context, id int, name, input string) error {
	return w.queue.Enqueue(ctx, taskqueue.Task{
		ID:         id,
		Automaton:  name,
		Input:      input,
		EnqueuedAt: time.Now(),
	})
}

// ProcessOne pulls a single task from the queue and processes it.
// Returns (result, processed, error):
//   - processed == false, err == nil: the queue is closed and drained
//   - processed == false, err != nil: ctx ended before a task was obtained
//   - processed == true: result.Err reports whether the check itself failed
func (w *Worker) ProcessOne(ctx context.Context) (Result, bool, error) {
	task, err := w.queue.Dequeue(ctx)
	if err != nil {
		return Result{}, false, err
	}
	if task == nil {
		return Result{}, false, nil
	}

	accepted, err := w.catalog.Accept(ctx, task.Automaton, task.Input)
	return Result{
		ID:       task.ID,
		Input:    task.Input,
		Accepted: accepted,
		Err:      err,
	}, true, nil
}

// Run processes tasks until the queue is drained or ctx ends, passing
// every result to sink. sink may be called from the worker goroutine only.
func (w *Worker) Run(ctx context.Context, sink func(Result)) error {
	for {
		res, processed, err := w.ProcessOne(ctx)
		if err != nil {
			return err
		}
		if !processed {
			return nil
		}
		sink(res)
	}
}

// AcceptAll tests every input against the automaton registered as name
// using cfg.Concurrency workers. Results are returned in input order. The
// returned error joins the errors of the individual checks.
func AcceptAll(ctx context.Context, catalog api.Catalog, name string, inputs []string, cfg Config) ([]Result, error) {
	workers := max(cfg.Concurrency, 1)

	queue := taskqueue.NewInMemoryQueue(len(inputs))
	producer := New(catalog, queue)
	for i, in := range inputs {
		if err := producer.Enqueue(ctx, i, name, in); err != nil {
			return nil, err
		}
	}
	queue.Close()

	results := make([]Result, len(inputs))
	runErrs := make([]error, workers)

	var wg sync.WaitGroup
	for n := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := New(catalog, queue)
			// IDs are unique, so each slot is written by one goroutine.
			runErrs[n] = w.Run(ctx, func(res Result) {
				results[res.ID] = res
			})
		}()
	}
	wg.Wait()

	if err := errors.Join(runErrs...); err != nil {
		return nil, err
	}

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("input %d: %w", res.ID, res.Err))
		}
	}
	return results, errors.Join(errs...)
}
