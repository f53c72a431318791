package api

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Observer receives callbacks from a catalog for logging and metrics.
//
// Implementations should be fast and non-blocking; heavy work should be done
// asynchronously so as not to delay acceptance tests.
type Observer interface {
	// OnCompile is called after a definition was compiled into an
	// automaton, for both successes and failures (err != nil). states is
	// the number of states of the compiled automaton.
	OnCompile(ctx context.Context, name string, states int, err error, d time.Duration)

	// OnAccept is called after an acceptance test.
	OnAccept(ctx context.Context, name string, input string, accepted bool)

	// OnOperation is called after a combining operation producing out.
	// states is the number of states of the result.
	OnOperation(ctx context.Context, op Op, out string, states int, err error, d time.Duration)
}

// NoopObserver is an Observer that does nothing.
// It is used as the default when no observer is configured.
type NoopObserver struct{}

func (NoopObserver) OnCompile(ctx context.Context, name string, states int, err error, d time.Duration) {
}
func (NoopObserver) OnAccept(ctx context.Context, name string, input string, accepted bool) {}
func (NoopObserver) OnOperation(ctx context.Context, op Op, out string, states int, err error, d time.Duration) {
}

// CompositeObserver fans out events to multiple observers.
type CompositeObserver struct {
	observers []Observer
}

// NewCompositeObserver creates an Observer that forwards events to each
// non-nil observer in obs.
func NewCompositeObserver(obs ...Observer) Observer {
	filtered := make([]Observer, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			filtered = append(filtered, o)
		}
	}
	if len(filtered) == 0 {
		return NoopObserver{}
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &CompositeObserver{observers: filtered}
}

func (c *CompositeObserver) OnCompile(ctx context.Context, name string, states int, err error, d time.Duration) {
	for _, o := range c.observers {
		o.OnCompile(ctx, name, states, err, d)
	}
}

func (c *CompositeObserver) OnAccept(ctx context.Context, name string, input string, accepted bool) {
	for _, o := range c.observers {
		o.OnAccept(ctx, name, input, accepted)
	}
}

func (c *CompositeObserver) OnOperation(ctx context.Context, op Op, out string, states int, err error, d time.Duration) {
	for _, o := range c.observers {
		o.OnOperation(ctx, op, out, states, err, d)
	}
}

// LoggingObserver writes structured logs using log/slog.
type LoggingObserver struct {
	Logger *slog.Logger
}

// NewLoggingObserver creates an Observer that logs catalog events using the
// provided slog.Logger. If logger is nil, slog.Default() is used.
func NewLoggingObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{Logger: logger}
}

func (o *LoggingObserver) OnCompile(ctx context.Context, name string, states int, err error, d time.Duration) {
	level := slog.LevelDebug
	if err != nil {
		level = slog.LevelError
	}
	o.Logger.Log(ctx, level, "automaton_compiled",
		slog.String("automaton", name),
		slog.Int("states", states),
		slog.Duration("duration", d),
		slog.Any("error", err),
	)
}

func (o *LoggingObserver) OnAccept(ctx context.Context, name string, input string, accepted bool) {
	o.Logger.DebugContext(ctx, "input_tested",
		slog.String("automaton", name),
		slog.Int("input_len", len(input)),
		slog.Bool("accepted", accepted),
	)
}

func (o *LoggingObserver) OnOperation(ctx context.Context, op Op, out string, states int, err error, d time.Duration) {
	if err != nil {
		o.Logger.ErrorContext(ctx, "operation_failed",
			slog.String("op", string(op)),
			slog.String("automaton", out),
			slog.Any("error", err),
		)
		return
	}
	o.Logger.InfoContext(ctx, "operation_completed",
		slog.String("op", string(op)),
		slog.String("automaton", out),
		slog.Int("states", states),
		slog.Duration("duration", d),
	)
}

// BasicMetrics collects simple counters and aggregate compile durations.
// It implements Observer, and can be combined with LoggingObserver via
// NewCompositeObserver.
type BasicMetrics struct {
	compiles         atomic.Int64
	compileFailures  atomic.Int64
	totalCompileTime atomic.Int64 // nanoseconds
	accepted         atomic.Int64
	rejected         atomic.Int64
	operations       atomic.Int64
	operationErrors  atomic.Int64
	largestProduct   atomic.Int64
}

// BasicMetricsSnapshot is an immutable snapshot of BasicMetrics.
type BasicMetricsSnapshot struct {
	Compiles           int64
	CompileFailures    int64
	AvgCompileDuration time.Duration

	Accepted int64
	Rejected int64

	Operations      int64
	OperationErrors int64
	LargestProduct  int64
}

func (m *BasicMetrics) OnCompile(ctx context.Context, name string, states int, err error, d time.Duration) {
	if err != nil {
		m.compileFailures.Add(1)
		return
	}
	m.compiles.Add(1)
	m.totalCompileTime.Add(d.Nanoseconds())
}

func (m *BasicMetrics) OnAccept(ctx context.Context, name string, input string, accepted bool) {
	if accepted {
		m.accepted.Add(1)
	} else {
		m.rejected.Add(1)
	}
}

func (m *BasicMetrics) OnOperation(ctx context.Context, op Op, out string, states int, err error, d time.Duration) {
	if err != nil {
		m.operationErrors.Add(1)
		return
	}
	m.operations.Add(1)
	for {
		cur := m.largestProduct.Load()
		if int64(states) <= cur || m.largestProduct.CompareAndSwap(cur, int64(states)) {
			return
		}
	}
}

// Snapshot returns a snapshot of the current metrics.
func (m *BasicMetrics) Snapshot() BasicMetricsSnapshot {
	compiles := m.compiles.Load()
	totalNs := m.totalCompileTime.Load()

	var avg time.Duration
	if compiles > 0 {
		avg = time.Duration(totalNs / compiles)
	}

	return BasicMetricsSnapshot{
		Compiles:           compiles,
		CompileFailures:    m.compileFailures.Load(),
		AvgCompileDuration: avg,
		Accepted:           m.accepted.Load(),
		Rejected:           m.rejected.Load(),
		Operations:         m.operations.Load(),
		OperationErrors:    m.operationErrors.Load(),
		LargestProduct:     m.largestProduct.Load(),
	}
}
