package api

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusObserver exports catalog activity as Prometheus metrics.
type PrometheusObserver struct {
	compiles        *prometheus.CounterVec
	compileDuration prometheus.Histogram
	accepts         *prometheus.CounterVec
	operations      *prometheus.CounterVec
	productStates   *prometheus.HistogramVec
}

var _ Observer = (*PrometheusObserver)(nil)

// NewPrometheusObserver creates the collectors and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &PrometheusObserver{
		compiles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "regular_compiles_total",
				Help: "Automaton compilations by result",
			},
			[]string{"result"},
		),
		compileDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "regular_compile_duration_seconds",
				Help:    "Duration of automaton compilations",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		accepts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "regular_inputs_total",
				Help: "Acceptance tests by automaton and outcome",
			},
			[]string{"automaton", "outcome"},
		),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "regular_operations_total",
				Help: "Combining operations by kind and result",
			},
			[]string{"op", "result"},
		),
		productStates: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "regular_operation_states",
				Help:    "Number of states produced by combining operations",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"op"},
		),
	}
	for _, c := range []prometheus.Collector{o.compiles, o.compileDuration, o.accepts, o.operations, o.productStates} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (o *PrometheusObserver) OnCompile(ctx context.Context, name string, states int, err error, d time.Duration) {
	o.compiles.WithLabelValues(result(err)).Inc()
	if err == nil {
		o.compileDuration.Observe(d.Seconds())
	}
}

func (o *PrometheusObserver) OnAccept(ctx context.Context, name string, input string, accepted bool) {
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}
	o.accepts.WithLabelValues(name, outcome).Inc()
}

func (o *PrometheusObserver) OnOperation(ctx context.Context, op Op, out string, states int, err error, d time.Duration) {
	o.operations.WithLabelValues(string(op), result(err)).Inc()
	if err == nil {
		o.productStates.WithLabelValues(string(op)).Observe(float64(states))
	}
}
