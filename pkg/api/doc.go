// Package api contains the building blocks shared by the regular catalog
// engine and its callers.
//
// Most users interact with the higher-level regular package, which
// re-exports selected types and constructors from this package. The api
// package is intended for custom integrations, such as alternative
// observers or catalog implementations.
//
// # Catalog
//
// A Catalog keeps named automaton definitions in a persistence backend and
// compiles them on demand. Compiled automata are cached, so repeated
// acceptance tests against the same name do not rebuild the transition
// function. Catalogs also combine stored automata with the boolean
// operations of the dfa package and store the result under a new name.
//
// # Observability
//
// The Observer interface receives a callback for every compilation,
// acceptance test and combining operation. Observers can be used to:
//
//   - Log catalog activity
//   - Collect metrics (counts, latencies, product sizes)
//   - Integrate with external monitoring systems
//
// NoopObserver, LoggingObserver, BasicMetrics and PrometheusObserver are
// ready-made implementations, and NewCompositeObserver fans out to several
// of them.
package api
