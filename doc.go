// Package regular provides deterministic finite automata over arbitrary
// alphabets, together with a catalog that stores, compiles and combines
// named automata.
//
// The package is layered so callers can stop at the level they need:
//
//  1. pkg/alphabet: finite symbol sets and inclusive ranges
//  2. pkg/dfa: automata, their Builder and the product operations
//  3. pkg/definition: a YAML/JSON description of rune automata
//  4. Catalog: named definitions in a store, compiled on demand
//
// # Automata
//
// A dfa.DFA is built through a dfa.Builder, which checks every transition
// against the alphabet and the states it has allocated. Automata are
// immutable once built and safe for concurrent use. Union, intersection and
// difference use the product construction; the complement swaps accepting
// and non-accepting states.
//
// # Catalog
//
// A Catalog stores definitions in a persistence backend:
//
//   - In-memory (non-durable, best for tests)
//   - SQLite (embedded durability)
//   - Redis (shared between processes)
//
// Definitions are compiled the first time they are used and cached, so
// repeated acceptance tests do not rebuild the transition function.
// Combining two stored automata registers the result under a new name.
//
// # AutomatonBuilder
//
// AutomatonBuilder writes definitions in Go instead of YAML:
//
//	regular.New("binary-odd").
//	    Symbols("01").
//	    States("even", "odd").
//	    Start("even").
//	    Accept("odd").
//	    TransitionsOn("even", "0", "even").
//	    TransitionsOn("even", "1", "odd").
//	    TransitionsOn("odd", "0", "even").
//	    TransitionsOn("odd", "1", "odd").
//	    MustRegister(ctx, catalog)
//
// # Observability
//
// Catalog constructors have WithObserver variants. LoggingObserver writes
// log/slog records, BasicMetrics keeps in-process counters and
// PrometheusObserver exports the same events as Prometheus metrics.
//
// For a command line interface, see cmd/regular.
package regular
