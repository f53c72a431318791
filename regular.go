package regular

import (
	"context"
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/petrijr/regular/internal/engine"
	"github.com/petrijr/regular/internal/persistence"
	"github.com/petrijr/regular/pkg/api"
	"github.com/petrijr/regular/pkg/definition"
	"github.com/petrijr/regular/pkg/worker"
)

// Re-export key types so users don't need to dig into pkg/api.

type (
	Catalog              = api.Catalog
	Automaton            = api.Automaton
	Op                   = api.Op
	Definition           = definition.Definition
	Observer             = api.Observer
	LoggingObserver      = api.LoggingObserver
	BasicMetrics         = api.BasicMetrics
	BasicMetricsSnapshot = api.BasicMetricsSnapshot
	CompositeObserver    = api.CompositeObserver
	NoopObserver         = api.NoopObserver
	PrometheusObserver   = api.PrometheusObserver
	Result               = worker.Result
	WorkerConfig         = worker.Config
)

// Re-export common observer helpers.

var (
	NewLoggingObserver   = api.NewLoggingObserver
	NewCompositeObserver = api.NewCompositeObserver
	ParseOp              = api.ParseOp
)

// Re-export operations.

const (
	OpUnion        = api.OpUnion
	OpIntersection = api.OpIntersection
	OpDifference   = api.OpDifference
	OpComplement   = api.OpComplement
)

// Errors returned by catalogs.
var (
	ErrAutomatonNotFound = persistence.ErrAutomatonNotFound
	ErrInvalidDefinition = definition.ErrInvalidDefinition
	ErrUnknownOperation  = api.ErrUnknownOperation
	ErrNameRequired      = engine.ErrNameRequired
)

// NewPrometheusObserver returns an Observer exporting catalog metrics to reg.
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	return api.NewPrometheusObserver(reg)
}

// Catalog constructors
// These wrap the internal/engine package so external callers
// never need to import internal packages.

// NewInMemoryCatalog returns a Catalog backed entirely by memory.
func NewInMemoryCatalog() Catalog {
	return engine.NewInMemoryEngine()
}

// NewInMemoryCatalogWithObserver returns an in-memory Catalog with the given Observer.
func NewInMemoryCatalogWithObserver(obs Observer) Catalog {
	return engine.NewEngineWithConfig(engine.Config{
		Store:    persistence.NewInMemoryStore(),
		Observer: obs,
	})
}

// NewSQLiteCatalog returns a Catalog that persists definitions in a SQLite
// database. The schema is created if needed.
func NewSQLiteCatalog(db *sql.DB) (Catalog, error) {
	return NewSQLiteCatalogWithObserver(db, nil)
}

// NewSQLiteCatalogWithObserver returns a SQLite-backed Catalog with the given Observer.
func NewSQLiteCatalogWithObserver(db *sql.DB, obs Observer) (Catalog, error) {
	store, err := persistence.NewSQLiteStore(db)
	if err != nil {
		return nil, err
	}
	return engine.NewEngineWithConfig(engine.Config{Store: store, Observer: obs}), nil
}

// NewRedisCatalog returns a Catalog that persists definitions in Redis under
// prefix. An empty prefix uses "regular:".
func NewRedisCatalog(client redis.UniversalClient, prefix string) Catalog {
	return engine.NewRedisEngine(client, prefix)
}

// NewRedisCatalogWithObserver returns a Redis-backed Catalog with the given Observer.
func NewRedisCatalogWithObserver(client redis.UniversalClient, prefix string, obs Observer) Catalog {
	return engine.NewEngineWithConfig(engine.Config{
		Store:    persistence.NewRedisStore(client, prefix),
		Observer: obs,
	})
}

// Convenience helpers that just forward to the underlying Catalog.

// Accept reports whether the automaton registered as name accepts input.
func Accept(ctx context.Context, c Catalog, name, input string) (bool, error) {
	return c.Accept(ctx, name, input)
}

// AcceptAll tests inputs against name with cfg.Concurrency workers and
// returns the results in input order.
func AcceptAll(ctx context.Context, c Catalog, name string, inputs []string, cfg WorkerConfig) ([]Result, error) {
	return worker.AcceptAll(ctx, c, name, inputs, cfg)
}

// Union registers the union of left and right as out.
//
//	def, err := regular.Union(ctx, catalog, "keywords", "identifiers", "tokens")
func Union(ctx context.Context, c Catalog, left, right, out string) (Definition, error) {
	return c.Combine(ctx, OpUnion, left, right, out)
}

// Intersection registers the intersection of left and right as out.
func Intersection(ctx context.Context, c Catalog, left, right, out string) (Definition, error) {
	return c.Combine(ctx, OpIntersection, left, right, out)
}

// Difference registers the strings accepted by left but not right as out.
func Difference(ctx context.Context, c Catalog, left, right, out string) (Definition, error) {
	return c.Combine(ctx, OpDifference, left, right, out)
}

// Complement registers the complement of name as out.
func Complement(ctx context.Context, c Catalog, name, out string) (Definition, error) {
	return c.Complement(ctx, name, out)
}
