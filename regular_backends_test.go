package regular

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestSQLiteCatalog_PersistsAcrossInstances(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	first, err := NewSQLiteCatalog(db)
	require.NoError(t, err)
	registerParity(t, first)

	metrics := &BasicMetrics{}
	second, err := NewSQLiteCatalogWithObserver(db, metrics)
	require.NoError(t, err)

	ctx := context.Background()
	ok, err := Accept(ctx, second, "odd-ones", "111")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(1), metrics.Snapshot().Compiles)

	names, err := second.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"odd-ones"}, names)
}

func TestRedisCatalog_SharedPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	writer := NewRedisCatalog(client, "regular:shared:")
	registerParity(t, writer)

	metrics := &BasicMetrics{}
	reader := NewRedisCatalogWithObserver(client, "regular:shared:", metrics)
	other := NewRedisCatalog(client, "regular:other:")

	ctx := context.Background()
	ok, err := Accept(ctx, reader, "odd-ones", "1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(1), metrics.Snapshot().Accepted)

	_, err = Accept(ctx, other, "odd-ones", "1")
	require.True(t, errors.Is(err, ErrAutomatonNotFound), "got %v", err)
}

func TestAcceptAll_Wrapper(t *testing.T) {
	catalog := NewInMemoryCatalog()
	registerParity(t, catalog)

	results, err := AcceptAll(context.Background(), catalog, "odd-ones", []string{"1", "11", "101"}, WorkerConfig{Concurrency: 2})
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.True(t, results[0].Accepted)
	require.False(t, results[1].Accepted)
	require.False(t, results[2].Accepted)
}

func TestParseOp_Wrapper(t *testing.T) {
	op, err := ParseOp("difference")
	require.NoError(t, err)
	require.Equal(t, OpDifference, op)

	_, err = ParseOp("concat")
	require.True(t, errors.Is(err, ErrUnknownOperation))
}
