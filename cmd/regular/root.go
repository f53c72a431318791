package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/petrijr/regular"
	"github.com/petrijr/regular/internal/logging"
	"github.com/petrijr/regular/internal/persistence"
)

// options holds the persistent flags shared by every command.
type options struct {
	logLevel string
	store    string
	prefix   string
	output   string
	workers  int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "regular",
		Short: "Regular builds, combines and tests finite automata",
		Long: `Regular works with deterministic finite automata described in YAML files.

Commands that take FILE arguments work on the files directly. The store
commands keep definitions in a catalog selected with --store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	pf.StringVar(&opts.store, "store", "memory", "Definition store: memory, sqlite:<path> or redis://host:port/db")
	pf.StringVar(&opts.prefix, "prefix", persistence.DefaultRedisPrefix, "Key prefix for the Redis store")
	pf.StringVarP(&opts.output, "output", "o", "", "Write output to this file instead of stdout")
	pf.IntVar(&opts.workers, "workers", 4, "Number of workers testing inputs")

	cmd.AddCommand(
		newAcceptCmd(opts),
		newCombineCmd(opts),
		newComplementCmd(opts),
		newGraphCmd(opts),
		newStoreCmd(opts),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func (o *options) logger(cmd *cobra.Command) (*slog.Logger, error) {
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewWriter(cmd.ErrOrStderr(), level), nil
}

// openCatalog opens the catalog named by --store. The returned closer
// releases the underlying connection.
func (o *options) openCatalog(cmd *cobra.Command) (regular.Catalog, func() error, error) {
	logger, err := o.logger(cmd)
	if err != nil {
		return nil, nil, err
	}
	obs := regular.NewLoggingObserver(logger)
	noop := func() error { return nil }

	switch {
	case o.store == "" || o.store == "memory":
		return regular.NewInMemoryCatalogWithObserver(obs), noop, nil

	case strings.HasPrefix(o.store, "sqlite:"):
		db, err := sql.Open("sqlite", strings.TrimPrefix(o.store, "sqlite:"))
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		catalog, err := regular.NewSQLiteCatalogWithObserver(db, obs)
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		logger.Debug("store_opened", slog.String("backend", "sqlite"))
		return catalog, db.Close, nil

	case strings.HasPrefix(o.store, "redis://"), strings.HasPrefix(o.store, "rediss://"):
		redisOpts, err := redis.ParseURL(o.store)
		if err != nil {
			return nil, nil, fmt.Errorf("open redis store: %w", err)
		}
		client := redis.NewClient(redisOpts)
		logger.Debug("store_opened", slog.String("backend", "redis"), slog.String("prefix", o.prefix))
		return regular.NewRedisCatalogWithObserver(client, o.prefix, obs), client.Close, nil
	}
	return nil, nil, fmt.Errorf("unsupported store %q", o.store)
}

// offlineCatalog returns an in-memory catalog for commands that work on
// files, ignoring --store.
func (o *options) offlineCatalog(cmd *cobra.Command) (regular.Catalog, error) {
	logger, err := o.logger(cmd)
	if err != nil {
		return nil, err
	}
	return regular.NewInMemoryCatalogWithObserver(regular.NewLoggingObserver(logger)), nil
}

// write sends data to --output, or to stdout when it is empty.
func (o *options) write(cmd *cobra.Command, data []byte) error {
	if o.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(o.output, data, 0o644)
}

// writeDefinition marshals def as YAML and writes it.
func (o *options) writeDefinition(cmd *cobra.Command, def regular.Definition) error {
	data, err := marshal(def)
	if err != nil {
		return err
	}
	return o.write(cmd, data)
}

func printResults(w io.Writer, results []regular.Result) {
	for _, r := range results {
		verdict := "reject"
		if r.Accepted {
			verdict = "accept"
		}
		fmt.Fprintf(w, "%s\t%s\n", verdict, r.Input)
	}
}
