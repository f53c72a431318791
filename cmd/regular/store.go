package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petrijr/regular"
	"github.com/petrijr/regular/pkg/graph"
)

// newStoreCmd groups the commands working on the catalog selected with
// --store.
func newStoreCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage automata kept in a catalog",
		Long: `Stores automaton definitions by name and works with them. The catalog is
selected with --store; the default in-memory catalog only lives for one
command, so use a SQLite file or Redis to keep definitions between runs.`,
	}
	cmd.AddCommand(
		storeCommand(opts, &cobra.Command{
			Use:   "put FILE...",
			Short: "Register definition files",
			Args:  cobra.MinimumNArgs(1),
		}, func(cmd *cobra.Command, c regular.Catalog, args []string) error {
			names, err := loadInto(cmd.Context(), c, args...)
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "registered %s\n", n)
			}
			return nil
		}),
		storeCommand(opts, &cobra.Command{
			Use:   "get NAME",
			Short: "Print a stored definition as YAML",
			Args:  cobra.ExactArgs(1),
		}, func(cmd *cobra.Command, c regular.Catalog, args []string) error {
			def, err := c.Definition(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return opts.writeDefinition(cmd, def)
		}),
		storeCommand(opts, &cobra.Command{
			Use:   "list",
			Short: "List stored names",
			Args:  cobra.NoArgs,
		}, func(cmd *cobra.Command, c regular.Catalog, args []string) error {
			names, err := c.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		}),
		storeCommand(opts, &cobra.Command{
			Use:   "accept NAME [INPUT...]",
			Short: "Test inputs against a stored automaton",
			Args:  cobra.MinimumNArgs(1),
		}, func(cmd *cobra.Command, c regular.Catalog, args []string) error {
			in, err := inputs(cmd, args[1:])
			if err != nil {
				return err
			}
			results, err := regular.AcceptAll(cmd.Context(), c, args[0], in, regular.WorkerConfig{Concurrency: opts.workers})
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		}),
		storeCommand(opts, &cobra.Command{
			Use:   "combine OP LEFT RIGHT OUT",
			Short: "Store the union, intersection or difference of two stored automata",
			Args:  cobra.ExactArgs(4),
		}, func(cmd *cobra.Command, c regular.Catalog, args []string) error {
			op, err := binaryOp(args[0])
			if err != nil {
				return err
			}
			def, err := c.Combine(cmd.Context(), op, args[1], args[2], args[3])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered %s (%d states)\n", def.Name, len(def.States))
			return nil
		}),
		storeCommand(opts, &cobra.Command{
			Use:   "complement NAME OUT",
			Short: "Store the complement of a stored automaton",
			Args:  cobra.ExactArgs(2),
		}, func(cmd *cobra.Command, c regular.Catalog, args []string) error {
			def, err := c.Complement(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered %s (%d states)\n", def.Name, len(def.States))
			return nil
		}),
		storeGraphCmd(opts),
		storeCommand(opts, &cobra.Command{
			Use:   "delete NAME",
			Short: "Remove a stored definition",
			Args:  cobra.ExactArgs(1),
		}, func(cmd *cobra.Command, c regular.Catalog, args []string) error {
			return c.Remove(cmd.Context(), args[0])
		}),
	)
	return cmd
}

func storeGraphCmd(opts *options) *cobra.Command {
	var format string
	cmd := storeCommand(opts, &cobra.Command{
		Use:   "graph NAME",
		Short: "Render a stored automaton as a state diagram",
		Args:  cobra.ExactArgs(1),
	}, func(cmd *cobra.Command, c regular.Catalog, args []string) error {
		f, err := graph.ParseFormat(format)
		if err != nil {
			return err
		}
		def, err := c.Definition(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		out, err := graph.Render(def, f)
		if err != nil {
			return err
		}
		return opts.write(cmd, []byte(out))
	})
	cmd.Flags().StringVar(&format, "format", string(graph.FormatMermaid), "Output format: mermaid or dot")
	return cmd
}

// storeCommand sets cmd.RunE to open the catalog, call run and close the
// catalog again.
func storeCommand(opts *options, cmd *cobra.Command, run func(*cobra.Command, regular.Catalog, []string) error) *cobra.Command {
	cmd.RunE = func(cmd *cobra.Command, args []string) (err error) {
		catalog, closeStore, err := opts.openCatalog(cmd)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := closeStore(); err == nil {
				err = cerr
			}
		}()
		return run(cmd, catalog, args)
	}
	return cmd
}
