package main

import (
	"github.com/spf13/cobra"

	"github.com/petrijr/regular"
)

// newAcceptCmd represents the accept command
func newAcceptCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "accept FILE [INPUT...]",
		Short: "Test inputs against an automaton file",
		Long: `Loads the automaton described by FILE and prints accept or reject for each
input. Without INPUT arguments, every line of standard input is tested.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			catalog, err := opts.offlineCatalog(cmd)
			if err != nil {
				return err
			}

			names, err := loadInto(ctx, catalog, args[0])
			if err != nil {
				return err
			}
			in, err := inputs(cmd, args[1:])
			if err != nil {
				return err
			}

			results, err := regular.AcceptAll(ctx, catalog, names[0], in, regular.WorkerConfig{Concurrency: opts.workers})
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
}
