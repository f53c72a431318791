package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petrijr/regular"
)

// newCombineCmd represents the combine command
func newCombineCmd(opts *options) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "combine OP LEFT RIGHT",
		Short: "Combine two automaton files",
		Long: `Builds the union, intersection or difference of the automata described by
the LEFT and RIGHT files and prints the result as YAML.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := binaryOp(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			catalog, err := opts.offlineCatalog(cmd)
			if err != nil {
				return err
			}

			names, err := loadInto(ctx, catalog, args[1], args[2])
			if err != nil {
				return err
			}
			out := name
			if out == "" {
				out = fmt.Sprintf("%s-%s-%s", names[0], op, names[1])
			}

			def, err := catalog.Combine(ctx, op, names[0], names[1], out)
			if err != nil {
				return err
			}
			return opts.writeDefinition(cmd, def)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Name of the result (default LEFT-OP-RIGHT)")
	return cmd
}

// newComplementCmd represents the complement command
func newComplementCmd(opts *options) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "complement FILE",
		Short: "Complement an automaton file",
		Long: `Swaps the accepting and non-accepting states of the automaton described by
FILE and prints the result as YAML. Inputs without a transition are still
rejected, so the result is the complement within the strings the
automaton reads to the end.`,
		Args: cobra.ExactArgs(1),
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
			out := name
			if out == "" {
				out = "not-" + names[0]
			}

			def, err := catalog.Complement(ctx, names[0], out)
			if err != nil {
				return err
			}
			return opts.writeDefinition(cmd, def)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Name of the result (default not-NAME)")
	return cmd
}

func binaryOp(s string) (regular.Op, error) {
	op, err := regular.ParseOp(s)
	if err != nil {
		return "", err
	}
	if op == regular.OpComplement {
		return "", fmt.Errorf("%w: use the complement command", regular.ErrUnknownOperation)
	}
	return op, nil
}
