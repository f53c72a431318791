package main

import (
	"github.com/spf13/cobra"

	"github.com/petrijr/regular/pkg/definition"
	"github.com/petrijr/regular/pkg/graph"
)

// newGraphCmd represents the graph command
func newGraphCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "graph FILE",
		Short: "Render an automaton file as a state diagram",
		Long:  `Outputs a Mermaid flowchart (default) or a Graphviz digraph of the automaton described by FILE.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := graph.ParseFormat(format)
			if err != nil {
				return err
			}
			def, err := definition.Load(args[0])
			if err != nil {
				return err
			}
			out, err := graph.Render(def, f)
			if err != nil {
				return err
			}
			return opts.write(cmd, []byte(out))
		},
	}
	cmd.Flags().StringVar(&format, "format", string(graph.FormatMermaid), "Output format: mermaid or dot")
	return cmd
}
