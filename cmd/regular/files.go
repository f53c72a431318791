package main

import (
	"bufio"
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/petrijr/regular"
	"github.com/petrijr/regular/pkg/definition"
)

func marshal(def regular.Definition) ([]byte, error) {
	return definition.Marshal(def)
}

// loadInto loads definition files and registers them with c, returning
// the registered names in argument order. A name already taken by an
// earlier file gets a trailing prime.
func loadInto(ctx context.Context, c regular.Catalog, paths ...string) ([]string, error) {
	names := make([]string, 0, len(paths))
	taken := make(map[string]bool, len(paths))
	for _, p := range paths {
		def, err := definition.Load(p)
		if err != nil {
			return nil, err
		}
		for taken[def.Name] {
			def.Name += "'"
		}
		taken[def.Name] = true
		if err := c.Register(ctx, def); err != nil {
			return nil, err
		}
		names = append(names, def.Name)
	}
	return names, nil
}

// inputs returns the positional inputs, or the lines of stdin when there
// are none.
func inputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	return readLines(cmd.InOrStdin())
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
