package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotwalk/pkg/attr"
)

var kinds = []attr.Kind{attr.KindGraph, attr.KindNode, attr.KindEdge}

// grammarCommand creates the grammar command, which lists the attributes
// the serializer accepts.
func (c *CLI) grammarCommand() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Show the attribute grammar in effect",
		Example: `  dotwalk grammar
  dotwalk grammar --kind edge
  dotwalk grammar --grammar custom.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			show := kinds
			if kind != "" {
				k, err := parseKind(kind)
				if err != nil {
					return err
				}
				show = []attr.Kind{k}
			}

			g, source, err := c.grammars()
			if err != nil {
				return err
			}
			printGrammar(cmd.OutOrStdout(), source, g, show)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "only show one entity kind: graph, node or edge")

	return cmd
}

func parseKind(s string) (attr.Kind, error) {
	for _, k := range kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("invalid kind: %s (must be 'graph', 'node', or 'edge')", s)
}

func printGrammar(w io.Writer, source string, g attr.Grammars, show []attr.Kind) {
	fmt.Fprintln(w, StyleDim.Render("Grammar: "+source))
	for _, k := range show {
		gr := g.For(k)
		fmt.Fprintln(w)
		printHeading(w, fmt.Sprintf("%s attributes (%d)", k, len(gr)))
		for _, name := range slices.Sorted(maps.Keys(gr)) {
			printKeyValue(w, name, gr[name].String())
		}
	}
}
