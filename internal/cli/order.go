package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/star-e/generator-sub002/pkg/syntax"
)

// orderCommand prints declarations in dependency order: every referenced
// declaration before the declarations that refer to it.
func (c *CLI) orderCommand() *cobra.Command {
	var ownership bool

	cmd := &cobra.Command{
		Use:               "order [manifest]",
		Short:             "Print declarations in dependency or emission order",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeManifests,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var order []syntax.VertexID
			if ownership {
				order = syntax.EmissionOrder(g)
			} else if order, err = syntax.DependencyOrder(g); err != nil {
				return err
			}

			for i, v := range order {
				fmt.Fprintf(c.out, "%3d  %s\n", i+1, label(g, v))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&ownership, "ownership", false, "walk the ownership tree instead of references")
	return cmd
}

// label names v by its path, or by its name and kind when it has none.
func label(g *syntax.Graph, v syntax.VertexID) string {
	if p := g.PathOf(v); p != "" {
		return p
	}
	return fmt.Sprintf("%s <%s>", g.Name(v), g.KindOf(v))
}
