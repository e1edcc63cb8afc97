package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/star-e/generator-sub002/pkg/schema"
	"github.com/star-e/generator-sub002/pkg/syntax"
)

// inspectCommand compiles a manifest and lists its declarations in emission
// order.
func (c *CLI) inspectCommand() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:               "inspect [manifest]",
		Short:             "Compile a schema manifest and list its declarations",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeManifests,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter schema.Kind
			if kind != "" {
				k, err := schema.ParseKind(kind)
				if err != nil {
					return err
				}
				filter = k
			}
			return c.runInspect(cmd.Context(), args[0], filter)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "only list declarations of this kind")
	return cmd
}

func (c *CLI) runInspect(ctx context.Context, file string, filter schema.Kind) error {
	g, err := c.loadGraph(ctx, file)
	if err != nil {
		return err
	}

	printTitle(c.out, g.Module())
	printStats(c.out, g.NumVertices(), g.NumOwnerships(), g.NumReferences())
	fmt.Fprintln(c.out, renderTable(
		[]string{"ID", "Name", "Kind", "Capabilities", "Path", "Owner", "Refs"},
		inspectRows(g, filter),
	))

	for _, v := range g.Ambiguities() {
		if filter != schema.KindInvalid && g.KindOf(v) != filter {
			continue
		}
		printWarning(c.out, "%s has %d owners", g.PathOf(v), g.NumParents(v))
	}
	return nil
}

// inspectRows returns one row per declaration, in emission order. A zero
// filter keeps every kind.
func inspectRows(g *syntax.Graph, filter schema.Kind) [][]string {
	var rows [][]string
	for _, v := range syntax.EmissionOrder(g) {
		kind := g.KindOf(v)
		if filter != schema.KindInvalid && kind != filter {
			continue
		}
		p := g.PathOf(v)
		if p == "" {
			p = "-"
		}
		owner := "-"
		if u, ok := g.Parent(v); ok {
			owner = g.Name(u)
		}
		rows = append(rows, []string{
			strconv.FormatUint(uint64(v), 10),
			g.Name(v),
			kind.String(),
			kind.Capabilities().String(),
			p,
			owner,
			strconv.Itoa(len(g.References(v))),
		})
	}
	return rows
}
