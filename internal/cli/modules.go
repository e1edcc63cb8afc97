package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/star-e/generator-sub002/pkg/builder"
	"github.com/star-e/generator-sub002/pkg/syntax"
)

// modulesCommand compiles several manifests together and lists their
// modules in dependency order.
func (c *CLI) modulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "modules [manifest...]",
		Short:             "Compile manifests together and list their modules in dependency order",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeManifests,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runModules(cmd.Context(), args)
		},
	}
}

func (c *CLI) runModules(ctx context.Context, files []string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger, files...)
	g, err := builder.LoadFiles(ctx, appName, files, builder.WithLogger(logger))
	if err != nil {
		return err
	}
	mg := g.Modules()
	prog.done("Compiled %d manifests: %d declarations", len(files), g.NumVertices())

	order, err := syntax.ModuleOrder(mg)
	if err != nil {
		return err
	}

	printTitle(c.out, fmt.Sprintf("%d modules", mg.NumModules()))
	fmt.Fprintln(c.out, renderTable(
		[]string{"#", "Module", "Export", "API", "Folder", "Prefix", "Requires", "Decls"},
		moduleRows(g, order),
	))
	return nil
}

func moduleRows(g *syntax.Graph, order []syntax.ModuleID) [][]string {
	mg := g.Modules()
	rows := make([][]string, 0, len(order))
	for i, m := range order {
		info := mg.Info(m)
		var requires []string
		for _, d := range mg.Requires(m) {
			requires = append(requires, mg.PathOf(d.To))
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			mg.PathOf(m),
			strconv.FormatBool(info.Export),
			orDash(info.API),
			orDash(info.Folder),
			orDash(info.FilePrefix),
			orDash(strings.Join(requires, ", ")),
			strconv.Itoa(len(g.VerticesIn(mg.PathOf(m)))),
		})
	}
	return rows
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
