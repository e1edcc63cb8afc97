package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/star-e/generator-sub002/internal/config"
	"github.com/star-e/generator-sub002/pkg/io"
	"github.com/star-e/generator-sub002/pkg/observability"
	"github.com/star-e/generator-sub002/pkg/render/nodelink"
	"github.com/star-e/generator-sub002/pkg/syntax"
)

// renderOpts holds the command-line flags for the render command.
// Unset flags fall back to the loaded configuration.
type renderOpts struct {
	output     string   // output directory
	formats    []string // dot, svg, png, json, msgpack
	detailed   bool     // capabilities and paths in node labels
	references bool     // dashed reference edges
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts
	var formatsStr string

	cmd := &cobra.Command{
		Use:               "render [manifest]",
		Short:             "Write diagrams and snapshots of a compiled schema graph",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeManifests,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.settings()
			flags := cmd.Flags()
			if !flags.Changed("output") {
				opts.output = cfg.Output.Dir
			}
			opts.formats = cfg.Output.Formats
			if flags.Changed("format") {
				opts.formats = parseFormats(formatsStr)
			}
			if !flags.Changed("detailed") {
				opts.detailed = cfg.Render.Detailed
			}
			if !flags.Changed("references") {
				opts.references = cfg.Render.References
			}
			if err := config.ValidateFormats(opts.formats); err != nil {
				return fmt.Errorf("--format: %w", err)
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): "+strings.Join(config.Formats, ", ")+" (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show capabilities and paths in diagram labels")
	cmd.Flags().BoolVar(&opts.references, "references", true, "draw reference edges in diagrams")

	return cmd
}

// parseFormats splits the --format flag. Empty and repeated entries are
// dropped so each artifact is written once.
func parseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return config.UniqueFormats(out)
}

func (c *CLI) runRender(ctx context.Context, file string, opts *renderOpts) error {
	g, err := c.loadGraph(ctx, file)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	paths, err := writeArtifacts(ctx, g, opts)
	if err != nil {
		return err
	}

	printSuccess(c.out, "Rendered %s", g.Module())
	for _, p := range paths {
		printFile(c.out, p)
	}
	return nil
}

// writeArtifacts writes one file per format concurrently. The frozen graph
// is only read. Paths are returned in format order.
func writeArtifacts(ctx context.Context, g *syntax.Graph, opts *renderOpts) ([]string, error) {
	hooks := observability.Output()
	hooks.OnRenderStart(ctx, opts.formats)
	start := time.Now()

	base := g.Module()
	if base == "" {
		base = "schema"
	}
	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: opts.detailed, References: opts.references})

	paths := make([]string, len(opts.formats))
	eg, gctx := errgroup.WithContext(ctx)
	for i, format := range opts.formats {
		eg.Go(func() error {
			data, err := encode(gctx, g, dot, format)
			if err != nil {
				return fmt.Errorf("%s: %w", format, err)
			}
			p := filepath.Join(opts.output, base+"."+format)
			if err := os.WriteFile(p, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", p, err)
			}
			hooks.OnArtifactWritten(gctx, format, p, len(data))
			loggerFromContext(gctx).Debug("artifact written", "format", format, "path", p, "bytes", len(data))
			paths[i] = p
			return nil
		})
	}
	err := eg.Wait()
	hooks.OnRenderComplete(ctx, opts.formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func encode(ctx context.Context, g *syntax.Graph, dot, format string) ([]byte, error) {
	switch format {
	case "dot":
		return []byte(dot), nil
	case "svg":
		return nodelink.RenderSVG(ctx, dot)
	case "png":
		return nodelink.RenderPNG(ctx, dot)
	case "json":
		return io.MarshalJSON(g)
	case "msgpack":
		return io.MarshalMsgpack(g)
	default:
		return nil, fmt.Errorf("unsupported format")
	}
}
