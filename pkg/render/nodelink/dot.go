package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/star-e/generator-sub002/pkg/schema"
	"github.com/star-e/generator-sub002/pkg/syntax"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds capabilities and the absolute path to node labels.
	// When false, only the name and kind are shown.
	Detailed bool

	// References draws reference edges as dashed arrows on top of the
	// ownership tree.
	References bool
}

// ToDOT converts a syntax graph to Graphviz DOT format.
// Ownership edges are solid; reference edges are dashed and only emitted
// when [Options.References] is set. Non-addressable vertices are drawn with a
// dashed outline.
func ToDOT(g *syntax.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, v := range syntax.EmissionOrder(g) {
		label := fmtLabel(g, v, opts.Detailed)
		attrs := fmtAttrs(g, v, label)
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(v), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	own := g.Addressable()
	for _, e := range own.Edges() {
		fmt.Fprintf(&buf, "  %s -> %s;\n", nodeID(own.Source(e)), nodeID(own.Target(e)))
	}

	if opts.References {
		deps := g.Dependencies()
		for _, e := range deps.Edges() {
			fmt.Fprintf(&buf, "  %s -> %s [style=dashed, color=grey40, constraint=false];\n",
				nodeID(deps.Source(e)), nodeID(deps.Target(e)))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(v syntax.VertexID) string {
	return "v" + strconv.FormatUint(uint64(v), 10)
}

func fmtLabel(g *syntax.Graph, v syntax.VertexID, detailed bool) string {
	kind := g.KindOf(v)
	label := g.Name(v) + "\n<" + kind.String() + ">"
	if !detailed {
		return label
	}
	parts := []string{"caps: " + kind.Capabilities().String()}
	if p := g.PathOf(v); p != "" {
		parts = append(parts, "path: "+p)
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(g *syntax.Graph, v syntax.VertexID, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if fill := fillColor(g.KindOf(v)); fill != "" {
		attrs = append(attrs, "fillcolor="+fill)
	}
	if !g.IsAddressable(v) {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"")
	}
	return attrs
}

// fillColor tints nodes by their strongest capability.
func fillColor(k schema.Kind) string {
	switch {
	case k.Is(schema.Instantiation):
		return "lavender"
	case k.Is(schema.Template):
		return "lightyellow"
	case k.Is(schema.Composition):
		return "lightblue"
	case k.Is(schema.Data):
		return "honeydew"
	default:
		return ""
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
