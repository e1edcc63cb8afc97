// Package nodelink renders syntax graphs as node-link diagrams.
//
// Declarations appear as boxes, laid out top to bottom along the ownership
// tree. Reference edges can be overlaid as dashed arrows. Vertices without a
// path are drawn with a dashed outline.
//
//	dot := nodelink.ToDOT(g, nodelink.Options{References: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Rendering uses [github.com/goccy/go-graphviz], which embeds Graphviz as
// WebAssembly, so no system installation is needed.
package nodelink
