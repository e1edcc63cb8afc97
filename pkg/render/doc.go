// Package render groups the visual outputs of a compiled schema graph.
//
// The [nodelink] subpackage emits Graphviz DOT and renders it to SVG or PNG.
//
// [nodelink]: github.com/star-e/generator-sub002/pkg/render/nodelink
package render
