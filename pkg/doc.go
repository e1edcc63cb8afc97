// Package pkg provides the libraries behind schemagen, a compiler front end
// for schema manifests that describe C++-style declarations.
//
// # Overview
//
// A manifest declares namespaces, structs, enums, graphs and their members.
// Schemagen loads it into a graph in which every declaration is a vertex,
// ownership edges form the lexical tree, and reference edges record which
// declarations use which. Every declaration reached through ownership gets a
// unique absolute path such as "/render/Node/mFlags".
//
// # Packages
//
//   - [path]: path values, segment iteration and normalization
//   - [schema]: declaration kinds, their capabilities and payloads
//   - [syntax]: the ownership graph store, path index and traversal views
//   - [graph]: generic traversal contracts, depth-first search, topological order
//   - [builder]: TOML and YAML manifest loading
//   - [io]: JSON and MessagePack snapshots
//   - [render/nodelink]: Graphviz diagrams
//   - [cache]: compiled snapshot cache for the CLI
//   - [observability]: load, compile and render hooks
//   - [errors]: coded errors shared by every package
//
// # Data Flow
//
//	manifest (.toml / .yaml)
//	         ↓
//	    [builder] (declare, then link owners and references)
//	         ↓
//	    [syntax] (validate, freeze)
//	         ↓
//	    [io] / [render/nodelink] / emission and dependency order
//
// # Quick Start
//
//	g, err := builder.LoadFile(ctx, "render.toml")
//	if err != nil {
//	    return err
//	}
//	v, err := g.At("/render/Node/mFlags")
//	fmt.Println(g.KindOf(v), g.PathOf(v))
//
// [path]: https://pkg.go.dev/github.com/star-e/generator-sub002/pkg/path
// [schema]: https://pkg.go.dev/github.com/star-e/generator-sub002/pkg/schema
// [syntax]: https://pkg.go.dev/github.com/star-e/generator-sub002/pkg/syntax
// [graph]: https://pkg.go.dev/github.com/star-e/generator-sub002/pkg/graph
// [builder]: https://pkg.go.dev/github.com/star-e/generator-sub002/pkg/builder
// [io]: https://pkg.go.dev/github.com/star-e/generator-sub002/pkg/io
// [render/nodelink]: https://pkg.go.dev/github.com/star-e/generator-sub002/pkg/render/nodelink
// [cache]: https://pkg.go.dev/github.com/star-e/generator-sub002/pkg/cache
// [observability]: https://pkg.go.dev/github.com/star-e/generator-sub002/pkg/observability
// [errors]: https://pkg.go.dev/github.com/star-e/generator-sub002/pkg/errors
package pkg
