// Package syntax provides the ownership graph that stores a parsed schema.
//
// # Overview
//
// Every declaration in a schema (namespace, struct, member, enum value,
// template instance, ...) is a vertex in a [Graph]. Vertices carry a name and
// a kind-specific [schema.Payload] and are identified by a dense [VertexID]
// assigned in insertion order. Vertices are never removed.
//
// Two independent edge families connect vertices:
//
//   - Ownership edges form the structural hierarchy ("struct Node owns member
//     flags"). A vertex may have several owners; the first ownership
//     registered is its canonical parent, which defines its path.
//   - Reference edges record non-owning semantic links ("member flags refers
//     to type Flags"). They never affect paths or ownership traversal.
//
// A vertex becomes addressable once a normalized absolute path is registered
// for it. The path index maps each registered path to exactly one vertex.
//
// # Basic Usage
//
//	g := syntax.New(syntax.WithModule("render"))
//	ns, _ := g.AddChild(syntax.NullVertex, "render", &schema.Namespace{})
//	node, _ := g.AddChild(ns, "Node", &schema.Struct{})
//	g.AddChild(node, "flags", &schema.Member{TypePath: "Flags"})
//	g.Freeze()
//
//	v, _ := g.At("/render/Node/flags")
//	fmt.Println(g.KindOf(v)) // Member
//
// # Traversal
//
// [Graph.Addressable] returns an [AddressableView] exposing ownership edges
// through the generic contracts of package graph, so algorithms such as
// graph.DepthFirst and graph.TopologicalSort run unchanged over the
// hierarchy. [Graph.Dependencies] does the same for reference edges.
//
// # Lifecycle
//
// A Graph starts in the building state. [Graph.Freeze] moves it to the
// read-only state, after which every write fails with GRAPH_FROZEN.
// Failed writes never leave partial state behind.
//
// # Concurrency
//
// Graph performs no locking. Build it from a single goroutine; once frozen it
// may be read from any number of goroutines.
package syntax
