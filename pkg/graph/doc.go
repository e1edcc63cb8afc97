// Package graph defines generic traversal contracts and the algorithms
// written once against them.
//
// # Overview
//
// A graph is anything that can report the endpoints of its edges and
// enumerate the edges leaving or entering a vertex. The contracts are split
// by capability so that an adapter only implements what it can answer in
// constant or linear time:
//
//   - [Graph]: Source and Target of an edge
//   - [IncidenceGraph]: out-edges of a vertex
//   - [BidirectionalGraph]: in-edges and total degree
//   - [AdjacencyGraph]: successor vertices
//   - [VertexListGraph]: the vertex set
//   - [EdgeListGraph]: the edge set
//   - [EdgeLookup]: the first edge between two vertices
//
// Vertex and edge types are type parameters. Edges are opaque to this package;
// parallel edges stay distinct values.
//
// # Algorithms
//
// [DepthFirst] and [DepthFirstFrom] drive a [Visitor] through a three-colour
// depth-first search and classify every examined edge as a tree, back or
// forward/cross edge. [TopologicalSort], [Reachable], [Sources] and [Sinks]
// are built on the same search.
//
// Vertices are visited in the order the graph enumerates them and edges in
// the order OutEdges returns them, so every result is deterministic.
//
// # Concurrency
//
// Algorithms keep their state on the stack and never mutate the graph. They
// are safe to run concurrently over a graph that is no longer being written.
package graph
