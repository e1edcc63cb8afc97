package graph

// Graph reports the endpoints of an edge.
type Graph[V comparable, E any] interface {
	Source(e E) V
	Target(e E) V
}

// IncidenceGraph enumerates the edges leaving a vertex.
type IncidenceGraph[V comparable, E any] interface {
	Graph[V, E]
	OutEdges(v V) []E
	OutDegree(v V) int
}

// BidirectionalGraph additionally enumerates the edges entering a vertex.
// Degree is InDegree plus OutDegree.
type BidirectionalGraph[V comparable, E any] interface {
	IncidenceGraph[V, E]
	InEdges(v V) []E
	InDegree(v V) int
	Degree(v V) int
}

// AdjacencyGraph enumerates the targets of a vertex's out-edges.
// A target reached through parallel edges appears once per edge.
type AdjacencyGraph[V comparable] interface {
	AdjacentVertices(v V) []V
}

// VertexListGraph enumerates all vertices.
type VertexListGraph[V comparable] interface {
	Vertices() []V
	NumVertices() int
}

// EdgeListGraph enumerates all edges.
type EdgeListGraph[V comparable, E any] interface {
	Graph[V, E]
	Edges() []E
	NumEdges() int
}

// EdgeLookup finds the first edge from u to v.
type EdgeLookup[V comparable, E any] interface {
	Edge(u, v V) (E, bool)
}

// ListIncidenceGraph is an IncidenceGraph whose vertices can be enumerated.
type ListIncidenceGraph[V comparable, E any] interface {
	IncidenceGraph[V, E]
	VertexListGraph[V]
}

// ListBidirectionalGraph is a BidirectionalGraph whose vertices can be
// enumerated.
type ListBidirectionalGraph[V comparable, E any] interface {
	BidirectionalGraph[V, E]
	VertexListGraph[V]
}
