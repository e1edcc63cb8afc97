package syntax

import (
	"slices"

	"github.com/star-e/generator-sub002/pkg/graph"
)

// AddressableView exposes the ownership hierarchy of a Graph through the
// generic traversal contracts. Out-edges are ownerships owned by a vertex
// and in-edges are ownerships owning it; reference edges are invisible.
//
// The view holds no state of its own and reflects the graph at call time.
type AddressableView struct {
	g *Graph
}

var (
	_ graph.ListBidirectionalGraph[VertexID, Ownership] = AddressableView{}
	_ graph.AdjacencyGraph[VertexID]                    = AddressableView{}
	_ graph.EdgeListGraph[VertexID, Ownership]          = AddressableView{}
	_ graph.EdgeLookup[VertexID, Ownership]             = AddressableView{}
)

// Addressable returns the ownership view of g.
func (g *Graph) Addressable() AddressableView { return AddressableView{g: g} }

// Graph returns the underlying store.
func (a AddressableView) Graph() *Graph { return a.g }

func (a AddressableView) Source(e Ownership) VertexID { return e.Owner }
func (a AddressableView) Target(e Ownership) VertexID { return e.Owned }

func (a AddressableView) OutEdges(v VertexID) []Ownership { return a.g.Children(v) }
func (a AddressableView) OutDegree(v VertexID) int        { return a.g.NumChildren(v) }
func (a AddressableView) InEdges(v VertexID) []Ownership  { return a.g.Parents(v) }
func (a AddressableView) InDegree(v VertexID) int         { return a.g.NumParents(v) }

// Degree is the number of ownership edges entering or leaving v.
func (a AddressableView) Degree(v VertexID) int {
	return a.g.NumParents(v) + a.g.NumChildren(v)
}

// AdjacentVertices returns the owned vertices of v, once per ownership edge.
func (a AddressableView) AdjacentVertices(v VertexID) []VertexID { return a.g.ChildVertices(v) }

func (a AddressableView) Vertices() []VertexID { return a.g.Vertices() }
func (a AddressableView) NumVertices() int     { return a.g.NumVertices() }

// Edges returns every ownership edge; parallel edges stay distinct.
func (a AddressableView) Edges() []Ownership { return a.g.Ownerships() }
func (a AddressableView) NumEdges() int      { return a.g.NumOwnerships() }

// Edge returns the first ownership edge from u to v.
func (a AddressableView) Edge(u, v VertexID) (Ownership, bool) { return a.g.Ownership(u, v) }

// DependencyView exposes the reference edges of a Graph through the generic
// traversal contracts. Out-edges are references leaving a vertex.
type DependencyView struct {
	g *Graph
}

var (
	_ graph.ListBidirectionalGraph[VertexID, Reference] = DependencyView{}
	_ graph.AdjacencyGraph[VertexID]                    = DependencyView{}
	_ graph.EdgeListGraph[VertexID, Reference]          = DependencyView{}
	_ graph.EdgeLookup[VertexID, Reference]             = DependencyView{}
)

// Dependencies returns the reference view of g.
func (g *Graph) Dependencies() DependencyView { return DependencyView{g: g} }

// Graph returns the underlying store.
func (d DependencyView) Graph() *Graph { return d.g }

func (d DependencyView) Source(e Reference) VertexID { return e.From }
func (d DependencyView) Target(e Reference) VertexID { return e.To }

func (d DependencyView) OutEdges(v VertexID) []Reference { return d.g.References(v) }
func (d DependencyView) OutDegree(v VertexID) int        { return len(d.g.References(v)) }
func (d DependencyView) InEdges(v VertexID) []Reference  { return d.g.Referrers(v) }
func (d DependencyView) InDegree(v VertexID) int         { return len(d.g.Referrers(v)) }
func (d DependencyView) Degree(v VertexID) int           { return d.OutDegree(v) + d.InDegree(v) }

// AdjacentVertices returns the targets of v's references.
func (d DependencyView) AdjacentVertices(v VertexID) []VertexID {
	refs := d.g.References(v)
	out := make([]VertexID, len(refs))
	for i, e := range refs {
		out[i] = e.To
	}
	return out
}

func (d DependencyView) Vertices() []VertexID { return d.g.Vertices() }
func (d DependencyView) NumVertices() int     { return d.g.NumVertices() }

func (d DependencyView) Edges() []Reference { return d.g.AllReferences() }
func (d DependencyView) NumEdges() int      { return d.g.NumReferences() }

// Edge returns the first reference from u to v.
func (d DependencyView) Edge(u, v VertexID) (Reference, bool) { return d.g.Reference(u, v) }

// EmissionOrder lists the vertices reachable from the ownership roots in
// depth-first preorder, following declaration order. This is the order
// declarations appear in generated sources.
func EmissionOrder(g *Graph) []VertexID {
	view := g.Addressable()
	seen := make(map[VertexID]bool, g.NumVertices())
	out := make([]VertexID, 0, g.NumVertices())
	for _, root := range g.Roots() {
		_ = graph.DepthFirstFrom(view, root, graph.Visitor[VertexID, Ownership]{
			DiscoverVertex: func(v VertexID) error {
				if !seen[v] {
					seen[v] = true
					out = append(out, v)
				}
				return nil
			},
		})
	}
	return out
}

// DependencyOrder orders the vertices so that every reference target comes
// before the vertices referring to it.
//
// Errors: GRAPH_HAS_CYCLE when references form a cycle.
func DependencyOrder(g *Graph) ([]VertexID, error) {
	order, err := graph.TopologicalSort[VertexID, Reference](g.Dependencies())
	if err != nil {
		return nil, err
	}
	slices.Reverse(order)
	return order, nil
}
