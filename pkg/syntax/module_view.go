package syntax

import (
	"slices"

	"github.com/star-e/generator-sub002/pkg/graph"
)

// ModuleTreeView exposes module nesting through the generic traversal
// contracts. Out-edges are ownerships owned by a module.
type ModuleTreeView struct {
	mg *ModuleGraph
}

var (
	_ graph.ListBidirectionalGraph[ModuleID, ModuleOwnership] = ModuleTreeView{}
	_ graph.AdjacencyGraph[ModuleID]                          = ModuleTreeView{}
	_ graph.EdgeListGraph[ModuleID, ModuleOwnership]          = ModuleTreeView{}
	_ graph.EdgeLookup[ModuleID, ModuleOwnership]             = ModuleTreeView{}
)

// Addressable returns the ownership view of mg.
func (mg *ModuleGraph) Addressable() ModuleTreeView { return ModuleTreeView{mg: mg} }

func (t ModuleTreeView) Source(e ModuleOwnership) ModuleID { return e.Owner }
func (t ModuleTreeView) Target(e ModuleOwnership) ModuleID { return e.Owned }

func (t ModuleTreeView) OutEdges(m ModuleID) []ModuleOwnership { return t.mg.Children(m) }
func (t ModuleTreeView) OutDegree(m ModuleID) int              { return len(t.mg.Children(m)) }
func (t ModuleTreeView) InEdges(m ModuleID) []ModuleOwnership  { return t.mg.Parents(m) }
func (t ModuleTreeView) InDegree(m ModuleID) int               { return len(t.mg.Parents(m)) }
func (t ModuleTreeView) Degree(m ModuleID) int                 { return t.OutDegree(m) + t.InDegree(m) }

func (t ModuleTreeView) AdjacentVertices(m ModuleID) []ModuleID { return t.mg.ChildModules(m) }

func (t ModuleTreeView) Vertices() []ModuleID { return t.mg.Modules() }
func (t ModuleTreeView) NumVertices() int     { return t.mg.NumModules() }

func (t ModuleTreeView) Edges() []ModuleOwnership { return t.mg.Ownerships() }
func (t ModuleTreeView) NumEdges() int            { return t.mg.NumOwnerships() }

func (t ModuleTreeView) Edge(u, v ModuleID) (ModuleOwnership, bool) { return t.mg.Ownership(u, v) }

// ModuleDependencyView exposes module dependencies through the generic
// traversal contracts. Out-edges point at the modules a module imports.
type ModuleDependencyView struct {
	mg *ModuleGraph
}

var (
	_ graph.ListBidirectionalGraph[ModuleID, ModuleDependency] = ModuleDependencyView{}
	_ graph.AdjacencyGraph[ModuleID]                           = ModuleDependencyView{}
	_ graph.EdgeListGraph[ModuleID, ModuleDependency]          = ModuleDependencyView{}
	_ graph.EdgeLookup[ModuleID, ModuleDependency]             = ModuleDependencyView{}
)

// Dependencies returns the dependency view of mg.
func (mg *ModuleGraph) Dependencies() ModuleDependencyView { return ModuleDependencyView{mg: mg} }

func (d ModuleDependencyView) Source(e ModuleDependency) ModuleID { return e.From }
func (d ModuleDependencyView) Target(e ModuleDependency) ModuleID { return e.To }

func (d ModuleDependencyView) OutEdges(m ModuleID) []ModuleDependency { return d.mg.Requires(m) }
func (d ModuleDependencyView) OutDegree(m ModuleID) int               { return len(d.mg.Requires(m)) }
func (d ModuleDependencyView) InEdges(m ModuleID) []ModuleDependency  { return d.mg.RequiredBy(m) }
func (d ModuleDependencyView) InDegree(m ModuleID) int                { return len(d.mg.RequiredBy(m)) }
func (d ModuleDependencyView) Degree(m ModuleID) int                  { return d.OutDegree(m) + d.InDegree(m) }

// AdjacentVertices returns the modules m imports, once per dependency edge.
func (d ModuleDependencyView) AdjacentVertices(m ModuleID) []ModuleID {
	deps := d.mg.Requires(m)
	out := make([]ModuleID, len(deps))
	for i, e := range deps {
		out[i] = e.To
	}
	return out
}

func (d ModuleDependencyView) Vertices() []ModuleID { return d.mg.Modules() }
func (d ModuleDependencyView) NumVertices() int     { return d.mg.NumModules() }

func (d ModuleDependencyView) Edges() []ModuleDependency { return d.mg.AllDependencies() }
func (d ModuleDependencyView) NumEdges() int             { return d.mg.NumDependencies() }

func (d ModuleDependencyView) Edge(u, v ModuleID) (ModuleDependency, bool) {
	return d.mg.Dependency(u, v)
}

// ModuleOrder orders the modules so that every module comes after the
// modules it imports.
//
// Errors: GRAPH_HAS_CYCLE when dependencies form a cycle.
func ModuleOrder(mg *ModuleGraph) ([]ModuleID, error) {
	order, err := graph.TopologicalSort[ModuleID, ModuleDependency](mg.Dependencies())
	if err != nil {
		return nil, err
	}
	slices.Reverse(order)
	return order, nil
}
