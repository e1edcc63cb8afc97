package graph

import (
	"errors"
	"slices"

	errs "github.com/star-e/generator-sub002/pkg/errors"
)

// ErrStop can be returned by a Visitor callback to end a traversal early.
// DepthFirst and DepthFirstFrom report it as success.
var ErrStop = errors.New("stop traversal")

// Visitor receives depth-first search events. Nil callbacks are skipped.
// A non-nil error from any callback aborts the search and is returned.
type Visitor[V comparable, E any] struct {
	// DiscoverVertex is called when a vertex is first reached.
	DiscoverVertex func(v V) error
	// ExamineEdge is called for every out-edge of a discovered vertex.
	ExamineEdge func(e E) error
	// TreeEdge is called for edges that reach an undiscovered vertex.
	TreeEdge func(e E) error
	// BackEdge is called for edges that reach a vertex still on the stack.
	BackEdge func(e E) error
	// ForwardOrCrossEdge is called for edges that reach a finished vertex.
	ForwardOrCrossEdge func(e E) error
	// FinishVertex is called after all out-edges of a vertex are explored.
	FinishVertex func(v V) error
}

type color uint8

const (
	white color = iota // unvisited
	gray               // on the current path
	black              // finished
)

type search[V comparable, E any] struct {
	g     IncidenceGraph[V, E]
	vis   Visitor[V, E]
	color map[V]color
}

func call[T any](fn func(T) error, x T) error {
	if fn == nil {
		return nil
	}
	return fn(x)
}

func (s *search[V, E]) visit(u V) error {
	s.color[u] = gray
	if err := call(s.vis.DiscoverVertex, u); err != nil {
		return err
	}
	for _, e := range s.g.OutEdges(u) {
		if err := call(s.vis.ExamineEdge, e); err != nil {
			return err
		}
		w := s.g.Target(e)
		switch s.color[w] {
		case white:
			if err := call(s.vis.TreeEdge, e); err != nil {
				return err
			}
			if err := s.visit(w); err != nil {
				return err
			}
		case gray:
			if err := call(s.vis.BackEdge, e); err != nil {
				return err
			}
		default:
			if err := call(s.vis.ForwardOrCrossEdge, e); err != nil {
				return err
			}
		}
	}
	s.color[u] = black
	return call(s.vis.FinishVertex, u)
}

func stopped(err error) error {
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}

// DepthFirst runs a depth-first search over every vertex of g, starting a new
// tree at each vertex not yet discovered, in Vertices order.
func DepthFirst[V comparable, E any](g ListIncidenceGraph[V, E], vis Visitor[V, E]) error {
	s := &search[V, E]{g: g, vis: vis, color: make(map[V]color, g.NumVertices())}
	for _, v := range g.Vertices() {
		if s.color[v] != white {
			continue
		}
		if err := s.visit(v); err != nil {
			return stopped(err)
		}
	}
	return nil
}

// DepthFirstFrom runs a depth-first search of the vertices reachable from root.
func DepthFirstFrom[V comparable, E any](g IncidenceGraph[V, E], root V, vis Visitor[V, E]) error {
	s := &search[V, E]{g: g, vis: vis, color: make(map[V]color)}
	return stopped(s.visit(root))
}

// TopologicalSort orders the vertices of g so that every edge's source comes
// before its target. Ties follow Vertices and OutEdges order.
//
// Returns a GRAPH_HAS_CYCLE error naming the first back edge found.
func TopologicalSort[V comparable, E any](g ListIncidenceGraph[V, E]) ([]V, error) {
	order := make([]V, 0, g.NumVertices())
	err := DepthFirst(g, Visitor[V, E]{
		BackEdge: func(e E) error {
			return errs.New(errs.ErrCodeGraphHasCycle, "cycle through edge %v -> %v", g.Source(e), g.Target(e))
		},
		FinishVertex: func(v V) error {
			order = append(order, v)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	slices.Reverse(order)
	return order, nil
}

// HasCycle reports whether g contains a directed cycle.
func HasCycle[V comparable, E any](g ListIncidenceGraph[V, E]) bool {
	found := false
	_ = DepthFirst(g, Visitor[V, E]{
		BackEdge: func(E) error {
			found = true
			return ErrStop
		},
	})
	return found
}

// Reachable returns the vertices reachable from root, including root, in
// depth-first discovery order.
func Reachable[V comparable, E any](g IncidenceGraph[V, E], root V) []V {
	var out []V
	_ = DepthFirstFrom(g, root, Visitor[V, E]{
		DiscoverVertex: func(v V) error {
			out = append(out, v)
			return nil
		},
	})
	return out
}

// IsReachable reports whether to can be reached from from.
func IsReachable[V comparable, E any](g IncidenceGraph[V, E], from, to V) bool {
	found := false
	_ = DepthFirstFrom(g, from, Visitor[V, E]{
		DiscoverVertex: func(v V) error {
			if v == to {
				found = true
				return ErrStop
			}
			return nil
		},
	})
	return found
}

// Sources returns the vertices with no in-edges, in Vertices order.
func Sources[V comparable, E any](g ListBidirectionalGraph[V, E]) []V {
	var out []V
	for _, v := range g.Vertices() {
		if g.InDegree(v) == 0 {
			out = append(out, v)
		}
	}
	return out
}

// Sinks returns the vertices with no out-edges, in Vertices order.
func Sinks[V comparable, E any](g ListIncidenceGraph[V, E]) []V {
	var out []V
	for _, v := range g.Vertices() {
		if g.OutDegree(v) == 0 {
			out = append(out, v)
		}
	}
	return out
}
