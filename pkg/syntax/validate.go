package syntax

import (
	"fmt"

	errs "github.com/star-e/generator-sub002/pkg/errors"
	"github.com/star-e/generator-sub002/pkg/path"
)

// AmbiguousParent reports an AMBIGUOUS_PARENT error when v is addressable
// and owned by more than one edge. The canonical parent still defines its
// path; the error is a diagnostic and never blocks a write.
func (g *Graph) AmbiguousParent(v VertexID) error {
	if !g.IsAddressable(v) {
		return nil
	}
	if n := g.NumParents(v); n > 1 {
		return errs.New(errs.ErrCodeAmbiguousParent, "%q has %d owners", g.vertices[v].path, n)
	}
	return nil
}

// Ambiguities returns every addressable vertex with more than one owner.
func (g *Graph) Ambiguities() []VertexID {
	var out []VertexID
	for i := range g.vertices {
		if g.AmbiguousParent(VertexID(i)) != nil {
			out = append(out, VertexID(i))
		}
	}
	return out
}

// Validate checks that the canonical parents of addressable vertices form a
// forest and that every addressable vertex with an addressable canonical
// parent sits directly under that parent's path. Vertices without a path
// may share owners in any shape.
//
// Errors: GRAPH_HAS_CYCLE, INVALID_PATH.
func (g *Graph) Validate() error {
	const (
		unvisited = iota
		walking
		done
	)
	state := make([]uint8, len(g.vertices))
	var chain []VertexID
	for i := range g.vertices {
		chain = chain[:0]
		u, ok := VertexID(i), g.IsAddressable(VertexID(i))
		for ok && state[u] == unvisited {
			state[u] = walking
			chain = append(chain, u)
			u, ok = g.Parent(u)
			ok = ok && g.IsAddressable(u)
		}
		if ok && state[u] == walking {
			return errs.New(errs.ErrCodeGraphHasCycle, "ownership cycle through %q", g.vertices[u].path)
		}
		for _, c := range chain {
			state[c] = done
		}
	}

	for i := range g.vertices {
		v := VertexID(i)
		if err := g.checkPlacement(v); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) checkPlacement(v VertexID) error {
	p := g.vertices[v].path
	parent, ok := g.Parent(v)
	if p == "" || !ok {
		return nil
	}
	pp := g.vertices[parent].path
	if pp == "" {
		return nil
	}
	if got := path.Parse(p).Parent().String(); got != pp {
		return errs.New(errs.ErrCodeInvalidPath, "%q is not under its owner %q", p, pp)
	}
	return nil
}

// String summarizes the graph size.
func (g *Graph) String() string {
	return fmt.Sprintf("syntax.Graph{module=%q vertices=%d ownerships=%d references=%d state=%s}",
		g.module, len(g.vertices), len(g.ownerships), len(g.references), g.state)
}
