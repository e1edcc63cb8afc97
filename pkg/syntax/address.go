package syntax

import (
	"slices"
	"strings"

	errs "github.com/star-e/generator-sub002/pkg/errors"
	"github.com/star-e/generator-sub002/pkg/path"
	"github.com/star-e/generator-sub002/pkg/schema"
)

// Locate returns the vertex registered at the normalized form of an absolute
// path. Malformed or unregistered paths report false.
func (g *Graph) Locate(absolute string) (VertexID, bool) {
	if v, ok := g.paths[absolute]; ok {
		return v, true
	}
	p, err := path.Normalize(absolute)
	if err != nil {
		return NullVertex, false
	}
	v, ok := g.paths[p.String()]
	return v, ok
}

// At returns the vertex registered at p.
//
// Errors: INVALID_PATH if p is malformed, NOT_FOUND if nothing is
// registered there.
func (g *Graph) At(p string) (VertexID, error) {
	norm, err := path.Normalize(p)
	if err != nil {
		return NullVertex, err
	}
	v, ok := g.paths[norm.String()]
	if !ok {
		return NullVertex, errs.New(errs.ErrCodeNotFound, "no declaration at %q", p)
	}
	return v, nil
}

// LocateRelative resolves rel against the path of u. An absolute rel is
// looked up as-is. u must be addressable.
func (g *Graph) LocateRelative(u VertexID, rel string) (VertexID, bool) {
	if path.Parse(rel).IsAbsolute() {
		return g.Locate(rel)
	}
	base := g.PathOf(u)
	if base == "" {
		return NullVertex, false
	}
	p, err := path.Resolve(path.Parse(base), rel)
	if err != nil {
		return NullVertex, false
	}
	v, ok := g.paths[p.String()]
	return v, ok
}

// ComputePath rebuilds the path of v by walking canonical parents up to a
// root. For vertices created with AddChild it equals PathOf.
//
// Errors: NOT_FOUND if v does not exist, GRAPH_HAS_CYCLE if the canonical
// parent chain loops.
func (g *Graph) ComputePath(v VertexID) (string, error) {
	if !g.Contains(v) {
		return "", errs.New(errs.ErrCodeNotFound, "vertex %d does not exist", v)
	}
	var names []string
	for u, steps := v, 0; ; steps++ {
		if steps > len(g.vertices) {
			return "", errs.New(errs.ErrCodeGraphHasCycle, "canonical parents of %q form a cycle", g.vertices[v].name)
		}
		names = append(names, g.vertices[u].name)
		parent, ok := g.Parent(u)
		if !ok {
			break
		}
		u = parent
	}
	slices.Reverse(names)
	return "/" + strings.Join(names, "/"), nil
}

// Resolve looks up name as seen from scope. An absolute name is located
// directly. Otherwise the name is tried relative to scope, then to each
// canonical ancestor of scope, then at the top level; the innermost match
// wins. Pass [NullVertex] as scope to search the top level only.
func (g *Graph) Resolve(scope VertexID, name string) (VertexID, bool) {
	if name == "" {
		return NullVertex, false
	}
	if path.Parse(name).IsAbsolute() {
		return g.Locate(name)
	}
	for u, steps := scope, 0; u != NullVertex && steps <= len(g.vertices); steps++ {
		if v, ok := g.LocateRelative(u, name); ok {
			return v, true
		}
		parent, ok := g.Parent(u)
		if !ok {
			break
		}
		u = parent
	}
	return g.Locate("/" + name)
}

// Ancestor returns the nearest canonical ancestor of v whose kind is kind.
//
// Errors: NOT_FOUND if v does not exist or no ancestor matches.
func (g *Graph) Ancestor(v VertexID, kind schema.Kind) (VertexID, error) {
	if !g.Contains(v) {
		return NullVertex, errs.New(errs.ErrCodeNotFound, "vertex %d does not exist", v)
	}
	u := v
	for steps := 0; steps <= len(g.vertices); steps++ {
		parent, ok := g.Parent(u)
		if !ok {
			break
		}
		if g.KindOf(parent) == kind {
			return parent, nil
		}
		u = parent
	}
	return NullVertex, errs.New(errs.ErrCodeNotFound, "no %s ancestor of %q", kind, g.vertices[v].name)
}
