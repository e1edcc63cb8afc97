package syntax

import (
	errs "github.com/star-e/generator-sub002/pkg/errors"
	"github.com/star-e/generator-sub002/pkg/path"
	"github.com/star-e/generator-sub002/pkg/schema"
)

// Graph stores schema declarations and their ownership and reference edges.
// The zero value is not usable; create graphs with [New].
type Graph struct {
	module      string
	maxVertices int

	vertices   []record
	ownerships []Ownership
	references []Reference
	paths      map[string]VertexID
	modules    *ModuleGraph

	state State
}

// Option configures a Graph.
type Option func(*Graph)

// WithModule names the module the graph describes.
func WithModule(name string) Option {
	return func(g *Graph) { g.module = name }
}

// WithCapacity preallocates room for n vertices.
func WithCapacity(n int) Option {
	return func(g *Graph) {
		if n > 0 {
			g.vertices = make([]record, 0, n)
			g.paths = make(map[string]VertexID, n)
		}
	}
}

// WithMaxVertices caps the number of vertices. Values that do not fit a
// VertexID are ignored.
func WithMaxVertices(n int) Option {
	return func(g *Graph) {
		if n > 0 && n < int(NullVertex) {
			g.maxVertices = n
		}
	}
}

// New creates an empty graph in the building state.
func New(opts ...Option) *Graph {
	g := &Graph{
		maxVertices: int(NullVertex),
		paths:       make(map[string]VertexID),
		modules:     NewModuleGraph(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Module returns the module name set with [WithModule].
func (g *Graph) Module() string { return g.module }

// Modules returns the module graph the declarations are assigned to. It is
// frozen together with g.
func (g *Graph) Modules() *ModuleGraph { return g.modules }

// State returns the current lifecycle state of the graph.
func (g *Graph) State() State { return g.state }

// IsFrozen returns true if the graph is in read-only mode.
func (g *Graph) IsFrozen() bool { return g.state == StateFrozen }

// Freeze transitions the graph to read-only mode. It is irreversible and
// idempotent. After Freeze the graph may be read concurrently.
func (g *Graph) Freeze() {
	g.state = StateFrozen
	g.modules.Freeze()
}

func (g *Graph) checkWritable() error {
	if g.state == StateFrozen {
		return errs.New(errs.ErrCodeGraphFrozen, "graph is frozen and cannot be modified")
	}
	return nil
}

func (g *Graph) checkVertex(v VertexID, role string) error {
	if !g.Contains(v) {
		return errs.New(errs.ErrCodeDanglingVertex, "%s vertex %d does not exist", role, v)
	}
	return nil
}

func (g *Graph) checkNewVertex(name string, payload schema.Payload) error {
	if err := g.checkWritable(); err != nil {
		return err
	}
	if payload == nil {
		return errs.New(errs.ErrCodeInvalidInput, "vertex %q has no payload", name)
	}
	if len(g.vertices) >= g.maxVertices {
		return errs.New(errs.ErrCodeInvalidInput, "graph is at vertex capacity (%d)", g.maxVertices)
	}
	return nil
}

// AddVertex stores a new vertex and returns its id. The vertex has no edges
// and no path. Names need not be unique.
//
// Errors: GRAPH_FROZEN, INVALID_INPUT for a nil payload or when the vertex
// limit is reached.
func (g *Graph) AddVertex(name string, payload schema.Payload) (VertexID, error) {
	if err := g.checkNewVertex(name, payload); err != nil {
		return NullVertex, err
	}
	return g.appendVertex(name, payload), nil
}

func (g *Graph) appendVertex(name string, payload schema.Payload) VertexID {
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, record{name: name, payload: payload})
	return id
}

// AddOwnership records that owner owns owned. Parallel edges between the same
// pair are kept as distinct ownerships. The first ownership registered for
// owned becomes its canonical parent.
//
// Errors: GRAPH_FROZEN, DANGLING_VERTEX if either endpoint does not exist.
func (g *Graph) AddOwnership(owner, owned VertexID) (Ownership, error) {
	if err := g.checkWritable(); err != nil {
		return Ownership{}, err
	}
	if err := g.checkVertex(owner, "owner"); err != nil {
		return Ownership{}, err
	}
	if err := g.checkVertex(owned, "owned"); err != nil {
		return Ownership{}, err
	}
	return g.appendOwnership(owner, owned), nil
}

func (g *Graph) appendOwnership(owner, owned VertexID) Ownership {
	e := Ownership{ID: EdgeID(len(g.ownerships)), Owner: owner, Owned: owned}
	g.ownerships = append(g.ownerships, e)
	g.vertices[owner].children = append(g.vertices[owner].children, e.ID)
	g.vertices[owned].parents = append(g.vertices[owned].parents, e.ID)
	return e
}

// AddReference records a non-owning link from one vertex to another.
//
// Errors: GRAPH_FROZEN, DANGLING_VERTEX if either endpoint does not exist.
func (g *Graph) AddReference(from, to VertexID) (Reference, error) {
	if err := g.checkWritable(); err != nil {
		return Reference{}, err
	}
	if err := g.checkVertex(from, "source"); err != nil {
		return Reference{}, err
	}
	if err := g.checkVertex(to, "target"); err != nil {
		return Reference{}, err
	}
	e := Reference{ID: EdgeID(len(g.references)), From: from, To: to}
	g.references = append(g.references, e)
	g.vertices[from].outRefs = append(g.vertices[from].outRefs, e.ID)
	g.vertices[to].inRefs = append(g.vertices[to].inRefs, e.ID)
	return e, nil
}

// RegisterPath makes v addressable under the normalized form of text.
//
// Errors: GRAPH_FROZEN; NOT_FOUND if v does not exist; INVALID_PATH if text
// is malformed or normalizes to the empty path or the root; DUPLICATE_PATH
// if the path is already registered or v already has a path.
func (g *Graph) RegisterPath(v VertexID, text string) error {
	if err := g.checkWritable(); err != nil {
		return err
	}
	if !g.Contains(v) {
		return errs.New(errs.ErrCodeNotFound, "vertex %d does not exist", v)
	}
	p, err := path.Normalize(text)
	if err != nil {
		return err
	}
	if p.Empty() || p.String() == "/" {
		return errs.New(errs.ErrCodeInvalidPath, "path %q does not name a declaration", text)
	}
	if prev := g.vertices[v].path; prev != "" {
		return errs.New(errs.ErrCodeDuplicatePath, "vertex %d already registered at %q", v, prev)
	}
	if other, ok := g.paths[p.String()]; ok {
		return errs.New(errs.ErrCodeDuplicatePath, "path %q already registered for vertex %d", p, other)
	}
	g.vertices[v].path = p.String()
	g.paths[p.String()] = v
	return nil
}

// AddChild creates a vertex named name under owner, links it with an
// ownership edge and registers its path (the owner's path plus "/" + name).
// Pass [NullVertex] as owner to create a top-level declaration at "/name".
//
// Either every effect is committed or none is.
//
// Errors: those of AddVertex; INVALID_NAME if name cannot be a path segment;
// DANGLING_VERTEX if owner does not exist;
// INVALID_PATH if owner is not addressable; DUPLICATE_PATH if the child path
// is taken.
func (g *Graph) AddChild(owner VertexID, name string, payload schema.Payload) (VertexID, error) {
	if err := g.checkNewVertex(name, payload); err != nil {
		return NullVertex, err
	}
	if err := errs.ValidateName(name); err != nil {
		return NullVertex, err
	}

	base := ""
	if owner != NullVertex {
		if err := g.checkVertex(owner, "owner"); err != nil {
			return NullVertex, err
		}
		base = g.vertices[owner].path
		if base == "" {
			return NullVertex, errs.New(errs.ErrCodeInvalidPath, "owner %q is not addressable", g.vertices[owner].name)
		}
	}

	p := base + "/" + name
	if other, ok := g.paths[p]; ok {
		return NullVertex, errs.New(errs.ErrCodeDuplicatePath, "path %q already registered for vertex %d", p, other)
	}

	v := g.appendVertex(name, payload)
	if owner != NullVertex {
		g.appendOwnership(owner, v)
	}
	g.vertices[v].path = p
	g.paths[p] = v
	return v, nil
}

// SetModule assigns v to the module registered at modulePath. The module
// decides which generated file v is emitted into.
//
// Errors: GRAPH_FROZEN; NOT_FOUND if v or the module does not exist;
// INVALID_INPUT if v already belongs to another module.
func (g *Graph) SetModule(v VertexID, modulePath string) error {
	if err := g.checkWritable(); err != nil {
		return err
	}
	if !g.Contains(v) {
		return errs.New(errs.ErrCodeNotFound, "vertex %d does not exist", v)
	}
	m, ok := g.modules.Locate(modulePath)
	if !ok {
		return errs.New(errs.ErrCodeNotFound, "module %q does not exist", modulePath)
	}
	p := g.modules.PathOf(m)
	switch prev := g.vertices[v].module; prev {
	case "", p:
		g.vertices[v].module = p
		return nil
	default:
		return errs.New(errs.ErrCodeInvalidInput, "vertex %q already belongs to module %q", g.vertices[v].name, prev)
	}
}
