package syntax

import (
	"github.com/star-e/generator-sub002/pkg/schema"
)

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// Contains reports whether v names a stored vertex.
func (g *Graph) Contains(v VertexID) bool { return int64(v) < int64(len(g.vertices)) }

// Vertices returns every vertex id in insertion order.
func (g *Graph) Vertices() []VertexID {
	out := make([]VertexID, len(g.vertices))
	for i := range out {
		out[i] = VertexID(i)
	}
	return out
}

// Vertex returns a snapshot of v.
func (g *Graph) Vertex(v VertexID) (Vertex, bool) {
	if !g.Contains(v) {
		return Vertex{}, false
	}
	r := &g.vertices[v]
	return Vertex{ID: v, Name: r.name, Payload: r.payload, Path: r.path, Module: r.module}, true
}

// Name returns the name of v, or "" if v does not exist.
func (g *Graph) Name(v VertexID) string {
	if !g.Contains(v) {
		return ""
	}
	return g.vertices[v].name
}

// Payload returns the payload of v, or nil if v does not exist.
func (g *Graph) Payload(v VertexID) schema.Payload {
	if !g.Contains(v) {
		return nil
	}
	return g.vertices[v].payload
}

// KindOf returns the kind of v, or [schema.KindInvalid] if v does not exist.
func (g *Graph) KindOf(v VertexID) schema.Kind {
	if p := g.Payload(v); p != nil {
		return p.Kind()
	}
	return schema.KindInvalid
}

// CapabilitiesOf returns the capability set of v's kind.
func (g *Graph) CapabilitiesOf(v VertexID) schema.Capability {
	return g.KindOf(v).Capabilities()
}

// PathOf returns the registered path of v, or "" if v is not addressable.
func (g *Graph) PathOf(v VertexID) string {
	if !g.Contains(v) {
		return ""
	}
	return g.vertices[v].path
}

// IsAddressable reports whether v has a registered path.
func (g *Graph) IsAddressable(v VertexID) bool {
	return g.PathOf(v) != ""
}

// ModuleOf returns the module path v belongs to, or "" when it has none.
func (g *Graph) ModuleOf(v VertexID) string {
	if !g.Contains(v) {
		return ""
	}
	return g.vertices[v].module
}

// VerticesIn returns the vertices assigned to the module at modulePath in
// insertion order.
func (g *Graph) VerticesIn(modulePath string) []VertexID {
	m, ok := g.modules.Locate(modulePath)
	if !ok {
		return nil
	}
	p := g.modules.PathOf(m)
	var out []VertexID
	for i := range g.vertices {
		if g.vertices[i].module == p {
			out = append(out, VertexID(i))
		}
	}
	return out
}

// NumPaths returns the number of registered paths.
func (g *Graph) NumPaths() int { return len(g.paths) }

// Children returns the ownership edges owned by v in insertion order.
func (g *Graph) Children(v VertexID) []Ownership {
	if !g.Contains(v) {
		return nil
	}
	return g.ownershipList(g.vertices[v].children)
}

// ChildVertices returns the targets of v's ownership edges in insertion
// order. A child owned twice appears twice.
func (g *Graph) ChildVertices(v VertexID) []VertexID {
	if !g.Contains(v) {
		return nil
	}
	ids := g.vertices[v].children
	out := make([]VertexID, len(ids))
	for i, id := range ids {
		out[i] = g.ownerships[id].Owned
	}
	return out
}

// NumChildren returns the number of ownership edges leaving v.
func (g *Graph) NumChildren(v VertexID) int {
	if !g.Contains(v) {
		return 0
	}
	return len(g.vertices[v].children)
}

// Parents returns the ownership edges owning v in registration order.
func (g *Graph) Parents(v VertexID) []Ownership {
	if !g.Contains(v) {
		return nil
	}
	return g.ownershipList(g.vertices[v].parents)
}

// ParentVertices returns the owners of v in registration order.
func (g *Graph) ParentVertices(v VertexID) []VertexID {
	if !g.Contains(v) {
		return nil
	}
	ids := g.vertices[v].parents
	out := make([]VertexID, len(ids))
	for i, id := range ids {
		out[i] = g.ownerships[id].Owner
	}
	return out
}

// NumParents returns the number of ownership edges entering v.
func (g *Graph) NumParents(v VertexID) int {
	if !g.Contains(v) {
		return 0
	}
	return len(g.vertices[v].parents)
}

// Parent returns the canonical parent of v: the owner of its first
// registered ownership edge.
func (g *Graph) Parent(v VertexID) (VertexID, bool) {
	if !g.Contains(v) || len(g.vertices[v].parents) == 0 {
		return NullVertex, false
	}
	return g.ownerships[g.vertices[v].parents[0]].Owner, true
}

// Ownership returns the first ownership edge from u to v.
func (g *Graph) Ownership(u, v VertexID) (Ownership, bool) {
	if !g.Contains(u) {
		return Ownership{}, false
	}
	for _, id := range g.vertices[u].children {
		if e := g.ownerships[id]; e.Owned == v {
			return e, true
		}
	}
	return Ownership{}, false
}

// OwnershipAt returns the ownership edge with the given id.
func (g *Graph) OwnershipAt(id EdgeID) (Ownership, bool) {
	if int64(id) >= int64(len(g.ownerships)) {
		return Ownership{}, false
	}
	return g.ownerships[id], true
}

// Ownerships returns every ownership edge in id order.
func (g *Graph) Ownerships() []Ownership {
	return append([]Ownership(nil), g.ownerships...)
}

// NumOwnerships returns the number of ownership edges.
func (g *Graph) NumOwnerships() int { return len(g.ownerships) }

func (g *Graph) ownershipList(ids []EdgeID) []Ownership {
	out := make([]Ownership, len(ids))
	for i, id := range ids {
		out[i] = g.ownerships[id]
	}
	return out
}

// References returns the reference edges leaving v in insertion order.
func (g *Graph) References(v VertexID) []Reference {
	if !g.Contains(v) {
		return nil
	}
	return g.referenceList(g.vertices[v].outRefs)
}

// Referrers returns the reference edges entering v in insertion order.
func (g *Graph) Referrers(v VertexID) []Reference {
	if !g.Contains(v) {
		return nil
	}
	return g.referenceList(g.vertices[v].inRefs)
}

// Reference returns the first reference edge from u to v.
func (g *Graph) Reference(u, v VertexID) (Reference, bool) {
	if !g.Contains(u) {
		return Reference{}, false
	}
	for _, id := range g.vertices[u].outRefs {
		if e := g.references[id]; e.To == v {
			return e, true
		}
	}
	return Reference{}, false
}

// AllReferences returns every reference edge in id order.
func (g *Graph) AllReferences() []Reference {
	return append([]Reference(nil), g.references...)
}

// NumReferences returns the number of reference edges.
func (g *Graph) NumReferences() int { return len(g.references) }

func (g *Graph) referenceList(ids []EdgeID) []Reference {
	out := make([]Reference, len(ids))
	for i, id := range ids {
		out[i] = g.references[id]
	}
	return out
}

// Roots returns the vertices without owners in insertion order.
func (g *Graph) Roots() []VertexID {
	var out []VertexID
	for i := range g.vertices {
		if len(g.vertices[i].parents) == 0 {
			out = append(out, VertexID(i))
		}
	}
	return out
}
