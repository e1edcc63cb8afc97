package syntax

import (
	"math"

	"github.com/star-e/generator-sub002/pkg/schema"
)

// VertexID is the dense index of a vertex.
type VertexID uint32

// NullVertex is the sentinel for "no vertex". As the owner argument of
// [Graph.AddChild] it denotes a top-level declaration.
const NullVertex VertexID = math.MaxUint32

// EdgeID is the dense index of an edge within its family.
type EdgeID uint32

// Ownership is a structural edge from Owner to Owned.
type Ownership struct {
	ID    EdgeID
	Owner VertexID
	Owned VertexID
}

// Reference is a non-owning semantic edge from From to To.
type Reference struct {
	ID   EdgeID
	From VertexID
	To   VertexID
}

// Vertex is a read-only snapshot of a stored vertex.
type Vertex struct {
	ID      VertexID
	Name    string
	Payload schema.Payload
	Path    string // empty when the vertex is not addressable
	Module  string // module path, empty when unassigned
}

// Kind returns the payload kind.
func (v Vertex) Kind() schema.Kind {
	if v.Payload == nil {
		return schema.KindInvalid
	}
	return v.Payload.Kind()
}

// State represents the lifecycle state of the graph.
type State int

const (
	// StateBuilding indicates the graph accepts writes.
	StateBuilding State = iota

	// StateFrozen indicates the graph is read-only.
	StateFrozen
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case StateBuilding:
		return "building"
	case StateFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// record is the arena entry of one vertex. Edge lists hold ids into the
// ownership and reference arenas in registration order.
type record struct {
	name     string
	payload  schema.Payload
	path     string
	module   string
	children []EdgeID
	parents  []EdgeID
	outRefs  []EdgeID
	inRefs   []EdgeID
}
