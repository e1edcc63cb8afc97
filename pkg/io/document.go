package io

import (
	"fmt"

	errs "github.com/star-e/generator-sub002/pkg/errors"
	"github.com/star-e/generator-sub002/pkg/schema"
	"github.com/star-e/generator-sub002/pkg/syntax"
)

// document is the snapshot shape. P is schema.Payload when encoding and the
// codec's raw message type when decoding.
type document[P any] struct {
	Module     string      `json:"module,omitempty"`
	Modules    *modules    `json:"modules,omitempty"`
	Vertices   []vertex[P] `json:"vertices"`
	Ownerships []edge      `json:"ownerships"`
	References []edge      `json:"references"`
}

type vertex[P any] struct {
	ID      uint32 `json:"id"`
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Path    string `json:"path,omitempty"`
	Module  string `json:"module,omitempty"`
	Payload P      `json:"payload"`
}

// modules is the module graph section. It is omitted when the graph has no
// modules.
type modules struct {
	Modules      []module `json:"modules"`
	Ownerships   []edge   `json:"ownerships"`
	Dependencies []edge   `json:"dependencies"`
}

type module struct {
	ID   uint32            `json:"id"`
	Name string            `json:"name"`
	Path string            `json:"path,omitempty"`
	Info syntax.ModuleInfo `json:"info"`
}

type edge struct {
	ID   uint32 `json:"id"`
	From uint32 `json:"from"`
	To   uint32 `json:"to"`
}

func fromGraph(g *syntax.Graph) document[schema.Payload] {
	doc := document[schema.Payload]{
		Module:     g.Module(),
		Vertices:   make([]vertex[schema.Payload], 0, g.NumVertices()),
		Ownerships: make([]edge, 0, g.NumOwnerships()),
		References: make([]edge, 0, g.NumReferences()),
		Modules:    fromModules(g.Modules()),
	}
	for _, id := range g.Vertices() {
		v, _ := g.Vertex(id)
		doc.Vertices = append(doc.Vertices, vertex[schema.Payload]{
			ID:      uint32(id),
			Name:    v.Name,
			Kind:    v.Kind().String(),
			Path:    v.Path,
			Module:  v.Module,
			Payload: v.Payload,
		})
	}
	for _, e := range g.Ownerships() {
		doc.Ownerships = append(doc.Ownerships, edge{ID: uint32(e.ID), From: uint32(e.Owner), To: uint32(e.Owned)})
	}
	for _, e := range g.AllReferences() {
		doc.References = append(doc.References, edge{ID: uint32(e.ID), From: uint32(e.From), To: uint32(e.To)})
	}
	return doc
}

func fromModules(mg *syntax.ModuleGraph) *modules {
	if mg.NumModules() == 0 {
		return nil
	}
	out := &modules{
		Modules:      make([]module, 0, mg.NumModules()),
		Ownerships:   make([]edge, 0, mg.NumOwnerships()),
		Dependencies: make([]edge, 0, mg.NumDependencies()),
	}
	for _, id := range mg.Modules() {
		m, _ := mg.Module(id)
		out.Modules = append(out.Modules, module{ID: uint32(id), Name: m.Name, Path: m.Path, Info: m.Info})
	}
	for _, e := range mg.Ownerships() {
		out.Ownerships = append(out.Ownerships, edge{ID: uint32(e.ID), From: uint32(e.Owner), To: uint32(e.Owned)})
	}
	for _, e := range mg.AllDependencies() {
		out.Dependencies = append(out.Dependencies, edge{ID: uint32(e.ID), From: uint32(e.From), To: uint32(e.To)})
	}
	return out
}

// toModules rebuilds the module graph section into mg.
func toModules(doc *modules, mg *syntax.ModuleGraph) error {
	if doc == nil {
		return nil
	}
	for i, m := range doc.Modules {
		if int(m.ID) != i {
			return errs.New(errs.ErrCodeInvalidFormat, "module %q has id %d at position %d", m.Name, m.ID, i)
		}
		if _, err := mg.AddModule(m.Name, m.Info); err != nil {
			return fmt.Errorf("module %d: %w", m.ID, err)
		}
	}
	for i, e := range doc.Ownerships {
		if int(e.ID) != i {
			return errs.New(errs.ErrCodeInvalidFormat, "module ownership has id %d at position %d", e.ID, i)
		}
		if _, err := mg.AddOwnership(syntax.ModuleID(e.From), syntax.ModuleID(e.To)); err != nil {
			return fmt.Errorf("module ownership %d->%d: %w", e.From, e.To, err)
		}
	}
	for _, m := range doc.Modules {
		if m.Path == "" {
			continue
		}
		if err := mg.RegisterPath(syntax.ModuleID(m.ID), m.Path); err != nil {
			return fmt.Errorf("module %d: %w", m.ID, err)
		}
	}
	for i, e := range doc.Dependencies {
		if int(e.ID) != i {
			return errs.New(errs.ErrCodeInvalidFormat, "module dependency has id %d at position %d", e.ID, i)
		}
		if _, err := mg.AddDependency(syntax.ModuleID(e.From), syntax.ModuleID(e.To)); err != nil {
			return fmt.Errorf("module dependency %d->%d: %w", e.From, e.To, err)
		}
	}
	return nil
}

// toGraph rebuilds a frozen graph. decode fills a zero payload from its raw
// encoding.
func toGraph[P any](doc *document[P], decode func(raw P, into schema.Payload) error) (*syntax.Graph, error) {
	g := syntax.New(syntax.WithModule(doc.Module), syntax.WithCapacity(len(doc.Vertices)))
	if err := toModules(doc.Modules, g.Modules()); err != nil {
		return nil, err
	}

	for i, v := range doc.Vertices {
		if int(v.ID) != i {
			return nil, errs.New(errs.ErrCodeInvalidFormat, "vertex %q has id %d at position %d", v.Name, v.ID, i)
		}
		kind, err := schema.ParseKind(v.Kind)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "vertex %d", v.ID)
		}
		p, err := schema.NewPayload(kind)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "vertex %d", v.ID)
		}
		if err := decode(v.Payload, p); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "vertex %d payload", v.ID)
		}
		if _, err := g.AddVertex(v.Name, p); err != nil {
			return nil, fmt.Errorf("vertex %d: %w", v.ID, err)
		}
		if v.Module == "" {
			continue
		}
		if err := g.SetModule(syntax.VertexID(v.ID), v.Module); err != nil {
			return nil, fmt.Errorf("vertex %d: %w", v.ID, err)
		}
	}

	for i, e := range doc.Ownerships {
		if int(e.ID) != i {
			return nil, errs.New(errs.ErrCodeInvalidFormat, "ownership has id %d at position %d", e.ID, i)
		}
		if _, err := g.AddOwnership(syntax.VertexID(e.From), syntax.VertexID(e.To)); err != nil {
			return nil, fmt.Errorf("ownership %d->%d: %w", e.From, e.To, err)
		}
	}

	for _, v := range doc.Vertices {
		if v.Path == "" {
			continue
		}
		if err := g.RegisterPath(syntax.VertexID(v.ID), v.Path); err != nil {
			return nil, fmt.Errorf("vertex %d: %w", v.ID, err)
		}
	}

	for i, e := range doc.References {
		if int(e.ID) != i {
			return nil, errs.New(errs.ErrCodeInvalidFormat, "reference has id %d at position %d", e.ID, i)
		}
		if _, err := g.AddReference(syntax.VertexID(e.From), syntax.VertexID(e.To)); err != nil {
			return nil, fmt.Errorf("reference %d->%d: %w", e.From, e.To, err)
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	g.Freeze()
	return g, nil
}
