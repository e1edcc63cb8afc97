package schema

import (
	errs "github.com/star-e/generator-sub002/pkg/errors"
)

// Payload is the kind-specific data attached to a vertex.
// The set of implementations is closed to this package.
type Payload interface {
	Kind() Kind
	payload()
}

// Namespace groups declarations.
type Namespace struct{}

// Declare introduces a name without a definition.
type Declare struct{}

// Alias gives an existing type a new name.
type Alias struct {
	Target string `json:"target,omitempty"`
}

// Concept declares a named requirement on types.
type Concept struct{}

// Value declares an opaque value type.
type Value struct{}

// EnumValue is a single enumerator.
type EnumValue struct {
	Value          string `json:"value,omitempty"`
	ReflectionName string `json:"reflectionName,omitempty"`
}

// Enum declares an enumeration. Its enumerators are owned children.
type Enum struct {
	Flags          bool   `json:"flags,omitempty"`
	EnumOperator   bool   `json:"enumOperator,omitempty"`
	UnderlyingType string `json:"underlyingType,omitempty"`
}

// Tag declares an empty tag type.
type Tag struct {
	Entity bool `json:"entity,omitempty"`
}

// Member is a field of a composition.
type Member struct {
	TypePath     string `json:"typePath"`
	DefaultValue string `json:"defaultValue,omitempty"`
	Const        bool   `json:"const,omitempty"`
	Pointer      bool   `json:"pointer,omitempty"`
	Public       bool   `json:"public,omitempty"`
}

// Constructor lists the member indices a constructor initializes.
type Constructor struct {
	Indices []int `json:"indices,omitempty"`
}

// Struct declares a composition. Members and constructors are owned children.
type Struct struct{}

// Variant declares a tagged union over alternative types.
type Variant struct {
	Alternatives []string `json:"alternatives,omitempty"`
	UseIndex     bool     `json:"useIndex,omitempty"`
}

// Optional is the optional-of-T template parameter.
type Optional struct{}

// Container is a sequence template parameter.
type Container struct{}

// Map is an associative template parameter.
type Map struct{}

// Instance instantiates a template with parameters.
type Instance struct {
	Template   string   `json:"template,omitempty"`
	Parameters []string `json:"parameters,omitempty"`
}

// VertexList selects the vertex storage of a graph declaration.
type VertexList string

const (
	VertexListVector VertexList = "vector"
	VertexListList   VertexList = "list"
)

// Graph declares a graph-shaped data structure.
type Graph struct {
	VertexProperty string     `json:"vertexProperty,omitempty"`
	EdgeProperty   string     `json:"edgeProperty,omitempty"`
	Named          bool       `json:"named,omitempty"`
	Reference      bool       `json:"reference,omitempty"`
	Addressable    bool       `json:"addressable,omitempty"`
	VertexList     VertexList `json:"vertexList,omitempty"`
}

// Component describes one polymorphic component of a graph.
type Component struct {
	Tag        string `json:"tag,omitempty"`
	ValuePath  string `json:"valuePath,omitempty"`
	MemberName string `json:"memberName,omitempty"`
}

func (*Namespace) Kind() Kind   { return KindNamespace }
func (*Declare) Kind() Kind     { return KindDeclare }
func (*Alias) Kind() Kind       { return KindAlias }
func (*Concept) Kind() Kind     { return KindConcept }
func (*Value) Kind() Kind       { return KindValue }
func (*EnumValue) Kind() Kind   { return KindEnumValue }
func (*Enum) Kind() Kind        { return KindEnum }
func (*Tag) Kind() Kind         { return KindTag }
func (*Member) Kind() Kind      { return KindMember }
func (*Constructor) Kind() Kind { return KindConstructor }
func (*Struct) Kind() Kind      { return KindStruct }
func (*Variant) Kind() Kind     { return KindVariant }
func (*Optional) Kind() Kind    { return KindOptional }
func (*Container) Kind() Kind   { return KindContainer }
func (*Map) Kind() Kind         { return KindMap }
func (*Instance) Kind() Kind    { return KindInstance }
func (*Graph) Kind() Kind       { return KindGraph }
func (*Component) Kind() Kind   { return KindComponent }

func (*Namespace) payload()   {}
func (*Declare) payload()     {}
func (*Alias) payload()       {}
func (*Concept) payload()     {}
func (*Value) payload()       {}
func (*EnumValue) payload()   {}
func (*Enum) payload()        {}
func (*Tag) payload()         {}
func (*Member) payload()      {}
func (*Constructor) payload() {}
func (*Struct) payload()      {}
func (*Variant) payload()     {}
func (*Optional) payload()    {}
func (*Container) payload()   {}
func (*Map) payload()         {}
func (*Instance) payload()    {}
func (*Graph) payload()       {}
func (*Component) payload()   {}

// NewPayload returns a zero payload of the given kind, ready to be decoded into.
func NewPayload(k Kind) (Payload, error) {
	switch k {
	case KindNamespace:
		return &Namespace{}, nil
	case KindDeclare:
		return &Declare{}, nil
	case KindAlias:
		return &Alias{}, nil
	case KindConcept:
		return &Concept{}, nil
	case KindValue:
		return &Value{}, nil
	case KindEnumValue:
		return &EnumValue{}, nil
	case KindEnum:
		return &Enum{}, nil
	case KindTag:
		return &Tag{}, nil
	case KindMember:
		return &Member{}, nil
	case KindConstructor:
		return &Constructor{}, nil
	case KindStruct:
		return &Struct{}, nil
	case KindVariant:
		return &Variant{}, nil
	case KindOptional:
		return &Optional{}, nil
	case KindContainer:
		return &Container{}, nil
	case KindMap:
		return &Map{}, nil
	case KindInstance:
		return &Instance{}, nil
	case KindGraph:
		return &Graph{}, nil
	case KindComponent:
		return &Component{}, nil
	}
	return nil, errs.New(errs.ErrCodeInvalidInput, "no payload for kind %s", k)
}

// TypeRefs returns the type names a payload refers to.
// The graph builder turns each into a reference edge when it resolves.
func TypeRefs(p Payload) []string {
	switch p := p.(type) {
	case *Alias:
		return nonEmpty(p.Target)
	case *Enum:
		return nonEmpty(p.UnderlyingType)
	case *Member:
		return nonEmpty(p.TypePath)
	case *Variant:
		return append([]string(nil), p.Alternatives...)
	case *Instance:
		return append(nonEmpty(p.Template), p.Parameters...)
	case *Graph:
		return nonEmpty(p.VertexProperty, p.EdgeProperty)
	case *Component:
		return nonEmpty(p.ValuePath)
	}
	return nil
}

func nonEmpty(names ...string) []string {
	var out []string
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
