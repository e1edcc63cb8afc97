package builder

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	errs "github.com/star-e/generator-sub002/pkg/errors"
	"github.com/star-e/generator-sub002/pkg/schema"
	"github.com/star-e/generator-sub002/pkg/syntax"
)

// Manifest is the root of a schema file. Module is a module path such as
// "render" or "engine/render"; Requires lists the modules its declarations
// may refer to.
type Manifest struct {
	Module   string            `toml:"module" yaml:"module"`
	Requires []string          `toml:"requires,omitempty" yaml:"requires,omitempty"`
	Info     syntax.ModuleInfo `toml:"info,omitempty" yaml:"info,omitempty"`
	Decls    []Decl            `toml:"decls" yaml:"decls"`
}

// Decl is one declaration. Which fields apply depends on Kind.
type Decl struct {
	Kind string `toml:"kind" yaml:"kind"`
	Name string `toml:"name" yaml:"name"`

	// Member type, alias target or enum underlying type.
	Type    string `toml:"type,omitempty" yaml:"type,omitempty"`
	Default string `toml:"default,omitempty" yaml:"default,omitempty"`
	Const   bool   `toml:"const,omitempty" yaml:"const,omitempty"`
	Pointer bool   `toml:"pointer,omitempty" yaml:"pointer,omitempty"`
	Private bool   `toml:"private,omitempty" yaml:"private,omitempty"`

	// Enum and enum value fields.
	Value      string `toml:"value,omitempty" yaml:"value,omitempty"`
	Reflection string `toml:"reflection,omitempty" yaml:"reflection,omitempty"`
	Flags      bool   `toml:"flags,omitempty" yaml:"flags,omitempty"`
	Operators  bool   `toml:"operators,omitempty" yaml:"operators,omitempty"`

	// Tag.
	Entity bool `toml:"entity,omitempty" yaml:"entity,omitempty"`

	// Constructor.
	Indices []int `toml:"indices,omitempty" yaml:"indices,omitempty"`

	// Variant.
	Alternatives []string `toml:"alternatives,omitempty" yaml:"alternatives,omitempty"`
	UseIndex     bool     `toml:"use_index,omitempty" yaml:"use_index,omitempty"`

	// Instance.
	Template   string   `toml:"template,omitempty" yaml:"template,omitempty"`
	Parameters []string `toml:"parameters,omitempty" yaml:"parameters,omitempty"`

	// Graph.
	VertexProperty string `toml:"vertex_property,omitempty" yaml:"vertex_property,omitempty"`
	EdgeProperty   string `toml:"edge_property,omitempty" yaml:"edge_property,omitempty"`
	Named          bool   `toml:"named,omitempty" yaml:"named,omitempty"`
	Reference      bool   `toml:"reference,omitempty" yaml:"reference,omitempty"`
	Addressable    bool   `toml:"addressable,omitempty" yaml:"addressable,omitempty"`
	VertexList     string `toml:"vertex_list,omitempty" yaml:"vertex_list,omitempty"`

	// Component.
	Tag       string `toml:"tag,omitempty" yaml:"tag,omitempty"`
	ValuePath string `toml:"value_path,omitempty" yaml:"value_path,omitempty"`
	Member    string `toml:"member,omitempty" yaml:"member,omitempty"`

	// Links resolved after every declaration exists.
	Owners     []string `toml:"owners,omitempty" yaml:"owners,omitempty"`
	References []string `toml:"references,omitempty" yaml:"references,omitempty"`

	Children []Decl `toml:"children,omitempty" yaml:"children,omitempty"`
}

// Payload builds the schema payload described by d.
func (d Decl) Payload() (schema.Payload, error) {
	kind, err := schema.ParseKind(d.Kind)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidManifest, err, "declaration %q", d.Name)
	}

	switch kind {
	case schema.KindAlias:
		return &schema.Alias{Target: d.Type}, nil
	case schema.KindEnumValue:
		return &schema.EnumValue{Value: d.Value, ReflectionName: d.Reflection}, nil
	case schema.KindEnum:
		return &schema.Enum{Flags: d.Flags, EnumOperator: d.Operators, UnderlyingType: d.Type}, nil
	case schema.KindTag:
		return &schema.Tag{Entity: d.Entity}, nil
	case schema.KindMember:
		if d.Type == "" {
			return nil, errs.New(errs.ErrCodeInvalidManifest, "member %q has no type", d.Name)
		}
		return &schema.Member{
			TypePath:     d.Type,
			DefaultValue: d.Default,
			Const:        d.Const,
			Pointer:      d.Pointer,
			Public:       !d.Private,
		}, nil
	case schema.KindConstructor:
		return &schema.Constructor{Indices: d.Indices}, nil
	case schema.KindVariant:
		return &schema.Variant{Alternatives: d.Alternatives, UseIndex: d.UseIndex}, nil
	case schema.KindInstance:
		if d.Template == "" {
			return nil, errs.New(errs.ErrCodeInvalidManifest, "instance %q has no template", d.Name)
		}
		return &schema.Instance{Template: d.Template, Parameters: d.Parameters}, nil
	case schema.KindGraph:
		vl := schema.VertexList(strings.ToLower(d.VertexList))
		switch vl {
		case "":
			vl = schema.VertexListVector
		case schema.VertexListVector, schema.VertexListList:
		default:
			return nil, errs.New(errs.ErrCodeInvalidManifest, "graph %q: unknown vertex_list %q", d.Name, d.VertexList)
		}
		return &schema.Graph{
			VertexProperty: d.VertexProperty,
			EdgeProperty:   d.EdgeProperty,
			Named:          d.Named,
			Reference:      d.Reference,
			Addressable:    d.Addressable,
			VertexList:     vl,
		}, nil
	case schema.KindComponent:
		return &schema.Component{Tag: d.Tag, ValuePath: d.ValuePath, MemberName: d.Member}, nil
	}
	return schema.NewPayload(kind)
}

// DecodeTOML parses a TOML manifest.
func DecodeTOML(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidManifest, err, "decode toml")
	}
	return &m, nil
}

// DecodeYAML parses a YAML manifest.
func DecodeYAML(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidManifest, err, "decode yaml")
	}
	return &m, nil
}

// ReadFile reads a manifest, choosing the decoder from the file extension.
func ReadFile(path string) (*Manifest, error) {
	if err := errs.ValidateSchemaFilename(filepath.Base(path)); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeNotFound, err, "read %s", path)
	}

	var m *Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		m, err = DecodeTOML(data)
	default:
		m, err = DecodeYAML(data)
	}
	if err != nil {
		return nil, err
	}
	if m.Module == "" {
		m.Module = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}
