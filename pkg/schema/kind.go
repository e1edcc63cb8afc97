package schema

import (
	"strings"

	errs "github.com/star-e/generator-sub002/pkg/errors"
)

// Kind identifies the declaration a vertex represents.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNamespace
	KindDeclare
	KindAlias
	KindConcept
	KindValue
	KindEnumValue
	KindEnum
	KindTag
	KindMember
	KindConstructor
	KindStruct
	KindVariant
	KindOptional
	KindContainer
	KindMap
	KindInstance
	KindGraph
	KindComponent

	numKinds
)

var kindNames = [numKinds]string{
	KindInvalid:     "Invalid",
	KindNamespace:   "Namespace",
	KindDeclare:     "Declare",
	KindAlias:       "Alias",
	KindConcept:     "Concept",
	KindValue:       "Value",
	KindEnumValue:   "EnumValue",
	KindEnum:        "Enum",
	KindTag:         "Tag",
	KindMember:      "Member",
	KindConstructor: "Constructor",
	KindStruct:      "Struct",
	KindVariant:     "Variant",
	KindOptional:    "Optional",
	KindContainer:   "Container",
	KindMap:         "Map",
	KindInstance:    "Instance",
	KindGraph:       "Graph",
	KindComponent:   "Component",
}

// String returns the kind name.
func (k Kind) String() string {
	if k >= numKinds {
		return "Invalid"
	}
	return kindNames[k]
}

// IsValid reports whether k is a declaration kind.
func (k Kind) IsValid() bool {
	return k > KindInvalid && k < numKinds
}

// ParseKind returns the kind named s, ignoring case.
func ParseKind(s string) (Kind, error) {
	for k := KindInvalid + 1; k < numKinds; k++ {
		if strings.EqualFold(kindNames[k], s) {
			return k, nil
		}
	}
	return KindInvalid, errs.New(errs.ErrCodeInvalidInput, "unknown kind %q", s)
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds-1)
	for k := KindInvalid + 1; k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
