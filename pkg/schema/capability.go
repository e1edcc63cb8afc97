package schema

import (
	"fmt"
	"strings"
)

// Capability is a set of semantic tags shared across kinds.
type Capability uint8

const (
	// Identifier marks kinds that name something resolvable.
	Identifier Capability = 1 << iota
	// Data marks kinds that describe a value type.
	Data
	// Composition marks data kinds built from members.
	Composition
	// Template marks template parameter kinds.
	Template
	// Instantiation marks template instances.
	Instantiation
)

var capabilityNames = []struct {
	c    Capability
	name string
}{
	{Identifier, "Identifier"},
	{Data, "Data"},
	{Composition, "Composition"},
	{Template, "Template"},
	{Instantiation, "Instantiation"},
}

// Has reports whether every tag in o is also in c.
func (c Capability) Has(o Capability) bool {
	return c&o == o
}

// String joins the tag names with '|'. The empty set is "None".
func (c Capability) String() string {
	if c == 0 {
		return "None"
	}
	var parts []string
	for _, n := range capabilityNames {
		if c&n.c != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// capabilities is the classification table indexed by Kind.
var capabilities = buildCapabilities()

func buildCapabilities() [numKinds]Capability {
	var t [numKinds]Capability
	for _, k := range []Kind{KindNamespace, KindDeclare, KindAlias, KindConcept, KindVariant} {
		t[k] = Identifier
	}
	for _, k := range []Kind{KindValue, KindEnumValue, KindEnum, KindTag} {
		t[k] = Identifier | Data
	}
	for _, k := range []Kind{KindStruct, KindGraph} {
		t[k] = Identifier | Data | Composition
	}
	for _, k := range []Kind{KindOptional, KindContainer, KindMap} {
		t[k] = Identifier | Template
	}
	t[KindInstance] = Instantiation

	for k, c := range t {
		if err := checkRefinement(c); err != nil {
			panic(fmt.Sprintf("schema: kind %s: %v", Kind(k), err))
		}
	}
	return t
}

func checkRefinement(c Capability) error {
	switch {
	case c.Has(Data) && !c.Has(Identifier):
		return fmt.Errorf("Data without Identifier")
	case c.Has(Composition) && !c.Has(Data):
		return fmt.Errorf("Composition without Data")
	case c.Has(Template) && !c.Has(Identifier):
		return fmt.Errorf("Template without Identifier")
	}
	return nil
}

// Capabilities returns the capability set of k.
func (k Kind) Capabilities() Capability {
	if k >= numKinds {
		return 0
	}
	return capabilities[k]
}

// Is reports whether k has every tag in c.
func (k Kind) Is(c Capability) bool {
	return k.Capabilities().Has(c)
}
