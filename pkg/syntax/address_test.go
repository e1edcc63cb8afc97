package syntax

import (
	"testing"

	errs "github.com/star-e/generator-sub002/pkg/errors"
	"github.com/star-e/generator-sub002/pkg/schema"
)

// buildRender builds:
//
//	/render                  Namespace
//	/render/Flags            Enum
//	/render/Node             Struct
//	/render/Node/Flags       Enum (shadows /render/Flags inside Node)
//	/render/Node/mFlags      Member
//	/render/Node/mPass       Member
//	/render/Pass             Struct
//	/Vec3                    Value
func buildRender(t *testing.T) (*Graph, map[string]VertexID) {
	t.Helper()
	g := New(WithModule("render"))
	ids := map[string]VertexID{}
	add := func(owner, name string, p schema.Payload) {
		parent := NullVertex
		if owner != "" {
			parent = ids[owner]
		}
		v := mustChild(t, g, parent, name, p)
		ids[g.PathOf(v)] = v
	}
	add("", "render", &schema.Namespace{})
	add("/render", "Flags", &schema.Enum{})
	add("/render", "Node", &schema.Struct{})
	add("/render/Node", "Flags", &schema.Enum{})
	add("/render/Node", "mFlags", &schema.Member{TypePath: "Flags"})
	add("/render/Node", "mPass", &schema.Member{TypePath: "Pass"})
	add("/render", "Pass", &schema.Struct{})
	add("", "Vec3", &schema.Value{})
	return g, ids
}

func TestLocate(t *testing.T) {
	g, ids := buildRender(t)

	tests := []struct {
		path string
		want VertexID
		ok   bool
	}{
		{"/render/Node", ids["/render/Node"], true},
		{"/render/./Node/../Node/mFlags", ids["/render/Node/mFlags"], true},
		{"/render/Missing", NullVertex, false},
		{"render/Node", NullVertex, false},
		{"", NullVertex, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := g.Locate(tt.path)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("Locate(%q) = %d, %v, want %d, %v", tt.path, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestAt(t *testing.T) {
	g, ids := buildRender(t)

	v, err := g.At("/render/Pass")
	if err != nil || v != ids["/render/Pass"] {
		t.Errorf("At() = %d, %v", v, err)
	}
	if _, err := g.At("/render/Nope"); !errs.Is(err, errs.ErrCodeNotFound) {
		t.Errorf("At(missing) error = %v, want %s", err, errs.ErrCodeNotFound)
	}
	if _, err := g.At("render"); !errs.Is(err, errs.ErrCodeInvalidPath) {
		t.Errorf("At(relative) error = %v, want %s", err, errs.ErrCodeInvalidPath)
	}
}

func TestLocateRelative(t *testing.T) {
	g, ids := buildRender(t)
	node := ids["/render/Node"]

	tests := []struct {
		rel  string
		want string
	}{
		{"mFlags", "/render/Node/mFlags"},
		{"../Pass", "/render/Pass"},
		{"./Flags", "/render/Node/Flags"},
		{"/Vec3", "/Vec3"},
	}
	for _, tt := range tests {
		got, ok := g.LocateRelative(node, tt.rel)
		if !ok || got != ids[tt.want] {
			t.Errorf("LocateRelative(Node, %q) = %d, %v, want %s", tt.rel, got, ok, tt.want)
		}
	}
	if _, ok := g.LocateRelative(node, "../../.."); ok {
		t.Error("LocateRelative() above root succeeded")
	}
}

func TestResolve(t *testing.T) {
	g, ids := buildRender(t)
	mFlags := ids["/render/Node/mFlags"]
	pass := ids["/render/Pass"]

	tests := []struct {
		name  string
		scope VertexID
		ident string
		want  string
		ok    bool
	}{
		{"innermost wins", mFlags, "Flags", "/render/Node/Flags", true},
		{"enclosing scope", pass, "Flags", "/render/Flags", true},
		{"sibling", mFlags, "Pass", "/render/Pass", true},
		{"top level", mFlags, "Vec3", "/Vec3", true},
		{"nested name", pass, "Node/mFlags", "/render/Node/mFlags", true},
		{"absolute", pass, "/render/Node", "/render/Node", true},
		{"global scope", NullVertex, "render", "/render", true},
		{"builtin", mFlags, "uint32_t", "", false},
		{"empty", mFlags, "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.Resolve(tt.scope, tt.ident)
			if ok != tt.ok || (ok && got != ids[tt.want]) {
				t.Errorf("Resolve(%q) = %q, %v, want %q, %v", tt.ident, g.PathOf(got), ok, tt.want, tt.ok)
			}
		})
	}
}

func TestAncestor(t *testing.T) {
	g, ids := buildRender(t)
	mFlags := ids["/render/Node/mFlags"]

	if got, err := g.Ancestor(mFlags, schema.KindStruct); err != nil || got != ids["/render/Node"] {
		t.Errorf("Ancestor(Struct) = %d, %v", got, err)
	}
	if got, err := g.Ancestor(mFlags, schema.KindNamespace); err != nil || got != ids["/render"] {
		t.Errorf("Ancestor(Namespace) = %d, %v", got, err)
	}
	if _, err := g.Ancestor(mFlags, schema.KindGraph); !errs.Is(err, errs.ErrCodeNotFound) {
		t.Errorf("Ancestor(Graph) error = %v, want %s", err, errs.ErrCodeNotFound)
	}
	if _, err := g.Ancestor(99, schema.KindStruct); !errs.Is(err, errs.ErrCodeNotFound) {
		t.Errorf("Ancestor(unknown) error = %v", err)
	}
}

func TestComputePath(t *testing.T) {
	g, ids := buildRender(t)
	for p, v := range ids {
		got, err := g.ComputePath(v)
		if err != nil || got != p {
			t.Errorf("ComputePath(%d) = %q, %v, want %q", v, got, err, p)
		}
	}

	// A vertex owned twice keeps the canonical parent's path.
	extra := ids["/render/Pass"]
	if _, err := g.AddOwnership(extra, ids["/render/Node/mFlags"]); err != nil {
		t.Fatal(err)
	}
	if got, _ := g.ComputePath(ids["/render/Node/mFlags"]); got != "/render/Node/mFlags" {
		t.Errorf("ComputePath() after second owner = %q", got)
	}

	if _, err := g.ComputePath(99); !errs.Is(err, errs.ErrCodeNotFound) {
		t.Errorf("ComputePath(unknown) error = %v", err)
	}
}

func TestComputePathCycle(t *testing.T) {
	g := New()
	a := mustVertex(t, g, "a", &schema.Struct{})
	b := mustVertex(t, g, "b", &schema.Struct{})
	g.AddOwnership(a, b)
	g.AddOwnership(b, a)

	if _, err := g.ComputePath(a); !errs.Is(err, errs.ErrCodeGraphHasCycle) {
		t.Errorf("ComputePath() error = %v, want %s", err, errs.ErrCodeGraphHasCycle)
	}
	// Neither vertex takes part in path addressing, so the loop is legal.
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil for unaddressed vertices", err)
	}
}

func TestValidateAddressedCycle(t *testing.T) {
	g := New()
	a := mustVertex(t, g, "a", &schema.Struct{})
	b := mustVertex(t, g, "b", &schema.Struct{})
	if err := g.RegisterPath(a, "/a"); err != nil {
		t.Fatal(err)
	}
	if err := g.RegisterPath(b, "/a/b"); err != nil {
		t.Fatal(err)
	}
	g.AddOwnership(a, b)
	g.AddOwnership(b, a)

	if err := g.Validate(); !errs.Is(err, errs.ErrCodeGraphHasCycle) {
		t.Errorf("Validate() error = %v, want %s", err, errs.ErrCodeGraphHasCycle)
	}

	// A loop that leaves the addressed vertices is not followed.
	h := New()
	x := mustVertex(t, h, "x", &schema.Struct{})
	slot := mustVertex(t, h, "slot", &schema.Value{})
	if err := h.RegisterPath(x, "/x"); err != nil {
		t.Fatal(err)
	}
	h.AddOwnership(slot, x)
	h.AddOwnership(x, slot)
	if err := h.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate(t *testing.T) {
	g, ids := buildRender(t)
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	misplaced := mustVertex(t, g, "x", &schema.Member{})
	if err := g.RegisterPath(misplaced, "/elsewhere/x"); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddOwnership(ids["/render/Node"], misplaced); err != nil {
		t.Fatal(err)
	}
	if err := g.Validate(); !errs.Is(err, errs.ErrCodeInvalidPath) {
		t.Errorf("Validate() error = %v, want %s", err, errs.ErrCodeInvalidPath)
	}
}

func TestAmbiguousParent(t *testing.T) {
	g, ids := buildRender(t)
	member := ids["/render/Node/mPass"]

	if err := g.AmbiguousParent(member); err != nil {
		t.Errorf("AmbiguousParent() = %v before second owner", err)
	}
	if len(g.Ambiguities()) != 0 {
		t.Errorf("Ambiguities() = %v, want none", g.Ambiguities())
	}

	if _, err := g.AddOwnership(ids["/render/Pass"], member); err != nil {
		t.Fatal(err)
	}
	if err := g.AmbiguousParent(member); !errs.Is(err, errs.ErrCodeAmbiguousParent) {
		t.Errorf("AmbiguousParent() = %v, want %s", err, errs.ErrCodeAmbiguousParent)
	}
	if got := g.Ambiguities(); len(got) != 1 || got[0] != member {
		t.Errorf("Ambiguities() = %v, want [%d]", got, member)
	}

	// Unaddressed vertices may have several owners without ambiguity.
	loose := mustVertex(t, g, "slot", &schema.Component{})
	g.AddOwnership(ids["/render/Node"], loose)
	g.AddOwnership(ids["/render/Pass"], loose)
	if err := g.AmbiguousParent(loose); err != nil {
		t.Errorf("AmbiguousParent(unaddressed) = %v", err)
	}
}
