package syntax_test

import (
	"fmt"

	"github.com/star-e/generator-sub002/pkg/path"
	"github.com/star-e/generator-sub002/pkg/schema"
	"github.com/star-e/generator-sub002/pkg/syntax"
)

func Example() {
	g := syntax.New()
	cc, _ := g.AddVertex("cc", &schema.Namespace{})
	node, _ := g.AddVertex("Node", &schema.Struct{})
	flags, _ := g.AddVertex("mFlags", &schema.Member{TypePath: "uint32_t"})
	g.AddOwnership(cc, node)
	g.AddOwnership(node, flags)
	g.RegisterPath(flags, "/cc/Node/mFlags")
	g.Freeze()

	fmt.Println(g.CapabilitiesOf(node).Has(schema.Identifier | schema.Data | schema.Composition))
	for _, e := range g.Children(cc) {
		fmt.Println("cc owns", g.Name(e.Owned))
	}
	for _, e := range g.Children(node) {
		fmt.Println("Node owns", g.Name(e.Owned))
	}

	p := path.MustNormalize(g.PathOf(flags))
	fmt.Println(p, p.Parent())
	// Output:
	// true
	// cc owns Node
	// Node owns mFlags
	// /cc/Node/mFlags /cc/Node
}

func ExampleGraph_Parent() {
	g := syntax.New()
	a, _ := g.AddVertex("A", &schema.Struct{})
	b, _ := g.AddVertex("B", &schema.Member{})
	c, _ := g.AddVertex("C", &schema.Struct{})
	g.AddOwnership(a, b)
	g.AddOwnership(c, b)

	parent, _ := g.Parent(b)
	fmt.Println("parent:", g.Name(parent))
	for _, e := range g.Parents(b) {
		fmt.Println("owner:", g.Name(e.Owner))
	}
	// Output:
	// parent: A
	// owner: A
	// owner: C
}

func ExampleGraph_Resolve() {
	g := syntax.New()
	ns, _ := g.AddChild(syntax.NullVertex, "render", &schema.Namespace{})
	g.AddChild(ns, "Flags", &schema.Enum{Flags: true})
	node, _ := g.AddChild(ns, "Node", &schema.Struct{})
	member, _ := g.AddChild(node, "mFlags", &schema.Member{TypePath: "Flags"})

	if v, ok := g.Resolve(member, "Flags"); ok {
		fmt.Println(g.PathOf(v), g.KindOf(v))
	}
	// Output: /render/Flags Enum
}
