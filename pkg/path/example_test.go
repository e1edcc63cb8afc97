package path_test

import (
	"fmt"

	"github.com/star-e/generator-sub002/pkg/path"
)

func ExampleNormalize() {
	for _, in := range []string{"/a/./b", "/a/b/../c", "/.."} {
		p, err := path.Normalize(in)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Printf("%q -> %q\n", in, p)
	}
	// Output:
	// "/a/./b" -> "/a/b"
	// "/a/b/../c" -> "/a/c"
	// "/.." -> ""
}

func ExampleView_Segments() {
	v := path.Parse("/render/Node/flags")
	for seg := range v.Segments() {
		fmt.Println(seg)
	}
	fmt.Println(v.Parent(), v.Name())
	// Output:
	// render
	// Node
	// flags
	// /render/Node flags
}
