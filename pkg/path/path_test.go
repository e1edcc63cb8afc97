package path

import (
	"slices"
	"testing"
)

func TestViewProjections(t *testing.T) {
	tests := []struct {
		in       string
		name     string
		parent   string
		ext      string
		stem     string
		basename string
		absolute bool
		relative string
	}{
		{"/a/b", "b", "/a", "", "/a/b", "b", true, "a/b"},
		{"/a", "a", "", "", "/a", "a", true, "a"},
		{"/a/b.txt", "b.txt", "/a", ".txt", "/a/b", "b", true, "a/b.txt"},
		{"/a/b.tar.gz", "b.tar.gz", "/a", ".gz", "/a/b.tar", "b.tar", true, "a/b.tar.gz"},
		{"/a/.hidden", ".hidden", "/a", "", "/a/.hidden", ".hidden", true, "a/.hidden"},
		{"/a.d/b", "b", "/a.d", "", "/a.d/b", "b", true, "a.d/b"},
		{"x/y", "y", "x", "", "x/y", "y", false, "x/y"},
		{"x", "x", "", "", "x", "x", false, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := Parse(tt.in)
			if got := v.Name(); got != tt.name {
				t.Errorf("Name() = %q, want %q", got, tt.name)
			}
			if got := v.Parent().String(); got != tt.parent {
				t.Errorf("Parent() = %q, want %q", got, tt.parent)
			}
			if got := v.Extension(); got != tt.ext {
				t.Errorf("Extension() = %q, want %q", got, tt.ext)
			}
			if got := v.Stem(); got != tt.stem {
				t.Errorf("Stem() = %q, want %q", got, tt.stem)
			}
			if got := v.Basename(); got != tt.basename {
				t.Errorf("Basename() = %q, want %q", got, tt.basename)
			}
			if got := v.IsAbsolute(); got != tt.absolute {
				t.Errorf("IsAbsolute() = %v, want %v", got, tt.absolute)
			}
			if got := v.Relative().String(); got != tt.relative {
				t.Errorf("Relative() = %q, want %q", got, tt.relative)
			}
		})
	}
}

func TestEmptyView(t *testing.T) {
	var v View
	if !v.Empty() || v.Len() != 0 {
		t.Errorf("zero View not empty")
	}
	if v.IsAbsolute() || v.IsRelative() {
		t.Errorf("empty view reported absolute=%v relative=%v", v.IsAbsolute(), v.IsRelative())
	}
}

func TestParentNameReconstruct(t *testing.T) {
	for _, s := range []string{"/a", "/a/b", "/x/y/z.h", "/n/.d"} {
		v := Parse(s)
		if got := v.Parent().String() + "/" + v.Name(); got != s {
			t.Errorf("Parent()+/+Name() = %q, want %q", got, s)
		}
	}
}

func TestMakeAndAppend(t *testing.T) {
	if got := Make("a", "b").String(); got != "/a/b" {
		t.Errorf("Make() = %q, want %q", got, "/a/b")
	}
	if got := Make().String(); got != "" {
		t.Errorf("Make() = %q, want empty", got)
	}

	p := New("/render")
	p.Append("Node").Append("/flags")
	if got := p.String(); got != "/render/Node/flags" {
		t.Errorf("Append() = %q, want %q", got, "/render/Node/flags")
	}

	base := New("/a")
	joined := base.Join("b")
	if base.String() != "/a" || joined.String() != "/a/b" {
		t.Errorf("Join() base=%q joined=%q", base, joined)
	}
	if got := joined.Parent().String(); got != "/a" {
		t.Errorf("Parent() = %q, want %q", got, "/a")
	}
}

func TestSegments(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"/", nil},
		{"/a", []string{"a"}},
		{"/a/b/c", []string{"a", "b", "c"}},
		{"/a/", []string{"a"}},
		{"a/b", []string{"a", "b"}},
		{"/a/./..", []string{"a", ".", ".."}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := slices.Collect(Parse(tt.in).Segments())
			if !slices.Equal(got, tt.want) {
				t.Errorf("Segments() = %q, want %q", got, tt.want)
			}
			if d := Parse(tt.in).Depth(); d != len(tt.want) {
				t.Errorf("Depth() = %d, want %d", d, len(tt.want))
			}
		})
	}
}

func TestIterProtocol(t *testing.T) {
	v := Parse("/ab/c")
	it := v.Begin()
	if it.Done() {
		t.Fatal("Begin() is done on non-empty path")
	}
	if got := it.Segment(); got != "ab" {
		t.Errorf("Segment() = %q, want %q", got, "ab")
	}

	// Restartable: a second Begin starts over independently.
	again := v.Begin()
	it.Next()
	if got := it.Segment(); got != "c" {
		t.Errorf("Segment() = %q, want %q", got, "c")
	}
	if got := again.Segment(); got != "ab" {
		t.Errorf("restarted Segment() = %q, want %q", got, "ab")
	}

	it.Next()
	if !it.Equal(v.End()) || !it.Done() {
		t.Errorf("iterator not at End after last segment")
	}
	it.Next()
	if !it.Equal(v.End()) {
		t.Errorf("Next() past End moved the iterator")
	}

	if !Parse("").Begin().Equal(Parse("").End()) {
		t.Errorf("Begin() != End() for empty path")
	}
}

func TestIterEqualComparesSpans(t *testing.T) {
	a := Parse("/x/y").Begin()
	b := Parse("/z/w").Begin()
	if !a.Equal(b) {
		t.Errorf("iterators over equal spans compared unequal")
	}
}
