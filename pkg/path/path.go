package path

import (
	"strings"
)

const (
	// Separator divides path segments.
	Separator = '/'

	// MinChar is the smallest byte allowed in a normalizable path.
	// Control characters, spaces and most punctuation sort below it.
	MinChar = '.'
)

// View is a read-only, non-owning view over path text.
// The zero value is the empty path.
type View struct {
	s string
}

// Parse wraps text as a View without validating or copying it.
func Parse(text string) View {
	return View{s: text}
}

// String returns the underlying text.
func (v View) String() string { return v.s }

// Empty reports whether the view has no text.
func (v View) Empty() bool { return v.s == "" }

// Len returns the length of the text in bytes.
func (v View) Len() int { return len(v.s) }

// IsAbsolute reports whether the path starts with the separator.
// The empty path is neither absolute nor relative.
func (v View) IsAbsolute() bool {
	return v.s != "" && v.s[0] == Separator
}

// IsRelative reports whether the path is non-empty and not absolute.
func (v View) IsRelative() bool {
	return v.s != "" && v.s[0] != Separator
}

// Relative strips a leading separator.
func (v View) Relative() View {
	if v.IsAbsolute() {
		return View{s: v.s[1:]}
	}
	return v
}

// Name returns the final segment.
func (v View) Name() string {
	i := strings.LastIndexByte(v.s, Separator)
	if i < 0 {
		return v.s
	}
	return v.s[i+1:]
}

// Parent returns everything before the final separator.
// The parent of a top-level path such as "/a" is the empty view.
func (v View) Parent() View {
	i := strings.LastIndexByte(v.s, Separator)
	if i <= 0 {
		return View{}
	}
	return View{s: v.s[:i]}
}

// Extension returns the suffix of the final segment starting at its last
// '.', including the dot. A segment whose only dot is its first byte
// ("/a/.hidden") has no extension.
func (v View) Extension() string {
	name := v.Name()
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i:]
}

// Stem returns the path without its extension.
func (v View) Stem() string {
	return v.s[:len(v.s)-len(v.Extension())]
}

// Basename returns the final segment without its extension.
func (v View) Basename() string {
	name := v.Name()
	return name[:len(name)-len(v.Extension())]
}

// Path is an owning path value.
type Path struct {
	name string
}

// New returns a Path holding text as-is.
func New(text string) Path {
	return Path{name: text}
}

// Make builds an absolute path from segment names: Make("a", "b") is "/a/b".
func Make(names ...string) Path {
	var b strings.Builder
	for _, n := range names {
		b.WriteByte(Separator)
		b.WriteString(n)
	}
	return Path{name: b.String()}
}

// Append adds a separator followed by the relative form of name.
func (p *Path) Append(name string) *Path {
	p.name += string(Separator) + Parse(name).Relative().String()
	return p
}

// Join returns a new path with name appended.
func (p Path) Join(name string) Path {
	p.Append(name)
	return p
}

// View returns a non-owning view over the path.
func (p Path) View() View { return View{s: p.name} }

// String returns the path text.
func (p Path) String() string { return p.name }

// Empty reports whether the path has no text.
func (p Path) Empty() bool { return p.name == "" }

// IsAbsolute reports whether the path starts with the separator.
func (p Path) IsAbsolute() bool { return p.View().IsAbsolute() }

// Name returns the final segment.
func (p Path) Name() string { return p.View().Name() }

// Parent returns the path without its final segment.
func (p Path) Parent() Path { return Path{name: p.View().Parent().String()} }

// Extension returns the extension of the final segment.
func (p Path) Extension() string { return p.View().Extension() }

// Stem returns the path without its extension.
func (p Path) Stem() string { return p.View().Stem() }

// Basename returns the final segment without its extension.
func (p Path) Basename() string { return p.View().Basename() }
