// Package path implements the hierarchical naming scheme used to address
// declarations in a schema graph.
//
// # Overview
//
// A path is a '/'-separated sequence of segments. Absolute paths start with
// the separator ("/render/Node") and are what the graph store indexes;
// relative paths ("Node/flags") are resolved against a vertex's own path.
//
// Two value types are provided:
//
//   - [View] is a non-owning, read-only wrapper around a string. Creating one
//     is O(1) and never allocates; segmentation is deferred until iterated.
//   - [Path] owns its text and can be extended with [Path.Append].
//
// Both expose the same projections: [View.Name], [View.Parent], [View.Stem],
// [View.Extension], [View.Basename] and [View.Relative].
//
// # Normalization
//
// [Normalize] validates its input and resolves "." and ".." segments:
//
//	p, _ := path.Normalize("/a/b/../c") // "/a/c"
//	p, _ = path.Normalize("/a/./b")     // "/a/b"
//	p, _ = path.Normalize("/..")        // "" (escaping the root yields the empty path)
//
// Inputs must be absolute, free of doubled separators and of bytes ordered
// below '.'; anything else fails with an INVALID_PATH error.
//
// # Iteration
//
// [Iter] walks segments lazily. Two iterators compare equal when they cover
// the same span; content is never compared. [View.Segments] adapts the
// iterator to a range-over-func sequence:
//
//	for seg := range path.Parse("/a/b/c").Segments() {
//	    fmt.Println(seg)
//	}
package path
