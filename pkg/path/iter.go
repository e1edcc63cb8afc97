package path

import (
	"iter"
	"strings"
)

// Iter is a forward iterator over the segments of a path.
//
// The iterator holds a [begin, end) span into the text. A leading separator
// is skipped and a trailing separator produces no empty segment. The
// exhausted iterator sits at (len, len), which is what [View.End] returns.
type Iter struct {
	s          string
	begin, end int
}

// Begin returns an iterator positioned on the first segment.
func (v View) Begin() Iter {
	it := Iter{s: v.s}
	if v.s == "" {
		return it
	}
	if v.s[0] == Separator {
		it.begin = 1
	}
	it.end = it.boundary(it.begin)
	return it
}

// End returns the exhausted iterator.
func (v View) End() Iter {
	return Iter{s: v.s, begin: len(v.s), end: len(v.s)}
}

func (it Iter) boundary(from int) int {
	if i := strings.IndexByte(it.s[from:], Separator); i >= 0 {
		return from + i
	}
	return len(it.s)
}

// Segment returns the current segment.
func (it Iter) Segment() string {
	return it.s[it.begin:it.end]
}

// Next advances to the following segment. Advancing an exhausted
// iterator is a no-op.
func (it *Iter) Next() {
	if it.end < len(it.s) {
		it.begin = it.end + 1
		it.end = it.boundary(it.begin)
		return
	}
	it.begin = it.end
}

// Done reports whether the iterator is exhausted.
func (it Iter) Done() bool {
	return it.begin == len(it.s) && it.end == len(it.s)
}

// Equal reports whether both iterators cover the same span.
func (it Iter) Equal(o Iter) bool {
	return it.begin == o.begin && it.end == o.end
}

// Segments returns the segments of v in order.
func (v View) Segments() iter.Seq[string] {
	return func(yield func(string) bool) {
		for it, end := v.Begin(), v.End(); !it.Equal(end); it.Next() {
			if !yield(it.Segment()) {
				return
			}
		}
	}
}

// Depth returns the number of segments in v.
func (v View) Depth() int {
	n := 0
	for range v.Segments() {
		n++
	}
	return n
}
