package path

import (
	"strings"

	errs "github.com/star-e/generator-sub002/pkg/errors"
)

// Validate checks the preconditions of [Normalize]: text must be non-empty,
// absolute, free of doubled separators and contain no byte below [MinChar].
func Validate(text string) error {
	if text == "" {
		return errs.New(errs.ErrCodeInvalidPath, "path cannot be empty")
	}
	if text[0] != Separator {
		return errs.New(errs.ErrCodeInvalidPath, "path must be absolute: %q", text)
	}
	if strings.Contains(text, "//") {
		return errs.New(errs.ErrCodeInvalidPath, "path contains empty segment: %q", text)
	}
	for i := 0; i < len(text); i++ {
		if text[i] < MinChar {
			return errs.New(errs.ErrCodeInvalidPath, "path contains invalid character %q at %d", text[i], i)
		}
	}
	return nil
}

// Normalize validates text and resolves its "." and ".." segments.
//
// A "." segment is dropped. A ".." segment removes the segment before it.
// A ".." that would climb above the root collapses the whole path to the
// empty path, as does a path that resolves to no segments at all ("/a/..",
// "/."). The root "/" is returned unchanged and a trailing separator is
// dropped. For non-empty results Normalize is idempotent.
func Normalize(text string) (Path, error) {
	if err := Validate(text); err != nil {
		return Path{}, err
	}
	if text == "/" {
		return Path{name: text}, nil
	}

	segs := make([]string, 0, strings.Count(text, "/"))
	for seg := range Parse(text).Segments() {
		switch seg {
		case ".":
		case "..":
			if len(segs) == 0 {
				return Path{}, nil
			}
			segs = segs[:len(segs)-1]
		default:
			segs = append(segs, seg)
		}
	}
	if len(segs) == 0 {
		return Path{}, nil
	}
	return Make(segs...), nil
}

// MustNormalize is like [Normalize] but panics on invalid input.
func MustNormalize(text string) Path {
	p, err := Normalize(text)
	if err != nil {
		panic(err)
	}
	return p
}

// Resolve joins a relative path onto base and normalizes the result.
// An absolute rel is normalized on its own.
func Resolve(base View, rel string) (Path, error) {
	if Parse(rel).IsAbsolute() {
		return Normalize(rel)
	}
	if base.String() == "/" {
		return Normalize("/" + rel)
	}
	return Normalize(base.String() + "/" + rel)
}
