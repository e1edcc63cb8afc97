// Package errors gives every failure of the schema graph engine a stable
// [Code].
//
// Paths, the graph store, the module graph and the manifest loaders all
// return *[Error] values. Callers branch with [Is] or [CodeOf] instead of
// matching message text:
//
//	if errors.Is(err, errors.ErrCodeAmbiguousParent) {
//		logger.Warn("ambiguous parent", "err", err)
//	}
//
// Codes group by prefix. INVALID_* codes reject caller input, NOT_FOUND
// reports an unknown path, vertex or module, and the remaining codes report
// a graph that cannot take the requested shape. [ExitCode] maps the groups
// to process exit statuses.
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Code identifies a failure kind.
type Code string

const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidName     Code = "INVALID_NAME"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"

	ErrCodeNotFound Code = "NOT_FOUND"

	ErrCodeDanglingVertex  Code = "DANGLING_VERTEX"
	ErrCodeAmbiguousParent Code = "AMBIGUOUS_PARENT"
	ErrCodeDuplicatePath   Code = "DUPLICATE_PATH"
	ErrCodeGraphFrozen     Code = "GRAPH_FROZEN"
	ErrCodeGraphHasCycle   Code = "GRAPH_HAS_CYCLE"
)

// Rejects reports whether c blames the caller's input rather than the
// state of a graph.
func (c Code) Rejects() bool { return strings.HasPrefix(string(c), "INVALID_") }

// Error carries a code, a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is New with a cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// CodeOf returns the code of the outermost *Error in err's chain, or the
// empty code when there is none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// ExitCode maps err to a process exit status: 0 for nil, 130 for a
// cancelled context, 2 for rejected input and 1 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case CodeOf(err).Rejects():
		return 2
	default:
		return 1
	}
}
