// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about schema loading, graph compilation, and artifact output.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCompileHooks(&myCompileHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Compile().OnLoadStart(ctx, "schema.toml")
//	// ... build the graph ...
//	observability.Compile().OnLoadComplete(ctx, "schema.toml", vertexCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Compile Hooks
// =============================================================================

// CompileHooks receives events while a schema graph is built.
type CompileHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, vertexCount int, duration time.Duration, err error)

	// Compile events (validation and freeze)
	OnCompileStart(ctx context.Context, module string, vertexCount int)
	OnCompileComplete(ctx context.Context, module string, ambiguities int, duration time.Duration, err error)
}

// =============================================================================
// Output Hooks
// =============================================================================

// OutputHooks receives events from artifact generation.
type OutputHooks interface {
	// OnRenderStart records the start of a multi-format render.
	OnRenderStart(ctx context.Context, formats []string)

	// OnRenderComplete records the end of a multi-format render.
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)

	// OnArtifactWritten records one written artifact.
	OnArtifactWritten(ctx context.Context, format, path string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCompileHooks is a no-op implementation of CompileHooks.
type NoopCompileHooks struct{}

func (NoopCompileHooks) OnLoadStart(context.Context, string)                                  {}
func (NoopCompileHooks) OnLoadComplete(context.Context, string, int, time.Duration, error)    {}
func (NoopCompileHooks) OnCompileStart(context.Context, string, int)                          {}
func (NoopCompileHooks) OnCompileComplete(context.Context, string, int, time.Duration, error) {}

// NoopOutputHooks is a no-op implementation of OutputHooks.
type NoopOutputHooks struct{}

func (NoopOutputHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopOutputHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}
func (NoopOutputHooks) OnArtifactWritten(context.Context, string, string, int)           {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	compileHooks CompileHooks = NoopCompileHooks{}
	outputHooks  OutputHooks  = NoopOutputHooks{}
	hooksMu      sync.RWMutex
)

// SetCompileHooks registers custom compile hooks.
// This should be called once at application startup before any graph is built.
func SetCompileHooks(h CompileHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		compileHooks = h
	}
}

// SetOutputHooks registers custom output hooks.
func SetOutputHooks(h OutputHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		outputHooks = h
	}
}

// Compile returns the registered compile hooks.
func Compile() CompileHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return compileHooks
}

// Output returns the registered output hooks.
func Output() OutputHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return outputHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	compileHooks = NoopCompileHooks{}
	outputHooks = NoopOutputHooks{}
}
