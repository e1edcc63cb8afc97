package builder

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/star-e/generator-sub002/pkg/errors"
	"github.com/star-e/generator-sub002/pkg/observability"
	"github.com/star-e/generator-sub002/pkg/schema"
	"github.com/star-e/generator-sub002/pkg/syntax"
)

// Builder populates a syntax graph from manifests.
//
// A Builder is single-use after a failed Load: the graph is append-only, so
// the declarations made before the failure stay behind, and every later Load
// or Compile returns the first error.
type Builder struct {
	g      *syntax.Graph
	logger *log.Logger
	decls  []declared
	err    error
}

type declared struct {
	v    syntax.VertexID
	decl *Decl
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for build diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// New creates a builder for an empty graph of the named module.
func New(module string, opts ...Option) *Builder {
	b := &Builder{
		g:      syntax.New(syntax.WithModule(module)),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Graph returns the graph under construction.
func (b *Builder) Graph() *syntax.Graph { return b.g }

// Load adds every declaration of m to the graph and links them. Declarations
// from earlier Load calls are visible to later ones.
func (b *Builder) Load(m *Manifest) error {
	return b.LoadAll(m)
}

// LoadAll declares the contents of every manifest before linking any of
// them, so manifests may refer to each other in any order.
func (b *Builder) LoadAll(ms ...*Manifest) error {
	if b.err != nil {
		return fmt.Errorf("builder unusable after failed load: %w", b.err)
	}
	if err := b.loadAll(ms); err != nil {
		b.err = err
		return err
	}
	return nil
}

func (b *Builder) loadAll(ms []*Manifest) error {
	start := len(b.decls)
	for _, m := range ms {
		module, err := b.openModule(m)
		if err != nil {
			return err
		}
		for i := range m.Decls {
			if err := b.declare(syntax.NullVertex, &m.Decls[i], module); err != nil {
				return err
			}
		}
		b.logger.Debug("manifest loaded", "module", m.Module, "declarations", countDecls(m.Decls))
	}
	for _, d := range b.decls[start:] {
		if err := b.link(d); err != nil {
			return err
		}
	}
	return nil
}

// openModule opens the module m declares and its dependencies. It returns
// the module path, or "" when m names no module.
func (b *Builder) openModule(m *Manifest) (string, error) {
	if m.Module == "" {
		return "", nil
	}
	mg := b.g.Modules()
	id, err := mg.OpenModulePath(m.Module, m.Info)
	if err != nil {
		return "", fmt.Errorf("module %q: %w", m.Module, err)
	}
	for _, name := range m.Requires {
		dep, err := mg.OpenModulePath(name, syntax.ModuleInfo{})
		if err != nil {
			return "", fmt.Errorf("module %q requires %q: %w", m.Module, name, err)
		}
		if dep == id {
			return "", errs.New(errs.ErrCodeInvalidManifest, "module %q requires itself", m.Module)
		}
		if _, ok := mg.Dependency(id, dep); ok {
			continue
		}
		if _, err := mg.AddDependency(id, dep); err != nil {
			return "", err
		}
	}
	return mg.PathOf(id), nil
}

func countDecls(ds []Decl) int {
	n := len(ds)
	for i := range ds {
		n += countDecls(ds[i].Children)
	}
	return n
}

func (b *Builder) declare(owner syntax.VertexID, d *Decl, module string) error {
	p, err := d.Payload()
	if err != nil {
		return err
	}
	v, err := b.g.AddChild(owner, d.Name, p)
	if err != nil {
		return fmt.Errorf("declare %s/%s: %w", b.g.PathOf(owner), d.Name, err)
	}
	if module != "" {
		if err := b.g.SetModule(v, module); err != nil {
			return err
		}
	}
	b.decls = append(b.decls, declared{v: v, decl: d})
	for i := range d.Children {
		if err := b.declare(v, &d.Children[i], module); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) link(d declared) error {
	where := b.g.PathOf(d.v)
	scope, _ := b.g.Parent(d.v)

	for _, name := range d.decl.Owners {
		owner, ok := b.g.Resolve(scope, name)
		if !ok {
			return errs.New(errs.ErrCodeNotFound, "%s: owner %q not found", where, name)
		}
		if _, err := b.g.AddOwnership(owner, d.v); err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
	}

	for _, name := range d.decl.References {
		target, ok := b.g.Resolve(d.v, name)
		if !ok {
			return errs.New(errs.ErrCodeNotFound, "%s: reference %q not found", where, name)
		}
		if err := b.reference(d.v, target); err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
	}

	for _, name := range schema.TypeRefs(b.g.Payload(d.v)) {
		target, ok := b.g.Resolve(d.v, name)
		if !ok {
			b.logger.Debug("builtin type", "decl", where, "type", name)
			continue
		}
		if target == d.v {
			continue
		}
		if err := b.reference(d.v, target); err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
	}
	return nil
}

func (b *Builder) reference(from, to syntax.VertexID) error {
	if _, ok := b.g.Reference(from, to); ok {
		return nil
	}
	if err := b.checkImport(from, to); err != nil {
		return err
	}
	_, err := b.g.AddReference(from, to)
	return err
}

// checkImport requires a module dependency for every reference that crosses
// modules.
func (b *Builder) checkImport(from, to syntax.VertexID) error {
	fm, tm := b.g.ModuleOf(from), b.g.ModuleOf(to)
	if fm == "" || tm == "" || fm == tm {
		return nil
	}
	mg := b.g.Modules()
	u, _ := mg.Locate(fm)
	v, _ := mg.Locate(tm)
	if _, ok := mg.Dependency(u, v); !ok {
		return errs.New(errs.ErrCodeInvalidManifest, "module %q uses %s without requiring %q", fm, b.g.PathOf(to), tm)
	}
	return nil
}

// Compile validates the graph, reports ambiguous parents and freezes it.
// The graph is left unfrozen when validation fails.
func (b *Builder) Compile(ctx context.Context) (*syntax.Graph, error) {
	if b.err != nil {
		return nil, fmt.Errorf("builder unusable after failed load: %w", b.err)
	}
	hooks := observability.Compile()
	hooks.OnCompileStart(ctx, b.g.Module(), b.g.NumVertices())
	start := time.Now()

	if err := b.g.Validate(); err != nil {
		hooks.OnCompileComplete(ctx, b.g.Module(), 0, time.Since(start), err)
		return nil, err
	}

	ambiguous := b.g.Ambiguities()
	for _, v := range ambiguous {
		b.logger.Warn("ambiguous parent", "path", b.g.PathOf(v), "owners", b.g.NumParents(v))
	}

	b.g.Freeze()
	b.logger.Debug("graph frozen",
		"module", b.g.Module(),
		"vertices", b.g.NumVertices(),
		"ownerships", b.g.NumOwnerships(),
		"references", b.g.NumReferences(),
		"modules", b.g.Modules().NumModules())
	hooks.OnCompileComplete(ctx, b.g.Module(), len(ambiguous), time.Since(start), nil)
	return b.g, nil
}

// LoadFile reads, loads and compiles a single manifest file.
func LoadFile(ctx context.Context, path string, opts ...Option) (*syntax.Graph, error) {
	hooks := observability.Compile()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	g, err := loadFile(ctx, path, opts...)

	n := 0
	if g != nil {
		n = g.NumVertices()
	}
	hooks.OnLoadComplete(ctx, path, n, time.Since(start), err)
	return g, err
}

func loadFile(ctx context.Context, path string, opts ...Option) (*syntax.Graph, error) {
	m, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	b := New(m.Module, opts...)
	if err := b.Load(m); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b.Compile(ctx)
}

// LoadFiles reads every manifest at paths and compiles them into one graph
// named name. Each manifest contributes its own module.
func LoadFiles(ctx context.Context, name string, paths []string, opts ...Option) (*syntax.Graph, error) {
	ms := make([]*Manifest, 0, len(paths))
	for _, p := range paths {
		m, err := ReadFile(p)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	b := New(name, opts...)
	if err := b.LoadAll(ms...); err != nil {
		return nil, err
	}
	return b.Compile(ctx)
}
