package syntax

import (
	"math"
	"slices"

	errs "github.com/star-e/generator-sub002/pkg/errors"
	"github.com/star-e/generator-sub002/pkg/path"
)

// ModuleID is the dense index of a module.
type ModuleID uint32

// NullModule is the sentinel for "no module". As the parent argument of
// [ModuleGraph.OpenModule] it denotes a top-level module.
const NullModule ModuleID = math.MaxUint32

// ModuleInfo describes how a module's declarations are emitted.
type ModuleInfo struct {
	Export     bool   `json:"export,omitempty" toml:"export" yaml:"export"`
	API        string `json:"api,omitempty" toml:"api" yaml:"api"`
	Folder     string `json:"folder,omitempty" toml:"folder" yaml:"folder"`
	FilePrefix string `json:"filePrefix,omitempty" toml:"file_prefix" yaml:"file_prefix"`
	ExportAs   string `json:"exportAs,omitempty" toml:"export_as" yaml:"export_as"`
}

// IsZero reports whether no field of i is set.
func (i ModuleInfo) IsZero() bool { return i == ModuleInfo{} }

// ModuleOwnership is a structural edge from a module to a nested module.
type ModuleOwnership struct {
	ID    EdgeID
	Owner ModuleID
	Owned ModuleID
}

// ModuleDependency records that From imports declarations of To.
type ModuleDependency struct {
	ID   EdgeID
	From ModuleID
	To   ModuleID
}

// Module is a read-only snapshot of a stored module.
type Module struct {
	ID   ModuleID
	Name string
	Path string
	Info ModuleInfo
}

type moduleRecord struct {
	name       string
	path       string
	info       ModuleInfo
	children   []EdgeID
	parents    []EdgeID
	requires   []EdgeID
	requiredBy []EdgeID
}

// ModuleGraph stores the modules a schema is split into. Modules nest through
// ownership edges exactly like declarations do, and a module path such as
// "/engine/render" addresses a module through its canonical parents.
// Dependency edges play the role reference edges play for declarations.
type ModuleGraph struct {
	modules      []moduleRecord
	ownerships   []ModuleOwnership
	dependencies []ModuleDependency
	paths        map[string]ModuleID

	state State
}

// NewModuleGraph creates an empty module graph in the building state.
func NewModuleGraph() *ModuleGraph {
	return &ModuleGraph{paths: make(map[string]ModuleID)}
}

// State returns the current lifecycle state of the module graph.
func (mg *ModuleGraph) State() State { return mg.state }

// IsFrozen returns true if the module graph is in read-only mode.
func (mg *ModuleGraph) IsFrozen() bool { return mg.state == StateFrozen }

// Freeze makes the module graph read-only.
func (mg *ModuleGraph) Freeze() { mg.state = StateFrozen }

func (mg *ModuleGraph) checkWritable() error {
	if mg.state == StateFrozen {
		return errs.New(errs.ErrCodeGraphFrozen, "module graph is frozen and cannot be modified")
	}
	return nil
}

func (mg *ModuleGraph) checkModule(m ModuleID, role string) error {
	if !mg.Contains(m) {
		return errs.New(errs.ErrCodeDanglingVertex, "%s module %d does not exist", role, m)
	}
	return nil
}

// AddModule stores a new module without edges or a path.
//
// Errors: GRAPH_FROZEN.
func (mg *ModuleGraph) AddModule(name string, info ModuleInfo) (ModuleID, error) {
	if err := mg.checkWritable(); err != nil {
		return NullModule, err
	}
	return mg.appendModule(name, info), nil
}

func (mg *ModuleGraph) appendModule(name string, info ModuleInfo) ModuleID {
	id := ModuleID(len(mg.modules))
	mg.modules = append(mg.modules, moduleRecord{name: name, info: info})
	return id
}

// AddOwnership records that owner contains owned. The first ownership
// registered for owned is its canonical parent.
//
// Errors: GRAPH_FROZEN, DANGLING_VERTEX if either endpoint does not exist.
func (mg *ModuleGraph) AddOwnership(owner, owned ModuleID) (ModuleOwnership, error) {
	if err := mg.checkWritable(); err != nil {
		return ModuleOwnership{}, err
	}
	if err := mg.checkModule(owner, "owner"); err != nil {
		return ModuleOwnership{}, err
	}
	if err := mg.checkModule(owned, "owned"); err != nil {
		return ModuleOwnership{}, err
	}
	return mg.appendOwnership(owner, owned), nil
}

func (mg *ModuleGraph) appendOwnership(owner, owned ModuleID) ModuleOwnership {
	e := ModuleOwnership{ID: EdgeID(len(mg.ownerships)), Owner: owner, Owned: owned}
	mg.ownerships = append(mg.ownerships, e)
	mg.modules[owner].children = append(mg.modules[owner].children, e.ID)
	mg.modules[owned].parents = append(mg.modules[owned].parents, e.ID)
	return e
}

// AddDependency records that from imports declarations of to.
//
// Errors: GRAPH_FROZEN, DANGLING_VERTEX if either endpoint does not exist.
func (mg *ModuleGraph) AddDependency(from, to ModuleID) (ModuleDependency, error) {
	if err := mg.checkWritable(); err != nil {
		return ModuleDependency{}, err
	}
	if err := mg.checkModule(from, "source"); err != nil {
		return ModuleDependency{}, err
	}
	if err := mg.checkModule(to, "target"); err != nil {
		return ModuleDependency{}, err
	}
	e := ModuleDependency{ID: EdgeID(len(mg.dependencies)), From: from, To: to}
	mg.dependencies = append(mg.dependencies, e)
	mg.modules[from].requires = append(mg.modules[from].requires, e.ID)
	mg.modules[to].requiredBy = append(mg.modules[to].requiredBy, e.ID)
	return e, nil
}

// RegisterPath makes m addressable under the normalized form of text.
//
// Errors: GRAPH_FROZEN; NOT_FOUND if m does not exist; INVALID_PATH if text
// is malformed or does not name a module; DUPLICATE_PATH if the path is
// taken or m already has one.
func (mg *ModuleGraph) RegisterPath(m ModuleID, text string) error {
	if err := mg.checkWritable(); err != nil {
		return err
	}
	if !mg.Contains(m) {
		return errs.New(errs.ErrCodeNotFound, "module %d does not exist", m)
	}
	p, err := path.Normalize(text)
	if err != nil {
		return err
	}
	if p.Empty() || p.String() == "/" {
		return errs.New(errs.ErrCodeInvalidPath, "path %q does not name a module", text)
	}
	if prev := mg.modules[m].path; prev != "" {
		return errs.New(errs.ErrCodeDuplicatePath, "module %d already registered at %q", m, prev)
	}
	if other, ok := mg.paths[p.String()]; ok {
		return errs.New(errs.ErrCodeDuplicatePath, "path %q already registered for module %d", p, other)
	}
	mg.modules[m].path = p.String()
	mg.paths[p.String()] = m
	return nil
}

// OpenModule returns the module named name under parent, creating it when
// it does not exist yet. Pass [NullModule] as parent for a top-level module.
// The info of an existing module is filled in when it was still empty.
//
// Errors: GRAPH_FROZEN when a module has to be created; INVALID_NAME;
// DANGLING_VERTEX if parent does not exist; INVALID_PATH if parent is not
// addressable; INVALID_INPUT if the module already carries different info.
func (mg *ModuleGraph) OpenModule(parent ModuleID, name string, info ModuleInfo) (ModuleID, error) {
	if err := errs.ValidateName(name); err != nil {
		return NullModule, err
	}
	base := ""
	if parent != NullModule {
		if err := mg.checkModule(parent, "parent"); err != nil {
			return NullModule, err
		}
		base = mg.modules[parent].path
		if base == "" {
			return NullModule, errs.New(errs.ErrCodeInvalidPath, "module %q is not addressable", mg.modules[parent].name)
		}
	}

	p := base + "/" + name
	if m, ok := mg.paths[p]; ok {
		return m, mg.mergeInfo(m, info)
	}
	if err := mg.checkWritable(); err != nil {
		return NullModule, err
	}
	m := mg.appendModule(name, info)
	if parent != NullModule {
		mg.appendOwnership(parent, m)
	}
	mg.modules[m].path = p
	mg.paths[p] = m
	return m, nil
}

// OpenModulePath opens every module along text, which is read as absolute
// even without a leading separator. Only the last module receives info.
//
// Errors: INVALID_PATH if text is malformed or names no module; those of
// [ModuleGraph.OpenModule].
func (mg *ModuleGraph) OpenModulePath(text string, info ModuleInfo) (ModuleID, error) {
	if !path.Parse(text).IsAbsolute() {
		text = "/" + text
	}
	p, err := path.Normalize(text)
	if err != nil {
		return NullModule, err
	}
	if p.Empty() || p.String() == "/" {
		return NullModule, errs.New(errs.ErrCodeInvalidPath, "path %q does not name a module", text)
	}
	segments := slices.Collect(p.View().Segments())
	m := NullModule
	for i, name := range segments {
		var mi ModuleInfo
		if i == len(segments)-1 {
			mi = info
		}
		if m, err = mg.OpenModule(m, name, mi); err != nil {
			return NullModule, err
		}
	}
	return m, nil
}

func (mg *ModuleGraph) mergeInfo(m ModuleID, info ModuleInfo) error {
	r := &mg.modules[m]
	switch {
	case info.IsZero() || info == r.info:
		return nil
	case !r.info.IsZero():
		return errs.New(errs.ErrCodeInvalidInput, "module %q already declared with different settings", r.path)
	}
	if err := mg.checkWritable(); err != nil {
		return err
	}
	r.info = info
	return nil
}

// NumModules returns the number of modules.
func (mg *ModuleGraph) NumModules() int { return len(mg.modules) }

// Contains reports whether m names a stored module.
func (mg *ModuleGraph) Contains(m ModuleID) bool { return int64(m) < int64(len(mg.modules)) }

// Modules returns every module id in insertion order.
func (mg *ModuleGraph) Modules() []ModuleID {
	out := make([]ModuleID, len(mg.modules))
	for i := range out {
		out[i] = ModuleID(i)
	}
	return out
}

// Module returns a snapshot of m.
func (mg *ModuleGraph) Module(m ModuleID) (Module, bool) {
	if !mg.Contains(m) {
		return Module{}, false
	}
	r := &mg.modules[m]
	return Module{ID: m, Name: r.name, Path: r.path, Info: r.info}, true
}

// Name returns the name of m, or "" if m does not exist.
func (mg *ModuleGraph) Name(m ModuleID) string {
	if !mg.Contains(m) {
		return ""
	}
	return mg.modules[m].name
}

// PathOf returns the path of m, or "" if m is not addressable.
func (mg *ModuleGraph) PathOf(m ModuleID) string {
	if !mg.Contains(m) {
		return ""
	}
	return mg.modules[m].path
}

// Info returns the emission settings of m.
func (mg *ModuleGraph) Info(m ModuleID) ModuleInfo {
	if !mg.Contains(m) {
		return ModuleInfo{}
	}
	return mg.modules[m].info
}

// Locate returns the module registered at the normalized form of an
// absolute path.
func (mg *ModuleGraph) Locate(absolute string) (ModuleID, bool) {
	if m, ok := mg.paths[absolute]; ok {
		return m, true
	}
	p, err := path.Normalize(absolute)
	if err != nil {
		return NullModule, false
	}
	m, ok := mg.paths[p.String()]
	return m, ok
}

// Children returns the ownership edges owned by m in insertion order.
func (mg *ModuleGraph) Children(m ModuleID) []ModuleOwnership {
	if !mg.Contains(m) {
		return nil
	}
	return mg.ownershipList(mg.modules[m].children)
}

// ChildModules returns the modules nested in m, once per ownership edge.
func (mg *ModuleGraph) ChildModules(m ModuleID) []ModuleID {
	edges := mg.Children(m)
	out := make([]ModuleID, len(edges))
	for i, e := range edges {
		out[i] = e.Owned
	}
	return out
}

// Parents returns the ownership edges owning m in registration order.
func (mg *ModuleGraph) Parents(m ModuleID) []ModuleOwnership {
	if !mg.Contains(m) {
		return nil
	}
	return mg.ownershipList(mg.modules[m].parents)
}

// Parent returns the canonical parent of m.
func (mg *ModuleGraph) Parent(m ModuleID) (ModuleID, bool) {
	if !mg.Contains(m) || len(mg.modules[m].parents) == 0 {
		return NullModule, false
	}
	return mg.ownerships[mg.modules[m].parents[0]].Owner, true
}

// Ownership returns the first ownership edge from u to v.
func (mg *ModuleGraph) Ownership(u, v ModuleID) (ModuleOwnership, bool) {
	for _, e := range mg.Children(u) {
		if e.Owned == v {
			return e, true
		}
	}
	return ModuleOwnership{}, false
}

// Ownerships returns every ownership edge in id order.
func (mg *ModuleGraph) Ownerships() []ModuleOwnership {
	return append([]ModuleOwnership(nil), mg.ownerships...)
}

// NumOwnerships returns the number of ownership edges.
func (mg *ModuleGraph) NumOwnerships() int { return len(mg.ownerships) }

func (mg *ModuleGraph) ownershipList(ids []EdgeID) []ModuleOwnership {
	out := make([]ModuleOwnership, len(ids))
	for i, id := range ids {
		out[i] = mg.ownerships[id]
	}
	return out
}

// Requires returns the dependencies of m in insertion order.
func (mg *ModuleGraph) Requires(m ModuleID) []ModuleDependency {
	if !mg.Contains(m) {
		return nil
	}
	return mg.dependencyList(mg.modules[m].requires)
}

// RequiredBy returns the dependencies on m in insertion order.
func (mg *ModuleGraph) RequiredBy(m ModuleID) []ModuleDependency {
	if !mg.Contains(m) {
		return nil
	}
	return mg.dependencyList(mg.modules[m].requiredBy)
}

// Dependency returns the first dependency from u on v.
func (mg *ModuleGraph) Dependency(u, v ModuleID) (ModuleDependency, bool) {
	for _, e := range mg.Requires(u) {
		if e.To == v {
			return e, true
		}
	}
	return ModuleDependency{}, false
}

// AllDependencies returns every dependency edge in id order.
func (mg *ModuleGraph) AllDependencies() []ModuleDependency {
	return append([]ModuleDependency(nil), mg.dependencies...)
}

// NumDependencies returns the number of dependency edges.
func (mg *ModuleGraph) NumDependencies() int { return len(mg.dependencies) }

func (mg *ModuleGraph) dependencyList(ids []EdgeID) []ModuleDependency {
	out := make([]ModuleDependency, len(ids))
	for i, id := range ids {
		out[i] = mg.dependencies[id]
	}
	return out
}

// Roots returns the modules without owners in insertion order.
func (mg *ModuleGraph) Roots() []ModuleID {
	var out []ModuleID
	for i := range mg.modules {
		if len(mg.modules[i].parents) == 0 {
			out = append(out, ModuleID(i))
		}
	}
	return out
}
