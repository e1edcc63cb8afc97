package builder

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	errs "github.com/star-e/generator-sub002/pkg/errors"
	"github.com/star-e/generator-sub002/pkg/schema"
	"github.com/star-e/generator-sub002/pkg/syntax"
)

func referenced(g *syntax.Graph, from string) []string {
	v, ok := g.Locate(from)
	if !ok {
		return nil
	}
	var out []string
	for _, r := range g.References(v) {
		out = append(out, g.PathOf(r.To))
	}
	return out
}

func checkRenderGraph(t *testing.T, g *syntax.Graph) {
	t.Helper()

	if !g.IsFrozen() {
		t.Error("graph not frozen after compile")
	}
	if g.Module() != "render" {
		t.Errorf("Module() = %q, want render", g.Module())
	}
	if g.NumVertices() != 12 {
		t.Errorf("NumVertices() = %d, want 12", g.NumVertices())
	}
	if g.NumOwnerships() != 12 {
		t.Errorf("NumOwnerships() = %d, want 12", g.NumOwnerships())
	}
	if g.NumReferences() != 6 {
		t.Errorf("NumReferences() = %d, want 6", g.NumReferences())
	}

	node, err := g.At("/render/Node")
	if err != nil {
		t.Fatalf("At(/render/Node) error: %v", err)
	}
	var members []string
	for _, c := range g.ChildVertices(node) {
		members = append(members, g.Name(c))
	}
	if want := []string{"mFlags", "mName", "mParent", "transform"}; !slices.Equal(members, want) {
		t.Errorf("children of Node = %v, want %v", members, want)
	}

	refs := map[string][]string{
		"/render/Node":                 {"/render/Pass"},
		"/render/Node/mFlags":          {"/render/Flags"},
		"/render/Node/mName":           nil,
		"/render/Node/mParent":         {"/render/Node"},
		"/render/NodeList":             {"/render/Node"},
		"/render/SceneGraph":           {"/render/Node"},
		"/render/SceneGraph/transform": {"/render/Node"},
		"/render/Flags":                nil,
	}
	for from, want := range refs {
		if got := referenced(g, from); !slices.Equal(got, want) {
			t.Errorf("references of %s = %v, want %v", from, got, want)
		}
	}

	mParent, _ := g.Locate("/render/Node/mParent")
	m, ok := g.Payload(mParent).(*schema.Member)
	if !ok || !m.Pointer || m.Public || m.TypePath != "Node" {
		t.Errorf("mParent payload = %+v", g.Payload(mParent))
	}
	visible, _ := g.Locate("/render/Flags/Visible")
	if ev, ok := g.Payload(visible).(*schema.EnumValue); !ok || ev.Value != "1 << 0" || ev.ReflectionName != "visible" {
		t.Errorf("Visible payload = %+v", g.Payload(visible))
	}
	sg, _ := g.Locate("/render/SceneGraph")
	if gp, ok := g.Payload(sg).(*schema.Graph); !ok || gp.VertexList != schema.VertexListList || !gp.Addressable {
		t.Errorf("SceneGraph payload = %+v", g.Payload(sg))
	}

	transform, _ := g.Locate("/render/SceneGraph/transform")
	if parent, _ := g.Parent(transform); g.PathOf(parent) != "/render/SceneGraph" {
		t.Errorf("canonical parent of transform = %q", g.PathOf(parent))
	}
	if got := g.Ambiguities(); len(got) != 1 || got[0] != transform {
		t.Errorf("Ambiguities() = %v, want [transform]", got)
	}
}

func TestLoadFileTOML(t *testing.T) {
	var logs bytes.Buffer
	g, err := LoadFile(context.Background(), filepath.Join("testdata", "render.toml"),
		WithLogger(log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})))
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	checkRenderGraph(t, g)

	out := logs.String()
	for _, want := range []string{"ambiguous parent", "/render/SceneGraph/transform", "builtin type", "std::string"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLoadFileYAML(t *testing.T) {
	g, err := LoadFile(context.Background(), filepath.Join("testdata", "render.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	checkRenderGraph(t, g)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	unnamed := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(unnamed, []byte("decls: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := ReadFile(unnamed)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if m.Module != "scene" {
		t.Errorf("Module = %q, want scene", m.Module)
	}

	if _, err := ReadFile(filepath.Join(dir, "scene.json")); !errs.Is(err, errs.ErrCodeInvalidManifest) {
		t.Errorf("ReadFile(.json) error = %v, want %s", err, errs.ErrCodeInvalidManifest)
	}
	if _, err := ReadFile(filepath.Join(dir, "missing.toml")); !errs.Is(err, errs.ErrCodeNotFound) {
		t.Errorf("ReadFile(missing) error = %v, want %s", err, errs.ErrCodeNotFound)
	}

	broken := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(broken, []byte("decls = [[["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(broken); !errs.Is(err, errs.ErrCodeInvalidManifest) {
		t.Errorf("ReadFile(broken) error = %v, want %s", err, errs.ErrCodeInvalidManifest)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code errs.Code
	}{
		{
			name: "unknown kind",
			yaml: "decls:\n  - {kind: widget, name: W}\n",
			code: errs.ErrCodeInvalidManifest,
		},
		{
			name: "member without type",
			yaml: "decls:\n  - {kind: struct, name: S, children: [{kind: member, name: m}]}\n",
			code: errs.ErrCodeInvalidManifest,
		},
		{
			name: "instance without template",
			yaml: "decls:\n  - {kind: instance, name: I}\n",
			code: errs.ErrCodeInvalidManifest,
		},
		{
			name: "bad vertex list",
			yaml: "decls:\n  - {kind: graph, name: G, vertex_list: deque}\n",
			code: errs.ErrCodeInvalidManifest,
		},
		{
			name: "duplicate name",
			yaml: "decls:\n  - {kind: struct, name: S}\n  - {kind: enum, name: S}\n",
			code: errs.ErrCodeDuplicatePath,
		},
		{
			name: "invalid name",
			yaml: "decls:\n  - {kind: struct, name: \"a b\"}\n",
			code: errs.ErrCodeInvalidName,
		},
		{
			name: "unresolved reference",
			yaml: "decls:\n  - {kind: struct, name: S, references: [Missing]}\n",
			code: errs.ErrCodeNotFound,
		},
		{
			name: "unresolved owner",
			yaml: "decls:\n  - {kind: struct, name: S, owners: [Missing]}\n",
			code: errs.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := DecodeYAML([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("DecodeYAML() error: %v", err)
			}
			err = New("test").Load(m)
			if !errs.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestCompileCycle(t *testing.T) {
	b := New("cyclic")
	m, err := DecodeTOML([]byte(`
[[decls]]
kind = "struct"
name = "A"

  [[decls.children]]
  kind = "struct"
  name = "B"
`))
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Load(m); err != nil {
		t.Fatal(err)
	}

	// Make A canonically owned by B: A has no owner yet, so B becomes its
	// canonical parent and the chain A -> B -> A loops.
	a, _ := b.Graph().Locate("/A")
	bv, _ := b.Graph().Locate("/A/B")
	if _, err := b.Graph().AddOwnership(bv, a); err != nil {
		t.Fatal(err)
	}

	if _, err := b.Compile(context.Background()); !errs.Is(err, errs.ErrCodeGraphHasCycle) {
		t.Errorf("Compile() error = %v, want %s", err, errs.ErrCodeGraphHasCycle)
	}
	if b.Graph().IsFrozen() {
		t.Error("graph frozen despite failed validation")
	}
}

func TestLoadAccumulates(t *testing.T) {
	b := New("multi")
	first, _ := DecodeYAML([]byte("decls:\n  - {kind: value, name: Vec3}\n"))
	second, _ := DecodeYAML([]byte("decls:\n  - {kind: struct, name: Body, children: [{kind: member, name: pos, type: Vec3}]}\n"))

	if err := b.Load(first); err != nil {
		t.Fatal(err)
	}
	if err := b.Load(second); err != nil {
		t.Fatal(err)
	}
	g, err := b.Compile(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := referenced(g, "/Body/pos"); !slices.Equal(got, []string{"/Vec3"}) {
		t.Errorf("references of /Body/pos = %v, want [/Vec3]", got)
	}
}

func TestLoadExampleManifest(t *testing.T) {
	g, err := LoadFile(context.Background(), filepath.Join("..", "..", "examples", "pipeline.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if g.Module() != "pipeline" {
		t.Errorf("Module() = %q, want pipeline", g.Module())
	}

	for _, p := range []string{"/gfx/QueueHint/Compute", "/gfx/PassGraph/raster", "/gfx/RasterPass/hint"} {
		if _, err := g.At(p); err != nil {
			t.Errorf("At(%q) error: %v", p, err)
		}
	}
	if got := referenced(g, "/gfx/PassData"); !slices.Equal(got, []string{"/gfx/RasterPass", "/gfx/ComputePass"}) {
		t.Errorf("references of /gfx/PassData = %v, want [/gfx/RasterPass /gfx/ComputePass]", got)
	}
	if order, err := syntax.DependencyOrder(g); err != nil || len(order) != g.NumVertices() {
		t.Errorf("DependencyOrder() = %d vertices, err %v", len(order), err)
	}
}

func TestLoadFilesModules(t *testing.T) {
	dir := filepath.Join("testdata", "modules")
	// render is listed first and still sees the declarations of core.
	g, err := LoadFiles(context.Background(), "engine",
		[]string{filepath.Join(dir, "render.toml"), filepath.Join(dir, "core.yaml")})
	if err != nil {
		t.Fatalf("LoadFiles() error: %v", err)
	}

	mg := g.Modules()
	core, ok := mg.Locate("/engine/core")
	if !ok {
		t.Fatal("module /engine/core missing")
	}
	render, _ := mg.Locate("/engine/render")
	if info := mg.Info(core); info.API != "CC_CORE_API" || !info.Export || info.FilePrefix != "core" {
		t.Errorf("Info(core) = %+v", info)
	}
	if info := mg.Info(render); info.Folder != "cocos/render" {
		t.Errorf("Info(render) = %+v", info)
	}
	if _, ok := mg.Dependency(render, core); !ok {
		t.Error("render does not depend on core")
	}

	order, err := syntax.ModuleOrder(mg)
	if err != nil {
		t.Fatalf("ModuleOrder() error: %v", err)
	}
	var paths []string
	for _, m := range order {
		paths = append(paths, mg.PathOf(m))
	}
	if i, j := slices.Index(paths, "/engine/core"), slices.Index(paths, "/engine/render"); i > j {
		t.Errorf("ModuleOrder() = %v, core should precede render", paths)
	}

	var inCore []string
	for _, v := range g.VerticesIn("/engine/core") {
		inCore = append(inCore, g.PathOf(v))
	}
	if want := []string{"/core", "/core/Vec3", "/core/Transform", "/core/Transform/position"}; !slices.Equal(inCore, want) {
		t.Errorf("VerticesIn(/engine/core) = %v, want %v", inCore, want)
	}
	if got := referenced(g, "/render/Node/transform"); !slices.Equal(got, []string{"/core/Transform"}) {
		t.Errorf("references of /render/Node/transform = %v, want [/core/Transform]", got)
	}
}

func TestLoadUndeclaredModuleDependency(t *testing.T) {
	core, _ := DecodeYAML([]byte("module: core\ndecls:\n  - {kind: value, name: Vec3}\n"))
	body, _ := DecodeYAML([]byte("module: physics\ndecls:\n  - {kind: struct, name: Body, children: [{kind: member, name: pos, type: Vec3}]}\n"))

	err := New("multi").LoadAll(core, body)
	if !errs.Is(err, errs.ErrCodeInvalidManifest) {
		t.Errorf("LoadAll() error = %v, want %s", err, errs.ErrCodeInvalidManifest)
	}

	self, _ := DecodeYAML([]byte("module: core\nrequires: [core]\ndecls: []\n"))
	if err := New("self").Load(self); !errs.Is(err, errs.ErrCodeInvalidManifest) {
		t.Errorf("Load(self-requiring) error = %v, want %s", err, errs.ErrCodeInvalidManifest)
	}
}

func TestLoadAfterFailure(t *testing.T) {
	b := New("retry")
	broken, _ := DecodeYAML([]byte("decls:\n  - {kind: struct, name: A}\n  - {kind: widget, name: W}\n"))
	fixed, _ := DecodeYAML([]byte("decls:\n  - {kind: struct, name: A}\n"))

	if err := b.Load(broken); !errs.Is(err, errs.ErrCodeInvalidManifest) {
		t.Fatalf("Load(broken) error = %v, want %s", err, errs.ErrCodeInvalidManifest)
	}
	// The first error sticks instead of surfacing as DUPLICATE_PATH for /A.
	if err := b.Load(fixed); !errs.Is(err, errs.ErrCodeInvalidManifest) {
		t.Errorf("Load() after failure error = %v, want %s", err, errs.ErrCodeInvalidManifest)
	}
	if _, err := b.Compile(context.Background()); !errs.Is(err, errs.ErrCodeInvalidManifest) {
		t.Errorf("Compile() after failure error = %v, want %s", err, errs.ErrCodeInvalidManifest)
	}
}
