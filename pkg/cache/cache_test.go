package cache

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDisabled(t *testing.T) {
	ctx := context.Background()
	c := Disabled()
	defer c.Close()

	key := GraphKey("render.toml", []byte("module = \"render\""))
	if err := c.Set(ctx, key, []byte("snapshot"), 0); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || hit || data != nil {
		t.Errorf("Get() after Set = %q, %v, %v; want a miss", data, hit, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Errorf("Delete() error: %v", err)
	}
}

func TestHash(t *testing.T) {
	manifest := []byte("module = \"render\"\n")
	h := Hash(manifest)
	if h != Hash(manifest) {
		t.Error("Hash() is not deterministic")
	}
	if len(h) != 64 {
		t.Errorf("len(Hash()) = %d, want 64", len(h))
	}
	if h == Hash(append(manifest, '#')) {
		t.Error("an edited manifest hashes the same")
	}
}

func TestGraphKey(t *testing.T) {
	manifest := []byte("module = \"render\"\n")

	k1 := GraphKey("render.toml", manifest)
	if k1 != GraphKey("render.toml", manifest) {
		t.Error("GraphKey should be deterministic")
	}
	if !strings.HasPrefix(k1, "graph:") {
		t.Errorf("GraphKey() = %q, want graph: prefix", k1)
	}
	if k1 == GraphKey("render.yaml", manifest) {
		t.Error("Different file names should produce different keys")
	}
	if k1 == GraphKey("render.toml", append(manifest, '#')) {
		t.Error("Different manifests should produce different keys")
	}
}

func TestDir(t *testing.T) {
	ctx := context.Background()
	root := filepath.Join(t.TempDir(), "snapshots")
	d, err := OpenDir(root)
	if err != nil {
		t.Fatalf("OpenDir error: %v", err)
	}
	defer d.Close()
	if d.Root() != root {
		t.Errorf("Root() = %q, want %q", d.Root(), root)
	}

	key := GraphKey("render.toml", []byte("module = \"render\""))
	if _, hit, err := d.Get(ctx, key); err != nil || hit {
		t.Fatalf("Get on empty dir = hit %v, err %v", hit, err)
	}

	want := []byte{0x82, 0x00, 0xff}
	if err := d.Set(ctx, key, want, 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	got, hit, err := d.Get(ctx, key)
	if err != nil || !hit {
		t.Fatalf("Get after Set = hit %v, err %v", hit, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get() = %x, want %x", got, want)
	}

	// Overwrites replace the whole snapshot and leave no temporary files.
	if err := d.Set(ctx, key, []byte("v2"), 0); err != nil {
		t.Fatal(err)
	}
	if got, _, _ := d.Get(ctx, key); string(got) != "v2" {
		t.Errorf("Get() after overwrite = %q, want v2", got)
	}
	leftovers, _ := filepath.Glob(filepath.Join(root, "*", ".snap-*"))
	if len(leftovers) != 0 {
		t.Errorf("temporary files left behind: %v", leftovers)
	}

	if err := d.Delete(ctx, key); err != nil {
		t.Errorf("Delete error: %v", err)
	}
	if _, hit, _ := d.Get(ctx, key); hit {
		t.Error("Get after Delete should miss")
	}
	if err := d.Delete(ctx, key); err != nil {
		t.Errorf("Delete of missing key error: %v", err)
	}
}

func TestDirExpiry(t *testing.T) {
	ctx := context.Background()
	d, err := OpenDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := d.Set(ctx, "short", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := d.Get(ctx, "short"); hit {
		t.Error("expired snapshot should miss")
	}
}

func TestDirUnreadableSnapshots(t *testing.T) {
	ctx := context.Background()
	d, err := OpenDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	corrupt := d.file("bad")
	if err := os.MkdirAll(filepath.Dir(corrupt), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(corrupt, []byte{0xc1}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := d.Get(ctx, "bad"); hit || err != nil {
		t.Errorf("corrupt snapshot Get = hit %v, err %v, want miss", hit, err)
	}
	if _, err := os.Stat(corrupt); !os.IsNotExist(err) {
		t.Error("corrupt snapshot should be removed")
	}

	// A snapshot stored for another key is a miss even at the right location.
	if err := d.Set(ctx, "other", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	moved := d.file("wanted")
	if err := os.MkdirAll(filepath.Dir(moved), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(d.file("other"), moved); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := d.Get(ctx, "wanted"); hit {
		t.Error("snapshot stored for another key should miss")
	}
}
