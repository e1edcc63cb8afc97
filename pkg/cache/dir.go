package cache

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Dir keeps snapshots as MessagePack files under one directory. Files are
// spread over 256 subdirectories by the first byte of the key hash.
type Dir struct {
	root string
}

// snapshotFile is the on-disk record. Key is stored so that a file holding
// another key is treated as a miss.
type snapshotFile struct {
	Key     string    `msgpack:"key"`
	Written time.Time `msgpack:"written"`
	Expires time.Time `msgpack:"expires,omitempty"`
	Data    []byte    `msgpack:"data"`
}

// OpenDir returns a Dir rooted at root, creating the directory if needed.
func OpenDir(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Dir{root: root}, nil
}

// Root returns the directory d writes to.
func (d *Dir) Root() string { return d.root }

func (d *Dir) Get(_ context.Context, key string) ([]byte, bool, error) {
	file := d.file(key)
	raw, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var snap snapshotFile
	stale := msgpack.Unmarshal(raw, &snap) != nil ||
		snap.Key != key ||
		(!snap.Expires.IsZero() && !time.Now().Before(snap.Expires))
	if stale {
		_ = os.Remove(file)
		return nil, false, nil
	}
	return snap.Data, true, nil
}

// Set writes the snapshot to a temporary file and renames it into place, so
// a concurrent Get sees either the old entry or the new one.
func (d *Dir) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	now := time.Now()
	snap := snapshotFile{Key: key, Written: now, Data: data}
	if ttl > 0 {
		snap.Expires = now.Add(ttl)
	}
	raw, err := msgpack.Marshal(&snap)
	if err != nil {
		return err
	}

	file := d.file(key)
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(file), ".snap-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), file)
}

func (d *Dir) Delete(_ context.Context, key string) error {
	if err := os.Remove(d.file(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (d *Dir) Close() error { return nil }

func (d *Dir) file(key string) string {
	sum := Hash([]byte(key))
	return filepath.Join(d.root, sum[:2], sum[2:]+".snap")
}

var _ Cache = (*Dir)(nil)
