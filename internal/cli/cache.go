package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/star-e/generator-sub002/pkg/builder"
	"github.com/star-e/generator-sub002/pkg/cache"
	"github.com/star-e/generator-sub002/pkg/io"
	"github.com/star-e/generator-sub002/pkg/syntax"
)

// cacheDir returns the cache directory using XDG standard (~/.cache/schemagen/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

func (c *CLI) openCache() cache.Cache {
	if c.noCache {
		return cache.Disabled()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.Disabled()
	}
	snapshots, err := cache.OpenDir(dir)
	if err != nil {
		return cache.Disabled()
	}
	return snapshots
}

// loadGraph compiles a manifest with the context logger. Compiled graphs are
// cached as MessagePack snapshots keyed by the manifest contents.
func (c *CLI) loadGraph(ctx context.Context, file string) (*syntax.Graph, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger, file)

	store := c.openCache()
	defer store.Close()

	var key string
	if data, err := os.ReadFile(file); err == nil {
		key = cache.GraphKey(filepath.Base(file), data)
		if snap, hit, err := store.Get(ctx, key); err == nil && hit {
			if g, err := io.ReadMsgpack(bytes.NewReader(snap)); err == nil {
				prog.done("Loaded %s from cache: %d declarations", g.Module(), g.NumVertices())
				return g, nil
			}
			logger.Debug("discarding unreadable snapshot", "file", file)
		}
	}

	g, err := builder.LoadFile(ctx, file, builder.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	if key != "" {
		if snap, err := io.MarshalMsgpack(g); err == nil {
			if err := store.Set(ctx, key, snap, 0); err != nil {
				logger.Warn("could not cache snapshot", "err", err)
			}
		}
	}
	prog.done("Compiled %s: %d declarations", g.Module(), g.NumVertices())
	return g, nil
}
