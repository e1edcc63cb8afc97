package cache

import (
	"context"
	"time"
)

// Disabled returns a Cache that keeps nothing, so every manifest is compiled
// from source. The CLI falls back to it for --no-cache and when the snapshot
// directory cannot be created.
func Disabled() Cache { return disabled{} }

type disabled struct{}

var _ Cache = disabled{}

func (disabled) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (disabled) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (disabled) Delete(context.Context, string) error                     { return nil }
func (disabled) Close() error                                             { return nil }
