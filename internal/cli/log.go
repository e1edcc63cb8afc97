package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the diagnostics logger. Lines carry a short timestamp
// and the schemagen prefix so they stand apart from command output.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Prefix:          appName,
		Level:           level,
	})
}

// progress times the compilation of one or more manifests.
type progress struct {
	logger   *log.Logger
	manifest string
	start    time.Time
}

func newProgress(l *log.Logger, manifests ...string) *progress {
	names := make([]string, len(manifests))
	for i, m := range manifests {
		names[i] = filepath.Base(m)
	}
	p := &progress{logger: l, start: time.Now()}
	if len(names) == 1 {
		p.manifest = names[0]
	} else if len(names) > 1 {
		p.manifest = fmt.Sprintf("%s (+%d)", names[0], len(names)-1)
	}
	return p
}

// done logs a summary such as "Compiled render: 12 declarations" with the
// manifest and the elapsed time as fields.
func (p *progress) done(format string, args ...any) {
	kv := []any{"elapsed", time.Since(p.start).Round(time.Millisecond)}
	if p.manifest != "" {
		kv = append([]any{"manifest", p.manifest}, kv...)
	}
	p.logger.Info(fmt.Sprintf(format, args...), kv...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger installed by the root command, or a
// logger that discards everything when commands run without one.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.New(io.Discard)
}
