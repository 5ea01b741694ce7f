package gridsparse

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

var (
	discard = slog.New(slog.DiscardHandler)
	logger  atomic.Pointer[slog.Logger]
)

func init() {
	logger.Store(discard)
}

// SetLogger installs the logger used by Run and the file loaders; nil silences
// them again. The enumeration itself (Distances, CountEntries) never logs.
//
// Run emits:
//   - debug: loaded config, loaded coordinate files, location and clamped box
//     of the first DebugSamples samples when Debug is set
//   - info: "gridding" (run id, samples, policy), "count only" when CountOnly
//     is set, "entries" with the Summary fields, "saved" with the output path
//   - warn: the ceil(width)^ndims per-sample estimate was below the actual
//     entry count
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	logger.Store(l)
}

func Logger() *slog.Logger {
	return logger.Load()
}

// DebugLog formats only when debug records are enabled.
func DebugLog(format string, args ...interface{}) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}
