package tess

import (
	"log/slog"
	"sync/atomic"
)

// silent is installed until SetLogger is given a logger. Its handler
// reports every level as disabled, so log calls cost a single check.
var silent = slog.New(slog.DiscardHandler)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(silent)
}

// SetLogger sets the logger shared by tess, raster and text. A nil logger
// turns logging off again, which is also the initial state.
//
// Records are keyed by the operation that emits them:
//   - "stroke: tessellated path" at [slog.LevelDebug], with the vertex
//     and index counts of a successful Build;
//   - "stroke: tessellation aborted" at [slog.LevelWarn], with the sink
//     error that stopped it;
//   - "raster: filled triangles" and "text: outlined string" at
//     [slog.LevelDebug].
//
// SetLogger may be called while other goroutines tessellate.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger set with SetLogger. It never returns nil.
func Logger() *slog.Logger {
	return logger.Load()
}
