package clipping

import (
	"log/slog"

	"github.com/cetz-package/contourklip/internal/xlog"
)

// SetLogger configures the logger used by the clipping engine and its
// sub-packages. By default the engine produces no log output; call
// SetLogger to enable it.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior).
//
// Log levels used by this package:
//   - [slog.LevelDebug]: one "sweep complete" message per sweep, with
//     the number of result edges.
//
// Nothing is logged at other levels; a zero-length input span is
// rejected with ErrDegenerateSubcurve rather than skipped.
//
// Example:
//
//	clipping.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	xlog.Set(l)
}

// Logger returns the current logger.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return xlog.Get()
}
