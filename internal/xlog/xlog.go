// Package xlog holds the clipping engine's single package-level logger.
//
// It exists as its own package (rather than living directly in the root
// clipping package) so that internal/sweep and other internal packages
// can share the same logger configuration without importing back up into
// the root package and creating an import cycle.
package xlog

import (
	"context"
	"log/slog"
	"sync/atomic"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// Set stores the active logger, or restores the silent default if l is nil.
func Set(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Get returns the currently active logger.
func Get() *slog.Logger {
	return loggerPtr.Load()
}
