package pixel

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler backs silentLogger. Buffer validation logs at debug level on
// every rejected image, and with this handler those calls stop at Enabled.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// silentLogger is what Logger returns until SetLogger is given a non-nil
// logger.
var silentLogger = slog.New(nopHandler{})

// loggerPtr is read by image validation, the GL state tracker and the
// WebGPU upload path, possibly from several goroutines at once. Only
// SetLogger writes it.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(silentLogger)
}

// SetLogger configures the logger for pixel and all its sub-packages.
// By default nothing is logged; nil restores that. SetLogger is safe for
// concurrent use.
//
// Log levels used by pixel:
//   - [slog.LevelDebug]: rejected buffers, skipped size validation of opaque
//     formats, GL pixel storage parameter changes, repacked upload rows
//   - [slog.LevelWarn]: lossy native mappings chosen by a backend
//
// Example:
//
//	pixel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. The gl, gl/glstate and webgpu packages
// log through it, so one SetLogger call configures all of them.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// logRejected records a buffer that failed size validation in fn.
func logRejected(fn string, got, need int) {
	Logger().Debug("pixel: rejecting buffer", "func", fn, "got", got, "need", need)
}

// logUnchecked records a buffer whose size could not be validated in fn.
func logUnchecked(fn, reason string, size int) {
	Logger().Debug("pixel: skipping size validation", "func", fn, "reason", reason, "len", size)
}
