package errors

import (
	"log/slog"
)

// LogHandler is an ErrorHandler that writes structured records through slog.
type LogHandler struct {
	// Logger receives the records. Nil uses slog.Default().
	Logger *slog.Logger
	// Verbose enables stack traces in the output.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleError logs a DriftError.
func (h *LogHandler) HandleError(err *DriftError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String(), "err", err.Err}
	if err.Channel != "" {
		attrs = append(attrs, "channel", err.Channel)
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("drift error", attrs...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("drift panic", attrs...)
}

// HandleBuildError logs a BuildError.
func (h *LogHandler) HandleBuildError(err *BuildError) {
	if err == nil {
		return
	}
	attrs := []any{"widget", err.Widget, "element", err.Element, "err", err.Error()}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("drift build error", attrs...)
}
