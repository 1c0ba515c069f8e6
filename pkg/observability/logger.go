// Package observability provides structured logging with OpenTelemetry trace
// context propagation.
package observability

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

const (
	attrTraceID = "trace_id"
	attrSpanID  = "span_id"
	attrService = "service"
)

// TracingHandler is an [slog.Handler] that injects OpenTelemetry trace
// context (trace_id, span_id) and the service name into every log record.
// The service attribute is pre-attached at construction so it remains at the
// top level even when groups are used.
type TracingHandler struct {
	inner slog.Handler
}

// NewTracingHandler wraps an [slog.Handler], injecting trace context and the
// service name.
func NewTracingHandler(inner slog.Handler, service string) *TracingHandler {
	return &TracingHandler{
		inner: inner.WithAttrs([]slog.Attr{slog.String(attrService, service)}),
	}
}

// Enabled delegates to the inner handler.
func (th *TracingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return th.inner.Enabled(ctx, level)
}

// Handle adds trace context attributes from the span context, then delegates.
func (th *TracingHandler) Handle(ctx context.Context, record slog.Record) error {
	sc := trace.SpanContextFromContext(ctx)
	if sc.IsValid() {
		record.AddAttrs(
			slog.String(attrTraceID, sc.TraceID().String()),
			slog.String(attrSpanID, sc.SpanID().String()),
		)
	}

	err := th.inner.Handle(ctx, record)
	if err != nil {
		return fmt.Errorf("tracing handler: %w", err)
	}

	return nil
}

// WithAttrs returns a new TracingHandler with additional attributes on the
// inner handler.
func (th *TracingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TracingHandler{inner: th.inner.WithAttrs(attrs)}
}

// WithGroup returns a new TracingHandler with a group prefix on the inner
// handler.
func (th *TracingHandler) WithGroup(name string) slog.Handler {
	return &TracingHandler{inner: th.inner.WithGroup(name)}
}

// ParseLevel maps a config level string onto an slog level, defaulting to
// info for unknown values.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the timefang JSON logger with trace context propagation.
func NewLogger(writer io.Writer, level string) *slog.Logger {
	inner := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: ParseLevel(level)})

	return slog.New(NewTracingHandler(inner, "timefang"))
}
