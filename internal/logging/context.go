package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldCorrelationID is the standardized structured logging key for per-invocation correlation identifiers.
	FieldCorrelationID = "correlation_id"
	// FieldSource is the standardized structured logging key for the play-by-play input source.
	FieldSource = "source"
	// FieldTeam is the standardized structured logging key for team abbreviations.
	FieldTeam = "team"
	// FieldFormat is the standardized structured logging key for output format names.
	FieldFormat = "format"
	// FieldPath is the standardized structured logging key for filesystem paths.
	FieldPath = "path"
	// FieldInnings is the standardized structured logging key for inning counts.
	FieldInnings = "innings"
	// FieldBatters is the standardized structured logging key for batter counts.
	FieldBatters = "batters"
	// FieldPlays is the standardized structured logging key for play counts.
	FieldPlays = "plays"
)

type correlationIDKey struct{}

// WithCorrelationID stores a correlation identifier on the context so nested
// operations log under the same invocation.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationIDFromContext extracts the correlation identifier, if any.
func CorrelationIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(correlationIDKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 1)
	if id, ok := CorrelationIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCorrelationID, id))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
