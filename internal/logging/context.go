package logging

import (
	"context"
	"log/slog"

	"steamclip/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for per-invocation identifiers.
	FieldRunID = "run_id"
	// FieldClipDir is the standardized structured logging key for clip folder paths.
	FieldClipDir = "clip_dir"
	// FieldAppID is the standardized structured logging key for Steam app identifiers.
	FieldAppID = "app_id"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if id, ok := services.RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if dir, ok := services.ClipDirFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldClipDir, dir))
	}
	if appID, ok := services.AppIDFromContext(ctx); ok {
		fields = append(fields, slog.Uint64(FieldAppID, uint64(appID)))
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
