package services

import "context"

type contextKey string

const (
	runIDKey   contextKey = "run_id"
	clipDirKey contextKey = "clip_dir"
	appIDKey   contextKey = "app_id"
)

// WithRunID annotates context with the per-invocation identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithClipDir annotates context with the clip folder being processed.
func WithClipDir(ctx context.Context, dir string) context.Context {
	if dir == "" {
		return ctx
	}
	return context.WithValue(ctx, clipDirKey, dir)
}

// ClipDirFromContext returns the clip folder path if present.
func ClipDirFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(clipDirKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithAppID annotates context with the owning game's identifier.
func WithAppID(ctx context.Context, appID uint32) context.Context {
	if appID == 0 {
		return ctx
	}
	return context.WithValue(ctx, appIDKey, appID)
}

// AppIDFromContext extracts the app identifier if present.
func AppIDFromContext(ctx context.Context) (uint32, bool) {
	if v, ok := ctx.Value(appIDKey).(uint32); ok && v != 0 {
		return v, true
	}
	return 0, false
}
