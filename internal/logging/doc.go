// Package logging assembles structured slog loggers and formatting helpers
// used across steamclip.
//
// It owns the configurable console/JSON handlers, centralizes level and
// output plumbing, and exposes context-aware helpers so pipeline code can
// automatically tag log lines with run IDs, clip folders, and app IDs. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape and routing.
package logging
