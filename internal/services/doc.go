// Package services defines shared utilities consumed by the export pipeline
// and external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs, clip folders, and app identifiers
//     for logging and tracing.
//   - Structured error markers plus the Wrap helper that translate failures
//     into consistent process exit codes.
//
// Use these helpers when wiring new pipeline logic so operational behaviour
// (error handling, observability) stays uniform across commands.
package services
