// Package config loads, normalizes, and validates steamclip configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// STEAMCLIP_FFMPEG. The Config type centralizes every knob the CLI needs,
// so clip roots, output placement, and tool locations are discovered in one
// pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
