package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"log/slog"

	"steamclip/internal/config"
	"steamclip/internal/logging"
	"steamclip/internal/services"
	"steamclip/internal/steam"
)

func positionalDir(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// parseGameIDs converts --game-id values into app ids. The flag may repeat
// or pack several comma-separated ids into one value.
func parseGameIDs(values []string) ([]uint32, error) {
	var ids []uint32
	for _, raw := range values {
		part := strings.TrimSpace(raw)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil || id == 0 {
			return nil, services.Wrap(services.ErrValidation, "cli", "parse game ids", fmt.Sprintf("Invalid app id %q", part), err)
		}
		ids = append(ids, uint32(id))
	}
	return ids, nil
}

// resolveInputDir applies the input precedence: positional argument or
// --input, then paths.input_dir, then the default Steam userdata directory.
func resolveInputDir(cfg *config.Config, logger *slog.Logger, resolver *steam.Resolver, positional, inputFlag string) (string, error) {
	positional = strings.TrimSpace(positional)
	flagged := strings.TrimSpace(inputFlag)
	if positional != "" && flagged != "" {
		return "", services.Wrap(services.ErrValidation, "cli", "resolve input dir", "Give the clip directory either as an argument or via --input, not both", nil)
	}
	dir := positional
	if dir == "" {
		dir = flagged
	}
	if dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return "", services.Wrap(services.ErrValidation, "cli", "resolve input dir", fmt.Sprintf("Invalid clip directory %q", dir), err)
		}
		return expanded, nil
	}

	if configured := strings.TrimSpace(cfg.Paths.InputDir); configured != "" {
		return configured, nil
	}

	fallback, ok := resolver.DefaultInputDir()
	if !ok {
		return "", services.Wrap(
			services.ErrConfiguration,
			"cli",
			"resolve input dir",
			"No clip directory given and no Steam installation found; pass a directory or set paths.input_dir",
			nil,
		)
	}
	logger.Warn("no clip directory configured, using Steam userdata", logging.String("input_dir", fallback))
	return fallback, nil
}

// ensureInputDir verifies the resolved clip directory exists before any
// scan or watch starts, so a bad path fails as a configuration error.
func ensureInputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return services.Wrap(
			services.ErrConfiguration,
			"cli",
			"resolve input dir",
			fmt.Sprintf("Clip directory %s is not a directory", dir),
			err,
		)
	}
	return nil
}

// resolveOutputDir applies the output precedence: --output, then
// paths.output_dir, then the current directory.
func resolveOutputDir(cfg *config.Config, outputFlag string) (string, error) {
	if flagged := strings.TrimSpace(outputFlag); flagged != "" {
		expanded, err := config.ExpandPath(flagged)
		if err != nil {
			return "", services.Wrap(services.ErrValidation, "cli", "resolve output dir", fmt.Sprintf("Invalid output directory %q", flagged), err)
		}
		return expanded, nil
	}
	if configured := strings.TrimSpace(cfg.Paths.OutputDir); configured != "" {
		return configured, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", services.Wrap(services.ErrConfiguration, "cli", "resolve output dir", "Failed to resolve the current directory for output", err)
	}
	return cwd, nil
}
