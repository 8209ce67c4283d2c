package preflight

import (
	"steamclip/internal/config"
	"steamclip/internal/steam"
)

// Result reports the outcome of a single preflight check. Optional checks
// degrade behaviour when they fail instead of blocking exports.
type Result struct {
	Name     string
	Passed   bool
	Detail   string
	Optional bool
}

// RunAll executes every check for the given config. A nil resolver is
// replaced with one built from the config's extra Steam roots.
func RunAll(cfg *config.Config, resolver *steam.Resolver) []Result {
	if cfg == nil {
		return nil
	}
	if resolver == nil {
		resolver = steam.NewResolver(steam.WithExtraCandidates(cfg.Steam.ExtraRoots...))
	}

	return []Result{
		CheckFFmpeg(cfg.FFmpegBinary()),
		CheckClipDirectory(cfg, resolver),
		CheckDirectoryWritable("Output directory", cfg.Paths.OutputDir),
		CheckDirectoryWritable("State directory", cfg.Paths.StateDir),
		CheckJournal(cfg),
		CheckSteamLibraries(resolver),
	}
}
