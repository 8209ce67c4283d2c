package preflight

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"steamclip/internal/config"
	"steamclip/internal/steam"
)

// CheckFFmpeg verifies the configured ffmpeg binary is resolvable.
func CheckFFmpeg(binary string) Result {
	const name = "FFmpeg"

	cmd := strings.TrimSpace(binary)
	if cmd == "" {
		return Result{Name: name, Detail: "ffmpeg binary not configured"}
	}
	path, err := exec.LookPath(cmd)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("binary %q not found", cmd)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckClipDirectory verifies the recordings directory exists and is
// readable, resolving the default Steam location when none is configured.
func CheckClipDirectory(cfg *config.Config, resolver *steam.Resolver) Result {
	const name = "Clip directory"

	dir := strings.TrimSpace(cfg.Paths.InputDir)
	if dir == "" {
		resolved, ok := resolver.DefaultInputDir()
		if !ok {
			return Result{Name: name, Detail: "no input_dir configured and no Steam installation found"}
		}
		dir = resolved
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", dir)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", dir, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", dir)}
	}
	if err := accessReadable(dir); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", dir, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (readable)", dir)}
}

// CheckDirectoryWritable verifies the directory is writable when it exists.
// A missing directory passes because runs create it on demand.
func CheckDirectoryWritable(name, path string) Result {
	dir := strings.TrimSpace(path)
	if dir == "" {
		return Result{Name: name, Detail: "not configured"}
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will be created)", dir)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", dir, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", dir)}
	}
	if err := accessWritable(dir); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", dir, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", dir)}
}

// CheckJournal verifies the journal database directory is writable when
// journaling is enabled.
func CheckJournal(cfg *config.Config) Result {
	const name = "Journal"

	if !cfg.Journal.Enabled {
		return Result{Name: name, Passed: true, Detail: "disabled"}
	}
	dbPath := strings.TrimSpace(cfg.JournalDBPath())
	if dbPath == "" {
		return Result{Name: name, Detail: "journal path not configured"}
	}
	result := CheckDirectoryWritable(name, filepath.Dir(dbPath))
	if result.Passed {
		result.Detail = dbPath
	}
	return result
}

// CheckSteamLibraries reports how many steamapps roots were discovered.
// Missing roots only cost display names, so the check is optional.
func CheckSteamLibraries(resolver *steam.Resolver) Result {
	const name = "Steam libraries"

	roots := resolver.LibraryRoots()
	if len(roots) == 0 {
		return Result{Name: name, Optional: true, Detail: "no library roots found (game names will fall back to app ids)"}
	}
	return Result{Name: name, Optional: true, Passed: true, Detail: fmt.Sprintf("%d library roots", len(roots))}
}
