package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	// InputDir is the clip search root. When empty, the Steam userdata
	// directory is used and a warning is logged.
	InputDir string `toml:"input_dir"`
	// OutputDir receives exported MP4 files. When empty, the working
	// directory of the invocation is used.
	OutputDir string `toml:"output_dir"`
	LogDir    string `toml:"log_dir"`
	// StateDir holds the run lock and the journal database.
	StateDir string `toml:"state_dir"`
}

// Steam contains configuration for Steam installation discovery.
type Steam struct {
	// ExtraRoots lists additional Steam base directories to consider
	// alongside the platform defaults.
	ExtraRoots []string `toml:"extra_roots"`
}

// FFmpeg contains configuration for the remux tool.
type FFmpeg struct {
	Binary string `toml:"binary"`
}

// Export contains configuration for the export pipeline.
type Export struct {
	// DeleteAfter removes clip folders once their MP4 has been written.
	DeleteAfter bool `toml:"delete_after"`
}

// Journal contains configuration for the export history database.
type Journal struct {
	Enabled bool `toml:"enabled"`
	// Path overrides the journal location. Default: <state_dir>/journal.db
	Path string `toml:"path"`
}

// Watch contains configuration for watch mode.
type Watch struct {
	// DebounceSeconds is how long the tree must stay quiet before a
	// rescan fires. Recording writes clip fragments continuously, so this
	// doubles as settle detection.
	DebounceSeconds int `toml:"debounce_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for steamclip.
//
// Configuration sections by subsystem:
//   - Paths: clip search root, output directory, logs, state
//   - Steam: extra Steam base directories for library discovery
//   - FFmpeg: remux tool binary
//   - Export: delete-after behaviour
//   - Journal: export history database
//   - Watch: watch-mode debounce
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	Steam   Steam   `toml:"steam"`
	FFmpeg  FFmpeg  `toml:"ffmpeg"`
	Export  Export  `toml:"export"`
	Journal Journal `toml:"journal"`
	Watch   Watch   `toml:"watch"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/steamclip/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// ResolveConfigPath reports which configuration file a load would read and
// whether it exists, without parsing it.
func ResolveConfigPath(path string) (string, bool, error) {
	return resolveConfigPath(path)
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("steamclip.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories a run needs. OutputDir is
// created on a best-effort basis so config load keeps working when the
// target drive is temporarily absent; the export pipeline creates it again
// and fails loudly there.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.LogDir, c.Paths.StateDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if strings.TrimSpace(c.Paths.OutputDir) != "" {
		_ = os.MkdirAll(c.Paths.OutputDir, 0o755)
	}
	return nil
}

// FFmpegBinary returns the remux executable name or path.
func (c *Config) FFmpegBinary() string {
	return c.FFmpeg.Binary
}

// JournalDBPath returns the journal database location. normalize fills the
// default from StateDir, so this is always non-empty after Load.
func (c *Config) JournalDBPath() string {
	return c.Journal.Path
}

// LockFilePath returns the run lock location inside the state directory.
func (c *Config) LockFilePath() string {
	return filepath.Join(c.Paths.StateDir, "steamclip.lock")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
