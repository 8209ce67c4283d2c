package config

const (
	defaultLogDir               = "~/.local/share/steamclip/logs"
	defaultStateDir             = "~/.local/share/steamclip"
	defaultFFmpegBinary         = "ffmpeg"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
	defaultJournalEnabled       = true
	defaultWatchDebounceSeconds = 5
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:   defaultLogDir,
			StateDir: defaultStateDir,
		},
		FFmpeg: FFmpeg{
			Binary: defaultFFmpegBinary,
		},
		Journal: Journal{
			Enabled: defaultJournalEnabled,
		},
		Watch: Watch{
			DebounceSeconds: defaultWatchDebounceSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
