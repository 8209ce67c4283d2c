//go:build windows

package steam

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

func platformBaseCandidates() []string {
	var candidates []string
	if path := registrySteamPath(); path != "" {
		candidates = append(candidates, path)
	}
	if programFiles := os.Getenv("PROGRAMFILES(X86)"); programFiles != "" {
		candidates = append(candidates, filepath.Join(programFiles, "Steam"))
	}
	return append(candidates, `C:\Program Files (x86)\Steam`)
}

// registrySteamPath reads the install location Steam records for the
// current user. Missing key or value just means the fallbacks apply.
func registrySteamPath() string {
	key, err := registry.OpenKey(registry.CURRENT_USER, `Software\Valve\Steam`, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer key.Close()

	value, _, err := key.GetStringValue("SteamPath")
	if err != nil || value == "" {
		return ""
	}
	return filepath.Clean(value)
}
