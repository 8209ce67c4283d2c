package steam

import (
	"fmt"
	"path/filepath"

	"steamclip/internal/vdf"
)

// ManifestFileName returns the appmanifest file name for an app id.
func ManifestFileName(appID uint32) string {
	return fmt.Sprintf("appmanifest_%d.acf", appID)
}

// AppName resolves the display name for appID by reading its appmanifest
// from each library root in order. The first root with a readable manifest
// containing a name wins; roots with a manifest but no name entry are
// passed over. The boolean is false when no root yields a name.
func (r *Resolver) AppName(appID uint32, roots []string) (string, bool) {
	manifest := ManifestFileName(appID)
	for _, root := range roots {
		data, err := r.probe.ReadFile(filepath.Join(root, manifest))
		if err != nil {
			continue
		}
		if name, ok := vdf.First(string(data), "name"); ok {
			return name, true
		}
	}
	return "", false
}
