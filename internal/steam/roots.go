package steam

import (
	"path/filepath"
	"sort"

	"steamclip/internal/vdf"
)

// LibraryRoots returns every steamapps directory reachable from the base
// candidates: the base's own steamapps plus each library listed in its
// libraryfolders.vdf files. Only directories that exist are returned. The
// result is sorted and de-duplicated so lookups behave the same across
// runs.
func (r *Resolver) LibraryRoots() []string {
	var roots []string
	for _, base := range r.BaseCandidates() {
		if !r.probe.IsDir(base) {
			continue
		}
		steamapps := filepath.Join(base, "steamapps")
		if r.probe.IsDir(steamapps) {
			roots = append(roots, steamapps)
		}
		for _, manifest := range []string{
			filepath.Join(base, "config", "libraryfolders.vdf"),
			filepath.Join(steamapps, "libraryfolders.vdf"),
		} {
			data, err := r.probe.ReadFile(manifest)
			if err != nil {
				continue
			}
			for _, library := range vdf.All(string(data), "path") {
				libRoot := filepath.Join(library, "steamapps")
				if r.probe.IsDir(libRoot) {
					roots = append(roots, libRoot)
				}
			}
		}
	}

	sort.Strings(roots)
	deduped := make([]string, 0, len(roots))
	for _, root := range roots {
		if n := len(deduped); n > 0 && deduped[n-1] == root {
			continue
		}
		deduped = append(deduped, root)
	}
	return deduped
}
