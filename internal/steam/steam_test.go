package steam_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"steamclip/internal/steam"
)

type fakeProbe struct {
	dirs  map[string]bool
	files map[string]string
}

func (p fakeProbe) IsDir(path string) bool { return p.dirs[path] }

func (p fakeProbe) ReadFile(path string) ([]byte, error) {
	if data, ok := p.files[path]; ok {
		return []byte(data), nil
	}
	return nil, fs.ErrNotExist
}

func newFakeProbe() fakeProbe {
	return fakeProbe{dirs: map[string]bool{}, files: map[string]string{}}
}

func (p fakeProbe) addDir(path string) { p.dirs[path] = true }

func (p fakeProbe) addFile(path, body string) { p.files[path] = body }

func TestLibraryRootsFollowsLibraryFolders(t *testing.T) {
	base := filepath.Join("steam", "base")
	library := filepath.Join("mnt", "games", "SteamLibrary")

	probe := newFakeProbe()
	probe.addDir(base)
	probe.addDir(filepath.Join(base, "steamapps"))
	probe.addDir(library)
	probe.addDir(filepath.Join(library, "steamapps"))
	probe.addFile(filepath.Join(base, "config", "libraryfolders.vdf"),
		`"libraryfolders" { "0" { "path" "`+base+`" } "1" { "path" "`+library+`" } }`)

	resolver := steam.NewResolver(steam.WithProbe(probe), steam.WithExtraCandidates(base))
	roots := resolver.LibraryRoots()

	want := []string{filepath.Join(library, "steamapps"), filepath.Join(base, "steamapps")}
	if len(roots) != 2 {
		t.Fatalf("LibraryRoots = %v, want 2 roots", roots)
	}
	// Sorted and de-duplicated: base/steamapps appears once even though the
	// vdf lists the base again.
	for _, root := range want {
		if !contains(roots, root) {
			t.Fatalf("LibraryRoots = %v, missing %s", roots, root)
		}
	}
	for i := 1; i < len(roots); i++ {
		if roots[i-1] >= roots[i] {
			t.Fatalf("LibraryRoots not sorted: %v", roots)
		}
	}
}

func TestLibraryRootsSkipsMissingDirectories(t *testing.T) {
	base := filepath.Join("steam", "base")
	probe := newFakeProbe()
	probe.addDir(base)
	probe.addFile(filepath.Join(base, "config", "libraryfolders.vdf"),
		`"path" "`+filepath.Join("gone", "drive")+`"`)

	resolver := steam.NewResolver(steam.WithProbe(probe), steam.WithExtraCandidates(base))
	if roots := resolver.LibraryRoots(); len(roots) != 0 {
		t.Fatalf("LibraryRoots = %v, want none", roots)
	}
}

func TestLibraryRootsReadsSteamappsVDF(t *testing.T) {
	base := filepath.Join("steam", "base")
	library := filepath.Join("d", "SteamLibrary")

	probe := newFakeProbe()
	probe.addDir(base)
	probe.addDir(library)
	probe.addDir(filepath.Join(library, "steamapps"))
	probe.addFile(filepath.Join(base, "steamapps", "libraryfolders.vdf"),
		`"path" "`+library+`"`)

	resolver := steam.NewResolver(steam.WithProbe(probe), steam.WithExtraCandidates(base))
	roots := resolver.LibraryRoots()
	if len(roots) != 1 || roots[0] != filepath.Join(library, "steamapps") {
		t.Fatalf("LibraryRoots = %v", roots)
	}
}

func TestDefaultInputDirPrefersExistingCandidate(t *testing.T) {
	missing := filepath.Join("nowhere", "Steam")
	present := filepath.Join("somewhere", "Steam")
	probe := newFakeProbe()
	probe.addDir(present)

	resolver := steam.NewResolver(steam.WithProbe(probe), steam.WithExtraCandidates(missing, present))
	dir, ok := resolver.DefaultInputDir()
	if !ok {
		t.Fatal("expected a default input dir")
	}
	// The platform candidate list may contribute earlier entries, but none
	// of them exist inside the fake probe.
	if dir != filepath.Join(present, "userdata") {
		t.Fatalf("DefaultInputDir = %q, want %q", dir, filepath.Join(present, "userdata"))
	}
}

func TestDefaultInputDirFallsBackToFirstCandidate(t *testing.T) {
	first := filepath.Join("a", "Steam")
	second := filepath.Join("b", "Steam")
	probe := newFakeProbe()

	resolver := steam.NewResolver(steam.WithProbe(probe), steam.WithExtraCandidates(first, second))
	dir, ok := resolver.DefaultInputDir()
	if !ok {
		t.Fatal("expected a default input dir")
	}
	candidates := resolver.BaseCandidates()
	want := filepath.Join(candidates[0], "userdata")
	if dir != want {
		t.Fatalf("DefaultInputDir = %q, want %q", dir, want)
	}
}

func TestAppNameFirstRootWins(t *testing.T) {
	first := filepath.Join("lib1", "steamapps")
	second := filepath.Join("lib2", "steamapps")
	probe := newFakeProbe()
	probe.addFile(filepath.Join(first, "appmanifest_730.acf"), `"AppState" { "appid" "730" "name" "Counter-Strike 2" }`)
	probe.addFile(filepath.Join(second, "appmanifest_730.acf"), `"AppState" { "name" "Wrong Library" }`)

	resolver := steam.NewResolver(steam.WithProbe(probe))
	name, ok := resolver.AppName(730, []string{first, second})
	if !ok || name != "Counter-Strike 2" {
		t.Fatalf("AppName = %q (ok=%v)", name, ok)
	}
}

func TestAppNameSkipsManifestWithoutName(t *testing.T) {
	first := filepath.Join("lib1", "steamapps")
	second := filepath.Join("lib2", "steamapps")
	probe := newFakeProbe()
	probe.addFile(filepath.Join(first, "appmanifest_440.acf"), `"AppState" { "appid" "440" }`)
	probe.addFile(filepath.Join(second, "appmanifest_440.acf"), `"AppState" { "name" "Team Fortress 2" }`)

	resolver := steam.NewResolver(steam.WithProbe(probe))
	name, ok := resolver.AppName(440, []string{first, second})
	if !ok || name != "Team Fortress 2" {
		t.Fatalf("AppName = %q (ok=%v)", name, ok)
	}
}

func TestAppNameMissingEverywhere(t *testing.T) {
	resolver := steam.NewResolver(steam.WithProbe(newFakeProbe()))
	if name, ok := resolver.AppName(999, []string{"lib"}); ok {
		t.Fatalf("expected no name, got %q", name)
	}
}

func TestManifestFileName(t *testing.T) {
	if got := steam.ManifestFileName(1091500); got != "appmanifest_1091500.acf" {
		t.Fatalf("ManifestFileName = %q", got)
	}
}

func TestResolverAgainstRealFilesystem(t *testing.T) {
	base := t.TempDir()
	steamapps := filepath.Join(base, "steamapps")
	if err := os.MkdirAll(steamapps, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	manifest := `"AppState"
{
	"appid"		"1091500"
	"name"		"Cyberpunk 2077"
}`
	if err := os.WriteFile(filepath.Join(steamapps, "appmanifest_1091500.acf"), []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	resolver := steam.NewResolver(steam.WithExtraCandidates(base))
	roots := resolver.LibraryRoots()
	if !contains(roots, steamapps) {
		t.Fatalf("LibraryRoots = %v, missing %s", roots, steamapps)
	}
	name, ok := resolver.AppName(1091500, roots)
	if !ok || name != "Cyberpunk 2077" {
		t.Fatalf("AppName = %q (ok=%v)", name, ok)
	}
}

func contains(values []string, want string) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}
	return false
}
