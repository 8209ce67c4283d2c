package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// MakeSteamLibrary writes a steamapps directory with app manifests for the
// given app names under base, returning the steamapps path.
func MakeSteamLibrary(t testing.TB, base string, apps map[uint32]string) string {
	t.Helper()

	steamapps := filepath.Join(base, "steamapps")
	if err := os.MkdirAll(steamapps, 0o755); err != nil {
		t.Fatalf("mkdir steamapps: %v", err)
	}
	for id, name := range apps {
		manifest := fmt.Sprintf("\"AppState\"\n{\n\t\"appid\"\t\t\"%d\"\n\t\"name\"\t\t\"%s\"\n}\n", id, name)
		target := filepath.Join(steamapps, fmt.Sprintf("appmanifest_%d.acf", id))
		if err := os.WriteFile(target, []byte(manifest), 0o644); err != nil {
			t.Fatalf("write manifest %s: %v", target, err)
		}
	}
	return steamapps
}
