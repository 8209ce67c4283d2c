package vdf_test

import (
	"reflect"
	"testing"

	"steamclip/internal/vdf"
)

const libraryFolders = `"libraryfolders"
{
	"0"
	{
		"path"		"/home/user/.local/share/Steam"
		"label"		""
	}
	"1"
	{
		"path"		"/mnt/games/SteamLibrary"
		"label"		"games"
	}
}
`

func TestFirstReturnsEarliestValue(t *testing.T) {
	got, ok := vdf.First(libraryFolders, "path")
	if !ok {
		t.Fatal("expected a path value")
	}
	if want := "/home/user/.local/share/Steam"; got != want {
		t.Fatalf("First returned %q, want %q", got, want)
	}
}

func TestFirstMissingKey(t *testing.T) {
	if value, ok := vdf.First(libraryFolders, "contentid"); ok {
		t.Fatalf("expected no match, got %q", value)
	}
}

func TestFirstSkipsMalformedOccurrence(t *testing.T) {
	text := `"name" broken "name"   "Half-Life"`
	got, ok := vdf.First(text, "name")
	if !ok || got != "Half-Life" {
		t.Fatalf("got %q (ok=%v), want %q", got, ok, "Half-Life")
	}
}

func TestFirstIgnoresEmptyValue(t *testing.T) {
	text := `"name" "" "name" "Portal"`
	got, ok := vdf.First(text, "name")
	if !ok || got != "Portal" {
		t.Fatalf("got %q (ok=%v), want %q", got, ok, "Portal")
	}
}

func TestFirstUnterminatedValue(t *testing.T) {
	if value, ok := vdf.First(`"name"	"Dota`, "name"); ok {
		t.Fatalf("expected no match for unterminated value, got %q", value)
	}
}

func TestFirstRequiresExactKeyToken(t *testing.T) {
	// "installpath" must not satisfy a lookup for "path".
	text := `"installpath"	"/wrong"
"path"	"/right"`
	got, ok := vdf.First(text, "path")
	if !ok || got != "/right" {
		t.Fatalf("got %q (ok=%v), want %q", got, ok, "/right")
	}
}

func TestFirstIsCaseSensitive(t *testing.T) {
	if value, ok := vdf.First(`"Path"	"/elsewhere"`, "path"); ok {
		t.Fatalf("expected case-sensitive lookup to miss, got %q", value)
	}
}

func TestAllCollectsEveryValue(t *testing.T) {
	got := vdf.All(libraryFolders, "path")
	want := []string{"/home/user/.local/share/Steam", "/mnt/games/SteamLibrary"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("All returned %v, want %v", got, want)
	}
}

func TestAllSkipsMalformedPairs(t *testing.T) {
	text := `"path" "/one" "path" "" "path" "/two"`
	got := vdf.All(text, "path")
	want := []string{"/one", "/two"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("All returned %v, want %v", got, want)
	}
}

func TestAllEmptyDocument(t *testing.T) {
	if got := vdf.All("", "path"); len(got) != 0 {
		t.Fatalf("expected no values, got %v", got)
	}
}

func TestValueMayContainSpacesAndSlashes(t *testing.T) {
	text := `"path"		"C:\\Program Files (x86)\\Steam"`
	got, ok := vdf.First(text, "path")
	if !ok {
		t.Fatal("expected a value")
	}
	if want := `C:\\Program Files (x86)\\Steam`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
