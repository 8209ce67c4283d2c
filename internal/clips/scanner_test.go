package clips_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"steamclip/internal/clips"
	"steamclip/internal/logging"
)

func mkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func TestScanFindsNestedClips(t *testing.T) {
	root := t.TempDir()
	first := filepath.Join(root, "1091500", "clips", "clip_1091500_20240921_183659", "video", "fg_1091500_20240921_183659")
	second := filepath.Join(root, "other", "fg_730_20240102_030405")
	mkdirAll(t, first)
	mkdirAll(t, second)
	mkdirAll(t, filepath.Join(root, "fg_0_20240921_183659"))
	mkdirAll(t, filepath.Join(root, "notes"))
	if err := os.WriteFile(filepath.Join(root, "fg_99_20240921_183659"), nil, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	records, err := clips.Scan(root, logging.NewNop())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	clips.SortByDir(records)
	if len(records) != 2 {
		t.Fatalf("Scan found %d records, want 2: %v", len(records), records)
	}
	if records[0].Dir != first || records[0].AppID != 1091500 {
		t.Fatalf("first record = %+v", records[0])
	}
	if records[1].Dir != second || records[1].AppID != 730 {
		t.Fatalf("second record = %+v", records[1])
	}
}

func TestScanDoesNotDescendIntoClips(t *testing.T) {
	root := t.TempDir()
	outer := filepath.Join(root, "fg_730_20240921_183659")
	mkdirAll(t, filepath.Join(outer, "fg_440_20240101_010101"))

	records, err := clips.Scan(root, logging.NewNop())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(records) != 1 || records[0].Dir != outer {
		t.Fatalf("Scan found %v, want only %s", records, outer)
	}
}

func TestScanEmptyTree(t *testing.T) {
	records, err := clips.Scan(t.TempDir(), logging.NewNop())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("Scan found %v in an empty tree", records)
	}
}

func TestScanUnreadableRootFails(t *testing.T) {
	requirePermissionChecks(t)
	root := filepath.Join(t.TempDir(), "sealed")
	mkdirAll(t, root)
	if err := os.Chmod(root, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(root, 0o755) })

	if _, err := clips.Scan(root, logging.NewNop()); err == nil {
		t.Fatal("expected an error for an unreadable root")
	}
}

func TestScanSkipsUnreadableSubdirectory(t *testing.T) {
	requirePermissionChecks(t)
	root := t.TempDir()
	sealed := filepath.Join(root, "sealed")
	mkdirAll(t, sealed)
	clip := filepath.Join(root, "fg_730_20240921_183659")
	mkdirAll(t, clip)
	if err := os.Chmod(sealed, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(sealed, 0o755) })

	records, err := clips.Scan(root, logging.NewNop())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(records) != 1 || records[0].Dir != clip {
		t.Fatalf("Scan found %v, want only %s", records, clip)
	}
}

func TestScanMissingRootFails(t *testing.T) {
	if _, err := clips.Scan(filepath.Join(t.TempDir(), "absent"), logging.NewNop()); err == nil {
		t.Fatal("expected an error for a missing root")
	}
}

func requirePermissionChecks(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("directory permission bits are not enforced on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission checks")
	}
}
