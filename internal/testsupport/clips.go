package testsupport

import (
	"fmt"
	"path/filepath"
	"testing"
)

// ClipName formats a recording directory name for the given identifiers.
func ClipName(appID uint32, date, timeOfDay string) string {
	return fmt.Sprintf("fg_%d_%s_%s", appID, date, timeOfDay)
}

// ContainerName formats the session directory name Steam places above a
// recording.
func ContainerName(appID uint32, date, timeOfDay string) string {
	return fmt.Sprintf("clip_%d_%s_%s", appID, date, timeOfDay)
}

// MakeClipDir creates a recording directory with a DASH manifest and a pair
// of media fragments under parent, returning the clip path.
func MakeClipDir(t testing.TB, parent string, appID uint32, date, timeOfDay string) string {
	t.Helper()

	dir := filepath.Join(parent, ClipName(appID, date, timeOfDay))
	WriteFile(t, filepath.Join(dir, "session.mpd"), 256)
	WriteFile(t, filepath.Join(dir, "chunk-stream0-00001.m4s"), 2048)
	WriteFile(t, filepath.Join(dir, "chunk-stream1-00001.m4s"), 1024)
	return dir
}

// MakeContainer builds the full Steam recording layout
// clip_.../video/fg_... under root and returns the innermost clip directory.
func MakeContainer(t testing.TB, root string, appID uint32, date, timeOfDay string) string {
	t.Helper()

	container := filepath.Join(root, ContainerName(appID, date, timeOfDay))
	return MakeClipDir(t, filepath.Join(container, "video"), appID, date, timeOfDay)
}
