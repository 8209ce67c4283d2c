package fileutil

import (
	"os"
	"time"
)

// SetFileTimes stamps both the access and modification time of path to ts.
// Exported MP4s carry the clip's recording instant instead of the export
// instant so library sorting stays truthful.
func SetFileTimes(path string, ts time.Time) error {
	return os.Chtimes(path, ts, ts)
}

// HasSubdirectories reports whether dir contains at least one directory
// entry. Plain files do not count.
func HasSubdirectories(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			return true, nil
		}
	}
	return false, nil
}
