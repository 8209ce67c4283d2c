package clips

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"steamclip/internal/logging"
)

// Scan walks root looking for clip folders. Matching folders are recorded
// and never descended into; everything else is searched depth-first.
//
// An unreadable root is an error. Unreadable directories found deeper in
// the tree are logged and skipped so one bad mount or permission hole
// cannot sink a whole run.
func Scan(root string, logger *slog.Logger) ([]Record, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	var records []Record
	stack := []string{root}
	atRoot := true
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			if atRoot {
				return nil, fmt.Errorf("read clip search root %s: %w", root, err)
			}
			logger.Warn("skipping unreadable directory",
				logging.String("directory", dir),
				logging.Error(err))
			continue
		}
		atRoot = false

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if appID, date, timeOfDay, ok := ParseClipName(entry.Name()); ok {
				records = append(records, Record{
					Dir:   path,
					AppID: appID,
					Date:  date,
					Time:  timeOfDay,
				})
				continue
			}
			stack = append(stack, path)
		}
	}
	return records, nil
}
