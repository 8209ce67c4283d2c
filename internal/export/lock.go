package export

import (
	"fmt"

	"github.com/gofrs/flock"

	"steamclip/internal/config"
)

// AcquireLock takes the single-instance run lock under the state directory.
// The returned release function must be called once the run (or watch
// session) is finished.
func AcquireLock(cfg *config.Config) (func() error, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure state directory: %w", err)
	}

	lockPath := cfg.LockFilePath()
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock %s: %w", lockPath, err)
	}
	if !ok {
		return nil, fmt.Errorf("another steamclip process holds the run lock (%s)", lockPath)
	}
	return lock.Unlock, nil
}
