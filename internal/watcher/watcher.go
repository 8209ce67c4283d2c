// Package watcher keeps an export loop running against the recordings tree:
// it watches every directory under the root and fires a pass once filesystem
// activity has settled for the configured window.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"log/slog"

	"github.com/fsnotify/fsnotify"

	"steamclip/internal/logging"
)

// Watcher triggers onSettle after the recordings tree has been quiet for the
// debounce window. Steam writes DASH fragments continuously while recording,
// so every write inside a clip directory pushes the window out until the
// session is finished.
type Watcher struct {
	root     string
	debounce time.Duration
	logger   *slog.Logger
	onSettle func(context.Context) error
}

// New constructs a watcher rooted at root. onSettle runs once at startup and
// then after each settle window.
func New(root string, debounce time.Duration, logger *slog.Logger, onSettle func(context.Context) error) *Watcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Watcher{
		root:     root,
		debounce: debounce,
		logger:   logger.With(logging.String("component", "watch")),
		onSettle: onSettle,
	}
}

// Run blocks until ctx is cancelled or the underlying watcher fails. Pass
// failures are logged and the watch continues.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create filesystem watcher: %w", err)
	}
	defer fsw.Close()

	if err := w.addTree(fsw, w.root); err != nil {
		return fmt.Errorf("watch %s: %w", w.root, err)
	}
	w.logger.Info("watching for new clips",
		logging.String("root", w.root),
		logging.Duration("debounce", w.debounce),
	)

	// Catch up on clips recorded while nothing was watching.
	w.pass(ctx)

	// Armed only after filesystem activity.
	settle := time.NewTimer(w.debounce)
	settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					if addErr := w.addTree(fsw, event.Name); addErr != nil {
						w.logger.Warn("failed to watch new directory",
							logging.String("dir", event.Name), logging.Error(addErr))
					}
				}
			}
			settle.Reset(w.debounce)

		case watchErr, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("filesystem watcher error", logging.Error(watchErr))

		case <-settle.C:
			w.logger.Debug("recordings tree settled")
			w.pass(ctx)
		}
	}
}

func (w *Watcher) addTree(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			w.logger.Warn("skipping unreadable directory",
				logging.String("dir", path), logging.Error(walkErr))
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := fsw.Add(path); err != nil {
			w.logger.Warn("failed to watch directory",
				logging.String("dir", path), logging.Error(err))
		}
		return nil
	})
}

func (w *Watcher) pass(ctx context.Context) {
	if err := w.onSettle(ctx); err != nil {
		w.logger.Error("export pass failed", logging.Error(err))
	}
}
