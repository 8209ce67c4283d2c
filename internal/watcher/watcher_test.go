package watcher_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"steamclip/internal/logging"
	"steamclip/internal/testsupport"
	"steamclip/internal/watcher"
)

func TestRunFiresInitialAndSettledPasses(t *testing.T) {
	root := t.TempDir()
	passes := make(chan struct{})

	w := watcher.New(root, 100*time.Millisecond, logging.NewNop(), func(context.Context) error {
		passes <- struct{}{}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	waitForPass(t, passes, "initial pass")

	testsupport.MakeContainer(t, root, 620, "20250101", "120000")
	waitForPass(t, passes, "pass after new clip")

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestRunDebouncesBursts(t *testing.T) {
	root := t.TempDir()
	passes := make(chan struct{}, 16)

	w := watcher.New(root, 300*time.Millisecond, logging.NewNop(), func(context.Context) error {
		passes <- struct{}{}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	waitForPass(t, passes, "initial pass")

	// A steady write burst must not trigger a pass mid-burst.
	for i := 0; i < 5; i++ {
		name := filepath.Join(root, "fragment", "chunk"+string(rune('a'+i)))
		if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(name, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		select {
		case <-passes:
			t.Fatal("pass fired during write burst")
		case <-time.After(50 * time.Millisecond):
		}
	}

	waitForPass(t, passes, "pass after burst settled")
}

func TestRunContinuesAfterPassFailure(t *testing.T) {
	root := t.TempDir()
	passes := make(chan struct{})

	w := watcher.New(root, 100*time.Millisecond, logging.NewNop(), func(context.Context) error {
		passes <- struct{}{}
		return errors.New("scan failed")
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	waitForPass(t, passes, "initial pass")

	if err := os.WriteFile(filepath.Join(root, "touch"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitForPass(t, passes, "pass after failure")
}

func TestRunMissingRootFails(t *testing.T) {
	w := watcher.New(filepath.Join(t.TempDir(), "nope"), time.Second, logging.NewNop(), func(context.Context) error {
		return nil
	})
	if err := w.Run(context.Background()); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func waitForPass(t *testing.T, passes <-chan struct{}, label string) {
	t.Helper()
	select {
	case <-passes:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", label)
	}
}
