package journal_test

import (
	"context"
	"testing"
	"time"

	"steamclip/internal/journal"
	"steamclip/internal/testsupport"
)

func TestRecordAndRecent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenJournal(t, cfg)

	ctx := context.Background()
	first := journal.Entry{
		RunID:      "run-1",
		ClipDir:    "/clips/fg_620_20250101_120000",
		AppID:      620,
		AppName:    "Portal 2",
		OutputPath: "/exports/Portal 2-20250101-120000.mp4",
		Result:     journal.ResultExported,
		StartedAt:  time.Date(2025, 1, 1, 12, 4, 30, 0, time.UTC),
		CreatedAt:  time.Date(2025, 1, 1, 12, 5, 0, 0, time.UTC),
	}
	if err := store.Record(ctx, first); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	second := journal.Entry{
		RunID:   "run-1",
		ClipDir: "/clips/fg_730_20250102_080000",
		AppID:   730,
		Result:  journal.ResultMissingManifest,
		Detail:  "session.mpd not found",
	}
	if err := store.Record(ctx, second); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ClipDir != second.ClipDir {
		t.Fatalf("expected newest entry first, got %q", entries[0].ClipDir)
	}
	if entries[0].Result != journal.ResultMissingManifest || entries[0].Detail != second.Detail {
		t.Fatalf("unexpected newest entry: %#v", entries[0])
	}
	if entries[1].AppID != 620 || entries[1].AppName != "Portal 2" {
		t.Fatalf("unexpected oldest entry: %#v", entries[1])
	}
	if !entries[1].CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("created_at round trip: got %v want %v", entries[1].CreatedAt, first.CreatedAt)
	}
	if !entries[1].StartedAt.Equal(first.StartedAt) {
		t.Fatalf("started_at round trip: got %v want %v", entries[1].StartedAt, first.StartedAt)
	}
	if entries[0].CreatedAt.IsZero() {
		t.Fatal("expected zero CreatedAt to be stamped on insert")
	}
	if !entries[0].StartedAt.Equal(entries[0].CreatedAt) {
		t.Fatal("expected zero StartedAt to default to CreatedAt")
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenJournal(t, cfg)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		entry := journal.Entry{RunID: "run-1", ClipDir: "clip", AppID: 620, Result: journal.ResultExported}
		if err := store.Record(ctx, entry); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	entries, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	store, err := journal.Open(cfg)
	if err != nil {
		t.Fatalf("journal.Open: %v", err)
	}
	entry := journal.Entry{RunID: "run-1", ClipDir: "clip", AppID: 620, Result: journal.ResultRemuxFailed}
	if err := store.Record(context.Background(), entry); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := testsupport.MustOpenJournal(t, cfg)
	entries, err := reopened.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Result != journal.ResultRemuxFailed {
		t.Fatalf("unexpected entries after reopen: %#v", entries)
	}
}

func TestNilStoreIsNoOp(t *testing.T) {
	var store *journal.Store

	if err := store.Record(context.Background(), journal.Entry{RunID: "run-1"}); err != nil {
		t.Fatalf("Record on nil store: %v", err)
	}
	entries, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent on nil store: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close on nil store: %v", err)
	}
	if got := store.Path(); got != "" {
		t.Fatalf("Path on nil store: got %q", got)
	}
}
