package logging_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"steamclip/internal/logging"
	"steamclip/internal/services"
	"steamclip/internal/testsupport"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(data)
}

func TestConsoleFormatIncludesContextFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steamclip.log")
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}

	ctx := services.WithRunID(context.Background(), "run-123")
	ctx = services.WithClipDir(ctx, "/clips/fg_730_20240921_183659")
	ctx = services.WithAppID(ctx, 730)

	log := logging.WithContext(ctx, logger.With(logging.String("component", "export")))
	log.Info("clip exported", logging.String("output", "Portal 2-20250101-120000.mp4"))

	content := readLog(t, path)
	for _, want := range []string{
		" INFO ",
		"export: clip exported",
		"run_id=run-123",
		"clip_dir=/clips/fg_730_20240921_183659",
		"app_id=730",
		`output="Portal 2-20250101-120000.mp4"`,
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("log line missing %q: %q", want, content)
		}
	}
}

func TestJSONFormatEmitsStandardKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steamclip.log")
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}

	logger.Info("export run completed", logging.Int("found", 3))

	var record map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(readLog(t, path))), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record["msg"] != "export run completed" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if record["level"] != "info" {
		t.Fatalf("unexpected level: %v", record["level"])
	}
	if ts, ok := record["ts"].(string); !ok || ts == "" {
		t.Fatalf("unexpected ts: %v", record["ts"])
	}
	if record["found"] != float64(3) {
		t.Fatalf("unexpected found: %v", record["found"])
	}
}

func TestLevelFiltersRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steamclip.log")
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}

	logger.Info("suppressed record")
	logger.Warn("kept record")

	content := readLog(t, path)
	if strings.Contains(content, "suppressed record") {
		t.Fatalf("info record should be filtered: %q", content)
	}
	if !strings.Contains(content, "kept record") {
		t.Fatalf("warn record missing: %q", content)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewFromConfigAppendsToLogDir(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	logger, err := logging.NewFromConfig(cfg, "")
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}

	logger.Error("remux failed", logging.Error(errors.New("disk full")))

	content := readLog(t, filepath.Join(cfg.Paths.LogDir, "steamclip.log"))
	if !strings.Contains(content, "remux failed") || !strings.Contains(content, "disk full") {
		t.Fatalf("unexpected log content: %q", content)
	}
}

func TestNewFromConfigLevelOverride(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Logging.Level = "error"
	logger, err := logging.NewFromConfig(cfg, "debug")
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}

	logger.Debug("override took effect")

	content := readLog(t, filepath.Join(cfg.Paths.LogDir, "steamclip.log"))
	if !strings.Contains(content, "override took effect") {
		t.Fatalf("expected debug record with override: %q", content)
	}
}

func TestComponentLoggerToleratesNilBase(t *testing.T) {
	logger := logging.NewComponentLogger(nil, "watch")
	logger.Info("discarded")
}
