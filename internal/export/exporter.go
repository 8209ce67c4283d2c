// Package export drives the clip pipeline: scan the recordings tree, resolve
// game names, remux each clip to MP4, and optionally remove the exported
// sources.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"steamclip/internal/cleanup"
	"steamclip/internal/clips"
	"steamclip/internal/config"
	"steamclip/internal/fileutil"
	"steamclip/internal/journal"
	"steamclip/internal/logging"
	"steamclip/internal/services"
	"steamclip/internal/services/ffmpeg"
	"steamclip/internal/steam"
)

// Options carries the resolved inputs for one export run. The command layer
// merges flags, positional arguments, and config before building this.
type Options struct {
	InputDir    string
	OutputDir   string
	GameIDs     []uint32
	DeleteAfter bool
}

// Summary tallies per-clip outcomes for one run. Per-clip failures are
// reported here rather than through Run's error.
type Summary struct {
	Found    int
	Exported int
	Failed   int
	Skipped  int
	Removed  int
}

// Exporter converts discovered clips into standalone MP4 files.
type Exporter struct {
	cfg      *config.Config
	logger   *slog.Logger
	remuxer  ffmpeg.Remuxer
	resolver *steam.Resolver
	journal  *journal.Store
}

// New constructs an exporter with default dependencies derived from cfg.
// A nil store disables journaling.
func New(cfg *config.Config, logger *slog.Logger, store *journal.Store) (*Exporter, error) {
	client, err := ffmpeg.New(cfg.FFmpegBinary())
	if err != nil {
		return nil, fmt.Errorf("configure ffmpeg: %w", err)
	}
	resolver := steam.NewResolver(steam.WithExtraCandidates(cfg.Steam.ExtraRoots...))
	return NewWithDependencies(cfg, logger, client, resolver, store), nil
}

// NewWithDependencies allows injecting collaborators (used in tests). A nil
// journal store disables journaling.
func NewWithDependencies(cfg *config.Config, logger *slog.Logger, remuxer ffmpeg.Remuxer, resolver *steam.Resolver, store *journal.Store) *Exporter {
	exLogger := logger
	if exLogger == nil {
		exLogger = logging.NewNop()
	}
	exLogger = exLogger.With(logging.String("component", "export"))
	return &Exporter{cfg: cfg, logger: exLogger, remuxer: remuxer, resolver: resolver, journal: store}
}

// Run scans opts.InputDir and exports every matching clip. Scan and setup
// failures abort the run; per-clip failures are logged, journaled, and
// counted in the summary instead.
func (e *Exporter) Run(ctx context.Context, opts Options) (Summary, error) {
	var summary Summary

	ctx = services.WithRunID(ctx, uuid.NewString())
	logger := logging.WithContext(ctx, e.logger)

	inputDir := strings.TrimSpace(opts.InputDir)
	if inputDir == "" {
		return summary, services.Wrap(
			services.ErrConfiguration,
			"export",
			"resolve input dir",
			"No clip directory configured; pass one on the command line or set paths.input_dir",
			nil,
		)
	}
	if info, err := os.Stat(inputDir); err != nil || !info.IsDir() {
		return summary, services.Wrap(
			services.ErrConfiguration,
			"export",
			"resolve input dir",
			fmt.Sprintf("Clip directory %s is not a directory", inputDir),
			err,
		)
	}

	outputDir := strings.TrimSpace(opts.OutputDir)
	if outputDir == "" {
		return summary, services.Wrap(
			services.ErrConfiguration,
			"export",
			"resolve output dir",
			"No output directory configured; set paths.output_dir or STEAMCLIP_OUTPUT_DIR",
			nil,
		)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return summary, services.Wrap(services.ErrConfiguration, "export", "ensure output dir", "Failed to create output directory", err)
	}

	roots := e.resolver.LibraryRoots()
	logger.Debug("steam library roots resolved", logging.Int("roots", len(roots)))

	records, err := clips.Scan(inputDir, logger)
	if err != nil {
		return summary, services.Wrap(services.ErrDiscovery, "export", "scan clips", "Failed to scan clip directory", err)
	}
	records = clips.Filter(records, opts.GameIDs)
	clips.SortByDir(records)
	summary.Found = len(records)
	logger.Info("clip scan completed",
		logging.String("input_dir", inputDir),
		logging.Int("clips", len(records)),
	)
	if len(records) == 0 {
		return summary, nil
	}

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		e.exportOne(ctx, record, opts, roots, &summary)
	}

	logger.Info("export run completed",
		logging.Int("found", summary.Found),
		logging.Int("exported", summary.Exported),
		logging.Int("failed", summary.Failed),
		logging.Int("skipped", summary.Skipped),
		logging.Int("removed", summary.Removed),
	)
	return summary, nil
}

func (e *Exporter) exportOne(parent context.Context, record clips.Record, opts Options, roots []string, summary *Summary) {
	ctx := services.WithAppID(services.WithClipDir(parent, record.Dir), record.AppID)
	logger := logging.WithContext(ctx, e.logger)
	started := time.Now()

	if _, err := os.Stat(filepath.Join(record.Dir, ManifestName)); err != nil {
		summary.Skipped++
		logger.Warn("clip has no manifest, skipping", logging.String("manifest", ManifestName))
		entry := e.journalEntry(ctx, record, journal.ResultMissingManifest, started)
		entry.Detail = ManifestName + " not found"
		e.recordOutcome(ctx, logger, entry)
		return
	}

	appName, ok := e.resolver.AppName(record.AppID, roots)
	if !ok {
		appName = strconv.FormatUint(uint64(record.AppID), 10)
		logger.Debug("app name not found, using numeric id")
	}

	outPath := filepath.Join(opts.OutputDir, OutputFileName(appName, record))
	logger.Info("exporting clip",
		logging.String("game", appName),
		logging.String("output", filepath.Base(outPath)),
	)

	if err := e.remuxer.Remux(ctx, record.Dir, ManifestName, outPath); err != nil {
		summary.Failed++
		logger.Error("remux failed", logging.Error(err))
		entry := e.journalEntry(ctx, record, journal.ResultRemuxFailed, started)
		entry.AppName = appName
		entry.OutputPath = outPath
		entry.Detail = err.Error()
		e.recordOutcome(ctx, logger, entry)
		return
	}

	if start, err := record.StartTime(); err != nil {
		logger.Warn("clip name holds an invalid timestamp", logging.Error(err))
	} else if err := fileutil.SetFileTimes(outPath, start); err != nil {
		logger.Warn("failed to set output timestamps", logging.Error(err))
	}

	summary.Exported++
	logger.Info("clip exported", logging.String("output", outPath))
	entry := e.journalEntry(ctx, record, journal.ResultExported, started)
	entry.AppName = appName
	entry.OutputPath = outPath
	e.recordOutcome(ctx, logger, entry)

	if !opts.DeleteAfter {
		return
	}
	if err := os.RemoveAll(record.Dir); err != nil {
		logger.Warn("failed to remove clip source", logging.Error(err))
		return
	}
	summary.Removed++
	logger.Info("clip source removed")
	if _, err := cleanup.Cascade(record.Dir, logger); err != nil {
		logger.Warn("failed to remove session directory", logging.Error(err))
	}
}

func (e *Exporter) journalEntry(ctx context.Context, record clips.Record, result journal.Result, started time.Time) journal.Entry {
	runID, _ := services.RunIDFromContext(ctx)
	return journal.Entry{
		RunID:     runID,
		ClipDir:   record.Dir,
		AppID:     record.AppID,
		Result:    result,
		StartedAt: started,
	}
}

func (e *Exporter) recordOutcome(ctx context.Context, logger *slog.Logger, entry journal.Entry) {
	if err := e.journal.Record(ctx, entry); err != nil {
		logger.Warn("journal write failed", logging.Error(err))
	}
}
