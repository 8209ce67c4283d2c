package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"steamclip/internal/export"
	"steamclip/internal/logging"
	"steamclip/internal/watcher"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var inputFlag string
	var outputFlag string
	var gameIDFlag []string
	var deleteAfter bool
	var debounceSeconds int

	cmd := &cobra.Command{
		Use:   "watch [clip-dir]",
		Short: "Watch for new clips and export them as recordings settle",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}

			gameIDs, err := parseGameIDs(gameIDFlag)
			if err != nil {
				return err
			}
			resolver := ctx.steamResolver(cfg)
			inputDir, err := resolveInputDir(cfg, logger, resolver, positionalDir(args), inputFlag)
			if err != nil {
				return err
			}
			outputDir, err := resolveOutputDir(cfg, outputFlag)
			if err != nil {
				return err
			}
			if err := ensureInputDir(inputDir); err != nil {
				return err
			}

			debounce := cfg.Watch.DebounceSeconds
			if debounceSeconds > 0 {
				debounce = debounceSeconds
			}

			// One lock spans the whole watch session so a concurrent
			// one-shot export cannot interleave with settle passes.
			release, err := export.AcquireLock(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if unlockErr := release(); unlockErr != nil {
					logger.Warn("failed to release run lock", logging.Error(unlockErr))
				}
			}()

			store := ctx.openJournal(cfg, logger)
			defer store.Close()

			exporter, err := export.New(cfg, logger, store)
			if err != nil {
				return err
			}
			opts := export.Options{
				InputDir:    inputDir,
				OutputDir:   outputDir,
				GameIDs:     gameIDs,
				DeleteAfter: deleteAfter || cfg.Export.DeleteAfter,
			}

			w := watcher.New(inputDir, time.Duration(debounce)*time.Second, logger, func(passCtx context.Context) error {
				_, runErr := exporter.Run(passCtx, opts)
				return runErr
			})
			if err := w.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Clip directory to watch (defaults to paths.input_dir)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Directory for exported files (defaults to paths.output_dir, then the current directory)")
	cmd.Flags().StringSliceVar(&gameIDFlag, "game-id", nil, "Only export clips for these Steam app ids (repeatable)")
	cmd.Flags().BoolVar(&deleteAfter, "delete-after", false, "Remove clip sources after successful export")
	cmd.Flags().IntVar(&debounceSeconds, "debounce", 0, "Seconds of quiet before an export pass (defaults to watch.debounce_seconds)")
	return cmd
}
