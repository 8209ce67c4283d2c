package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"steamclip/internal/export"
	"steamclip/internal/logging"
)

type summaryView struct {
	Found    int `json:"found"`
	Exported int `json:"exported"`
	Failed   int `json:"failed"`
	Skipped  int `json:"skipped"`
	Removed  int `json:"removed"`
}

func newExportCommand(ctx *commandContext) *cobra.Command {
	var inputFlag string
	var outputFlag string
	var gameIDFlag []string
	var deleteAfter bool

	cmd := &cobra.Command{
		Use:   "export [clip-dir]",
		Short: "Export discovered clips to MP4 files",
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

			summary, err := exporter.Run(cmd.Context(), export.Options{
				InputDir:    inputDir,
				OutputDir:   outputDir,
				GameIDs:     gameIDs,
				DeleteAfter: deleteAfter || cfg.Export.DeleteAfter,
			})
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, summaryView(summary))
			}
			printSummary(cmd.OutOrStdout(), summary, outputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Clip directory to scan (defaults to paths.input_dir)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Directory for exported files (defaults to paths.output_dir, then the current directory)")
	cmd.Flags().StringSliceVar(&gameIDFlag, "game-id", nil, "Only export clips for these Steam app ids (repeatable)")
	cmd.Flags().BoolVar(&deleteAfter, "delete-after", false, "Remove clip sources after successful export")
	return cmd
}

func printSummary(out io.Writer, summary export.Summary, outputDir string) {
	if summary.Found == 0 {
		fmt.Fprintln(out, "No clips found.")
		return
	}
	fmt.Fprintf(out, "Exported %d of %d clips to %s\n", summary.Exported, summary.Found, outputDir)
	if summary.Failed > 0 || summary.Skipped > 0 {
		fmt.Fprintf(out, "%d failed, %d skipped\n", summary.Failed, summary.Skipped)
	}
	if summary.Removed > 0 {
		fmt.Fprintf(out, "Removed %d clip sources\n", summary.Removed)
	}
}
