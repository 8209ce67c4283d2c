package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"steamclip/internal/clips"
	"steamclip/internal/services"
)

type clipView struct {
	AppID    uint32 `json:"app_id"`
	Game     string `json:"game"`
	Recorded string `json:"recorded"`
	Dir      string `json:"dir"`
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var inputFlag string
	var gameIDFlag []string

	cmd := &cobra.Command{
		Use:   "list [clip-dir]",
		Short: "List discovered clips without exporting",
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

			if err := ensureInputDir(inputDir); err != nil {
				return err
			}

			records, err := clips.Scan(inputDir, logger)
			if err != nil {
				return services.Wrap(services.ErrDiscovery, "cli", "scan clips", "Failed to scan clip directory", err)
			}
			records = clips.Filter(records, gameIDs)
			clips.SortByDir(records)

			roots := resolver.LibraryRoots()
			views := make([]clipView, 0, len(records))
			for _, record := range records {
				name, ok := resolver.AppName(record.AppID, roots)
				if !ok {
					name = strconv.FormatUint(uint64(record.AppID), 10)
				}
				recorded := record.Date + " " + record.Time
				if start, startErr := record.StartTime(); startErr == nil {
					recorded = start.Format("2006-01-02 15:04:05")
				}
				views = append(views, clipView{
					AppID:    record.AppID,
					Game:     name,
					Recorded: recorded,
					Dir:      record.Dir,
				})
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, views)
			}

			out := cmd.OutOrStdout()
			if len(views) == 0 {
				fmt.Fprintln(out, "No clips found.")
				return nil
			}
			rows := make([][]string, 0, len(views))
			for _, view := range views {
				rows = append(rows, []string{
					strconv.FormatUint(uint64(view.AppID), 10),
					view.Game,
					view.Recorded,
					view.Dir,
				})
			}
			fmt.Fprintln(out, renderTable([]string{"App ID", "Game", "Recorded", "Directory"}, rows, 0))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Clip directory to scan (defaults to paths.input_dir)")
	cmd.Flags().StringSliceVar(&gameIDFlag, "game-id", nil, "Only list clips for these Steam app ids (repeatable)")
	return cmd
}
