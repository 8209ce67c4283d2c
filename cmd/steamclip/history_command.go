package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"steamclip/internal/journal"
)

type historyView struct {
	ID         int64  `json:"id"`
	RunID      string `json:"run_id"`
	ClipDir    string `json:"clip_dir"`
	AppID      uint32 `json:"app_id"`
	AppName    string `json:"app_name"`
	OutputPath string `json:"output_path"`
	Result     string `json:"result"`
	Detail     string `json:"detail,omitempty"`
	StartedAt  string `json:"started_at,omitempty"`
	CreatedAt  string `json:"created_at"`
}

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent export outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Journal.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Journaling is disabled (journal.enabled = false).")
				return nil
			}

			store, err := journal.Open(cfg)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				views := make([]historyView, 0, len(entries))
				for _, entry := range entries {
					views = append(views, newHistoryView(entry))
				}
				return writeJSON(cmd, views)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No export history.")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				view := newHistoryView(entry)
				when := ""
				if !entry.CreatedAt.IsZero() {
					when = entry.CreatedAt.UTC().Format("2006-01-02 15:04:05")
				}
				rows = append(rows, []string{
					when,
					view.AppName,
					view.Result,
					filepath.Base(view.OutputPath),
					view.Detail,
				})
			}
			fmt.Fprintln(out, renderTable([]string{"When", "Game", "Result", "Output", "Detail"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries to show")
	return cmd
}

func newHistoryView(entry journal.Entry) historyView {
	game := entry.AppName
	if game == "" {
		game = strconv.FormatUint(uint64(entry.AppID), 10)
	}
	startedAt := ""
	if !entry.StartedAt.IsZero() {
		startedAt = entry.StartedAt.UTC().Format(time.RFC3339)
	}
	createdAt := ""
	if !entry.CreatedAt.IsZero() {
		createdAt = entry.CreatedAt.UTC().Format(time.RFC3339)
	}
	return historyView{
		ID:         entry.ID,
		RunID:      entry.RunID,
		ClipDir:    entry.ClipDir,
		AppID:      entry.AppID,
		AppName:    game,
		OutputPath: entry.OutputPath,
		Result:     string(entry.Result),
		Detail:     entry.Detail,
		StartedAt:  startedAt,
		CreatedAt:  createdAt,
	}
}
