package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"steamclip/internal/preflight"
)

type checkView struct {
	Name     string `json:"name"`
	Passed   bool   `json:"passed"`
	Detail   string `json:"detail"`
	Optional bool   `json:"optional,omitempty"`
}

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check external tools, directories, and Steam libraries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(cfg, ctx.steamResolver(cfg))

			if ctx.jsonOutput() {
				views := make([]checkView, 0, len(results))
				for _, res := range results {
					views = append(views, checkView(res))
				}
				return writeJSON(cmd, views)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader("Environment", colorize) {
				fmt.Fprintln(out, line)
			}
			failed := 0
			warned := 0
			for _, res := range results {
				kind := statusOK
				switch {
				case res.Passed:
				case res.Optional:
					kind = statusWarn
					warned++
				default:
					kind = statusError
					failed++
				}
				fmt.Fprintln(out, renderStatusLine(res.Name, kind, res.Detail, colorize))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(results))
			}
			if warned > 0 {
				fmt.Fprintln(out, "All required checks passed.")
				return nil
			}
			fmt.Fprintln(out, "All checks passed.")
			return nil
		},
	}
}
