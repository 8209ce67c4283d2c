package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "roots",
		Short: "Show resolved Steam library roots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			roots := ctx.steamResolver(cfg).LibraryRoots()
			if ctx.jsonOutput() {
				if roots == nil {
					roots = []string{}
				}
				return writeJSON(cmd, roots)
			}

			out := cmd.OutOrStdout()
			if len(roots) == 0 {
				fmt.Fprintln(out, "No Steam library roots found.")
				return nil
			}
			for _, root := range roots {
				fmt.Fprintln(out, root)
			}
			return nil
		},
	}
}
