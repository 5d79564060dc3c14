package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cratedig/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of external tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.Check(cmd.Context(), deps.Requirements(cfg.FFprobeBinary()))

			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := "missing"
				if status.Available {
					state = "ok"
				}
				required := "yes"
				if status.Optional {
					required = "no"
				}
				detail := status.Detail
				if status.Available {
					detail = status.Command
				}
				rows = append(rows, []string{status.Name, state, required, status.Version, detail})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tool", "Status", "Required", "Version", "Details"}, rows))

			if deps.MissingRequired(statuses) {
				return errors.New("missing required dependencies")
			}
			return nil
		},
	}
}
