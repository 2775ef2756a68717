// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/commitgate/internal/review"
)

// NewReportCommand returns the `commitgate report` command.
func NewReportCommand() *cobra.Command {
	var (
		asJSON   bool
		stateDir string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the results of the last run",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := review.NewStateStore(stateDir)
			last, err := store.ReadLastRun()
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(last)
			}

			if last == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No run state found.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Status: %s\n", last.Status)
			if len(last.Failed) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Failed:")
				for _, sha := range last.Failed {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", sha)
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "All commits passed.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output results in JSON")
	cmd.Flags().StringVar(&stateDir, "state-dir", ".commitgate/run", "Directory to read run state from")

	return cmd
}
