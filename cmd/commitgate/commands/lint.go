// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bartekus/commitgate/cmd/commitgate/internal/clierr"
	"github.com/bartekus/commitgate/internal/lint"
)

// NewLintCommand returns the `commitgate lint` command.
func NewLintCommand() *cobra.Command {
	var rf ruleFlags

	cmd := &cobra.Command{
		Use:   "lint [file]",
		Short: "Validate a single commit message from a file or stdin",
		Long:  "Validates one commit message, suitable as a commit-msg hook: commitgate lint .git/COMMIT_EDITMSG. With no file (or -), the message is read from stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rf.resolve(cmd)
			if err != nil {
				return err
			}

			var data []byte
			if len(args) == 1 && args[0] != "-" {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("reading commit message: %w", err)
			}

			findings := lint.Validate(string(data), cfg)
			if len(findings) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Commit message passed all checks.\n", color.GreenString("✓"))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Commit message failed checks:\n", color.RedString("✗"))
			for _, f := range findings {
				fmt.Fprintf(cmd.OutOrStdout(), "   - %s\n", f)
			}
			return clierr.Newf(1, "%d check(s) failed", len(findings))
		},
	}

	rf.register(cmd)
	return cmd
}
