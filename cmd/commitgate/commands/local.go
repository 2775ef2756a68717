// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bartekus/commitgate/internal/gitlog"
	"github.com/bartekus/commitgate/internal/review"
)

// NewLocalCommand returns the `commitgate local` command.
func NewLocalCommand() *cobra.Command {
	var (
		asJSON   bool
		stateDir string
		rf       ruleFlags
	)

	cmd := &cobra.Command{
		Use:   "local [revRange]",
		Short: "Validate commit messages in a local revision range",
		Long:  "Reads commits from the local repository with git log and validates each message. The range defaults to HEAD~1..HEAD.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rf.resolve(cmd)
			if err != nil {
				return err
			}

			revRange := "HEAD~1..HEAD"
			if len(args) == 1 {
				revRange = args[0]
			}

			root, err := gitlog.RepoRoot(cmd.Context(), ".")
			if err != nil {
				return err
			}

			src := &gitlog.RangeSource{Log: gitlog.New(root), RevRange: revRange}
			sum, err := review.Run(cmd.Context(), src, cfg)
			if err != nil {
				return err
			}

			dir := stateDir
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(root, dir)
			}
			if err := emitSummary(cmd, sum, asJSON, dir); err != nil {
				return err
			}
			return failOn(sum)
		},
	}

	rf.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output results in JSON")
	cmd.Flags().StringVar(&stateDir, "state-dir", ".commitgate/run", "Directory to store run state")

	return cmd
}
