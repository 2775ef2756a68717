// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bartekus/commitgate/cmd/commitgate/internal/clierr"
	"github.com/bartekus/commitgate/internal/github"
	"github.com/bartekus/commitgate/internal/review"
)

// statusContext names the commit status check Commitgate sets.
const statusContext = "commitgate"

// NewCheckCommand returns the `commitgate check` command.
func NewCheckCommand() *cobra.Command {
	var (
		repo        string
		prNumber    int
		postComment bool
		postStatus  bool
		asJSON      bool
		stateDir    string
		rf          ruleFlags
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate commit messages in a GitHub pull request",
		Long:  "Fetches the commits of a pull request and validates each message against the configured style rules, optionally posting the report back to GitHub.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rf.resolve(cmd)
			if err != nil {
				return err
			}

			// Local convenience; CI provides the token directly.
			_ = godotenv.Load()
			token := os.Getenv("GITHUB_TOKEN")
			if token == "" {
				return clierr.New(1, "GITHUB_TOKEN is not set; cannot fetch PR commits")
			}

			client := github.NewClient(token)
			src := &github.PullRequestSource{Client: client, Repo: repo, Number: prNumber}

			sum, err := review.Run(cmd.Context(), src, cfg)
			if err != nil {
				return err
			}

			if err := emitSummary(cmd, sum, asJSON, stateDir); err != nil {
				return err
			}

			if postStatus {
				for _, res := range sum.Results {
					st := github.Status{State: "success", Description: "All checks passed", Context: statusContext}
					if !res.Passed() {
						st.State = "failure"
						st.Description = fmt.Sprintf("%d issue(s) found", len(res.Errors))
					}
					if err := client.CreateCommitStatus(cmd.Context(), repo, res.SHA, st); err != nil {
						return err
					}
				}
			}
			if postComment && sum.Status == review.StatusFail {
				if err := client.CreateIssueComment(cmd.Context(), repo, prNumber, review.Markdown(sum)); err != nil {
					return err
				}
			}

			return failOn(sum)
		},
	}

	cmd.Flags().StringVar(&repo, "repo", "", "Repository in owner/name form")
	cmd.Flags().IntVar(&prNumber, "pr", 0, "Pull request number")
	_ = cmd.MarkFlagRequired("repo")
	_ = cmd.MarkFlagRequired("pr")
	rf.register(cmd)
	cmd.Flags().BoolVar(&postComment, "comment", false, "Post the report as a PR comment when checks fail")
	cmd.Flags().BoolVar(&postStatus, "status", false, "Set a commit status on each validated commit")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output results in JSON")
	cmd.Flags().StringVar(&stateDir, "state-dir", ".commitgate/run", "Directory to store run state")

	return cmd
}
