// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/commitgate/cmd/commitgate/internal/clierr"
	"github.com/bartekus/commitgate/internal/lint"
	"github.com/bartekus/commitgate/internal/review"
	"github.com/bartekus/commitgate/internal/rules"
)

// ruleFlags holds the style rule flags shared by check, local, and lint.
type ruleFlags struct {
	subjectLimit int
	bodyLimit    int
	blankLine    bool
	rulesPath    string
}

func (f *ruleFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.subjectLimit, "subject-limit", 50, "Maximum subject length in characters")
	cmd.Flags().IntVar(&f.bodyLimit, "body-limit", 72, "Maximum body line length in characters")
	cmd.Flags().BoolVar(&f.blankLine, "check-blank-line", true, "Require blank lines between subject, body, and Signed-off-by")
	cmd.Flags().StringVar(&f.rulesPath, "rules", "", "Path to a .commitgate.yaml rules file")
}

// resolve merges defaults, the rules file, and explicit flags, in that order.
func (f *ruleFlags) resolve(cmd *cobra.Command) (lint.Config, error) {
	cfg := lint.DefaultConfig()

	if f.rulesPath != "" {
		loaded, err := rules.Load(f.rulesPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("subject-limit") {
		cfg.SubjectLimit = f.subjectLimit
	}
	if cmd.Flags().Changed("body-limit") {
		cfg.BodyLimit = f.bodyLimit
	}
	if cmd.Flags().Changed("check-blank-line") {
		cfg.CheckBlankLine = f.blankLine
	}

	if err := rules.Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// emitSummary prints the run (console or JSON), persists run state, and
// appends the CI step summary when the runner provides one.
func emitSummary(cmd *cobra.Command, sum *review.Summary, asJSON bool, stateDir string) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		out := struct {
			Status  review.Status   `json:"status"`
			Results []review.Result `json:"results"`
		}{sum.Status, sum.Results}
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
	} else {
		console := &review.Console{Out: cmd.OutOrStdout()}
		for _, res := range sum.Results {
			console.Report(res)
		}
		console.Finish(sum)
	}

	store := review.NewStateStore(stateDir)
	if err := store.WriteLastRun(sum); err != nil {
		return fmt.Errorf("writing run state: %w", err)
	}

	if path := review.StepSummaryPath(); path != "" {
		if err := review.AppendStepSummary(path, sum); err != nil {
			return fmt.Errorf("writing step summary: %w", err)
		}
	}
	return nil
}

// failOn turns the gate verdict into a process error.
func failOn(sum *review.Summary) error {
	if sum.Status == review.StatusFail {
		return clierr.Newf(1, "%d commit(s) failed validation", len(sum.Failed))
	}
	return nil
}
