package review

import (
	"context"
	"fmt"

	"github.com/bartekus/commitgate/internal/history"
	"github.com/bartekus/commitgate/internal/lint"
)

// Run validates every commit from src in order against cfg.
// A failing commit never stops the run; the summary carries the tally.
// Commits are independent, so no ordering beyond source order is imposed.
func Run(ctx context.Context, src history.Source, cfg lint.Config) (*Summary, error) {
	commits, err := src.Commits(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading commits: %w", err)
	}

	summary := &Summary{Status: StatusPass}
	for _, c := range commits {
		res := Check(c, cfg)
		summary.Commits = append(summary.Commits, c.SHA)
		summary.Results = append(summary.Results, res)
		if !res.Passed() {
			summary.Failed = append(summary.Failed, c.SHA)
			summary.Status = StatusFail
		}
	}
	return summary, nil
}

// Check validates a single commit and pairs the findings with its SHA.
func Check(c history.Commit, cfg lint.Config) Result {
	findings := lint.Validate(c.Message, cfg)
	res := Result{
		SHA:      c.SHA,
		Status:   StatusPass,
		Errors:   lint.Messages(findings),
		Findings: findings,
	}
	if len(findings) > 0 {
		res.Status = StatusFail
	}
	return res
}
