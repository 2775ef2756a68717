// Package review runs the validator over a commit source and carries the
// results to reporters: console, run state, CI step summary, PR comment.
package review

import "github.com/bartekus/commitgate/internal/lint"

// Status is the outcome of a commit or of a whole run.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

// Result is the validation outcome for a single commit.
// Matches the .commitgate/run/commits/<sha>.json schema.
type Result struct {
	SHA    string   `json:"sha"`
	Status Status   `json:"status"`
	Errors []string `json:"errors,omitempty"`

	// Findings carries the structured form of Errors for in-process
	// consumers; it is not persisted.
	Findings []lint.Finding `json:"-"`
}

// Passed reports whether the commit raised no findings.
func (r Result) Passed() bool {
	return r.Status == StatusPass
}

// Summary is the outcome of a whole run.
// Matches the .commitgate/run/last-run.json schema.
type Summary struct {
	Status  Status   `json:"status"`
	Commits []string `json:"commits"` // ordered list of validated SHAs
	Failed  []string `json:"failed"`  // SHAs that raised findings

	// Results holds the per-commit detail; persisted per commit rather
	// than in last-run.json.
	Results []Result `json:"-"`
}
