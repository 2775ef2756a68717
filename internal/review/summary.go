package review

import (
	"fmt"
	"os"
	"strings"
)

// StepSummaryPath returns the CI step summary file path, if the CI
// runner provides one (GitHub Actions sets GITHUB_STEP_SUMMARY).
func StepSummaryPath() string {
	return os.Getenv("GITHUB_STEP_SUMMARY")
}

// AppendStepSummary appends the markdown report to the step summary file.
// Appending, not truncating: other steps share the same file.
func AppendStepSummary(path string, sum *Summary) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // G304: path comes from the CI runner
	if err != nil {
		return fmt.Errorf("opening step summary: %w", err)
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	_, err = f.WriteString(Markdown(sum))
	return err
}

// Markdown renders the run as a markdown report, shared by the CI step
// summary and the PR comment body.
func Markdown(sum *Summary) string {
	var b strings.Builder
	b.WriteString("## Commit message validation\n\n")

	for _, res := range sum.Results {
		if res.Passed() {
			fmt.Fprintf(&b, "- ✅ `%s` passed all checks\n", res.SHA)
			continue
		}
		fmt.Fprintf(&b, "- ❌ `%s` failed checks:\n", res.SHA)
		for _, msg := range res.Errors {
			fmt.Fprintf(&b, "  - %s\n", msg)
		}
	}

	if sum.Status == StatusFail {
		fmt.Fprintf(&b, "\n%d commit(s) failed validation.\n", len(sum.Failed))
	} else {
		b.WriteString("\nAll commits passed validation.\n")
	}
	return b.String()
}
