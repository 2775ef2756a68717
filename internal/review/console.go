package review

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Console prints per-commit results as they would appear in a CI job log.
type Console struct {
	Out io.Writer
}

// Report prints a single commit's outcome.
func (c *Console) Report(res Result) {
	if res.Passed() {
		fmt.Fprintf(c.Out, "%s Commit %s passed all checks.\n", color.GreenString("✓"), res.SHA)
		return
	}
	fmt.Fprintf(c.Out, "\n%s Commit %s failed checks:\n", color.RedString("✗"), res.SHA)
	for _, msg := range res.Errors {
		fmt.Fprintf(c.Out, "   - %s\n", msg)
	}
}

// Finish prints the run verdict.
func (c *Console) Finish(sum *Summary) {
	if sum.Status == StatusFail {
		fmt.Fprintf(c.Out, "\n%s %d commit(s) failed validation.\n", color.RedString("✗"), len(sum.Failed))
		return
	}
	fmt.Fprintf(c.Out, "\n%s All commits passed validation.\n", color.GreenString("✓"))
}
