package gitlog

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/commitgate/internal/history"
)

func TestParseLog(t *testing.T) {
	tests := []struct {
		name     string
		out      string
		expected []history.Commit
	}{
		{
			name:     "empty output",
			out:      "",
			expected: nil,
		},
		{
			name: "single commit",
			out:  "abc123\x1fAdd feature\n\nBody line.\n\x00\n",
			expected: []history.Commit{
				{SHA: "abc123", Message: "Add feature\n\nBody line."},
			},
		},
		{
			name: "multiple commits keep order",
			out:  "abc123\x1fFirst subject\n\x00\ndef456\x1fSecond subject\n\nWith a body.\n\x00\n",
			expected: []history.Commit{
				{SHA: "abc123", Message: "First subject"},
				{SHA: "def456", Message: "Second subject\n\nWith a body."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLog(tt.out))
		})
	}
}

func TestLog(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	ctx := context.Background()

	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")

	runGit(t, dir, "commit", "--allow-empty", "-m", "First subject", "-m", "First body line.")
	runGit(t, dir, "commit", "--allow-empty", "-m", "Second subject", "-m", "Second body line.")

	l := New(dir)

	commits, err := l.Commits(ctx, "HEAD")
	require.NoError(t, err)
	require.Len(t, commits, 2)

	// --reverse puts the oldest commit first.
	assert.Equal(t, "First subject\n\nFirst body line.", commits[0].Message)
	assert.Equal(t, "Second subject\n\nSecond body line.", commits[1].Message)
	assert.NotEmpty(t, commits[0].SHA)
	assert.NotEqual(t, commits[0].SHA, commits[1].SHA)

	ranged, err := l.Commits(ctx, "HEAD~1..HEAD")
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, commits[1], ranged[0])

	// Second call for the same range is served from the cache.
	again, err := l.Commits(ctx, "HEAD")
	require.NoError(t, err)
	assert.Equal(t, commits, again)
}

func TestLog_BadRange(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	runGit(t, dir, "init")

	_, err := New(dir).Commits(context.Background(), "no-such-ref")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git log")
}

func TestRepoRoot(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	runGit(t, dir, "init")

	root, err := RepoRoot(context.Background(), dir)
	require.NoError(t, err)
	assert.NotEmpty(t, root)
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\nOutput: %s", args, err, out)
	}
}
