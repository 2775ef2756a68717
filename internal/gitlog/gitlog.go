package gitlog

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/bartekus/commitgate/internal/history"
)

// Log reads commit history from a local repository by asking git.
type Log struct {
	repoRoot string

	mu    sync.Mutex
	cache map[string][]history.Commit
}

// New creates a Log for the given repository root.
func New(repoRoot string) *Log {
	return &Log{
		repoRoot: repoRoot,
		cache:    make(map[string][]history.Commit),
	}
}

// Commits returns the commits in revRange, oldest first, caching per
// range for the instance lifetime.
func (l *Log) Commits(ctx context.Context, revRange string) ([]history.Commit, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cached, ok := l.cache[revRange]; ok {
		return cached, nil
	}

	// %x00 terminates records and %x1f separates SHA from message, so
	// multi-line messages parse unambiguously.
	cmd := exec.CommandContext(ctx, "git", "log", "--reverse", "--format=%H%x1f%B%x00", revRange)
	cmd.Dir = l.repoRoot
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git log %s failed: %w", revRange, err)
	}

	commits := parseLog(string(out))
	l.cache[revRange] = commits
	return commits, nil
}

// parseLog splits NUL-terminated records into commits. git prints a
// newline after each record; it is stripped along with the trailing
// newline %B carries.
func parseLog(out string) []history.Commit {
	var commits []history.Commit
	for _, record := range strings.Split(out, "\x00") {
		record = strings.TrimLeft(record, "\n")
		if record == "" {
			continue
		}
		sha, message, ok := strings.Cut(record, "\x1f")
		if !ok {
			continue
		}
		commits = append(commits, history.Commit{
			SHA:     sha,
			Message: strings.TrimRight(message, "\n"),
		})
	}
	return commits
}

// RangeSource adapts a revision range to history.Source.
type RangeSource struct {
	Log      *Log
	RevRange string
}

func (s *RangeSource) Commits(ctx context.Context) ([]history.Commit, error) {
	return s.Log.Commits(ctx, s.RevRange)
}

// RepoRoot resolves the root of the repository containing dir.
func RepoRoot(ctx context.Context, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse --show-toplevel failed: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
