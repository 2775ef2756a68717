package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/commitgate/internal/review"
)

const validCommitMessage = "Valid subject\n\n" +
	"This is a valid description line.\n" +
	"It continues here.\n\n" +
	"Signed-off-by: Developer <dev@example.com>"

// fakeGitHub serves the PR commit listing and records what gets posted back.
type fakeGitHub struct {
	commitsJSON string

	mu       sync.Mutex
	comments []string
	statuses map[string]string // sha -> state
}

func (f *fakeGitHub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/repos/owner/repo/pulls/42/commits":
			_, _ = w.Write([]byte(f.commitsJSON))
		case r.Method == http.MethodPost && r.URL.Path == "/repos/owner/repo/issues/42/comments":
			var payload map[string]string
			_ = json.NewDecoder(r.Body).Decode(&payload)
			f.comments = append(f.comments, payload["body"])
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/repos/owner/repo/statuses/"):
			var payload struct {
				State string `json:"state"`
			}
			_ = json.NewDecoder(r.Body).Decode(&payload)
			if f.statuses == nil {
				f.statuses = map[string]string{}
			}
			f.statuses[r.URL.Path[len("/repos/owner/repo/statuses/"):]] = payload.State
			w.WriteHeader(http.StatusCreated)
		default:
			http.NotFound(w, r)
		}
	}
}

func runCheck(t *testing.T, gh *fakeGitHub, extraArgs ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true

	srv := httptest.NewServer(gh.handler())
	t.Cleanup(srv.Close)

	t.Setenv("GITHUB_API_URL", srv.URL)
	t.Setenv("GITHUB_TOKEN", "test-token")
	if _, pinned := os.LookupEnv("COMMITGATE_TEST_STEP_SUMMARY"); !pinned {
		// Keep test noise out of a real CI step summary.
		t.Setenv("GITHUB_STEP_SUMMARY", "")
	}

	stateDir := filepath.Join(t.TempDir(), "run")

	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetErr(b)
	args := append([]string{"check", "--repo", "owner/repo", "--pr", "42", "--state-dir", stateDir}, extraArgs...)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return b.String(), stateDir, err
}

func TestCLICommandCheck_AllPass(t *testing.T) {
	gh := &fakeGitHub{
		commitsJSON: `[{"sha": "abc123", "commit": {"message": ` + mustJSON(validCommitMessage) + `}}]`,
	}

	out, stateDir, err := runCheck(t, gh)
	require.NoError(t, err)

	assert.Contains(t, out, "Commit abc123 passed all checks.")
	assert.Contains(t, out, "All commits passed validation.")

	// Run state was persisted.
	last, err := review.NewStateStore(stateDir).ReadLastRun()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, review.StatusPass, last.Status)
	assert.Equal(t, []string{"abc123"}, last.Commits)
}

func TestCLICommandCheck_Failure(t *testing.T) {
	gh := &fakeGitHub{
		commitsJSON: `[
			{"sha": "abc123", "commit": {"message": "Subject only"}},
			{"sha": "def456", "commit": {"message": ` + mustJSON(validCommitMessage) + `}}
		]`,
	}

	out, stateDir, err := runCheck(t, gh)
	require.Error(t, err)
	assert.Equal(t, "1 commit(s) failed validation", err.Error())

	assert.Contains(t, out, "Commit abc123 failed checks:")
	assert.Contains(t, out, "   - Commit message is missing description!")
	assert.Contains(t, out, "Commit def456 passed all checks.")

	last, err := review.NewStateStore(stateDir).ReadLastRun()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, []string{"abc123"}, last.Failed)
}

func TestCLICommandCheck_PostsCommentAndStatuses(t *testing.T) {
	gh := &fakeGitHub{
		commitsJSON: `[
			{"sha": "abc123", "commit": {"message": "Subject only"}},
			{"sha": "def456", "commit": {"message": ` + mustJSON(validCommitMessage) + `}}
		]`,
	}

	_, _, err := runCheck(t, gh, "--comment", "--status")
	require.Error(t, err)

	require.Len(t, gh.comments, 1)
	assert.Contains(t, gh.comments[0], "## Commit message validation")
	assert.Contains(t, gh.comments[0], "`abc123` failed checks")

	assert.Equal(t, "failure", gh.statuses["abc123"])
	assert.Equal(t, "success", gh.statuses["def456"])
}

func TestCLICommandCheck_JSON(t *testing.T) {
	gh := &fakeGitHub{
		commitsJSON: `[{"sha": "abc123", "commit": {"message": "Subject only"}}]`,
	}

	out, _, err := runCheck(t, gh, "--json")
	require.Error(t, err)

	var report struct {
		Status  review.Status   `json:"status"`
		Results []review.Result `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, review.StatusFail, report.Status)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "abc123", report.Results[0].SHA)
	assert.Equal(t, []string{"Commit message is missing description!"}, report.Results[0].Errors)
}

func TestCLICommandCheck_StepSummary(t *testing.T) {
	summaryPath := filepath.Join(t.TempDir(), "summary.md")
	t.Setenv("COMMITGATE_TEST_STEP_SUMMARY", "1")
	t.Setenv("GITHUB_STEP_SUMMARY", summaryPath)

	gh := &fakeGitHub{
		commitsJSON: `[{"sha": "abc123", "commit": {"message": "Subject only"}}]`,
	}

	_, _, err := runCheck(t, gh)
	require.Error(t, err)

	data, err := os.ReadFile(summaryPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Commit message validation")
	assert.Contains(t, string(data), "1 commit(s) failed validation.")
}

func TestCLICommandCheck_MissingToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")

	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetErr(b)
	cmd.SetArgs([]string{"check", "--repo", "owner/repo", "--pr", "42"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_TOKEN")
}

func mustJSON(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	return string(data)
}
