// SPDX-License-Identifier: AGPL-3.0-or-later

// Package github is a minimal GitHub REST v3 client covering the
// endpoints Commitgate needs: listing pull request commits, posting a
// review comment, and setting commit statuses.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/bartekus/commitgate/internal/history"
)

const defaultBaseURL = "https://api.github.com"

// Client talks to the GitHub REST API. BaseURL is overridable so tests
// can point it at a local server; GitHub Actions also provides
// GITHUB_API_URL for GHES installs.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// NewClient builds a client authenticated with token. The base URL comes
// from GITHUB_API_URL when set, else api.github.com.
func NewClient(token string) *Client {
	base := os.Getenv("GITHUB_API_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimSuffix(base, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

type prCommit struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
	} `json:"commit"`
}

// ListPullRequestCommits returns the commits of a pull request in API order.
func (c *Client) ListPullRequestCommits(ctx context.Context, repo string, number int) ([]history.Commit, error) {
	path := fmt.Sprintf("/repos/%s/pulls/%d/commits", repo, number)
	var raw []prCommit
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, fmt.Errorf("fetching PR commits: %w", err)
	}
	commits := make([]history.Commit, 0, len(raw))
	for _, rc := range raw {
		commits = append(commits, history.Commit{SHA: rc.SHA, Message: rc.Commit.Message})
	}
	return commits, nil
}

// CreateIssueComment posts a comment on the pull request conversation.
func (c *Client) CreateIssueComment(ctx context.Context, repo string, number int, body string) error {
	path := fmt.Sprintf("/repos/%s/issues/%d/comments", repo, number)
	payload := map[string]string{"body": body}
	if err := c.do(ctx, http.MethodPost, path, payload, nil); err != nil {
		return fmt.Errorf("posting PR comment: %w", err)
	}
	return nil
}

// Status is a commit status payload.
type Status struct {
	State       string `json:"state"` // "success", "failure", "error", or "pending"
	Description string `json:"description"`
	Context     string `json:"context"`
}

// CreateCommitStatus sets a status check on a single commit.
func (c *Client) CreateCommitStatus(ctx context.Context, repo, sha string, status Status) error {
	path := fmt.Sprintf("/repos/%s/statuses/%s", repo, sha)
	if err := c.do(ctx, http.MethodPost, path, status, nil); err != nil {
		return fmt.Errorf("setting commit status: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpc := c.HTTP
	if httpc == nil {
		httpc = http.DefaultClient
	}
	resp, err := httpc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, strings.TrimSpace(string(msg)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// PullRequestSource adapts a pull request's commit listing to history.Source.
type PullRequestSource struct {
	Client *Client
	Repo   string
	Number int
}

func (s *PullRequestSource) Commits(ctx context.Context) ([]history.Commit, error) {
	return s.Client.ListPullRequestCommits(ctx, s.Repo, s.Number)
}
