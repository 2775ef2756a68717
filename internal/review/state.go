package review

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// StateStore persists run results under a state directory
// (default .commitgate/run) so the report command can read them back.
type StateStore struct {
	baseDir string
}

// NewStateStore creates a store at the given base directory.
func NewStateStore(baseDir string) *StateStore {
	return &StateStore{baseDir: baseDir}
}

func (s *StateStore) lastRunPath() string {
	return filepath.Join(s.baseDir, "last-run.json")
}

func (s *StateStore) resultPath(sha string) string {
	return filepath.Join(s.baseDir, "commits", sha+".json")
}

// ReadLastRun loads the last run summary. A missing file is clean state, not an error.
func (s *StateStore) ReadLastRun() (*Summary, error) {
	f, err := os.Open(s.lastRunPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening last run file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var sum Summary
	if err := json.NewDecoder(f).Decode(&sum); err != nil {
		return nil, fmt.Errorf("decoding last run: %w", err)
	}
	return &sum, nil
}

// ReadResult loads a single commit's persisted result, nil when absent.
func (s *StateStore) ReadResult(sha string) (*Result, error) {
	f, err := os.Open(s.resultPath(sha))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var res Result
	if err := json.NewDecoder(f).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}

// WriteLastRun saves the run summary and each per-commit result.
func (s *StateStore) WriteLastRun(sum *Summary) error {
	for _, res := range sum.Results {
		if err := s.writeJSON(s.resultPath(res.SHA), res); err != nil {
			return fmt.Errorf("writing result for %s: %w", res.SHA, err)
		}
	}
	if err := s.writeJSON(s.lastRunPath(), sum); err != nil {
		return fmt.Errorf("writing last run: %w", err)
	}
	return nil
}

// Reset clears the state directory.
func (s *StateStore) Reset() error {
	return os.RemoveAll(s.baseDir)
}

func (s *StateStore) writeJSON(path string, v any) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
