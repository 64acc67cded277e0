package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calvinalkan/tusk/internal/task"
)

// CLI provides a clean interface for running CLI commands in tests.
// It manages a temp directory and environment variables.
type CLI struct {
	t   *testing.T
	Dir string
	Env map[string]string
}

// NewCLI creates a new test CLI with a temp directory.
// Env is empty, so no global config from the host is picked up.
func NewCLI(t *testing.T) *CLI {
	t.Helper()

	return &CLI{
		t:   t,
		Dir: t.TempDir(),
		Env: map[string]string{},
	}
}

// Run executes the CLI with the given args and returns stdout, stderr, and exit code.
// Args should not include "tusk" or "--cwd" - those are added automatically.
func (r *CLI) Run(args ...string) (string, string, int) {
	var outBuf, errBuf bytes.Buffer

	fullArgs := append([]string{"tusk", "--cwd", r.Dir}, args...)
	code := Run(nil, &outBuf, &errBuf, fullArgs, r.Env, nil)

	return outBuf.String(), errBuf.String(), code
}

// MustRun executes the CLI and fails the test if the command returns non-zero.
// Returns trimmed stdout on success.
func (r *CLI) MustRun(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code != 0 {
		r.t.Fatalf("command %v failed with exit code %d\nstderr: %s", args, code, stderr)
	}

	return strings.TrimSpace(stdout)
}

// MustFail executes the CLI and fails the test if the command succeeds.
// Returns trimmed stderr.
func (r *CLI) MustFail(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code == 0 {
		r.t.Fatalf("command %v should have failed but succeeded\nstdout: %s", args, stdout)
	}

	return strings.TrimSpace(stderr)
}

// DataFile returns the path to the default data file.
func (r *CLI) DataFile() string {
	return filepath.Join(r.Dir, task.DefaultDataFile)
}

// ReadData reads the raw data file.
func (r *CLI) ReadData() string {
	r.t.Helper()

	content, err := os.ReadFile(r.DataFile())
	if err != nil {
		r.t.Fatalf("failed to read data file: %v", err)
	}

	return string(content)
}

// WriteData writes raw content to the data file.
func (r *CLI) WriteData(content string) {
	r.t.Helper()

	err := os.WriteFile(r.DataFile(), []byte(content), 0o600)
	if err != nil {
		r.t.Fatalf("failed to write data file: %v", err)
	}
}

// LoadStore decodes the data file.
func (r *CLI) LoadStore() *task.Store {
	r.t.Helper()

	st := task.NewStore()

	err := json.Unmarshal([]byte(r.ReadData()), st)
	if err != nil {
		r.t.Fatalf("failed to decode data file: %v", err)
	}

	return st
}

// AssertContains fails the test if content doesn't contain substr.
func AssertContains(t *testing.T, content, substr string) {
	t.Helper()

	if !strings.Contains(content, substr) {
		t.Errorf("content should contain %q\ncontent:\n%s", substr, content)
	}
}

// AssertNotContains fails the test if content contains substr.
func AssertNotContains(t *testing.T, content, substr string) {
	t.Helper()

	if strings.Contains(content, substr) {
		t.Errorf("content should NOT contain %q\ncontent:\n%s", substr, content)
	}
}
