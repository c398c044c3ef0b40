package testutil

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"

	"github.com/specialistvlad/tallygo/internal/app"
	"github.com/specialistvlad/tallygo/internal/cli"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a CLI run.
type HarnessResult struct {
	Stdout    string
	LogOutput string
	Err       error
	ExitCode  int
}

// RunCLI runs the whole program with args, exactly as main would, and
// captures everything it writes.
func RunCLI(t *testing.T, args []string, opts ...app.Option) *HarnessResult {
	t.Helper()

	stdout := &SafeBuffer{}
	logs := &SafeBuffer{}
	err := cli.Run(context.Background(), args, stdout, logs, opts...)

	if os.Getenv("TALLYGO_TEST_LOGS") == "true" {
		t.Logf("--- Output for %s ---\n%s\n--- Logs ---\n%s", t.Name(), stdout.String(), logs.String())
	}

	return &HarnessResult{
		Stdout:    stdout.String(),
		LogOutput: logs.String(),
		Err:       err,
		ExitCode:  cli.ExitCode(err),
	}
}
