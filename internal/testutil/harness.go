// Package testutil holds the shared harness for end-to-end normalization tests.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/fznnorm/internal/app"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
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

// Fixture is the pair of input files of one run.
type Fixture struct {
	Solution string
	Model    string
}

// HarnessResult holds the outcomes of a harness run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
}

// WriteFile creates dir/name with content and returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// WriteFixture writes both inputs into a fresh temporary directory and
// returns their paths.
func WriteFixture(t *testing.T, fx Fixture) (solutionPath, modelPath string) {
	t.Helper()
	dir := t.TempDir()
	return WriteFile(t, dir, "solution.txt", fx.Solution), WriteFile(t, dir, "model.fzn", fx.Model)
}

// RunNormalize runs the app over fx. Paths already set in cfg are kept, which
// lets tests point at missing files.
func RunNormalize(t *testing.T, fx Fixture, cfg app.Config) *HarnessResult {
	t.Helper()

	solutionPath, modelPath := WriteFixture(t, fx)
	if cfg.SolutionPath == "" {
		cfg.SolutionPath = solutionPath
	}
	if cfg.ModelPath == "" {
		cfg.ModelPath = modelPath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	runErr := app.NewApp(out, logs, appConfig).Run(context.Background())

	t.Cleanup(func() {
		if os.Getenv("FZNNORM_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
	}
}
