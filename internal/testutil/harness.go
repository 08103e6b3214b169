package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/remapc/internal/app"
	"github.com/vk/remapc/internal/hcl_adapter"
	"github.com/vk/remapc/internal/registry"
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

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string // compiled JSON document, empty on failure
	LogOutput string
	Err       error
	Dir       string // directory the script files were written to
}

// RunIntegrationTest writes files (relative path -> content) to a fresh
// temporary directory and compiles the whole directory with the core
// modules.
func RunIntegrationTest(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, modules...)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller-provided
// context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	cfg, err := app.NewConfig(app.Config{
		ScriptPath: dir,
		Indent:     "never",
		LogLevel:   "debug",
		LogFormat:  "text",
	})
	require.NoError(t, err)

	out, logs := &SafeBuffer{}, &SafeBuffer{}
	t.Cleanup(func() {
		if os.Getenv("REMAPC_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	runErr := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("application startup panicked | %v", r)
			}
		}()
		return app.NewApp(out, logs, cfg, hcl_adapter.NewLoader(), modules...).Run(ctx)
	}()

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
		Dir:       dir,
	}
}
