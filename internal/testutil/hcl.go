package testutil

import (
	"testing"
)

// RunScriptTest compiles a single native-syntax script.
func RunScriptTest(t *testing.T, script string) *HarnessResult {
	t.Helper()
	return RunIntegrationTest(t, map[string]string{"main.hcl": script})
}
