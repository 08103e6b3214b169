package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Document is the decoded form of a compiled configuration, for assertions
// that do not care about key order or layout.
type Document struct {
	Remap map[string]map[string]any            `json:"remap"`
	InApp map[string]map[string]map[string]any `json:"in_app"`
}

// RequireDocument checks that the run succeeded and decodes its output.
func RequireDocument(t *testing.T, result *HarnessResult) Document {
	t.Helper()
	require.NoError(t, result.Err)

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(result.Output), &doc), "output is not a configuration document:\n%s", result.Output)
	return doc
}

// Remap returns the expected decoded form of a key remap.
func Remap(to string, with ...string) map[string]any {
	mods := make([]any, 0, len(with))
	for _, w := range with {
		mods = append(mods, w)
	}
	return map[string]any{"to": to, "with": mods}
}

// Exec returns the expected decoded form of an execution.
func Exec(command string) map[string]any {
	return map[string]any{"execute": command}
}

// RequireFailure checks that the run failed without writing any output and
// that the error mentions every fragment.
func RequireFailure(t *testing.T, result *HarnessResult, fragments ...string) {
	t.Helper()
	require.Error(t, result.Err)
	require.Empty(t, result.Output, "no JSON may be written when compilation fails")
	for _, f := range fragments {
		require.ErrorContains(t, result.Err, f)
	}
}
