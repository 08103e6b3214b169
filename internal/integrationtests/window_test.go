package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/remapc/internal/testutil"
)

func TestWindow_AccumulatesPerClass(t *testing.T) {
	t.Parallel()

	doc := testutil.RequireDocument(t, testutil.RunScriptTest(t, `
		window {
			class_only = "konsole"
			remap "Alt-c" {
				to = "C-Shift-c"
			}
		}

		remap "Alt-a" { to = "C-a" }

		window {
			class_only = ["konsole"]
			remap "Alt-v" {
				to = "C-Shift-v"
			}
		}
	`))

	assert.Equal(t, map[string]map[string]any{
		"Alt-a": testutil.Remap("C-a"),
	}, doc.Remap, "remaps between windows must land in the global rules")
	assert.Equal(t, map[string]map[string]any{
		"Alt-c": testutil.Remap("C-Shift-c"),
		"Alt-v": testutil.Remap("C-Shift-v"),
	}, doc.InApp["konsole"])
}

func TestWindow_EvaluatesBodyPerClass(t *testing.T) {
	t.Parallel()

	doc := testutil.RequireDocument(t, testutil.RunScriptTest(t, `
		window {
			class_only = ["chromium", "firefox"]
			remap "Alt-t" {
				to = window.class == "chromium" ? "C-t" : "C-n"
			}
			remap "Alt-q" {
				to = execute("notify-send ${window.class}")
			}
		}
	`))

	require.Len(t, doc.InApp, 2)
	assert.Equal(t, testutil.Remap("C-t"), doc.InApp["chromium"]["Alt-t"])
	assert.Equal(t, testutil.Remap("C-n"), doc.InApp["firefox"]["Alt-t"])
	assert.Equal(t, testutil.Exec("notify-send firefox"), doc.InApp["firefox"]["Alt-q"])
	assert.Empty(t, doc.Remap)
}

func TestWindow_EmptyClassList(t *testing.T) {
	t.Parallel()

	result := testutil.RunScriptTest(t, `
		window {
			class_only = []
			remap "Alt-t" {
				to = "C-t"
			}
		}
	`)

	require.NoError(t, result.Err)
	assert.Equal(t, `{"remap":{},"in_app":{}}`+"\n", result.Output)
}

func TestWindow_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		script    string
		fragments []string
	}{
		{
			name: "malformed remap restores nothing partial",
			script: `
				window {
					class_only = "konsole"
					remap "Alt-c" {
						to = "C-Shift-c"
					}
					remap "Alt-v" {
						oops = true
					}
				}
			`,
			fragments: []string{`window "konsole"`, `remap "Alt-v"`},
		},
		{
			name: "nested window",
			script: `
				window {
					class_only = "a"
					window {
						class_only = "b"
					}
				}
			`,
			fragments: []string{"Nested window block"},
		},
		{
			name: "class_only missing",
			script: `
				window {
					remap "k" {
						to = "j"
					}
				}
			`,
			fragments: []string{"class_only"},
		},
		{
			name:      "class_only not a string",
			script:    `window { class_only = 42 }`,
			fragments: []string{"Invalid class_only value"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			testutil.RequireFailure(t, testutil.RunScriptTest(t, tc.script), tc.fragments...)
		})
	}
}
