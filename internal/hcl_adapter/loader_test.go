package hcl_adapter

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/hcl/v2/ext/tryfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/remapc/internal/keymap"
	"github.com/vk/remapc/modules/execute"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

func testFuncs() map[string]function.Function {
	return map[string]function.Function{
		"execute": execute.Func,
		"upper":   stdlib.UpperFunc,
		"substr":  stdlib.SubstrFunc,
		"format":  stdlib.FormatFunc,
		"concat":  stdlib.ConcatFunc,
		"try":     tryfunc.TryFunc,
	}
}

// writeScripts writes name -> content into a temp dir and returns the dir.
func writeScripts(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func loadScript(t *testing.T, name, content string) (*keymap.Configuration, error) {
	t.Helper()
	dir := writeScripts(t, map[string]string{name: content})
	return NewLoader().Load(context.Background(), testFuncs(), filepath.Join(dir, name))
}

func remap(to string, with ...string) keymap.KeyAction {
	return keymap.NewKeyRemap(to, with...)
}

func TestLoad(t *testing.T) {
	testCases := []struct {
		name       string
		script     string
		wantGlobal keymap.RuleSet
		wantInApp  map[string]keymap.RuleSet
	}{
		{
			name:       "empty script",
			script:     "",
			wantGlobal: keymap.RuleSet{},
			wantInApp:  map[string]keymap.RuleSet{},
		},
		{
			name: "global remaps",
			script: `
remap "C-b" {
  to = "Left"
}
remap "C-h" {
  to            = "Left"
  with_modifier = "Shift"
}
remap "M-w" {
  to            = "c"
  with_modifier = ["Control", "Shift"]
}
remap "XF86XK_Tools" {
  to = execute("deepin-screenshot")
}
`,
			wantGlobal: keymap.RuleSet{
				"C-b":          remap("Left"),
				"C-h":          remap("Left", "Shift"),
				"M-w":          remap("c", "Control", "Shift"),
				"XF86XK_Tools": keymap.Execute("deepin-screenshot"),
			},
			wantInApp: map[string]keymap.RuleSet{},
		},
		{
			name: "last write wins",
			script: `
remap "a" { to = "b" }
remap "a" { to = "c" }
`,
			wantGlobal: keymap.RuleSet{"a": remap("c")},
			wantInApp:  map[string]keymap.RuleSet{},
		},
		{
			name: "window per class with window.class",
			script: `
remap "C-b" { to = "Left" }
window {
  class_only = ["chromium", "firefox"]
  remap "Alt-t" {
    to = window.class == "chromium" ? "C-t" : "C-n"
  }
}
remap "C-f" { to = "Right" }
`,
			wantGlobal: keymap.RuleSet{"C-b": remap("Left"), "C-f": remap("Right")},
			wantInApp: map[string]keymap.RuleSet{
				"chromium": {"Alt-t": remap("C-t")},
				"firefox":  {"Alt-t": remap("C-n")},
			},
		},
		{
			name: "single class string and accumulation",
			script: `
window {
  class_only = "Google-chrome"
  remap "C-o" { to = "C-t" }
}
window {
  class_only = ["Google-chrome"]
  remap "C-w" { to = "C-F4" }
}
`,
			wantGlobal: keymap.RuleSet{},
			wantInApp: map[string]keymap.RuleSet{
				"Google-chrome": {"C-o": remap("C-t"), "C-w": remap("C-F4")},
			},
		},
		{
			name: "empty class list runs nothing",
			script: `
window {
  class_only = []
  remap "a" { to = "b" }
}
`,
			wantGlobal: keymap.RuleSet{},
			wantInApp:  map[string]keymap.RuleSet{},
		},
		{
			name: "locals in dependency order",
			script: `
locals {
  chrome = "crx_${local.app_id}"
}
locals {
  app_id = "ophjlpahpchlmihnnnihgmmeilfjmjjc"
  mods   = ["Shift"]
}
window {
  class_only = [local.chrome]
  remap "C-a" {
    to            = "Home"
    with_modifier = local.mods
  }
}
`,
			wantGlobal: keymap.RuleSet{},
			wantInApp: map[string]keymap.RuleSet{
				"crx_ophjlpahpchlmihnnnihgmmeilfjmjjc": {"C-a": remap("Home", "Shift")},
			},
		},
		{
			name: "dynamic remap blocks",
			script: `
locals {
  keys = ["z", "x"]
}
dynamic "remap" {
  for_each = local.keys
  labels   = ["Alt-${remap.value}"]
  content {
    to = format("C-%s", remap.value)
  }
}
`,
			wantGlobal: keymap.RuleSet{"Alt-z": remap("C-z"), "Alt-x": remap("C-x")},
			wantInApp:  map[string]keymap.RuleSet{},
		},
		{
			name: "dynamic remap inside window sees window.class",
			script: `
window {
  class_only = ["term"]
  dynamic "remap" {
    for_each = ["c", "v"]
    labels   = ["C-${remap.value}"]
    content {
      to            = remap.value
      with_modifier = [upper(substr(window.class, 0, 1)) == "T" ? "Shift" : "Alt", "Control"]
    }
  }
}
`,
			wantGlobal: keymap.RuleSet{},
			wantInApp: map[string]keymap.RuleSet{
				"term": {"C-c": remap("c", "Shift", "Control"), "C-v": remap("v", "Shift", "Control")},
			},
		},
		{
			name: "dynamic window with a named iterator",
			script: `
dynamic "window" {
  for_each = ["konsole", "alacritty"]
  iterator = app
  content {
    class_only = app.value
    remap "C-c" {
      to = "${window.class}-copy"
    }
  }
}
`,
			wantGlobal: keymap.RuleSet{},
			wantInApp: map[string]keymap.RuleSet{
				"konsole":   {"C-c": remap("konsole-copy")},
				"alacritty": {"C-c": remap("alacritty-copy")},
			},
		},
		{
			name: "null modifier",
			script: `
remap "a" {
  to            = "b"
  with_modifier = null
}
`,
			wantGlobal: keymap.RuleSet{"a": remap("b")},
			wantInApp:  map[string]keymap.RuleSet{},
		},
		{
			name: "try falls back",
			script: `
remap "a" { to = try(local.missing, "b") }
`,
			wantGlobal: keymap.RuleSet{"a": remap("b")},
			wantInApp:  map[string]keymap.RuleSet{},
		},
		{
			name: "compiler block satisfied",
			script: `
compiler {
  required_version = ">= 0.1.0"
}
remap "a" { to = "b" }
`,
			wantGlobal: keymap.RuleSet{"a": remap("b")},
			wantInApp:  map[string]keymap.RuleSet{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := loadScript(t, "script.hcl", tc.script)

			require.NoError(t, err)
			assert.Equal(t, tc.wantGlobal, cfg.Global)
			assert.Equal(t, tc.wantInApp, cfg.InApp)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name         string
		script       string
		wantContains string
		wantIs       error
	}{
		{
			name:         "syntax error",
			script:       `remap "a" {`,
			wantContains: "failed to parse HCL file",
		},
		{
			name:         "unknown option only",
			script:       `remap "k" { foo = "bar" }`,
			wantContains: `remap "k"`,
			wantIs:       keymap.ErrMalformedDirective,
		},
		{
			name:         "numeric target",
			script:       `remap "k" { to = 1 }`,
			wantContains: "got number",
			wantIs:       keymap.ErrMalformedDirective,
		},
		{
			name: "malformed inside window",
			script: `
window {
  class_only = ["app"]
  remap "k" { with_modifier = "Shift" }
}`,
			wantContains: `window "app"`,
			wantIs:       keymap.ErrMalformedDirective,
		},
		{
			name:         "root attribute",
			script:       `to = "x"`,
			wantContains: "Unsupported argument",
		},
		{
			name:         "unknown block",
			script:       `keymap {}`,
			wantContains: "Unsupported block type",
		},
		{
			name:         "remap without label",
			script:       `remap { to = "x" }`,
			wantContains: "Missing key for remap",
		},
		{
			name:         "nested block in remap",
			script:       "remap \"a\" {\n  inner {}\n}\n",
			wantContains: "Unexpected \"inner\" block",
		},
		{
			name:         "window without class_only",
			script:       "window {\n  remap \"a\" { to = \"b\" }\n}\n",
			wantContains: `Missing required argument`,
		},
		{
			name:         "class_only number",
			script:       `window { class_only = 3 }`,
			wantContains: "expected a string or a list of strings, got number",
		},
		{
			name:         "class_only object",
			script:       `window { class_only = { name = "a" } }`,
			wantContains: "Invalid class_only value",
		},
		{
			name:         "class_only mixed list",
			script:       `window { class_only = ["a", 1] }`,
			wantContains: "element 1 must be a string, got number",
		},
		{
			name: "nested window",
			script: `
window {
  class_only = ["outer"]
  window {
    class_only = ["inner"]
  }
}`,
			wantContains: "Nested window block",
		},
		{
			name:         "window.class outside window",
			script:       `remap "a" { to = window.class }`,
			wantContains: "Unknown variable",
		},
		{
			name:         "undeclared local",
			script:       `remap "a" { to = local.nope }`,
			wantContains: "Unsupported attribute",
		},
		{
			name: "locals cycle",
			script: `
locals {
  a = local.b
  b = local.a
}`,
			wantContains: `Cycle in local values; Local value "a" depends on itself through local.b.`,
		},
		{
			name: "self-referencing local",
			script: `
locals {
  a = "${local.a}x"
}`,
			wantContains: "Self-referencing local value",
		},
		{
			name: "duplicate local",
			script: `
locals { a = "1" }
locals { a = "2" }`,
			wantContains: "Duplicate local value definition",
		},
		{
			name: "required version not met",
			script: `
compiler {
  required_version = ">= 99.0.0"
}`,
			wantContains: "Unsupported remapc version",
		},
		{
			name: "duplicate compiler block",
			script: `
compiler {}
compiler {}`,
			wantContains: `Duplicate "compiler" block`,
		},
		{
			name:         "unknown function",
			script:       `remap "a" { to = lower("B") }`,
			wantContains: "Call to unknown function",
		},
		{
			name: "dynamic window with the default iterator",
			script: `
dynamic "window" {
  for_each = ["konsole"]
  content {
    class_only = window.value
  }
}`,
			wantContains: "Ambiguous dynamic window iterator",
		},
		{
			name: "dynamic window with iterator named window",
			script: `
dynamic "window" {
  for_each = ["konsole"]
  iterator = window
  content {
    class_only = window.value
  }
}`,
			wantContains: "Ambiguous dynamic window iterator",
		},
		{
			name:         "unknown function in untaken branch",
			script:       `remap "a" { to = true ? "b" : shout("B") }`,
			wantContains: `There is no function named "shout"`,
		},
		{
			name: "unknown function in window without classes",
			script: `
window {
  class_only = []
  remap "a" {
    to = execute(shout("ls"))
  }
}`,
			wantContains: `There is no function named "shout"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := loadScript(t, "script.hcl", tc.script)

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, tc.wantContains)
			if tc.wantIs != nil {
				assert.True(t, errors.Is(err, tc.wantIs), "expected %v in chain of %v", tc.wantIs, err)
			}
		})
	}
}

func TestLoad_JSONSyntax(t *testing.T) {
	script := `{
  "locals": {"term": "Alacritty"},
  "remap": {
    "C-b": {"to": "Left"},
    "C-h": {"to": "Left", "with_modifier": "Shift"},
    "XF86XK_Tools": {"to": "${execute(\"deepin-screenshot\")}"}
  },
  "window": [
    {
      "class_only": ["${local.term}"],
      "remap": {"C-c": {"to": "c", "with_modifier": ["Control", "Shift"]}}
    }
  ]
}`

	cfg, err := loadScript(t, "keymap.hcl.json", script)

	require.NoError(t, err)
	assert.Equal(t, keymap.RuleSet{
		"C-b":          remap("Left"),
		"C-h":          remap("Left", "Shift"),
		"XF86XK_Tools": keymap.Execute("deepin-screenshot"),
	}, cfg.Global)
	assert.Equal(t, map[string]keymap.RuleSet{
		"Alacritty": {"C-c": remap("c", "Control", "Shift")},
	}, cfg.InApp)
}

func TestLoad_Directory(t *testing.T) {
	dir := writeScripts(t, map[string]string{
		"10-locals.hcl":    `locals { browser = "firefox" }`,
		"20-global.hcl":    `remap "a" { to = "b" }`,
		"30-apps.hcl":      "window {\n  class_only = [local.browser]\n  remap \"C-t\" { to = \"C-n\" }\n}\n",
		"40-late.hcl.json": `{"remap": {"a": {"to": "z"}}}`,
		"README.md":        "not a script",
	})

	cfg, err := NewLoader().Load(context.Background(), testFuncs(), dir)

	require.NoError(t, err)
	assert.Equal(t, keymap.RuleSet{"a": remap("z")}, cfg.Global)
	assert.Equal(t, map[string]keymap.RuleSet{"firefox": {"C-t": remap("C-n")}}, cfg.InApp)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), testFuncs(), filepath.Join(t.TempDir(), "missing.hcl"))

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad_AnyExtensionIsNativeSyntax(t *testing.T) {
	cfg, err := loadScript(t, "keymap.rb", `remap "a" { to = "b" }`)

	require.NoError(t, err)
	assert.Equal(t, keymap.RuleSet{"a": remap("b")}, cfg.Global)
}
