package hcl_adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/remapc/internal/ctxlog"
	"github.com/vk/remapc/internal/fsutil"
	"github.com/vk/remapc/internal/keymap"
	"github.com/zclconf/go-cty/cty/function"
)

// Loader is the HCL implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL script loader.
func NewLoader() *Loader {
	return &Loader{}
}

// scriptFile is one parsed script file.
type scriptFile struct {
	path string
	file *hcl.File
}

// Load parses every script found at paths and evaluates them, in order, into
// a single Configuration. Each path is a script file or a directory of them.
func (l *Loader) Load(ctx context.Context, funcs map[string]function.Function, paths ...string) (*keymap.Configuration, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.ResolveScripts(path)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered script files.", "files", files)

	parser := hclparse.NewParser()
	scripts := make([]scriptFile, 0, len(files))
	for _, path := range files {
		file, diags := parseFile(parser, path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
		}
		scripts = append(scripts, scriptFile{path: path, file: file})
	}

	if diags := checkFunctions(scripts, funcs); diags.HasErrors() {
		return nil, fmt.Errorf("failed to validate function calls: %w", diags)
	}

	locals, err := evaluateLocals(ctx, scripts, funcs)
	if err != nil {
		return nil, err
	}

	s := newSession(ctx, locals, funcs)
	for _, script := range scripts {
		if err := s.evalFile(script); err != nil {
			return nil, err
		}
		logger.Debug("Script file evaluated.", "file", script.path)
	}

	cfg := s.evaluator.Configuration()
	logger.Debug("HCL loading complete.", "global_rules", len(cfg.Global), "applications", len(cfg.InApp))
	return cfg, nil
}

// parseFile reads path as HCL JSON syntax if it ends in .json, and as native
// syntax otherwise.
func parseFile(parser *hclparse.Parser, path string) (*hcl.File, hcl.Diagnostics) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return parser.ParseJSONFile(path)
	}
	return parser.ParseHCLFile(path)
}
