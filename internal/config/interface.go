package config

import (
	"context"

	"github.com/vk/remapc/internal/keymap"
	"github.com/zclconf/go-cty/cty/function"
)

// Loader is the interface for a format-specific script loader.
type Loader interface {
	// Load reads the script files at paths, evaluates their directives with
	// funcs available to expressions, and returns the resulting
	// Configuration.
	Load(ctx context.Context, funcs map[string]function.Function, paths ...string) (*keymap.Configuration, error)
}
