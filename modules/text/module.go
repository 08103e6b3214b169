// Package text registers the string functions available to scripts.
package text

import (
	"github.com/vk/remapc/internal/registry"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Functions maps script names to their implementations.
var Functions = map[string]function.Function{
	"upper":         stdlib.UpperFunc,
	"lower":         stdlib.LowerFunc,
	"title":         stdlib.TitleFunc,
	"format":        stdlib.FormatFunc,
	"formatlist":    stdlib.FormatListFunc,
	"join":          stdlib.JoinFunc,
	"split":         stdlib.SplitFunc,
	"replace":       stdlib.ReplaceFunc,
	"regex_replace": stdlib.RegexReplaceFunc,
	"trimspace":     stdlib.TrimSpaceFunc,
	"trimprefix":    stdlib.TrimPrefixFunc,
	"trimsuffix":    stdlib.TrimSuffixFunc,
	"chomp":         stdlib.ChompFunc,
	"substr":        stdlib.SubstrFunc,
	"strlen":        stdlib.StrlenFunc,
	"indent":        stdlib.IndentFunc,
}

// Register registers every string function.
func (m *Module) Register(r *registry.Registry) {
	for name, fn := range Functions {
		r.RegisterFunction(name, fn)
	}
}
