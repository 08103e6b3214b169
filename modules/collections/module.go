// Package collections registers the list and map functions available to
// scripts. They are mostly useful with dynamic blocks and locals.
package collections

import (
	"github.com/vk/remapc/internal/registry"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Functions maps script names to their implementations.
var Functions = map[string]function.Function{
	"concat":     stdlib.ConcatFunc,
	"flatten":    stdlib.FlattenFunc,
	"distinct":   stdlib.DistinctFunc,
	"range":      stdlib.RangeFunc,
	"length":     stdlib.LengthFunc,
	"keys":       stdlib.KeysFunc,
	"values":     stdlib.ValuesFunc,
	"merge":      stdlib.MergeFunc,
	"contains":   stdlib.ContainsFunc,
	"element":    stdlib.ElementFunc,
	"slice":      stdlib.SliceFunc,
	"sort":       stdlib.SortFunc,
	"reverse":    stdlib.ReverseListFunc,
	"zipmap":     stdlib.ZipmapFunc,
	"setproduct": stdlib.SetProductFunc,
}

// Register registers every collection function.
func (m *Module) Register(r *registry.Registry) {
	for name, fn := range Functions {
		r.RegisterFunction(name, fn)
	}
}
