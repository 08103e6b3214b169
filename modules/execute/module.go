// Package execute provides the execute() script function, which builds the
// value a remap's "to" attribute uses to run a shell command.
package execute

import (
	"github.com/vk/remapc/internal/keymap"
	"github.com/vk/remapc/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// ReturnType is the object type produced by execute().
var ReturnType = cty.Object(map[string]cty.Type{
	keymap.OptionExecute: cty.String,
})

// Func is execute(command). It has no side effect: the command is only
// recorded in the resulting object.
var Func = function.New(&function.Spec{
	Description: "Returns an action that runs the given shell command instead of emitting a key.",
	Params: []function.Parameter{
		{
			Name:        "command",
			Description: "Shell command line to run.",
			Type:        cty.String,
		},
	},
	Type:         function.StaticReturnType(ReturnType),
	RefineResult: func(b *cty.RefinementBuilder) *cty.RefinementBuilder { return b.NotNull() },
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return cty.ObjectVal(map[string]cty.Value{
			keymap.OptionExecute: args[0],
		}), nil
	},
})

// Register registers execute() with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFunction("execute", Func)
}
