// Package env_vars exposes the process environment to scripts through env()
// and env_vars().
package env_vars

import (
	"fmt"
	"os"
	"strings"

	"github.com/vk/remapc/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// EnvFunc is env(name[, default]). A missing variable without a default is an
// error.
var EnvFunc = function.New(&function.Spec{
	Description: "Returns the value of an environment variable.",
	Params: []function.Parameter{
		{Name: "name", Type: cty.String},
	},
	VarParam: &function.Parameter{
		Name: "default",
		Type: cty.String,
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		if len(args) > 2 {
			return cty.NilVal, function.NewArgErrorf(2, "env accepts at most one default value")
		}
		name := args[0].AsString()
		if value, ok := os.LookupEnv(name); ok {
			return cty.StringVal(value), nil
		}
		if len(args) == 2 {
			return args[1], nil
		}
		return cty.NilVal, function.NewArgErrorf(0, "environment variable %q is not set", name)
	},
})

// EnvVarsFunc is env_vars(), a map of the whole environment.
var EnvVarsFunc = function.New(&function.Spec{
	Description: "Returns every environment variable as a map.",
	Params:      []function.Parameter{},
	Type:        function.StaticReturnType(cty.Map(cty.String)),
	Impl: func(_ []cty.Value, retType cty.Type) (cty.Value, error) {
		all := Environ()
		if len(all) == 0 {
			return cty.MapValEmpty(cty.String), nil
		}
		val, err := gocty.ToCtyValue(all, retType)
		if err != nil {
			return cty.NilVal, fmt.Errorf("failed to convert environment: %w", err)
		}
		return val, nil
	},
})

// Environ returns the process environment as a map.
func Environ() map[string]string {
	envMap := make(map[string]string)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 {
			envMap[pair[0]] = pair[1]
		}
	}
	return envMap
}

// Register registers env and env_vars.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFunction("env", EnvFunc)
	r.RegisterFunction("env_vars", EnvVarsFunc)
}
