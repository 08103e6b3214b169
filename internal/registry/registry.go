package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/remapc/internal/ctxlog"
	"github.com/zclconf/go-cty/cty/function"
)

// Module is the interface that all script function modules implement.
type Module interface {
	Register(r *Registry)
}

// Registry holds the functions registered by modules for one App instance.
type Registry struct {
	functions map[string]function.Function
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		functions: make(map[string]function.Function),
	}
}

// RegisterFunction makes fn callable from scripts as name. Registering the
// same name twice is a programming error and panics.
func (r *Registry) RegisterFunction(name string, fn function.Function) {
	if _, exists := r.functions[name]; exists {
		panic(fmt.Sprintf("function with name '%s' already registered", name))
	}
	slog.Debug("Registering script function.", "name", name)
	r.functions[name] = fn
}

// Register runs Register on every module, in order.
func (r *Registry) Register(modules ...Module) {
	for _, m := range modules {
		m.Register(r)
	}
}

// Functions returns a copy of the function table, ready for an
// hcl.EvalContext.
func (r *Registry) Functions() map[string]function.Function {
	out := make(map[string]function.Function, len(r.functions))
	for name, fn := range r.functions {
		out[name] = fn
	}
	return out
}

// Names returns the sorted names of all registered functions.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every registered name is a valid HCL identifier and
// that parameter names are set, so scripts can call the function and error
// messages can point at the offending argument.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	for _, name := range r.Names() {
		fn := r.functions[name]
		if !hclsyntax.ValidIdentifier(name) {
			errs = append(errs, fmt.Sprintf("function '%s': name is not a valid identifier", name))
		}
		for i, p := range fn.Params() {
			if p.Name == "" {
				errs = append(errs, fmt.Sprintf("function '%s': parameter %d has no name", name, i))
			}
		}
		if vp := fn.VarParam(); vp != nil && vp.Name == "" {
			errs = append(errs, fmt.Sprintf("function '%s': variadic parameter has no name", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation passed.", "functions", len(r.functions))
	return nil
}
