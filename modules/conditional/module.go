// Package conditional registers try() and can(), which let scripts fall back
// when an expression fails to evaluate.
package conditional

import (
	"github.com/hashicorp/hcl/v2/ext/tryfunc"
	"github.com/vk/remapc/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers try and can.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFunction("try", tryfunc.TryFunc)
	r.RegisterFunction("can", tryfunc.CanFunc)
}
