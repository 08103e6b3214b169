package app

import (
	"github.com/vk/remapc/internal/registry"
	"github.com/vk/remapc/modules/collections"
	"github.com/vk/remapc/modules/conditional"
	"github.com/vk/remapc/modules/env_vars"
	"github.com/vk/remapc/modules/execute"
	"github.com/vk/remapc/modules/text"
)

// coreModules is the definitive list of script function modules compiled
// into the remapc binary.
var coreModules = []registry.Module{
	&execute.Module{},
	&text.Module{},
	&collections.Module{},
	&conditional.Module{},
	&env_vars.Module{},
}
