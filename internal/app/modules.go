package app

import (
	"github.com/vk/gopatterns/internal/registry"
	"github.com/vk/gopatterns/modules/eu"
	"github.com/vk/gopatterns/modules/us"
)

// coreModules is the definitive list of region modules compiled into the
// binaries.
var coreModules = []registry.Module{
	&us.Module{},
	&eu.Module{},
}
