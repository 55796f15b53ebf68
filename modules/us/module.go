// Package us registers the United States vehicle factory.
package us

import (
	"github.com/vk/gopatterns/internal/registry"
	"github.com/vk/gopatterns/internal/vehicle"
)

// Key is the region key the factory is registered under.
const Key = "us"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the US factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Key, vehicle.NewUSFactory())
}
