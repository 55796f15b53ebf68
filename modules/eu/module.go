// Package eu registers the European Union vehicle factory.
package eu

import (
	"github.com/vk/gopatterns/internal/registry"
	"github.com/vk/gopatterns/internal/vehicle"
)

// Key is the region key the factory is registered under.
const Key = "eu"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the EU factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Key, vehicle.NewEUFactory())
}
