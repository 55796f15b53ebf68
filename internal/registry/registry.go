package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/gopatterns/internal/vehicle"
)

// ErrUnknownRegion is returned by Lookup for keys nobody registered.
var ErrUnknownRegion = errors.New("unknown region")

// Module is the interface that all region modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the factories available to a single application instance.
type Registry struct {
	factories map[string]vehicle.Factory
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{factories: make(map[string]vehicle.Factory)}
}

// Register binds a factory to a region key. Keys are case-insensitive.
func (r *Registry) Register(key string, f vehicle.Factory) {
	key = strings.ToLower(key)
	if _, exists := r.factories[key]; exists {
		panic(fmt.Sprintf("factory for region '%s' already registered", key))
	}
	r.factories[key] = f
}

// Lookup returns the factory registered under key.
func (r *Registry) Lookup(key string) (vehicle.Factory, error) {
	f, ok := r.factories[strings.ToLower(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownRegion, key, strings.Join(r.Keys(), ", "))
	}
	return f, nil
}

// Keys returns the registered region keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.factories))
	for k := range r.factories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
