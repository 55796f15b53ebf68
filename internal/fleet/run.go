package fleet

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/gopatterns/internal/ctxlog"
	"github.com/vk/gopatterns/internal/registry"
	"github.com/vk/gopatterns/internal/vehicle"
)

// ErrUnknownKind is returned for orders naming a vehicle kind no factory builds.
var ErrUnknownKind = errors.New("unknown vehicle kind")

// Run builds every vehicle in the plan with the factory registered for its
// batch, then starts each batch's engines in build order. Every vehicle is
// built before any engine starts, so a plan naming an unknown region or kind
// starts nothing.
func Run(ctx context.Context, plan *Plan, reg *registry.Registry) ([]vehicle.Vehicle, error) {
	logger := ctxlog.FromContext(ctx)

	factories := make([]vehicle.Factory, len(plan.Batches))
	for i, b := range plan.Batches {
		f, err := reg.Lookup(b.Region)
		if err != nil {
			return nil, fmt.Errorf("factory block %d: %w", i+1, err)
		}
		factories[i] = f
	}

	batches := make([][]vehicle.Vehicle, len(plan.Batches))
	for i, b := range plan.Batches {
		built, err := build(factories[i], b.Orders)
		if err != nil {
			return nil, fmt.Errorf("factory block %d: %w", i+1, err)
		}
		batches[i] = built
	}

	var all []vehicle.Vehicle
	for i, b := range plan.Batches {
		built := batches[i]
		logger.Debug("Batch built.", "region", b.Region, "label", factories[i].Region(), "count", len(built))
		for _, v := range built {
			v.StartEngine(ctx)
		}
		all = append(all, built...)
	}
	return all, nil
}

func build(f vehicle.Factory, orders []Order) ([]vehicle.Vehicle, error) {
	out := make([]vehicle.Vehicle, 0, len(orders))
	for _, o := range orders {
		switch o.Kind {
		case vehicle.KindCar:
			out = append(out, f.CreateCar(o.Make, o.Model))
		case vehicle.KindMotorcycle:
			out = append(out, f.CreateMotorcycle(o.Make, o.Model))
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownKind, o.Kind)
		}
	}
	return out, nil
}
