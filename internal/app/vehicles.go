package app

import (
	"context"
	"fmt"

	"github.com/vk/gopatterns/internal/fleet"
	"github.com/vk/gopatterns/internal/vehicle"
)

// RunVehicles loads the configured plan (or the built-in one), builds every
// vehicle through the registered factories and starts their engines.
func (a *App) RunVehicles(ctx context.Context) ([]vehicle.Vehicle, error) {
	ctx = a.withLogger(ctx)
	a.logger.Debug("RunVehicles started.", "plan", a.config.PlanPath, "region", a.config.Region)

	var (
		plan *fleet.Plan
		err  error
	)
	if a.config.PlanPath != "" {
		plan, err = fleet.Load(ctx, a.config.PlanPath)
	} else {
		plan, err = fleet.DefaultPlan(ctx)
	}
	if err != nil {
		return nil, err
	}

	if a.config.Region != "" {
		if _, err := a.registry.Lookup(a.config.Region); err != nil {
			return nil, err
		}
		filtered := plan.Only(a.config.Region)
		plan = &filtered
		if len(plan.Batches) == 0 {
			a.logger.Warn("Plan has no factory block for region.", "region", a.config.Region)
		}
	}

	vehicles, err := fleet.Run(ctx, plan, a.registry)
	if err != nil {
		return nil, fmt.Errorf("failed to run fleet plan: %w", err)
	}

	a.logger.Debug("RunVehicles finished.", "vehicles", len(vehicles))
	return vehicles, nil
}
