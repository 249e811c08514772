package impl

import (
	"displayfleet/config"
	"displayfleet/internal/domain/liveness"

	"go.uber.org/fx"
)

// NewEvaluator builds the liveness evaluator from fleet.onlineThreshold.
func NewEvaluator(cfg *config.Config) *liveness.Evaluator {
	if cfg == nil || cfg.Fleet == nil {
		return liveness.NewEvaluator(liveness.DefaultThreshold)
	}

	return liveness.NewEvaluator(cfg.Fleet.OnlineThreshold)
}

// Module provides the fleet use cases
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewEvaluator,
		NewHeartbeatService,
		NewCommandService,
		NewFleetService,
		NewProvisioningService,
	),
)
