package plan

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/rcarver/lux/internal/gamma"
	"github.com/rcarver/lux/internal/models"
	"github.com/samber/lo"
)

type planApplier interface {
	Apply(ctx context.Context, plan models.MonitorPlan) error
}

// Build produces the per-monitor command plan. Every monitor receives
// the same brightness and the gamma for the target colour temperature.
func Build(brightness float64, kelvin float64, monitors []string) []models.MonitorPlan {

	g := gamma.ToGamma(kelvin)

	return lo.Map(monitors, func(monitor string, _ int) models.MonitorPlan {
		return models.MonitorPlan{
			Monitor:    monitor,
			Brightness: brightness,
			Gamma:      g,
		}
	})
}

// ApplyAll applies each plan entry through the sink, continuing past
// per-monitor failures. The outcome for every monitor is returned so
// the caller can see partial success.
func ApplyAll(ctx context.Context, logger *log.Logger, sink planApplier, plans []models.MonitorPlan) []models.ApplyOutcome {

	outcomes := make([]models.ApplyOutcome, 0, len(plans))

	for _, p := range plans {
		err := sink.Apply(ctx, p)
		if err != nil {
			logger.Error("failed to apply monitor settings", "monitor", p.Monitor, "err", err)
		} else {
			logger.Info("applied monitor settings", "monitor", p.Monitor, "brightness", p.Brightness)
		}
		outcomes = append(outcomes, models.ApplyOutcome{Monitor: p.Monitor, Err: err})
	}

	return outcomes
}
