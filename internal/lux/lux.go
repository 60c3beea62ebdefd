package lux

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rcarver/lux/internal/ambient"
	"github.com/rcarver/lux/internal/config"
	"github.com/rcarver/lux/internal/models"
	"github.com/rcarver/lux/internal/plan"
	"github.com/rcarver/lux/internal/schedule"
	"github.com/samber/lo"
)

type monitorLister interface {
	ListMonitors(ctx context.Context) ([]string, error)
}

type planApplier interface {
	Apply(ctx context.Context, plan models.MonitorPlan) error
}

// Lux runs one brightness/colour-temperature adjustment pass.
type Lux struct {
	logger     *log.Logger
	cfg        config.Config
	estimators []ambient.Estimator
	monitors   monitorLister
	sink       planApplier
}

func New(
	logger *log.Logger,
	cfg config.Config,
	estimators []ambient.Estimator,
	monitors monitorLister,
	sink planApplier,
) *Lux {
	return &Lux{
		logger:     logger,
		cfg:        cfg,
		estimators: estimators,
		monitors:   monitors,
		sink:       sink,
	}
}

// Run estimates ambient brightness, derives the scheduled colour
// temperature for now, and applies the resulting plan to every monitor.
// Per-monitor apply failures are logged and do not fail the run; any
// failure before the apply phase aborts without touching the displays.
func (l *Lux) Run(ctx context.Context, now time.Time) error {

	brightness, err := ambient.Resolve(ctx, now, l.logger, l.estimators...)
	if err != nil {
		return err
	}

	temperature := schedule.TargetTemperature(schedule.HourFraction(now), schedule.Config{
		DayTemp:         l.cfg.DayTemp,
		NightTemp:       l.cfg.NightTemp,
		TransitionHours: l.cfg.TransitionHours,
	})
	l.logger.Info("calculated target display state", "brightness", brightness, "temperature", temperature)

	monitors := l.cfg.Monitors
	if len(monitors) == 0 {
		monitors, err = l.monitors.ListMonitors(ctx)
		if err != nil {
			return fmt.Errorf("enumerating monitors: %w", err)
		}
	}

	plans := plan.Build(brightness, temperature, monitors)
	outcomes := plan.ApplyAll(ctx, l.logger, l.sink, plans)

	applied := lo.CountBy(outcomes, func(o models.ApplyOutcome) bool { return o.Err == nil })
	l.logger.Info("apply phase complete", "monitors", len(outcomes), "applied", applied)

	return nil
}
