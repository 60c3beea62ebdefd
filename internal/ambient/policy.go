package ambient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Resolve runs the estimators in order and returns the first estimate.
// ErrUnavailable moves on to the next estimator; any other error is
// fatal to the run.
func Resolve(ctx context.Context, now time.Time, logger *log.Logger, estimators ...Estimator) (float64, error) {

	for _, estimator := range estimators {

		brightness, err := estimator.Estimate(ctx, now)

		if errors.Is(err, ErrUnavailable) {
			logger.Warn("ambient light source unavailable, falling back", "source", estimator.Name(), "err", err)
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("estimating ambient light via %s: %w", estimator.Name(), err)
		}

		logger.Info("estimated ambient light", "source", estimator.Name(), "brightness", brightness)
		return brightness, nil
	}

	return 0, errors.New("no ambient light source produced an estimate")
}
