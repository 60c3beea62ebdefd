package ambient

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable signals that an estimator's light source is absent or
// unreadable and the next estimator in the fallback order should run.
var ErrUnavailable = errors.New("ambient light source unavailable")

// Estimator produces a normalised screen brightness in
// [minBrightness, 1.0] from one ambient light source.
type Estimator interface {
	Name() string
	Estimate(ctx context.Context, now time.Time) (float64, error)
}
