package concurrency

import (
	"context"
	"time"
)

// RunPaced runs job a fixed number of times with a minimum interval
// between runs. Runs are strictly sequential: each job completes before
// the next tick is waited on.
func RunPaced(ctx context.Context, runs int, interval time.Duration, job func() error) error {

	limiter := time.NewTicker(interval)
	defer limiter.Stop()

	for i := 0; i < runs; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-limiter.C:
		}
		if err := job(); err != nil {
			return err
		}
	}

	return nil
}
