package concurrency_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rcarver/lux/internal/concurrency"
	"github.com/stretchr/testify/assert"
)

func Test_RunPaced(t *testing.T) {

	t.Run("runs the job the requested number of times", func(t *testing.T) {
		runs := 0
		err := concurrency.RunPaced(context.Background(), 5, time.Millisecond, func() error {
			runs++
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, runs)
	})

	t.Run("stops at the first job error", func(t *testing.T) {
		runs := 0
		jobErr := errors.New("read failed")
		err := concurrency.RunPaced(context.Background(), 5, time.Millisecond, func() error {
			runs++
			if runs == 2 {
				return jobErr
			}
			return nil
		})

		assert.ErrorIs(t, err, jobErr)
		assert.Equal(t, 2, runs)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := concurrency.RunPaced(ctx, 5, time.Millisecond, func() error {
			t.Fatal("job should not run after cancellation")
			return nil
		})

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("paces runs by at least the interval", func(t *testing.T) {
		start := time.Now()
		err := concurrency.RunPaced(context.Background(), 3, 10*time.Millisecond, func() error { return nil })

		assert.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})
}
