package xrandr_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/rcarver/lux/internal/models"
	"github.com/rcarver/lux/internal/xrandr"
	"github.com/stretchr/testify/assert"
)

type fakeRunner struct {
	output []byte
	err    error
	calls  [][]string
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.output, r.err
}

func testLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
}

func Test_ListMonitors(t *testing.T) {

	t.Run("parses the last token of every line after the count", func(t *testing.T) {
		runner := &fakeRunner{output: []byte(
			"Monitors: 2\n" +
				" 0: +*DP-0 2560/597x1440/336+0+0  DP-0\n" +
				" 1: +HDMI-0 1920/509x1080/286+2560+0  HDMI-0\n",
		)}
		s := xrandr.NewService(testLogger(), runner)

		monitors, err := s.ListMonitors(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []string{"DP-0", "HDMI-0"}, monitors)
		assert.Equal(t, [][]string{{"xrandr", "--listmonitors"}}, runner.calls)
	})

	t.Run("empty enumeration is an error", func(t *testing.T) {
		runner := &fakeRunner{output: []byte("Monitors: 0\n")}
		s := xrandr.NewService(testLogger(), runner)

		_, err := s.ListMonitors(context.Background())

		assert.ErrorIs(t, err, xrandr.ErrNoMonitors)
	})

	t.Run("command failure is an error", func(t *testing.T) {
		runner := &fakeRunner{err: errors.New("exit status 1")}
		s := xrandr.NewService(testLogger(), runner)

		_, err := s.ListMonitors(context.Background())

		assert.Error(t, err)
		assert.NotErrorIs(t, err, xrandr.ErrNoMonitors)
	})
}

func Test_Apply(t *testing.T) {

	t.Run("formats brightness and gamma to three decimal places", func(t *testing.T) {
		runner := &fakeRunner{}
		s := xrandr.NewService(testLogger(), runner)

		err := s.Apply(context.Background(), models.MonitorPlan{
			Monitor:    "DP-0",
			Brightness: 0.84375,
			Gamma:      models.Gamma{Red: 1, Green: 0.755034341, Blue: 0.552261112},
		})

		assert.NoError(t, err)
		assert.Equal(t, [][]string{{
			"xrandr",
			"--output", "DP-0",
			"--brightness", "0.844",
			"--gamma", "1.000:0.755:0.552",
		}}, runner.calls)
	})

	t.Run("command failure names the monitor", func(t *testing.T) {
		runner := &fakeRunner{err: errors.New("exit status 1")}
		s := xrandr.NewService(testLogger(), runner)

		err := s.Apply(context.Background(), models.MonitorPlan{Monitor: "HDMI-0"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "HDMI-0")
	})
}
