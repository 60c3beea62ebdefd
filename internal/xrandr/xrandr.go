package xrandr

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/rcarver/lux/internal/models"
	"github.com/samber/lo"
)

// ErrNoMonitors is returned when enumeration yields an empty list.
var ErrNoMonitors = errors.New("no monitors detected")

// CommandRunner abstracts subprocess execution so the service can be
// tested without a display server.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands via os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Service enumerates monitors and applies brightness/gamma settings
// through the xrandr utility.
type Service struct {
	logger *log.Logger
	runner CommandRunner
}

func NewService(logger *log.Logger, runner CommandRunner) *Service {
	return &Service{logger: logger, runner: runner}
}

// ListMonitors parses `xrandr --listmonitors` output: the first line is
// a count, every following line names a monitor as its last field.
func (s *Service) ListMonitors(ctx context.Context) ([]string, error) {

	out, err := s.runner.Run(ctx, "xrandr", "--listmonitors")
	if err != nil {
		return nil, fmt.Errorf("error listing monitors: %w", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) < 2 {
		return nil, ErrNoMonitors
	}

	monitors := lo.FilterMap(lines[1:], func(line string, _ int) (string, bool) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return "", false
		}
		return fields[len(fields)-1], true
	})

	if len(monitors) == 0 {
		return nil, ErrNoMonitors
	}

	s.logger.Info("detected monitors", "monitors", monitors)
	return monitors, nil
}

// Apply sets brightness and gamma for a single monitor.
func (s *Service) Apply(ctx context.Context, plan models.MonitorPlan) error {

	args := []string{
		"--output", plan.Monitor,
		"--brightness", fmt.Sprintf("%.3f", plan.Brightness),
		"--gamma", fmt.Sprintf("%.3f:%.3f:%.3f", plan.Gamma.Red, plan.Gamma.Green, plan.Gamma.Blue),
	}

	if _, err := s.runner.Run(ctx, "xrandr", args...); err != nil {
		return fmt.Errorf("error setting brightness/gamma for %s: %w", plan.Monitor, err)
	}

	return nil
}
