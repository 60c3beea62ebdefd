package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rcarver/lux/internal/ambient"
	"github.com/rcarver/lux/internal/camera"
	"github.com/rcarver/lux/internal/config"
	"github.com/rcarver/lux/internal/lux"
	"github.com/rcarver/lux/internal/weather"
	"github.com/rcarver/lux/internal/xrandr"
)

func main() {

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	var logWriter io.Writer = os.Stderr
	if cfg.LogFile != "" {
		logWriter = &lumberjack.Logger{
			Filename: cfg.LogFile,
			MaxAge:   3,
		}
	}
	logger := log.NewWithOptions(logWriter, log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: true,
		TimeFormat:      "2006/01/02 15:04:05",
	})
	logger.Info("lux starting")

	// create/wire up services
	device := camera.NewV4L2Device(logger, cfg.CameraDevice)
	weatherClient := weather.NewClient(logger)
	estimators := []ambient.Estimator{
		ambient.NewWebcamEstimator(logger, device, cfg.MinBrightness),
		ambient.NewWeatherEstimator(logger, weatherClient, cfg.APIKey, cfg.MinBrightness),
	}
	displays := xrandr.NewService(logger, xrandr.ExecRunner{})

	app := lux.New(logger, *cfg, estimators, displays, displays)

	if err := app.Run(context.Background(), time.Now()); err != nil {
		logger.Fatal("run failed", "err", err)
	}

	logger.Info("lux finished")
}
