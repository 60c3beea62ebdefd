package ambient

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rcarver/lux/internal/camera"
)

// WebcamEstimator derives screen brightness from the average luma of a
// single webcam frame.
type WebcamEstimator struct {
	logger        *log.Logger
	device        camera.Device
	minBrightness float64
}

func NewWebcamEstimator(logger *log.Logger, device camera.Device, minBrightness float64) *WebcamEstimator {
	return &WebcamEstimator{logger: logger, device: device, minBrightness: minBrightness}
}

func (e *WebcamEstimator) Name() string {
	return "webcam"
}

func (e *WebcamEstimator) Estimate(ctx context.Context, _ time.Time) (float64, error) {

	frame, err := e.device.Capture(ctx)
	if err != nil {
		// any capture failure means fall back to the next source
		return 0, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}

	luma := FrameLuma(frame)
	e.logger.Debug("sampled webcam frame", "luma", luma)

	return e.minBrightness + luma*(1-e.minBrightness), nil
}

// FrameLuma returns the average perceptual brightness of a frame in
// [0,1], weighting channels per ITU-R BT.709.
func FrameLuma(frame image.Image) float64 {

	bounds := frame.Bounds()
	pixels := float64(bounds.Dx() * bounds.Dy())
	if pixels == 0 {
		return 0
	}

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := frame.At(x, y).RGBA()
			red := float64(r >> 8)
			green := float64(g >> 8)
			blue := float64(b >> 8)
			total += (0.2126*red + 0.7152*green + 0.0722*blue) / 255
		}
	}

	avg := total / pixels
	if avg < 0 {
		return 0
	}
	if avg > 1 {
		return 1
	}
	return avg
}
