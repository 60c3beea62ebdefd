package camera

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	"github.com/blackjack/webcam"
	"github.com/charmbracelet/log"
	"github.com/rcarver/lux/internal/concurrency"
	"github.com/rcarver/lux/internal/constants"
)

// how long to block waiting for a single frame, in seconds
const frameWaitTimeout = 5

// V4L2Device reads frames from a video4linux capture device.
type V4L2Device struct {
	logger *log.Logger
	path   string
}

func NewV4L2Device(logger *log.Logger, path string) *V4L2Device {
	return &V4L2Device{logger: logger, path: path}
}

// Capture opens the device, lets auto-exposure settle by discarding the
// first few frames, then returns a single decoded frame. The warm-up
// reads are strictly sequential with fixed pacing; the camera will not
// have converged otherwise.
func (d *V4L2Device) Capture(ctx context.Context) (image.Image, error) {

	cam, err := webcam.Open(d.path)
	if err != nil {
		return nil, fmt.Errorf("opening camera %s: %w", d.path, err)
	}
	defer cam.Close()

	format, err := mjpegFormat(cam)
	if err != nil {
		return nil, err
	}

	_, w, h, err := cam.SetImageFormat(format, constants.CaptureWidth, constants.CaptureHeight)
	if err != nil {
		return nil, fmt.Errorf("setting camera format: %w", err)
	}
	d.logger.Debug("camera format negotiated", "width", w, "height", h)

	if err := cam.StartStreaming(); err != nil {
		return nil, fmt.Errorf("starting camera stream: %w", err)
	}
	defer cam.StopStreaming()

	err = concurrency.RunPaced(ctx, constants.WarmUpFrames, constants.WarmUpFrameInterval, func() error {
		_, err := readFrame(cam)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("camera warm-up: %w", err)
	}

	raw, err := readFrame(cam)
	if err != nil {
		return nil, fmt.Errorf("reading frame: %w", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding frame: %w", err)
	}

	return img, nil
}

func readFrame(cam *webcam.Webcam) ([]byte, error) {
	if err := cam.WaitForFrame(frameWaitTimeout); err != nil {
		return nil, err
	}
	return cam.ReadFrame()
}

func mjpegFormat(cam *webcam.Webcam) (webcam.PixelFormat, error) {
	for format, desc := range cam.GetSupportedFormats() {
		if strings.Contains(strings.ToUpper(desc), "JPEG") {
			return format, nil
		}
	}
	return 0, errors.New("camera does not support MJPEG capture")
}
