package camera

import (
	"context"
	"image"
)

// Device captures a single still frame from an attached camera.
type Device interface {
	Capture(ctx context.Context) (image.Image, error)
}
