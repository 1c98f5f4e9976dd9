package detection

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"gocv.io/x/gocv"

	"github.com/franciscomoney/le-professeur-bizarre/pkg/behaviors"
)

// faceFinder is the slice of the detector the camera source uses.
type faceFinder interface {
	DetectMat(img gocv.Mat) ([]Face, error)
	Close() error
}

// CameraSource reads frames from a local camera and reports the best
// face as a normalized offset from frame center, in [-1, 1] on both
// axes. It implements behaviors.PositionSource.
type CameraSource struct {
	mu       sync.Mutex
	capture  *gocv.VideoCapture
	detector faceFinder
	frame    gocv.Mat
	closed   bool
}

// NewCameraSource opens the camera identified by device (an index like
// "0" or a path like "/dev/video0") with a YuNet detector.
func NewCameraSource(device string, cfg Config) (*CameraSource, error) {
	detector, err := NewYuNet(cfg)
	if err != nil {
		return nil, err
	}

	var capture *gocv.VideoCapture
	if idx, convErr := strconv.Atoi(device); convErr == nil {
		capture, err = gocv.OpenVideoCapture(idx)
	} else {
		capture, err = gocv.OpenVideoCapture(device)
	}
	if err != nil {
		detector.Close()
		return nil, fmt.Errorf("open camera %q: %w", device, err)
	}

	return &CameraSource{
		capture:  capture,
		detector: detector,
		frame:    gocv.NewMat(),
	}, nil
}

// FacePosition grabs one frame and returns the offset of the best
// face. found is false when no face is visible.
func (c *CameraSource) FacePosition(ctx context.Context) (behaviors.Position, bool, error) {
	if err := ctx.Err(); err != nil {
		return behaviors.Position{}, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return behaviors.Position{}, false, fmt.Errorf("camera source closed")
	}
	if ok := c.capture.Read(&c.frame); !ok || c.frame.Empty() {
		return behaviors.Position{}, false, fmt.Errorf("read camera frame")
	}

	faces, err := c.detector.DetectMat(c.frame)
	if err != nil {
		return behaviors.Position{}, false, err
	}

	best := SelectBest(faces)
	if best == nil {
		return behaviors.Position{}, false, nil
	}

	cx, cy := best.Center()
	return behaviors.Position{
		X: (cx - 0.5) * 2,
		Y: (cy - 0.5) * 2,
	}, true, nil
}

// Close releases the camera and detector.
func (c *CameraSource) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.frame.Close()
	err := c.capture.Close()
	if derr := c.detector.Close(); err == nil {
		err = derr
	}
	return err
}
