package detection

import (
	"fmt"
	"image"
	"os"
	"sync"

	"gocv.io/x/gocv"
)

// YuNet wraps OpenCV's FaceDetectorYN.
type YuNet struct {
	detector gocv.FaceDetectorYN
	config   Config
	mu       sync.Mutex // Protects inference
}

// NewYuNet creates a YuNet face detector from an ONNX model file.
func NewYuNet(cfg Config) (*YuNet, error) {
	if _, err := os.Stat(cfg.ModelPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("model file not found: %s", cfg.ModelPath)
	}

	detector := gocv.NewFaceDetectorYNWithParams(
		cfg.ModelPath,
		"", // No config file needed for ONNX
		image.Pt(cfg.InputWidth, cfg.InputHeight),
		float32(cfg.ConfidenceThresh),
		0.3,  // NMS threshold
		5000, // Top K
		int(gocv.NetBackendDefault),
		int(gocv.NetTargetCPU),
	)

	return &YuNet{detector: detector, config: cfg}, nil
}

// Detect finds faces in a JPEG image.
func (d *YuNet) Detect(jpeg []byte) ([]Face, error) {
	img, err := gocv.IMDecode(jpeg, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	defer img.Close()

	if img.Empty() {
		return nil, fmt.Errorf("empty image")
	}
	return d.DetectMat(img)
}

// DetectMat finds faces in a decoded frame.
func (d *YuNet) DetectMat(img gocv.Mat) ([]Face, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	imgW := float64(img.Cols())
	imgH := float64(img.Rows())
	d.detector.SetInputSize(image.Pt(img.Cols(), img.Rows()))

	out := gocv.NewMat()
	defer out.Close()
	d.detector.Detect(img, &out)

	// YuNet output rows are 15 columns: box x,y,w,h in pixels, then
	// five landmark pairs, then the score.
	var faces []Face
	for r := 0; r < out.Rows(); r++ {
		faces = append(faces, Face{
			X:          float64(out.GetFloatAt(r, 0)) / imgW,
			Y:          float64(out.GetFloatAt(r, 1)) / imgH,
			W:          float64(out.GetFloatAt(r, 2)) / imgW,
			H:          float64(out.GetFloatAt(r, 3)) / imgH,
			Confidence: float64(out.GetFloatAt(r, 14)),
		})
	}
	return faces, nil
}

// Close releases the detector resources.
func (d *YuNet) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.detector.Close()
	return nil
}
