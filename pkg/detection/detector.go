// Package detection finds faces in camera frames with OpenCV's YuNet
// model and turns them into normalized offsets the tracking layer can
// follow.
package detection

// Face is a detected face with all coordinates normalized to 0-1.
type Face struct {
	X, Y       float64 // Top-left corner
	W, H       float64 // Width and height
	Confidence float64
}

// Center returns the center point of the face box.
func (f Face) Center() (x, y float64) {
	return f.X + f.W/2, f.Y + f.H/2
}

// Area returns the area of the bounding box.
func (f Face) Area() float64 {
	return f.W * f.H
}

// Config holds detector configuration.
type Config struct {
	ModelPath        string  // Path to the YuNet ONNX model
	ConfidenceThresh float64 // Minimum confidence
	InputWidth       int     // Model input width
	InputHeight      int     // Model input height
}

// DefaultConfig returns production defaults for YuNet.
func DefaultConfig() Config {
	return Config{
		ModelPath:        "models/face_detection_yunet.onnx",
		ConfidenceThresh: 0.5,
		InputWidth:       320,
		InputHeight:      320,
	}
}

// SelectBest picks the face to track when several are visible,
// weighting confidence over size so a confident small face beats a
// blurry large one.
func SelectBest(faces []Face) *Face {
	if len(faces) == 0 {
		return nil
	}
	if len(faces) == 1 {
		return &faces[0]
	}

	maxArea := 0.0
	for _, f := range faces {
		if f.Area() > maxArea {
			maxArea = f.Area()
		}
	}

	bestScore := -1.0
	var best *Face
	for i := range faces {
		score := faces[i].Confidence*0.7 + (faces[i].Area()/maxArea)*0.3
		if score > bestScore {
			bestScore = score
			best = &faces[i]
		}
	}
	return best
}
