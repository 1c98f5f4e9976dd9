package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFace_CenterAndArea(t *testing.T) {
	f := Face{X: 0.2, Y: 0.4, W: 0.2, H: 0.2}
	cx, cy := f.Center()
	assert.InDelta(t, 0.3, cx, 1e-9)
	assert.InDelta(t, 0.5, cy, 1e-9)
	assert.InDelta(t, 0.04, f.Area(), 1e-9)
}

func TestSelectBest_Empty(t *testing.T) {
	assert.Nil(t, SelectBest(nil))
}

func TestSelectBest_Single(t *testing.T) {
	faces := []Face{{X: 0.1, Confidence: 0.2}}
	best := SelectBest(faces)
	require.NotNil(t, best)
	assert.Equal(t, &faces[0], best)
}

func TestSelectBest_PrefersConfidenceOverArea(t *testing.T) {
	faces := []Face{
		{W: 0.5, H: 0.5, Confidence: 0.5}, // big but uncertain
		{W: 0.1, H: 0.1, Confidence: 0.95},
	}
	best := SelectBest(faces)
	require.NotNil(t, best)
	assert.InDelta(t, 0.95, best.Confidence, 1e-9)
}

func TestSelectBest_AreaBreaksConfidenceTies(t *testing.T) {
	faces := []Face{
		{W: 0.1, H: 0.1, Confidence: 0.8},
		{W: 0.4, H: 0.4, Confidence: 0.8},
	}
	best := SelectBest(faces)
	require.NotNil(t, best)
	assert.InDelta(t, 0.4, best.W, 1e-9)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "models/face_detection_yunet.onnx", cfg.ModelPath)
	assert.InDelta(t, 0.5, cfg.ConfidenceThresh, 1e-9)
	assert.Equal(t, 320, cfg.InputWidth)
}

func TestNewYuNet_MissingModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ModelPath = "testdata/nope.onnx"
	_, err := NewYuNet(cfg)
	assert.Error(t, err)
}
