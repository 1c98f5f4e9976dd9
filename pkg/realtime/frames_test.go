package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameStore_Empty(t *testing.T) {
	s := NewFrameStore()
	_, ok := s.Latest()
	assert.False(t, ok)
}

func TestFrameStore_FreshFrame(t *testing.T) {
	s := NewFrameStore()
	s.Put("frame-1")

	frame, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, "frame-1", frame)
}

func TestFrameStore_Replacement(t *testing.T) {
	s := NewFrameStore()
	s.Put("frame-1")
	s.Put("frame-2")

	frame, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, "frame-2", frame)
}

func TestFrameStore_Expiry(t *testing.T) {
	now := time.Now()
	s := NewFrameStore()
	s.now = func() time.Time { return now }
	s.Put("frame-1")

	s.now = func() time.Time { return now.Add(FrameFreshness - time.Millisecond) }
	_, ok := s.Latest()
	assert.True(t, ok)

	s.now = func() time.Time { return now.Add(FrameFreshness) }
	_, ok = s.Latest()
	assert.False(t, ok)
}
