package realtime

import (
	"sync"
	"time"
)

// FrameFreshness is how long a browser frame stays usable for the
// look_at_camera tool.
const FrameFreshness = 10 * time.Second

// FrameStore keeps the most recent base64 camera frame uploaded by
// the browser. Exactly one frame is retained.
type FrameStore struct {
	mu    sync.Mutex
	frame string
	at    time.Time

	now func() time.Time
}

// NewFrameStore creates an empty store.
func NewFrameStore() *FrameStore {
	return &FrameStore{now: time.Now}
}

// Put replaces the stored frame.
func (s *FrameStore) Put(imageBase64 string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = imageBase64
	s.at = s.now()
}

// Latest returns the stored frame if one was uploaded within the
// freshness window.
func (s *FrameStore) Latest() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.frame == "" || s.now().Sub(s.at) >= FrameFreshness {
		return "", false
	}
	return s.frame, true
}
