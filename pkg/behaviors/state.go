package behaviors

import "sync"

// Emotion identifies a fixed emotion choreography.
type Emotion string

// Supported emotions.
const (
	EmotionHappy        Emotion = "happy"
	EmotionSad          Emotion = "sad"
	EmotionSurprised    Emotion = "surprised"
	EmotionThinking     Emotion = "thinking"
	EmotionExcited      Emotion = "excited"
	EmotionConfused     Emotion = "confused"
	EmotionProud        Emotion = "proud"
	EmotionDisappointed Emotion = "disappointed"
)

// Dance identifies a fixed dance choreography.
type Dance string

// Supported dances.
const (
	DanceFrenchWaltz    Dance = "french_waltz"
	DanceCelebration    Dance = "celebration"
	DanceThinkingGroove Dance = "thinking_groove"
	DanceBonjourBob     Dance = "bonjour_bob"
)

// Snapshot is a point-in-time copy of the motion state, safe to
// marshal and ship to dashboard clients.
type Snapshot struct {
	Yaw          float64 `json:"yaw"`
	Pitch        float64 `json:"pitch"`
	Roll         float64 `json:"roll"`
	AntennaLeft  float64 `json:"antenna_left"`
	AntennaRight float64 `json:"antenna_right"`
	Breathing    bool    `json:"breathing_active"`
	Speaking     bool    `json:"speaking"`
	TrackingFace bool    `json:"tracking_face"`
	Emotion      string  `json:"current_emotion"`
	Dance        string  `json:"current_dance"`
}

// motionState is the shared mutable record of the layered animation
// system. Animation tasks run on separate goroutines, so unlike the
// single-threaded original every access goes through the mutex.
type motionState struct {
	mu sync.Mutex

	yaw, pitch, roll          float64 // degrees
	antennaLeft, antennaRight float64 // unitless, roughly [-1, 1]

	breathing bool
	speaking  bool
	tracking  bool
	gestures  int // depth of in-flight one-shot gestures

	emotion Emotion
	dance   Dance
}

func (s *motionState) setHead(yaw, pitch, roll float64) {
	s.mu.Lock()
	s.yaw, s.pitch, s.roll = yaw, pitch, roll
	s.mu.Unlock()
}

func (s *motionState) setAntennas(left, right float64) {
	s.mu.Lock()
	s.antennaLeft, s.antennaRight = left, right
	s.mu.Unlock()
}

func (s *motionState) headYawPitch() (float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.yaw, s.pitch
}

func (s *motionState) setBreathing(on bool) {
	s.mu.Lock()
	s.breathing = on
	s.mu.Unlock()
}

func (s *motionState) setSpeaking(on bool) {
	s.mu.Lock()
	s.speaking = on
	s.mu.Unlock()
}

func (s *motionState) setTracking(on bool) {
	s.mu.Lock()
	s.tracking = on
	s.mu.Unlock()
}

func (s *motionState) isTracking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracking
}

func (s *motionState) beginGesture() {
	s.mu.Lock()
	s.gestures++
	s.mu.Unlock()
}

func (s *motionState) endGesture() {
	s.mu.Lock()
	if s.gestures > 0 {
		s.gestures--
	}
	s.mu.Unlock()
}

func (s *motionState) setEmotion(e Emotion) {
	s.mu.Lock()
	s.emotion = e
	s.mu.Unlock()
}

// clearEmotion resets the current emotion only if it is still e, so a
// replacement emotion started meanwhile is not clobbered by the old
// task's cleanup.
func (s *motionState) clearEmotion(e Emotion) {
	s.mu.Lock()
	if s.emotion == e {
		s.emotion = ""
	}
	s.mu.Unlock()
}

func (s *motionState) setDance(d Dance) {
	s.mu.Lock()
	s.dance = d
	s.mu.Unlock()
}

func (s *motionState) clearDance(d Dance) {
	s.mu.Lock()
	if s.dance == d {
		s.dance = ""
	}
	s.mu.Unlock()
}

func (s *motionState) currentEmotion() Emotion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.emotion
}

func (s *motionState) currentDance() Dance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dance
}

// breathingAllowed reports whether the lowest-priority layer may emit.
// Breathing yields to speech, dances and one-shot gestures.
func (s *motionState) breathingAllowed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.breathing && !s.speaking && s.dance == "" && s.gestures == 0
}

// trackingAllowed reports whether the face-tracking layer may emit.
func (s *motionState) trackingAllowed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracking && !s.speaking && s.dance == "" && s.gestures == 0
}

func (s *motionState) snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Yaw:          s.yaw,
		Pitch:        s.pitch,
		Roll:         s.roll,
		AntennaLeft:  s.antennaLeft,
		AntennaRight: s.antennaRight,
		Breathing:    s.breathing,
		Speaking:     s.speaking,
		TrackingFace: s.tracking,
		Emotion:      string(s.emotion),
		Dance:        string(s.dance),
	}
}

// reset clears all layer flags. Used on controller stop.
func (s *motionState) reset() {
	s.mu.Lock()
	s.breathing = false
	s.speaking = false
	s.tracking = false
	s.gestures = 0
	s.emotion = ""
	s.dance = ""
	s.mu.Unlock()
}
