// Package behaviors implements the layered animation system for the
// robot: breathing, speech wobble, emotions, dances and face tracking,
// composed over a fire-and-forget pose sender.
//
// Layers (from bottom to top):
//  1. Breathing - subtle idle animation
//  2. Face tracking - follows a detected face
//  3. Primary motion - emotions, dances
//  4. Speech wobble - reactive movement while speaking
//
// Each layer runs as its own goroutine on a fixed tick. Unlike a
// cooperative event loop, goroutines preempt, so all shared state lives
// behind the motionState mutex and cancellation is done with contexts
// that are awaited through done channels.
package behaviors

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/franciscomoney/le-professeur-bizarre/internal/log"
)

// PoseSender is what the animation layers need from the robot client.
// Implementations must be fire-and-forget: a failed send is dropped,
// never surfaced, because the next tick self-corrects.
type PoseSender interface {
	MoveHead(ctx context.Context, yaw, pitch, roll float64, duration time.Duration)
	MoveAntennas(ctx context.Context, left, right float64, duration time.Duration)
}

// Position is a normalized face offset in [-1, 1] x [-1, 1].
type Position struct {
	X float64
	Y float64
}

// PositionSource supplies face positions for the tracking layer.
// Found is false when no face is visible. Errors are swallowed per
// tick; tracking continues on the next one.
type PositionSource interface {
	FacePosition(ctx context.Context) (pos Position, found bool, err error)
}

// PositionFunc adapts a function to the PositionSource interface.
type PositionFunc func(ctx context.Context) (Position, bool, error)

// FacePosition implements PositionSource.
func (f PositionFunc) FacePosition(ctx context.Context) (Position, bool, error) {
	return f(ctx)
}

// Config holds the animation tick rates. Production uses the defaults;
// tests shrink them to keep runs fast.
type Config struct {
	BreathTick time.Duration
	SpeechTick time.Duration
	TrackTick  time.Duration
}

// DefaultConfig returns the production tick rates.
func DefaultConfig() Config {
	return Config{
		BreathTick: 300 * time.Millisecond,
		SpeechTick: 120 * time.Millisecond,
		TrackTick:  100 * time.Millisecond,
	}
}

// task is a cancellable animation goroutine. stop requests cancellation
// and waits for the goroutine to finish its cleanup.
type task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (t *task) stop() {
	t.cancel()
	<-t.done
}

// Manager owns the lifecycle of all animation layers.
type Manager struct {
	sender PoseSender
	cfg    Config
	state  motionState

	mu       sync.Mutex
	running  bool
	breath   *task
	speech   *task
	emotion  *task
	dance    *task
	tracking *task
}

// NewManager creates a behavior manager over the given pose sender.
func NewManager(sender PoseSender) *Manager {
	return NewManagerWithConfig(sender, DefaultConfig())
}

// NewManagerWithConfig creates a manager with custom tick rates.
func NewManagerWithConfig(sender PoseSender, cfg Config) *Manager {
	return &Manager{sender: sender, cfg: cfg}
}

// Snapshot returns a copy of the current motion state.
func (m *Manager) Snapshot() Snapshot {
	return m.state.snapshot()
}

// Start launches the breathing layer. Safe to call once per Stop.
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return
	}
	m.running = true
	m.state.setBreathing(true)
	m.breath = m.spawn(m.breathingLoop)
	log.Info("behavior system started")
}

// Stop cancels every running animation task and awaits each one. The
// robot is left uncommanded except for the emotion task's guaranteed
// neutral reset; callers may issue a final neutral command themselves.
func (m *Manager) Stop() {
	m.mu.Lock()
	tasks := []*task{m.breath, m.speech, m.emotion, m.dance, m.tracking}
	m.breath, m.speech, m.emotion, m.dance, m.tracking = nil, nil, nil, nil, nil
	m.running = false
	m.mu.Unlock()

	m.state.reset()
	for _, t := range tasks {
		if t != nil {
			t.stop()
		}
	}
	log.Info("behavior system stopped")
}

// spawn runs fn on its own goroutine with a fresh cancellable context.
func (m *Manager) spawn(fn func(context.Context)) *task {
	ctx, cancel := context.WithCancel(context.Background())
	t := &task{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(t.done)
		fn(ctx)
	}()
	return t
}

// moveHead sends a head command and records the commanded pose.
func (m *Manager) moveHead(ctx context.Context, yaw, pitch, roll float64, d time.Duration) {
	m.sender.MoveHead(ctx, yaw, pitch, roll, d)
	m.state.setHead(yaw, pitch, roll)
}

// moveAntennas sends an antenna command and records the commanded pose.
func (m *Manager) moveAntennas(ctx context.Context, left, right float64, d time.Duration) {
	m.sender.MoveAntennas(ctx, left, right, d)
	m.state.setAntennas(left, right)
}

// resetPose returns head and antennas to neutral. Cleanup paths run on
// cancelled contexts, so this always uses a fresh one; the sender's own
// timeout bounds it.
func (m *Manager) resetPose(headDur, antDur time.Duration) {
	ctx := context.Background()
	m.moveHead(ctx, 0, 0, 0, headDur)
	m.moveAntennas(ctx, 0, 0, antDur)
}

// ==================== BREATHING ====================

// breathingLoop is the lowest-priority layer: a small multi-frequency
// sine composition that yields to speech, dances and gestures. It runs
// until the manager stops.
func (m *Manager) breathingLoop(ctx context.Context) {
	ticker := time.NewTicker(m.cfg.BreathTick)
	defer ticker.Stop()

	dt := m.cfg.BreathTick.Seconds()
	t := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t += dt
			if !m.state.breathingAllowed() {
				continue
			}

			breath := math.Sin(t*0.5) * 3          // pitch, ±3°
			antennaBreath := math.Sin(t*0.7) * 0.1 // subtle antenna sway

			// Breathe around the tracked face instead of fighting the
			// tracking layer back to center.
			baseYaw, basePitch := 0.0, 0.0
			if m.state.isTracking() {
				baseYaw, basePitch = m.state.headYawPitch()
			}

			m.moveHead(ctx,
				baseYaw+math.Sin(t*0.3)*2,
				basePitch+breath,
				math.Sin(t*0.4)*1.5,
				300*time.Millisecond)
			m.moveAntennas(ctx, antennaBreath, -antennaBreath, 200*time.Millisecond)
		}
	}
}

// ==================== SPEECH ====================

// StartSpeaking begins the speech wobble layer. It overrides breathing
// until StopSpeaking is called.
func (m *Manager) StartSpeaking() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.speech != nil {
		return
	}
	m.state.setSpeaking(true)
	m.speech = m.spawn(m.speechWobbleLoop)
}

// StopSpeaking cancels the wobble, awaits it, and returns the head and
// antennas to neutral.
func (m *Manager) StopSpeaking() {
	m.mu.Lock()
	t := m.speech
	m.speech = nil
	m.mu.Unlock()

	m.state.setSpeaking(false)
	if t != nil {
		t.stop()
	}
	m.resetPose(400*time.Millisecond, 300*time.Millisecond)
}

// speechWobbleLoop produces larger sine-plus-noise motion to read as
// emphatic talking, roughly 4-6x the breathing amplitudes.
func (m *Manager) speechWobbleLoop(ctx context.Context) {
	ticker := time.NewTicker(m.cfg.SpeechTick)
	defer ticker.Stop()

	dt := m.cfg.SpeechTick.Seconds()
	t := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t += dt

			yaw := math.Sin(t*2.5)*12 + jitter(3)
			pitch := math.Sin(t*1.8)*8 + jitter(2)
			roll := math.Sin(t*2.1) * 6

			left := math.Sin(t*3)*0.5 + jitter(0.1)
			right := math.Sin(t*3+1)*0.5 + jitter(0.1)

			m.moveHead(ctx, yaw, pitch, roll, 150*time.Millisecond)
			m.moveAntennas(ctx, left, right, 100*time.Millisecond)
		}
	}
}

// jitter returns a uniform random value in [-amp, amp].
func jitter(amp float64) float64 {
	return (rand.Float64()*2 - 1) * amp
}

// ==================== EMOTIONS ====================

// PlayEmotion plays an emotion choreography followed by a hold period.
// Starting a new emotion cancels and awaits any in-flight one before
// the first command of the new one is sent; there is no queueing.
func (m *Manager) PlayEmotion(emotion Emotion, hold time.Duration) error {
	steps, ok := emotionSteps[emotion]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEmotion, emotion)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.emotion != nil {
		m.emotion.stop()
	}
	m.state.setEmotion(emotion)
	m.emotion = m.spawn(func(ctx context.Context) {
		m.runEmotion(ctx, emotion, steps, hold)
	})
	return nil
}

// runEmotion plays the steps then holds. The deferred cleanup clears
// the state and resets the pose even when cancelled mid-sequence.
func (m *Manager) runEmotion(ctx context.Context, emotion Emotion, steps []Step, hold time.Duration) {
	defer func() {
		m.state.clearEmotion(emotion)
		m.resetPose(300*time.Millisecond, 200*time.Millisecond)
	}()

	if !m.playSteps(ctx, steps) {
		return
	}
	sleepCtx(ctx, hold)
}

// ==================== DANCES ====================

// StartDance stops any running dance, then loops the named choreography
// until StopDance or manager Stop.
func (m *Manager) StartDance(dance Dance) error {
	steps, ok := danceSteps[dance]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDance, dance)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dance != nil {
		m.dance.stop()
	}
	m.state.setDance(dance)
	m.dance = m.spawn(func(ctx context.Context) {
		defer m.state.clearDance(dance)
		for m.playSteps(ctx, steps) {
		}
	})
	return nil
}

// StopDance cancels the dance loop, awaits its termination, and issues
// a single neutral reset. Safe to call when no dance is running.
func (m *Manager) StopDance() {
	m.mu.Lock()
	t := m.dance
	m.dance = nil
	m.mu.Unlock()

	m.state.setDance("")
	if t != nil {
		t.stop()
	}
	m.resetPose(300*time.Millisecond, 200*time.Millisecond)
}

// playSteps plays one pass of a choreography. Returns false when the
// context is cancelled mid-pass.
func (m *Manager) playSteps(ctx context.Context, steps []Step) bool {
	for _, s := range steps {
		if ctx.Err() != nil {
			return false
		}
		m.moveHead(ctx, s.Yaw, s.Pitch, s.Roll, s.Move)
		m.moveAntennas(ctx, s.AntennaLeft, s.AntennaRight, s.Move)
		if !sleepCtx(ctx, s.Hold) {
			return false
		}
	}
	return ctx.Err() == nil
}

// ==================== FACE TRACKING ====================

// EnableFaceTracking starts the tracking layer against the given
// position source. An already-running tracker is replaced.
func (m *Manager) EnableFaceTracking(source PositionSource) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tracking != nil {
		m.tracking.stop()
	}
	m.state.setTracking(true)
	m.tracking = m.spawn(func(ctx context.Context) {
		m.trackingLoop(ctx, source)
	})
}

// DisableFaceTracking stops the tracking layer and awaits it.
func (m *Manager) DisableFaceTracking() {
	m.mu.Lock()
	t := m.tracking
	m.tracking = nil
	m.mu.Unlock()

	m.state.setTracking(false)
	if t != nil {
		t.stop()
	}
}

// trackingLoop exponentially smooths yaw/pitch toward the face offset.
// Source errors are swallowed per tick. The layer yields to speech and
// dances the same way breathing does.
func (m *Manager) trackingLoop(ctx context.Context, source PositionSource) {
	const (
		yawRange   = 30.0 // degrees at offset ±1
		pitchRange = 20.0
		smoothing  = 0.7 // new = 0.7*old + 0.3*target
	)

	ticker := time.NewTicker(m.cfg.TrackTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pos, found, err := source.FacePosition(ctx)
			if err != nil {
				log.Debug("face position source failed", "error", err)
				continue
			}
			if !found || !m.state.trackingAllowed() {
				continue
			}

			targetYaw := pos.X * yawRange
			targetPitch := pos.Y * pitchRange

			yaw, pitch := m.state.headYawPitch()
			yaw = yaw*smoothing + targetYaw*(1-smoothing)
			pitch = pitch*smoothing + targetPitch*(1-smoothing)

			m.moveHead(ctx, yaw, pitch, 0, 150*time.Millisecond)
		}
	}
}

// sleepCtx sleeps for d or until ctx is cancelled. Returns false on
// cancellation.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
