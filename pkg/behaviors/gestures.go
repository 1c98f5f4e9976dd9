package behaviors

import (
	"context"
	"time"
)

// One-shot gestures run synchronously to completion. While a gesture is
// in flight, the breathing and tracking layers stop emitting so the
// gesture is not fought by lower layers; they resume when it finishes.

// Wave performs a friendly antenna wave with a head tilt.
func (m *Manager) Wave(ctx context.Context) {
	m.state.beginGesture()
	defer m.state.endGesture()

	m.moveHead(ctx, 20, 0, 10, 300*time.Millisecond)
	for i := 0; i < 3; i++ {
		m.moveAntennas(ctx, 0.7, -0.3, 150*time.Millisecond)
		if !sleepCtx(ctx, 120*time.Millisecond) {
			break
		}
		m.moveAntennas(ctx, -0.3, 0.7, 150*time.Millisecond)
		if !sleepCtx(ctx, 120*time.Millisecond) {
			break
		}
	}
	m.resetPose(300*time.Millisecond, 200*time.Millisecond)
}

// NodYes nods the head three times.
func (m *Manager) NodYes(ctx context.Context) {
	m.state.beginGesture()
	defer m.state.endGesture()

	for i := 0; i < 3; i++ {
		m.moveHead(ctx, 0, 15, 0, 150*time.Millisecond)
		if !sleepCtx(ctx, 100*time.Millisecond) {
			break
		}
		m.moveHead(ctx, 0, -5, 0, 150*time.Millisecond)
		if !sleepCtx(ctx, 100*time.Millisecond) {
			break
		}
	}
	m.moveHead(ctx, 0, 0, 0, 200*time.Millisecond)
}

// ShakeNo shakes the head three times.
func (m *Manager) ShakeNo(ctx context.Context) {
	m.state.beginGesture()
	defer m.state.endGesture()

	for i := 0; i < 3; i++ {
		m.moveHead(ctx, 20, 0, 0, 120*time.Millisecond)
		if !sleepCtx(ctx, 80*time.Millisecond) {
			break
		}
		m.moveHead(ctx, -20, 0, 0, 120*time.Millisecond)
		if !sleepCtx(ctx, 80*time.Millisecond) {
			break
		}
	}
	m.moveHead(ctx, 0, 0, 0, 200*time.Millisecond)
}

// Teach performs professorial pointing gestures with the antennas,
// used while presenting a lesson phrase.
func (m *Manager) Teach(ctx context.Context) {
	m.state.beginGesture()
	defer m.state.endGesture()

	// Get attention first.
	m.moveHead(ctx, 0, -8, 0, 200*time.Millisecond)
	m.moveAntennas(ctx, 0.5, 0.5, 150*time.Millisecond)
	if !sleepCtx(ctx, 200*time.Millisecond) {
		m.resetPose(300*time.Millisecond, 200*time.Millisecond)
		return
	}

	moves := []struct {
		yaw, pitch, roll float64
		left, right      float64
	}{
		{12, 5, 5, 0.8, -0.2},
		{-12, 5, -5, -0.2, 0.8},
		{0, 10, 0, 0.6, 0.6},
		{8, -3, 3, -0.5, 0.5},
		{-8, 5, -3, 0.5, -0.5},
	}
	for _, mv := range moves {
		m.moveHead(ctx, mv.yaw, mv.pitch, mv.roll, 250*time.Millisecond)
		m.moveAntennas(ctx, mv.left, mv.right, 150*time.Millisecond)
		if !sleepCtx(ctx, 200*time.Millisecond) {
			break
		}
		// Quick flutter for emphasis.
		m.moveAntennas(ctx, mv.left*0.3, mv.right*0.3, 80*time.Millisecond)
		if !sleepCtx(ctx, 100*time.Millisecond) {
			break
		}
	}

	// Neutral but attentive.
	m.moveHead(ctx, 0, 5, 0, 300*time.Millisecond)
	m.moveAntennas(ctx, 0.1, 0.1, 200*time.Millisecond)
}

// LookAt points the head at a specific yaw/pitch (degrees).
func (m *Manager) LookAt(ctx context.Context, yaw, pitch float64, duration time.Duration) {
	m.state.beginGesture()
	defer m.state.endGesture()

	m.moveHead(ctx, yaw, pitch, 0, duration)
	sleepCtx(ctx, duration)
}
