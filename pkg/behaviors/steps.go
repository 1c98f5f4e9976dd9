package behaviors

import "time"

// Step is one timed pose of a choreography: move the head and antennas
// to the target over Move, then pause for Hold before the next step.
// Angles are degrees, antennas are unitless actuator commands.
type Step struct {
	Yaw, Pitch, Roll          float64
	AntennaLeft, AntennaRight float64
	Move                      time.Duration
	Hold                      time.Duration
}

// sadSteps doubles as the "disappointed" choreography: a slow droop
// with both antennas lowered.
var sadSteps = []Step{
	{Pitch: 20, AntennaLeft: -0.5, AntennaRight: -0.5, Move: 500 * time.Millisecond, Hold: 500 * time.Millisecond},
	{Yaw: 5, Pitch: 25, Roll: -3, AntennaLeft: -0.5, AntennaRight: -0.5, Move: 300 * time.Millisecond},
}

// emotionSteps maps each emotion to its hand-authored step sequence.
// The player in manager.go is generic over this table; adding an
// emotion means adding data, not code.
var emotionSteps = map[Emotion][]Step{
	// Three alternating up/down head bobs with synchronized antenna flutter.
	EmotionHappy: {
		{Pitch: -15, AntennaLeft: 0.7, AntennaRight: 0.7, Move: 150 * time.Millisecond, Hold: 100 * time.Millisecond},
		{Pitch: 5, AntennaLeft: 0.3, AntennaRight: 0.3, Move: 150 * time.Millisecond, Hold: 100 * time.Millisecond},
		{Pitch: -15, AntennaLeft: 0.7, AntennaRight: 0.7, Move: 150 * time.Millisecond, Hold: 100 * time.Millisecond},
		{Pitch: 5, AntennaLeft: 0.3, AntennaRight: 0.3, Move: 150 * time.Millisecond, Hold: 100 * time.Millisecond},
		{Pitch: -15, AntennaLeft: 0.7, AntennaRight: 0.7, Move: 150 * time.Millisecond, Hold: 100 * time.Millisecond},
		{Pitch: 5, AntennaLeft: 0.3, AntennaRight: 0.3, Move: 150 * time.Millisecond, Hold: 100 * time.Millisecond},
	},

	EmotionSad:          sadSteps,
	EmotionDisappointed: sadSteps,

	// Quick jerk back, then hold the startled pose.
	EmotionSurprised: {
		{Pitch: -20, AntennaLeft: 0.8, AntennaRight: 0.8, Move: 100 * time.Millisecond, Hold: 200 * time.Millisecond},
		{Pitch: -10, AntennaLeft: 0.8, AntennaRight: 0.8, Move: 200 * time.Millisecond},
	},

	// Head tilt with asymmetric antennas, then small pondering shifts.
	EmotionThinking: {
		{Yaw: 20, Pitch: 15, Roll: 8, AntennaLeft: 0.4, AntennaRight: -0.2, Move: 400 * time.Millisecond, Hold: 300 * time.Millisecond},
		{Yaw: 18, Pitch: 12, Roll: 10, AntennaLeft: 0.4, AntennaRight: -0.2, Move: 300 * time.Millisecond, Hold: 400 * time.Millisecond},
		{Yaw: 12, Pitch: 12, Roll: 10, AntennaLeft: 0.4, AntennaRight: -0.2, Move: 300 * time.Millisecond, Hold: 400 * time.Millisecond},
		{Yaw: 16, Pitch: 12, Roll: 10, AntennaLeft: 0.4, AntennaRight: -0.2, Move: 300 * time.Millisecond, Hold: 400 * time.Millisecond},
	},

	// Four fast head flicks with antenna pops.
	EmotionExcited: {
		{Yaw: 15, Pitch: -12, Roll: 8, AntennaLeft: 0.8, AntennaRight: 0.8, Move: 120 * time.Millisecond, Hold: 80 * time.Millisecond},
		{Yaw: 15, Pitch: -12, Roll: 8, AntennaLeft: -0.3, AntennaRight: -0.3, Move: 80 * time.Millisecond, Hold: 80 * time.Millisecond},
		{Yaw: -10, Pitch: -12, Roll: -6, AntennaLeft: 0.8, AntennaRight: 0.8, Move: 120 * time.Millisecond, Hold: 80 * time.Millisecond},
		{Yaw: -10, Pitch: -12, Roll: -6, AntennaLeft: -0.3, AntennaRight: -0.3, Move: 80 * time.Millisecond, Hold: 80 * time.Millisecond},
		{Yaw: 8, Pitch: -12, Roll: 4, AntennaLeft: 0.8, AntennaRight: 0.8, Move: 120 * time.Millisecond, Hold: 80 * time.Millisecond},
		{Yaw: 8, Pitch: -12, Roll: 4, AntennaLeft: -0.3, AntennaRight: -0.3, Move: 80 * time.Millisecond, Hold: 80 * time.Millisecond},
		{Yaw: -15, Pitch: -12, Roll: -8, AntennaLeft: 0.8, AntennaRight: 0.8, Move: 120 * time.Millisecond, Hold: 80 * time.Millisecond},
		{Yaw: -15, Pitch: -12, Roll: -8, AntennaLeft: -0.3, AntennaRight: -0.3, Move: 80 * time.Millisecond, Hold: 80 * time.Millisecond},
	},

	// Tilt one way, then the other, antennas crossing.
	EmotionConfused: {
		{Yaw: -15, Pitch: 5, Roll: -12, AntennaLeft: 0.5, AntennaRight: -0.3, Move: 300 * time.Millisecond, Hold: 300 * time.Millisecond},
		{Yaw: 15, Pitch: 8, Roll: 12, AntennaLeft: -0.3, AntennaRight: 0.5, Move: 300 * time.Millisecond},
	},

	// Chin up, then a confident sideways nod.
	EmotionProud: {
		{Pitch: -8, AntennaLeft: 0.5, AntennaRight: 0.5, Move: 300 * time.Millisecond, Hold: 200 * time.Millisecond},
		{Yaw: 8, Pitch: -5, Roll: 3, AntennaLeft: 0.5, AntennaRight: 0.5, Move: 250 * time.Millisecond},
	},
}

// danceSteps maps each dance to one pass of its choreography; the dance
// loop repeats the pass until cancelled.
var danceSteps = map[Dance][]Step{
	// Smooth large 1-2-3 sweeps, antennas counter-swinging with the yaw.
	DanceFrenchWaltz: {
		{Yaw: 15, Pitch: -5, Roll: 10, AntennaLeft: 0.3, AntennaRight: -0.3, Move: 350 * time.Millisecond, Hold: 300 * time.Millisecond},
		{Yaw: 0, Pitch: 0, Roll: 5, AntennaLeft: -0.3, AntennaRight: 0.3, Move: 350 * time.Millisecond, Hold: 300 * time.Millisecond},
		{Yaw: -15, Pitch: 5, Roll: -5, AntennaLeft: -0.3, AntennaRight: 0.3, Move: 350 * time.Millisecond, Hold: 300 * time.Millisecond},
		{Yaw: 0, Pitch: 5, Roll: -10, AntennaLeft: -0.3, AntennaRight: 0.3, Move: 350 * time.Millisecond, Hold: 300 * time.Millisecond},
		{Yaw: 10, Pitch: -8, Roll: 8, AntennaLeft: 0.3, AntennaRight: -0.3, Move: 350 * time.Millisecond, Hold: 300 * time.Millisecond},
		{Yaw: -10, Pitch: 0, Roll: -8, AntennaLeft: -0.3, AntennaRight: 0.3, Move: 350 * time.Millisecond, Hold: 300 * time.Millisecond},
	},

	// Rapid symmetric bounces, then a big side-to-side finish.
	DanceCelebration: {
		{Pitch: -20, AntennaLeft: 0.8, AntennaRight: 0.8, Move: 100 * time.Millisecond, Hold: 100 * time.Millisecond},
		{Pitch: 10, AntennaLeft: -0.3, AntennaRight: -0.3, Move: 100 * time.Millisecond, Hold: 100 * time.Millisecond},
		{Pitch: -20, AntennaLeft: 0.8, AntennaRight: 0.8, Move: 100 * time.Millisecond, Hold: 100 * time.Millisecond},
		{Pitch: 10, AntennaLeft: -0.3, AntennaRight: -0.3, Move: 100 * time.Millisecond, Hold: 100 * time.Millisecond},
		{Yaw: 25, Pitch: -5, Roll: 15, AntennaLeft: 0.6, AntennaRight: -0.4, Move: 150 * time.Millisecond, Hold: 150 * time.Millisecond},
		{Yaw: -25, Pitch: -5, Roll: -15, AntennaLeft: -0.4, AntennaRight: 0.6, Move: 150 * time.Millisecond, Hold: 150 * time.Millisecond},
	},

	// Phase-shifted sine samples so the loop reads as one continuous groove.
	DanceThinkingGroove: {
		{Yaw: 0, Pitch: 10, Roll: 8, AntennaLeft: 0, AntennaRight: 0.3, Move: 400 * time.Millisecond, Hold: 350 * time.Millisecond},
		{Yaw: 7.2, Pitch: 11.9, Roll: 5.6, AntennaLeft: 0.22, AntennaRight: 0.21, Move: 400 * time.Millisecond, Hold: 350 * time.Millisecond},
		{Yaw: 10, Pitch: 13.6, Roll: -0.2, AntennaLeft: 0.3, AntennaRight: 0, Move: 400 * time.Millisecond, Hold: 350 * time.Millisecond},
		{Yaw: 6.8, Pitch: 14.7, Roll: -5.9, AntennaLeft: 0.2, AntennaRight: -0.22, Move: 400 * time.Millisecond, Hold: 350 * time.Millisecond},
	},

	// Short nod-and-tilt bursts.
	DanceBonjourBob: {
		{Pitch: 15, AntennaLeft: 0.4, AntennaRight: 0.4, Move: 200 * time.Millisecond, Hold: 150 * time.Millisecond},
		{Pitch: -5, AntennaLeft: 0.1, AntennaRight: 0.1, Move: 200 * time.Millisecond, Hold: 150 * time.Millisecond},
		{Yaw: 10, Pitch: 5, Roll: 8, AntennaLeft: 0.3, AntennaRight: -0.2, Move: 250 * time.Millisecond, Hold: 200 * time.Millisecond},
		{Yaw: -10, Pitch: 5, Roll: -8, AntennaLeft: -0.2, AntennaRight: 0.3, Move: 250 * time.Millisecond, Hold: 200 * time.Millisecond},
	},
}

// Emotions returns all emotion names with a choreography, for tool
// schemas and HTTP listings.
func Emotions() []Emotion {
	out := make([]Emotion, 0, len(emotionSteps))
	for e := range emotionSteps {
		out = append(out, e)
	}
	return out
}

// Dances returns all dance names with a choreography.
func Dances() []Dance {
	out := make([]Dance, 0, len(danceSteps))
	for d := range danceSteps {
		out = append(out, d)
	}
	return out
}
