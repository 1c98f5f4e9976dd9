package behaviors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoreographyTables_CoverAllVariants(t *testing.T) {
	emotions := []Emotion{
		EmotionHappy, EmotionSad, EmotionSurprised, EmotionThinking,
		EmotionExcited, EmotionConfused, EmotionProud, EmotionDisappointed,
	}
	for _, e := range emotions {
		steps, ok := emotionSteps[e]
		require.True(t, ok, "emotion %q has no choreography", e)
		require.NotEmpty(t, steps, "emotion %q choreography is empty", e)
	}

	dances := []Dance{DanceFrenchWaltz, DanceCelebration, DanceThinkingGroove, DanceBonjourBob}
	for _, d := range dances {
		steps, ok := danceSteps[d]
		require.True(t, ok, "dance %q has no choreography", d)
		require.NotEmpty(t, steps, "dance %q choreography is empty", d)
	}

	assert.Len(t, Emotions(), len(emotions))
	assert.Len(t, Dances(), len(dances))
}

func TestChoreographySteps_HaveTransitionTime(t *testing.T) {
	for e, steps := range emotionSteps {
		for i, s := range steps {
			assert.Positive(t, s.Move, "emotion %q step %d has no transition time", e, i)
		}
	}
	for d, steps := range danceSteps {
		for i, s := range steps {
			assert.Positive(t, s.Move, "dance %q step %d has no transition time", d, i)
		}
	}
}

func TestParseEmotion(t *testing.T) {
	e, err := ParseEmotion("happy")
	require.NoError(t, err)
	assert.Equal(t, EmotionHappy, e)

	_, err = ParseEmotion("grumpy")
	assert.ErrorIs(t, err, ErrUnknownEmotion)
}

func TestParseDance(t *testing.T) {
	d, err := ParseDance("bonjour_bob")
	require.NoError(t, err)
	assert.Equal(t, DanceBonjourBob, d)

	_, err = ParseDance("tango")
	assert.ErrorIs(t, err, ErrUnknownDance)
}

func TestDisappointed_SharesSadDroop(t *testing.T) {
	assert.Equal(t, emotionSteps[EmotionSad], emotionSteps[EmotionDisappointed])
}
