package behaviors

import "errors"

// Sentinel errors for the behaviors package.
var (
	// ErrUnknownEmotion is returned when no choreography exists for
	// the requested emotion name.
	ErrUnknownEmotion = errors.New("unknown emotion")

	// ErrUnknownDance is returned when no choreography exists for the
	// requested dance name.
	ErrUnknownDance = errors.New("unknown dance")
)

// ParseEmotion validates an emotion name from an external caller
// (tool call, HTTP trigger) against the choreography table.
func ParseEmotion(name string) (Emotion, error) {
	e := Emotion(name)
	if _, ok := emotionSteps[e]; !ok {
		return "", ErrUnknownEmotion
	}
	return e, nil
}

// ParseDance validates a dance name against the choreography table.
func ParseDance(name string) (Dance, error) {
	d := Dance(name)
	if _, ok := danceSteps[d]; !ok {
		return "", ErrUnknownDance
	}
	return d, nil
}
