package lessons

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_CoversCatalog(t *testing.T) {
	summaries := List()
	require.Len(t, summaries, 4)

	assert.Equal(t, "greetings", summaries[0].ID)
	assert.Equal(t, 7, summaries[0].PhraseCount)
	assert.Equal(t, "Greetings & Basics", summaries[0].Title)

	for _, s := range summaries {
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Description)
		assert.Greater(t, s.PhraseCount, 0)
	}
}

func TestGet(t *testing.T) {
	l, err := Get("restaurant")
	require.NoError(t, err)
	assert.Equal(t, "At the Restaurant", l.Title)
	assert.Len(t, l.Phrases, 6)
	assert.Equal(t, "Une table pour deux, s'il vous plaît", l.Phrases[0].French)

	_, err = Get("astrophysics")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPhraseIn(t *testing.T) {
	p, err := PhraseIn("greetings", 0)
	require.NoError(t, err)
	assert.Equal(t, "Bonjour", p.French)
	assert.Equal(t, "greetings", p.LessonID)
	assert.Equal(t, 7, p.TotalPhrases)
	assert.False(t, p.IsLast)

	last, err := PhraseIn("greetings", 6)
	require.NoError(t, err)
	assert.True(t, last.IsLast)

	_, err = PhraseIn("greetings", 7)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = PhraseIn("greetings", -1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = PhraseIn("nope", 0)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestPhrases_AllComplete(t *testing.T) {
	for _, s := range List() {
		l, err := Get(s.ID)
		require.NoError(t, err)
		for i, p := range l.Phrases {
			assert.NotEmpty(t, p.English, "%s[%d]", s.ID, i)
			assert.NotEmpty(t, p.French, "%s[%d]", s.ID, i)
			assert.NotEmpty(t, p.Pronunciation, "%s[%d]", s.ID, i)
			assert.NotEmpty(t, p.CulturalFact, "%s[%d]", s.ID, i)
		}
	}
}
