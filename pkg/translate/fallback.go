package translate

import "math/rand/v2"

// fallbacks are served when OpenRouter is unreachable or no API key is
// configured, so the professor never goes silent.
var fallbacks = []Translation{
	{
		Original:          "Hello",
		FrenchTranslation: "Bonjour",
		CulturalFact:      "In France, it's considered rude to NOT say 'Bonjour' when entering a shop. Americans just walk in like they own the place!",
		PronunciationTip:  "Say 'bone-JOOR' - pretend you're slightly annoyed to be awake",
	},
	{
		Original:          "How are you?",
		FrenchTranslation: "Comment allez-vous?",
		CulturalFact:      "In France, 'Comment ça va?' literally asks about your digestive system. King Louis XIV popularized asking this to monitor his court's health!",
		PronunciationTip:  "Say it fast like you're late for a croissant appointment",
	},
	{
		Original:          "Thank you",
		FrenchTranslation: "Merci",
		CulturalFact:      "Americans say 'thank you' an average of 50 times per day. The French think this makes you seem insincere or suspicious!",
		PronunciationTip:  "'Mer-SEE' - emphasize the second syllable like a pleased cat",
	},
}

// Fallback returns a canned response for the given text. The French
// will not match the input, which is part of the joke.
func Fallback(text string) Translation {
	f := fallbacks[rand.IntN(len(fallbacks))]
	f.Original = text
	return f
}
