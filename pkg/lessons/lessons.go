// Package lessons holds the professor's built-in French curriculum:
// four themed lessons of phrases with pronunciation guides and the
// cultural facts that make them stick.
package lessons

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned for unknown lesson IDs or phrase indices.
var ErrNotFound = errors.New("lesson not found")

// Phrase is a single teachable phrase within a lesson.
type Phrase struct {
	English       string `json:"english"`
	French        string `json:"french"`
	Pronunciation string `json:"pronunciation"`
	Tip           string `json:"tip"`
	CulturalFact  string `json:"cultural_fact"`
}

// Lesson is a themed set of phrases.
type Lesson struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Phrases     []Phrase `json:"phrases"`
}

// Summary describes a lesson without its phrases, for list views.
type Summary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	PhraseCount int    `json:"phrase_count"`
}

// PhraseAt is a phrase plus its position within the lesson, so the UI
// can render progress and know when the lesson is done.
type PhraseAt struct {
	Phrase
	LessonID     string `json:"lesson_id"`
	PhraseIndex  int    `json:"phrase_index"`
	TotalPhrases int    `json:"total_phrases"`
	IsLast       bool   `json:"is_last"`
}

var catalog = []Lesson{
	{
		ID:          "greetings",
		Title:       "Greetings & Basics",
		Description: "Learn how to say hello, goodbye, and basic pleasantries",
		Icon:        "👋",
		Phrases: []Phrase{
			{
				English:       "Hello",
				French:        "Bonjour",
				Pronunciation: "bohn-ZHOOR",
				Tip:           "Use this until evening, then switch to 'Bonsoir'",
				CulturalFact:  "In France, you MUST say Bonjour when entering any shop. Not doing so is considered extremely rude!",
			},
			{
				English:       "Good evening",
				French:        "Bonsoir",
				Pronunciation: "bohn-SWAHR",
				Tip:           "Use after around 6 PM",
				CulturalFact:  "The French take their greetings seriously - they'll judge your entire character based on how you say hello!",
			},
			{
				English:       "How are you?",
				French:        "Comment ça va?",
				Pronunciation: "koh-mahn sah VAH",
				Tip:           "Casual version. Formal: 'Comment allez-vous?'",
				CulturalFact:  "This phrase literally asks about your digestive system! King Louis XIV used it to monitor his court's health.",
			},
			{
				English:       "I'm fine, thank you",
				French:        "Ça va bien, merci",
				Pronunciation: "sah vah bee-EN, mair-SEE",
				Tip:           "Even if you're having a terrible day, this is the expected response",
				CulturalFact:  "Unlike Americans who might share their life story, the French keep it brief!",
			},
			{
				English:       "Goodbye",
				French:        "Au revoir",
				Pronunciation: "oh ruh-VWAHR",
				Tip:           "Literally means 'until we see each other again'",
				CulturalFact:  "The French have many goodbyes: 'Salut' (casual), 'À bientôt' (see you soon), 'Bonne journée' (have a good day)",
			},
			{
				English:       "Please",
				French:        "S'il vous plaît",
				Pronunciation: "seel voo PLAY",
				Tip:           "Literally: 'if it pleases you' - very polite!",
				CulturalFact:  "The French find Americans say 'please' too much, making it seem insincere!",
			},
			{
				English:       "Thank you very much",
				French:        "Merci beaucoup",
				Pronunciation: "mair-SEE boh-KOO",
				Tip:           "Don't overuse it or you'll sound like a tourist!",
				CulturalFact:  "The French thank less frequently but more meaningfully than Americans.",
			},
		},
	},
	{
		ID:          "restaurant",
		Title:       "At the Restaurant",
		Description: "Essential phrases for dining in France",
		Icon:        "🍽️",
		Phrases: []Phrase{
			{
				English:       "A table for two, please",
				French:        "Une table pour deux, s'il vous plaît",
				Pronunciation: "oon TAHBL poor DUH, seel voo PLAY",
				Tip:           "The waiter might ask 'Vous avez réservé?' (Did you reserve?)",
				CulturalFact:  "In France, you wait to be seated. Don't just grab a table like in America!",
			},
			{
				English:       "The menu, please",
				French:        "La carte, s'il vous plaît",
				Pronunciation: "lah KART, seel voo PLAY",
				Tip:           "'Le menu' actually means the fixed-price meal!",
				CulturalFact:  "French menus often have no pictures - you're expected to know what you're ordering!",
			},
			{
				English:       "I would like...",
				French:        "Je voudrais...",
				Pronunciation: "zhuh voo-DRAY",
				Tip:           "More polite than 'Je veux' (I want)",
				CulturalFact:  "The French consider saying 'I want' to be rude - always use 'I would like'!",
			},
			{
				English:       "The check, please",
				French:        "L'addition, s'il vous plaît",
				Pronunciation: "lah-dee-see-OHN, seel voo PLAY",
				Tip:           "You MUST ask for it - they'll never bring it automatically",
				CulturalFact:  "In France, rushing someone through a meal is the ultimate insult. The waiter is being POLITE by not bringing the check!",
			},
			{
				English:       "It's delicious!",
				French:        "C'est délicieux!",
				Pronunciation: "say day-lee-see-UH",
				Tip:           "The chef will appreciate this compliment",
				CulturalFact:  "The French take their food very seriously - a compliment to the chef is like a standing ovation!",
			},
			{
				English:       "A glass of red wine",
				French:        "Un verre de vin rouge",
				Pronunciation: "uhn VEHR duh van ROOZH",
				Tip:           "Wine is often cheaper than water in France!",
				CulturalFact:  "Asking for ice in your wine is a crime against humanity in France. Don't do it.",
			},
		},
	},
	{
		ID:          "emergency",
		Title:       "Essential Phrases",
		Description: "Phrases you need to know for getting around",
		Icon:        "🆘",
		Phrases: []Phrase{
			{
				English:       "Excuse me",
				French:        "Excusez-moi",
				Pronunciation: "ex-koo-zay MWAH",
				Tip:           "Use this to get someone's attention politely",
				CulturalFact:  "The French value personal space - always say this before interrupting someone!",
			},
			{
				English:       "I don't understand",
				French:        "Je ne comprends pas",
				Pronunciation: "zhuh nuh kohm-PRAHN pah",
				Tip:           "They might switch to English (but appreciate you trying!)",
				CulturalFact:  "The French respect effort - even bad French is better than assuming everyone speaks English!",
			},
			{
				English:       "Where is the bathroom?",
				French:        "Où sont les toilettes?",
				Pronunciation: "oo sohn lay twah-LET",
				Tip:           "In cafes, you usually need to buy something first",
				CulturalFact:  "French public toilets can be... adventures. Some are just holes in the ground!",
			},
			{
				English:       "I am lost",
				French:        "Je suis perdu",
				Pronunciation: "zhuh swee pair-DOO",
				Tip:           "Add 'e' at the end if you're female: 'perdue'",
				CulturalFact:  "The French love giving directions, even if they're not entirely sure!",
			},
			{
				English:       "Can you help me?",
				French:        "Pouvez-vous m'aider?",
				Pronunciation: "poo-vay VOO may-DAY",
				Tip:           "Always start with 'Excusez-moi' first",
				CulturalFact:  "Parisians have a reputation for being unhelpful, but outside Paris, people are incredibly warm!",
			},
			{
				English:       "I don't speak French well",
				French:        "Je ne parle pas bien français",
				Pronunciation: "zhuh nuh PARL pah bee-EN frahn-SAY",
				Tip:           "This humble admission will earn you goodwill!",
				CulturalFact:  "The French appreciate any attempt at their language, even if imperfect!",
			},
		},
	},
	{
		ID:          "flirting",
		Title:       "Romance & Compliments",
		Description: "Because it's France, after all! 💕",
		Icon:        "❤️",
		Phrases: []Phrase{
			{
				English:       "You have beautiful eyes",
				French:        "Vous avez de beaux yeux",
				Pronunciation: "vooz ah-VAY duh boh ZYUH",
				Tip:           "A classic French compliment!",
				CulturalFact:  "The French are masters of the subtle compliment - it's an art form there!",
			},
			{
				English:       "Would you like to have a coffee?",
				French:        "Voulez-vous prendre un café?",
				Pronunciation: "voo-lay VOO prahn-druh uhn kah-FAY",
				Tip:           "Coffee = casual date in France",
				CulturalFact:  "In France, asking for coffee is like asking someone out. It's more intimate than it sounds!",
			},
			{
				English:       "You are very charming",
				French:        "Vous êtes très charmant(e)",
				Pronunciation: "vooz ET tray shar-MAHN(T)",
				Tip:           "Add the 't' sound for feminine",
				CulturalFact:  "The French invented the word 'charming' - they take it very seriously!",
			},
			{
				English:       "I love you",
				French:        "Je t'aime",
				Pronunciation: "zhuh TEM",
				Tip:           "Only say this if you REALLY mean it!",
				CulturalFact:  "The French don't throw around 'I love you' casually like Americans. It's reserved for true love!",
			},
		},
	},
}

var byID = func() map[string]*Lesson {
	m := make(map[string]*Lesson, len(catalog))
	for i := range catalog {
		m[catalog[i].ID] = &catalog[i]
	}
	return m
}()

// List returns a summary of every lesson, in curriculum order.
func List() []Summary {
	out := make([]Summary, 0, len(catalog))
	for _, l := range catalog {
		out = append(out, Summary{
			ID:          l.ID,
			Title:       l.Title,
			Description: l.Description,
			Icon:        l.Icon,
			PhraseCount: len(l.Phrases),
		})
	}
	return out
}

// Get returns the full lesson for the given ID.
func Get(id string) (*Lesson, error) {
	l, ok := byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return l, nil
}

// PhraseIn returns a phrase by lesson ID and zero-based index, with
// positional metadata attached.
func PhraseIn(id string, index int) (*PhraseAt, error) {
	l, ok := byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if index < 0 || index >= len(l.Phrases) {
		return nil, fmt.Errorf("%w: %q has no phrase %d", ErrNotFound, id, index)
	}
	return &PhraseAt{
		Phrase:       l.Phrases[index],
		LessonID:     id,
		PhraseIndex:  index,
		TotalPhrases: len(l.Phrases),
		IsLast:       index == len(l.Phrases)-1,
	}, nil
}
