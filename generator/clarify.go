package generator

import "strings"

var vagueWords = []string{"message", "speech", "toast", "letter", "something"}

// NeedsClarification flags short prompts that only name a vague artifact.
func NeedsClarification(prompt string) bool {
	words := strings.Split(strings.ToLower(prompt), " ")
	if len(words) >= 5 {
		return false
	}
	for _, w := range words {
		if contains(vagueWords, w) {
			return true
		}
	}
	return false
}

// Suggestions are the choices offered when a prompt needs clarification.
type Suggestions struct {
	Occasions     []string `json:"occasions"`
	Tones         []string `json:"tones"`
	Relationships []string `json:"relationships"`
}

func SuggestionsFor(string) Suggestions {
	return Suggestions{
		Occasions:     []string{"birthday", "wedding", "graduation", "apology", "thank you", "farewell", "anniversary", "funeral", "promotion"},
		Tones:         []string{"funny", "heartfelt", "emotional", "formal", "romantic", "religious", "motivational"},
		Relationships: []string{"mother", "father", "sister", "brother", "friend", "colleague", "teacher", "boss", "partner"},
	}
}

// ClarifyAnswers are the user's picks from Suggestions.
type ClarifyAnswers struct {
	Occasion     string `json:"occasion"`
	Tone         string `json:"tone"`
	Relationship string `json:"relationship"`
	Details      string `json:"details"`
}

// Clarify turns a vague prompt plus answers into a complete request. The original
// prompt stands in for details when none were given.
func Clarify(prompt string, a ClarifyAnswers) Request {
	details := strings.TrimSpace(a.Details)
	if details == "" {
		details = strings.TrimSpace(prompt)
	}
	text := strings.Join(strings.Fields(a.Occasion+" "+a.Tone+" message for my "+a.Relationship), " ") + ". " + details

	tone := Tone(strings.ToLower(strings.TrimSpace(a.Tone)))
	if tone == "" {
		tone = ToneHeartfelt
	}
	return Request{
		Prompt:       strings.TrimSpace(text),
		Format:       FormatMessage,
		Tone:         tone,
		Duration:     Duration2Min,
		Voice:        VoiceAdultFemale,
		Occasion:     a.Occasion,
		Relationship: a.Relationship,
	}
}
