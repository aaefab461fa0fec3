package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeedsClarification(t *testing.T) {
	tests := map[string]bool{
		"a speech":                  true,
		"Toast":                     true,
		"write something nice":      true,
		"hello there":               false,
		"speech for my mom's party": false,
		"":                          false,
	}
	for prompt, want := range tests {
		assert.Equal(t, want, NeedsClarification(prompt), prompt)
	}
}

func TestSuggestionsFor(t *testing.T) {
	s := SuggestionsFor("a toast")
	assert.Contains(t, s.Occasions, "thank you")
	assert.Contains(t, s.Tones, "motivational")
	assert.Contains(t, s.Relationships, "partner")
}

func TestClarify(t *testing.T) {
	req := Clarify("a message", ClarifyAnswers{Occasion: "birthday", Tone: "funny", Relationship: "sister", Details: "she loves cats"})

	assert.Equal(t, "birthday funny message for my sister. she loves cats", req.Prompt)
	assert.Equal(t, FormatMessage, req.Format)
	assert.Equal(t, ToneFunny, req.Tone)
	assert.Equal(t, Duration2Min, req.Duration)
	assert.Equal(t, VoiceAdultFemale, req.Voice)

	content := New(WithSeed(1)).Generate(req)
	assert.Equal(t, "birthday-message-funny", content.Template)
	assert.Equal(t, RelationFamily, content.Signals.Relationship)
	assert.Equal(t, "sister", content.Signals.RelationshipTerm)
}

func TestClarifyDefaults(t *testing.T) {
	req := Clarify("a toast", ClarifyAnswers{Occasion: "thank you", Relationship: "boss"})

	assert.Equal(t, ToneHeartfelt, req.Tone)
	assert.Equal(t, "thank you message for my boss. a toast", req.Prompt)

	content := New(WithSeed(1)).Generate(req)
	assert.Equal(t, OccasionThankYou, content.Signals.Occasion)
	assert.Equal(t, "thank-you-message-heartfelt", content.Template)
}
