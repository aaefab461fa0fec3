package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGenerateWeddingToast(t *testing.T) {
	g := New(WithSeed(7), WithLogger(zaptest.NewLogger(t)))
	content := g.Generate(Request{
		Prompt:   "Wedding toast for my daughter Emma and her fiancé James",
		Format:   FormatToast,
		Tone:     ToneHeartfelt,
		Duration: Duration2Min,
		Voice:    VoiceAdultFemale,
	})

	assert.Equal(t, OccasionWedding, content.Signals.Occasion)
	assert.Equal(t, "wedding-toast-heartfelt", content.Template)
	assert.GreaterOrEqual(t, content.WordCount, 240)
	assert.LessOrEqual(t, content.WordCount, 360)
	assert.Equal(t, "2 minutes", content.EstimatedDuration)
	assert.Equal(t, []string{"Emma"}, content.Signals.Names)
	assert.Contains(t, content.Text, "You are my daughter")
	assert.Empty(t, content.SubjectLine)
}

func TestGenerateWeddingToastLengthPerDuration(t *testing.T) {
	g := New(WithSeed(7))
	tests := []struct {
		duration Duration
		words    int
		inBand   bool
	}{
		{Duration15s, 41, true},
		{Duration30s, 69, true},
		{Duration1Min, 182, false}, // ten ". " chunks: ceil(10*150/264) = 6 overshoots
		{Duration2Min, 264, true},
		{Duration3Min, 278, false}, // padded once, still short
		{Duration5Min, 278, false},
		{DurationShort, 69, true},
		{DurationMedium, 264, true},
		{DurationLong, 278, false},
		{DurationCustom, 264, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.duration), func(t *testing.T) {
			content := g.Generate(Request{
				Prompt:   "Wedding toast for my daughter Emma and her fiancé James",
				Format:   FormatToast,
				Tone:     ToneHeartfelt,
				Duration: tt.duration,
			})
			require.Equal(t, "wedding-toast-heartfelt", content.Template)
			assert.Equal(t, tt.words, content.WordCount)

			target := float64(TargetWords(tt.duration))
			inBand := float64(content.WordCount) >= 0.8*target && float64(content.WordCount) <= 1.2*target
			assert.Equal(t, tt.inBand, inBand)
		})
	}
}

func TestGenerateApologyMessage(t *testing.T) {
	g := New(WithRand(scriptedRand{0}))
	content := g.Generate(Request{
		Prompt: "Apology to my best friend Mike after our argument",
		Format: FormatMessage,
		Tone:   ToneEmotional,
	})

	assert.Equal(t, RelationFriend, content.Signals.Relationship)
	assert.Equal(t, []string{"Mike"}, content.Signals.Names)
	assert.Equal(t, OccasionApology, content.Signals.Occasion)
	assert.Equal(t, "apology-message-heartfelt", content.Template)
	assert.True(t, strings.HasPrefix(content.Text, "Mike, I need to talk to you"))
	assert.Contains(t, content.Text, "Mike, you have no idea how much you mean to me.")
}

func TestGenerateArgumentWithoutApologyKeywordIsGeneric(t *testing.T) {
	content := New(WithSeed(1)).Generate(Request{
		Prompt: "Message to my best friend Mike after our argument",
		Format: FormatMessage,
		Tone:   ToneEmotional,
	})
	assert.Empty(t, content.Signals.Occasion)
	assert.Equal(t, "generic-message-heartfelt", content.Template)
}

func TestGenerateStructureIsStableAcrossSeeds(t *testing.T) {
	req := Request{
		Prompt:          "Funny birthday toast for my brother Leo who never stops talking about football",
		Format:          FormatToast,
		Tone:            ToneFunny,
		Duration:        Duration1Min,
		CulturalContext: CultureNigerian,
	}
	first := New(WithSeed(1)).Generate(req)
	for seed := int64(2); seed < 10; seed++ {
		again := New(WithSeed(seed)).Generate(req)
		assert.Equal(t, first.Template, again.Template)
		assert.Equal(t, first.Signals, again.Signals)
	}
}

func TestGeneratePinnedFiller(t *testing.T) {
	req := Request{Prompt: "Birthday message for Ava", Format: FormatMessage, Tone: ToneFunny, Duration: Duration2Min}
	for i, line := range FillerPool(ToneFunny) {
		content := New(WithRand(scriptedRand{i})).Generate(req)
		assert.Contains(t, content.Text, strings.ReplaceAll(line, "%s", "Ava"))
	}
}

func TestGenerateNoOpStagesMatchTemplatePlusLength(t *testing.T) {
	req := Request{
		Prompt:          "Graduation speech for my cousin Nia",
		Format:          FormatSpeech,
		Tone:            Tone("unknown-value"),
		Duration:        Duration1Min,
		CulturalContext: CultureUniversal,
		RoleVoice:       RoleSelf,
	}
	s := Analyze(req.Prompt)
	want := strings.TrimSpace(AdjustLength(Render(req, s).Body, req.Duration, req.Tone))

	assert.Equal(t, want, New(WithSeed(3)).Generate(req).Text)
}

func TestGenerateChristianSuffixAppearsOnce(t *testing.T) {
	suffix := CulturalSuffix(CultureChristian)
	prompts := []string{"Wedding toast for my daughter Emma", "A note for my coworker"}
	for _, prompt := range prompts {
		for _, f := range formats {
			for _, tone := range tones {
				content := New(WithSeed(5)).Generate(Request{
					Prompt:          prompt,
					Format:          f,
					Tone:            tone,
					Duration:        Duration2Min,
					CulturalContext: CultureChristian,
				})
				assert.Equal(t, 1, strings.Count(content.Text, suffix), "%s/%s/%s", prompt, f, tone)
			}
		}
	}
}

func TestGenerateUnknownValuesDegrade(t *testing.T) {
	content := New(WithSeed(1)).Generate(Request{
		Prompt:          "something",
		Format:          Format("hologram"),
		Tone:            Tone("sarcastic"),
		Duration:        Duration("eternity"),
		CulturalContext: CulturalContext("martian"),
		RoleVoice:       RoleVoice("ghost"),
	})
	require.NotEmpty(t, content.Text)
	assert.Equal(t, "generic-message-heartfelt", content.Template)
	assert.Equal(t, StickersFor(ToneHeartfelt), content.Stickers)
	assert.Equal(t, VisualStyleFor(ToneHeartfelt), content.VisualStyle)
}

func TestGenerateEmptyRequest(t *testing.T) {
	var content Content
	require.NotPanics(t, func() { content = New().Generate(Request{}) })
	assert.NotEmpty(t, content.Text)
	assert.Equal(t, WordCount(content.Text), content.WordCount)
}

func TestGenerateSubjectLines(t *testing.T) {
	g := New(WithSeed(1))

	email := g.Generate(Request{Prompt: "Birthday email to Anna", Format: FormatEmail, Tone: ToneHeartfelt})
	assert.Equal(t, "Happy Birthday, Anna!", email.SubjectLine)

	msg := g.Generate(Request{Prompt: "Birthday message to Anna", Format: FormatMessage, Tone: ToneHeartfelt})
	assert.Empty(t, msg.SubjectLine)
}

func TestGenerateRealTalk(t *testing.T) {
	content := New(WithSeed(1)).Generate(Request{
		Prompt:   "I am resigning",
		Format:   FormatResignation,
		Tone:     ToneHeartfelt,
		RealTalk: true,
	})
	assert.True(t, strings.HasPrefix(content.Text, "Hey Manager,"))
	assert.Contains(t, content.Text, "Love,\n[Your name]")
	assert.NotContains(t, content.Text, "Sincerely,")
}

func TestCleanTweakKeepsRoleFrames(t *testing.T) {
	g := New(WithSeed(1))
	tests := map[RoleVoice]string{
		RolePet:       "Hey Ava!",
		RoleChildSelf: "Love,\nLittle You",
	}
	for role, framing := range tests {
		t.Run(string(role), func(t *testing.T) {
			req := Request{Prompt: "Birthday message for Ava", Format: FormatMessage, Tone: ToneHeartfelt, Duration: Duration2Min, RoleVoice: role}
			text := g.Generate(req).Text
			require.Contains(t, text, framing)

			assert.Equal(t, text, g.Tweak(text, TweakClean, req))
		})
	}
}

func TestGenerateOverrides(t *testing.T) {
	content := New(WithSeed(1)).Generate(Request{
		Prompt:     "a message",
		Format:     FormatMessage,
		Tone:       ToneHeartfelt,
		Occasion:   "graduation",
		PersonName: "jane",
	})
	assert.Equal(t, "graduation-message-heartfelt", content.Template)
	assert.Equal(t, "Jane", content.Signals.Names[0])
	assert.Contains(t, content.Text, "Congratulations, Jane!")
}

func TestGenerateRoleVoice(t *testing.T) {
	content := New(WithSeed(1)).Generate(Request{
		Prompt:    "Birthday message for Ava",
		Format:    FormatMessage,
		Tone:      ToneHeartfelt,
		Duration:  Duration2Min,
		RoleVoice: RoleFutureSelf,
	})
	assert.True(t, strings.HasPrefix(content.Text, "Hey there, past me."))
	assert.Contains(t, content.Text, "say this to Ava:")
	assert.Contains(t, content.Text, "Future You")
}

func TestEstimatedDuration(t *testing.T) {
	tests := map[int]string{
		0:   "1 minute",
		1:   "1 minute",
		150: "1 minute",
		151: "2 minutes",
		300: "2 minutes",
		301: "3 minutes",
	}
	for words, want := range tests {
		assert.Equal(t, want, EstimatedDuration(words), words)
	}
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount(" \n\t "))
	assert.Equal(t, 3, WordCount("  a  b\n\nc "))
}

func TestDigest(t *testing.T) {
	assert.Equal(t, "Hello world", Digest("\n\n  Hello   world\nsecond line", 0))
	assert.Equal(t, "Hel…", Digest("Hello", 3))
	assert.Equal(t, "", Digest("", 10))
}

func TestCosmeticsDefaultToHeartfelt(t *testing.T) {
	assert.Equal(t, []string{"😂", "🤣", "😄", "🎉", "🤪"}, StickersFor(ToneFunny))
	assert.Equal(t, StickersFor(ToneHeartfelt), StickersFor(ToneCasual))
	assert.Equal(t, "cursive", VisualStyleFor(ToneRomantic).FontFamily)
	assert.Equal(t, VisualStyleFor(ToneHeartfelt), VisualStyleFor(ToneReligious))

	s := StickersFor(ToneFunny)
	s[0] = "x"
	assert.Equal(t, "😂", StickersFor(ToneFunny)[0])
}

func TestFallback(t *testing.T) {
	content := Fallback(Request{Prompt: "toast for Bo", Format: FormatToast, Tone: ToneFunny})
	assert.True(t, strings.HasPrefix(content.Text, "I understand you're looking for a toast with a funny tone."))
	assert.Contains(t, content.Text, `Based on your request: "toast for Bo"`)
	assert.Equal(t, "1 minute", content.EstimatedDuration)
	assert.Equal(t, []string{"💙", "✨", "🤗"}, content.Stickers)
	assert.Equal(t, WordCount(content.Text), content.WordCount)
}
