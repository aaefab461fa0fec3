package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTweakKind(t *testing.T) {
	k, err := ParseTweakKind(" Funnier ")
	require.NoError(t, err)
	assert.Equal(t, TweakFunnier, k)

	_, err = ParseTweakKind("louder")
	assert.Error(t, err)
}

func TestParseTweakStrategy(t *testing.T) {
	s, err := ParseTweakStrategy("")
	require.NoError(t, err)
	assert.Equal(t, StrategyMutate, s)

	s, err = ParseTweakStrategy("REGENERATE")
	require.NoError(t, err)
	assert.Equal(t, StrategyRegenerate, s)

	_, err = ParseTweakStrategy("both")
	assert.Error(t, err)
}

func TestApplyTweakNeverPanics(t *testing.T) {
	inputs := map[string]string{
		"empty":    "",
		"one word": "hello",
		"huge":     strings.Repeat("word ", 10000),
	}
	c := TweakContext{Name: "Sam", Rand: scriptedRand{2}}
	for _, kind := range append(TweakKinds(), TweakKind("unknown")) {
		for name, in := range inputs {
			t.Run(string(kind)+"/"+name, func(t *testing.T) {
				var out string
				assert.NotPanics(t, func() { out = ApplyTweak(in, kind, c) })
				if in != "" && kind != TweakShorter {
					assert.NotEmpty(t, out)
				}
			})
		}
	}
}

func TestApplyTweak(t *testing.T) {
	c := TweakContext{Name: "Sam", Rand: scriptedRand{0}}
	text := "Dear Sam,\n\nI'm proud. You can't stop now. Keep going.\n\nSincerely,\n[Your name]"
	casual := "Hey Sam,\n\nI'm proud. You can't stop now. Keep going.\n\nLove,\n[Your name]"

	assert.Equal(t, "Dear Sam,\n\nI am proud. You cannot stop now. Keep going.\n\nSincerely,\n[Your name]", ApplyTweak(text, TweakFormal, c))
	assert.Equal(t, "Dear Sam,\n\nI'm proud. You can't stop now.", ApplyTweak(text, TweakShorter, c))
	assert.Equal(t, casual, ApplyTweak(text, TweakReal, c))
	assert.Equal(t, text, ApplyTweak(casual, TweakClean, c))
	assert.Equal(t, text, ApplyTweak(text, TweakClean, c))
	assert.Equal(t, text+"\n\n(And yes, Sam, I practiced this speech in the mirror!)", ApplyTweak(text, TweakFunnier, c))
	assert.Equal(t, text+"\n\nSam, you have no idea how much you mean to me. These words feel inadequate to express the depth of my feelings.",
		ApplyTweak(text, TweakEmotional, c))
	assert.Equal(t, text, ApplyTweak(text, TweakKind("sparkle"), c))
}

func TestShortenCompounds(t *testing.T) {
	text := uniformText(8, 3)
	once := Shorten(text)
	twice := Shorten(once)
	assert.Equal(t, 12, WordCount(once))
	assert.Equal(t, 6, WordCount(twice))
	assert.True(t, strings.HasSuffix(twice, "."))
}

func TestRequestForTweak(t *testing.T) {
	base := Request{Tone: ToneHeartfelt, Duration: Duration5Min, RealTalk: true}

	assert.Equal(t, ToneFunny, RequestForTweak(base, TweakFunnier).Tone)
	assert.Equal(t, ToneEmotional, RequestForTweak(base, TweakEmotional).Tone)
	assert.Equal(t, ToneFormal, RequestForTweak(base, TweakFormal).Tone)
	assert.Equal(t, Duration3Min, RequestForTweak(base, TweakShorter).Duration)
	assert.False(t, RequestForTweak(base, TweakClean).RealTalk)
	assert.True(t, RequestForTweak(Request{}, TweakReal).RealTalk)
	assert.Equal(t, Duration5Min, base.Duration, "input is not mutated")

	steps := map[Duration]Duration{
		Duration30s:    Duration15s,
		Duration15s:    Duration15s,
		DurationLong:   DurationMedium,
		DurationShort:  DurationShort,
		DurationCustom: Duration1Min,
		"":             Duration1Min,
	}
	for in, want := range steps {
		assert.Equal(t, want, RequestForTweak(Request{Duration: in}, TweakShorter).Duration, string(in))
	}
}
