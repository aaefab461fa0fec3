package generator

import (
	"fmt"
	"math"
	"strings"
)

// TweakKind is a post-hoc user action on generated text.
type TweakKind string

const (
	TweakFunnier   TweakKind = "funnier"
	TweakEmotional TweakKind = "emotional"
	TweakFormal    TweakKind = "formal"
	TweakShorter   TweakKind = "shorter"
	TweakReal      TweakKind = "real"
	TweakClean     TweakKind = "clean"
)

var tweakKinds = []TweakKind{TweakFunnier, TweakEmotional, TweakFormal, TweakShorter, TweakReal, TweakClean}

// TweakKinds lists every supported tweak.
func TweakKinds() []TweakKind { return append([]TweakKind(nil), tweakKinds...) }

func (k TweakKind) Valid() bool { return contains(tweakKinds, k) }

// ParseTweakKind accepts a kind case-insensitively.
func ParseTweakKind(s string) (TweakKind, error) {
	k := TweakKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown tweak %q", s)
	}
	return k, nil
}

// TweakStrategy decides whether a tweak edits the current text or regenerates.
type TweakStrategy string

const (
	// StrategyMutate edits the current text in place; tweaks compound.
	StrategyMutate TweakStrategy = "mutate"
	// StrategyRegenerate re-runs the original request with one field overridden;
	// earlier tweaks are lost.
	StrategyRegenerate TweakStrategy = "regenerate"
)

func ParseTweakStrategy(s string) (TweakStrategy, error) {
	switch TweakStrategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyMutate, "":
		return StrategyMutate, nil
	case StrategyRegenerate:
		return StrategyRegenerate, nil
	}
	return "", fmt.Errorf("unknown tweak strategy %q", s)
}

// TweakContext carries what text-mutating tweaks need besides the text.
type TweakContext struct {
	Name string
	Rand Rand
}

// ApplyTweak mutates text once. It is total: unknown kinds and empty input pass through.
func ApplyTweak(text string, kind TweakKind, c TweakContext) string {
	switch kind {
	case TweakFunnier:
		return appendFiller(text, ToneFunny, c)
	case TweakEmotional:
		return appendFiller(text, ToneEmotional, c)
	case TweakFormal:
		return Formalize(text)
	case TweakShorter:
		return Shorten(text)
	case TweakReal:
		return RealTalk(text)
	case TweakClean:
		return CleanUp(text)
	}
	return text
}

func appendFiller(text string, tone Tone, c TweakContext) string {
	if c.Rand == nil {
		return text
	}
	name := c.Name
	if name == "" {
		name = "you"
	}
	return appendBlock(text, fillerFor(fillerPools[tone], name, c.Rand))
}

// Shorten keeps the first half of the sentences, rounded up.
func Shorten(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	sentences := strings.Split(text, ". ")
	keep := int(math.Ceil(float64(len(sentences)) / 2))
	return joinSentences(sentences[:keep])
}

// RequestForTweak is the regenerate strategy: req with the field the tweak maps to
// overridden.
func RequestForTweak(req Request, kind TweakKind) Request {
	switch kind {
	case TweakFunnier:
		req.Tone = ToneFunny
	case TweakEmotional:
		req.Tone = ToneEmotional
	case TweakFormal:
		req.Tone = ToneFormal
	case TweakShorter:
		req.Duration = shorterDuration(req.Duration)
	case TweakReal:
		req.RealTalk = true
	case TweakClean:
		req.RealTalk = false
	}
	return req
}

var durationSteps = map[Duration]Duration{
	Duration5Min:   Duration3Min,
	Duration3Min:   Duration2Min,
	Duration2Min:   Duration1Min,
	Duration1Min:   Duration30s,
	Duration30s:    Duration15s,
	Duration15s:    Duration15s,
	DurationLong:   DurationMedium,
	DurationMedium: DurationShort,
	DurationShort:  DurationShort,
}

func shorterDuration(d Duration) Duration {
	if next, ok := durationSteps[d]; ok {
		return next
	}
	return Duration1Min
}
