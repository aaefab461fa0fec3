package generator

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// WordsPerMinute is the speaking rate behind every duration estimate.
const WordsPerMinute = 150

// Rand is the only source of variation in the engine. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// StageContext is the read-only input shared by all pipeline stages.
type StageContext struct {
	Request Request
	Signals Signals
	Name    string
	Rand    Rand
}

// Stage rewrites text. Stages are total: unknown enum values pass text through.
type Stage struct {
	Name  string
	Apply func(text string, c StageContext) string
}

// Pipeline is the fixed stage order.
var Pipeline = []Stage{
	{Name: "tone", Apply: StyleTone},
	{Name: "culture", Apply: func(text string, c StageContext) string { return AddCulturalContext(text, c.Request.CulturalContext) }},
	{Name: "role", Apply: func(text string, c StageContext) string { return FrameRoleVoice(text, c.Request.RoleVoice, c.Name) }},
	{Name: "length", Apply: func(text string, c StageContext) string { return AdjustLength(text, c.Request.Duration, c.Request.Tone) }},
}

// RunPipeline applies stages left to right.
func RunPipeline(text string, c StageContext, stages []Stage) string {
	for _, st := range stages {
		text = st.Apply(text, c)
	}
	return text
}

var fillerPools = map[Tone][]string{
	ToneFunny: {
		"(And yes, %s, I practiced this speech in the mirror!)",
		"Don't worry, I promise this won't be as long as my last speech!",
		"%s probably didn't expect me to get this sentimental, but here we are!",
		"I was going to make this shorter, but then I remembered how much %s loves my stories!",
	},
	ToneEmotional: {
		"%s, you have no idea how much you mean to me. These words feel inadequate to express the depth of my feelings.",
		"There are no words that can truly capture what's in my heart right now, but I hope you can feel the love behind these words.",
		"%s, you have touched my life in ways you may never fully understand.",
	},
	ToneRomantic: {
		"%s, every love song finally makes sense because of you.",
		"If I had a flower for every time you made me smile, I would walk through my garden forever.",
		"%s, you are my favorite hello and my hardest goodbye.",
	},
	ToneMotivational: {
		"%s, the best chapters of your story have not been written yet. Go write them.",
		"Remember: every step forward counts, even the small ones.",
		"You have already done hard things, %s. You can do this one too.",
	},
	ToneReligious: {
		"May the Lord bless you and keep you, %s, and make His face shine upon you.",
		"I thank God every day for placing you in my life.",
		"May grace go before you and peace follow you, %s.",
	},
	ToneChildlike: {
		"You're as awesome as a rainbow made of ice cream, %s!",
		"If I had a hundred stickers, I would give them ALL to you!",
		"%s, you are the best, best, BEST! The end!",
	},
}

// FillerPool returns the additive filler sentences for a tone (nil if none).
func FillerPool(t Tone) []string { return fillerPools[t] }

func fillerFor(pool []string, name string, r Rand) string {
	line := pool[r.Intn(len(pool))]
	if strings.Contains(line, "%s") {
		line = fmt.Sprintf(line, capFirst(name))
	}
	return line
}

// StyleTone applies the tone's lexical substitution or appends one random filler.
func StyleTone(text string, c StageContext) string {
	switch c.Request.Tone {
	case ToneFormal, ToneProfessional:
		return Formalize(text)
	case ToneCasual:
		return Contract(text)
	}
	pool := fillerPools[c.Request.Tone]
	if len(pool) == 0 || c.Rand == nil {
		return text
	}
	return appendBlock(text, fillerFor(pool, c.Name, c.Rand))
}

var culturalSuffixes = map[CulturalContext]string{
	CultureAfrican:   "As we say in our tradition, \"It takes a village to raise a child, but it takes a community to celebrate life.\" Ubuntu - I am because we are. 🌍",
	CultureNigerian:  "As we say in Naija, \"No condition is permanent.\" Keep pushing forward, and remember that your village is always behind you. God bless! 🇳🇬",
	CultureChristian: "\"For I know the plans I have for you,\" declares the Lord, \"plans to prosper you and not to harm you, to give you hope and a future.\" - Jeremiah 29:11. May God bless you abundantly. 🙏✝️",
	CultureIslamic:   "May Allah bless you and grant you peace, happiness, and success in all your endeavors. Barakallahu feeki/feeka. Ameen. 🤲☪️",
}

// CulturalSuffix returns the closing line for a culture, or "" when it has none.
func CulturalSuffix(c CulturalContext) string { return culturalSuffixes[c] }

// AddCulturalContext appends the culture's closing blessing after the body.
func AddCulturalContext(text string, c CulturalContext) string {
	suffix, ok := culturalSuffixes[c]
	if !ok {
		return text
	}
	return appendBlock(text, suffix)
}

type roleFrame struct {
	preamble   string
	postscript string
}

var roleFrames = map[RoleVoice]roleFrame{
	RolePet: {
		preamble:   "Woof woof! (Translation from your beloved pet)\n\nHey %s! It's me, your furry best friend. If I could speak human words, here's what I'd want you to know:",
		postscript: "P.S. - More treats would be appreciated. Just saying. Woof! 🐾",
	},
	RoleGrandma: {
		preamble:   "Oh sweetie, come here and let Grandma tell you something important, %s.",
		postscript: "Remember to always be kind to others, take care of yourself, and don't forget to call your family. You make this old heart so proud. Now give Grandma a hug! 👵💕",
	},
	RoleFutureSelf: {
		preamble:   "Hey there, past me. It's your future self speaking, and I came back to say this to %s:",
		postscript: "Trust yourself more. Everything works out better than you could imagine.\n\nWith love from tomorrow,\nFuture You ✨🔮",
	},
	RoleChildSelf: {
		preamble:   "Hi! It's little me talking to you! I made this for %s all by myself:",
		postscript: "Keep being awesome and don't let anyone tell you that being happy is silly.\n\nLove,\nLittle You 👶🌈",
	},
	RoleWiseElder: {
		preamble:   "Gather close and listen, for these words have been carried across many seasons for %s.",
		postscript: "Walk gently, speak kindly, and remember that the river does not hurry, yet it always reaches the sea. 🌳",
	},
}

// FrameRoleVoice wraps the text in the persona's preamble and postscript.
func FrameRoleVoice(text string, role RoleVoice, name string) string {
	f, ok := roleFrames[role]
	if !ok {
		return text
	}
	if name == "" {
		name = "friend"
	}
	return paragraphs(fmt.Sprintf(f.preamble, name), text, f.postscript)
}

var targetWords = map[Duration]int{
	Duration15s:    40,
	Duration30s:    75,
	Duration1Min:   150,
	Duration2Min:   300,
	Duration3Min:   450,
	Duration5Min:   750,
	DurationShort:  75,
	DurationMedium: 300,
	DurationLong:   600,
}

// TargetWords maps a duration to a word budget; unknown and custom map to 300.
func TargetWords(d Duration) int {
	if n, ok := targetWords[d]; ok {
		return n
	}
	return 300
}

var closingFillers = map[Tone]string{
	ToneFunny:        "Thanks for sticking with me through all of that. I promise the snacks are coming next.",
	ToneFormal:       "Thank you for your time and kind attention to these words.",
	ToneProfessional: "Thank you for your time and kind attention to these words.",
	ToneReligious:    "Thank you for listening, and may these words be a blessing to you.",
	ToneChildlike:    "Thank you for listening to my whole big message!",
}

const defaultClosingFiller = "Thank you for taking the time to listen to these words from my heart."

// ClosingFiller is the single sentence the length stage appends to short text.
func ClosingFiller(t Tone) string {
	if s, ok := closingFillers[t]; ok {
		return s
	}
	return defaultClosingFiller
}

// AdjustLength pads short text once or truncates long text on sentence boundaries.
// Text within 80%-120% of the target passes unchanged.
func AdjustLength(text string, d Duration, t Tone) string {
	target := TargetWords(d)
	words := WordCount(text)
	switch {
	case float64(words) < 0.8*float64(target):
		return appendBlock(text, ClosingFiller(t))
	case float64(words) > 1.2*float64(target):
		sentences := strings.Split(text, ". ")
		keep := int(math.Ceil(float64(len(sentences)) * float64(target) / float64(words)))
		return joinSentences(sentences[:max(keep, 1)])
	}
	return text
}

// joinSentences reassembles ". "-split sentences and restores the final period.
func joinSentences(sentences []string) string {
	out := strings.TrimRight(strings.Join(sentences, ". "), " \n")
	if out == "" || strings.HasSuffix(out, ".") || strings.HasSuffix(out, "!") || strings.HasSuffix(out, "?") {
		return out
	}
	return out + "."
}

func appendBlock(text, block string) string {
	if strings.TrimSpace(text) == "" {
		return block
	}
	return text + "\n\n" + block
}

type substitution struct {
	re   *regexp.Regexp
	with string
}

// substitutions builds case-aware, word-bounded replacements for each from->to pair.
func substitutions(pairs [][2]string) []substitution {
	var subs []substitution
	for _, p := range pairs {
		subs = append(subs, substitution{regexp.MustCompile(`\b` + regexp.QuoteMeta(p[0]) + `\b`), p[1]})
		if upper := capFirst(p[0]); upper != p[0] {
			subs = append(subs, substitution{regexp.MustCompile(`\b` + regexp.QuoteMeta(upper) + `\b`), capFirst(p[1])})
		}
	}
	return subs
}

func applySubstitutions(text string, subs []substitution) string {
	for _, s := range subs {
		text = s.re.ReplaceAllLiteralString(text, s.with)
	}
	return text
}

var contractions = [][2]string{
	{"you're", "you are"},
	{"I'm", "I am"},
	{"can't", "cannot"},
	{"won't", "will not"},
	{"it's", "it is"},
	{"that's", "that is"},
	{"don't", "do not"},
	{"I've", "I have"},
	{"I'll", "I will"},
	{"I'd", "I would"},
	{"we're", "we are"},
	{"they're", "they are"},
	{"isn't", "is not"},
	{"doesn't", "does not"},
	{"didn't", "did not"},
	{"couldn't", "could not"},
	{"wasn't", "was not"},
	{"aren't", "are not"},
	{"you've", "you have"},
	{"you'll", "you will"},
	{"we've", "we have"},
	{"there's", "there is"},
	{"here's", "here is"},
	{"what's", "what is"},
	{"let's", "let us"},
}

// contractible is the subset that reads naturally when contracted back.
var contractible = [][2]string{
	{"I am", "I'm"},
	{"you are", "you're"},
	{"cannot", "can't"},
	{"will not", "won't"},
	{"it is", "it's"},
	{"that is", "that's"},
	{"do not", "don't"},
	{"I have", "I've"},
	{"I will", "I'll"},
	{"we are", "we're"},
	{"they are", "they're"},
	{"is not", "isn't"},
	{"does not", "doesn't"},
}

// realTalkSwaps relax the letter greeting and the sign-off above "[Your name]".
// Each pair is (clean, casual) and only matches in those positions.
var realTalkSwaps = [][2]string{
	{"Dear", "Hey"},
	{"Sincerely,", "Love,"},
	{"With regards,", "Talk soon,"},
}

type registerSwap struct {
	re   *regexp.Regexp
	with string
}

func registerSwaps(casual bool) []registerSwap {
	from, to := 0, 1
	if !casual {
		from, to = 1, 0
	}
	greeting := realTalkSwaps[0]
	swaps := []registerSwap{{
		regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(greeting[from]) + ` ([^\n,!?]+),$`),
		greeting[to] + " ${1},",
	}}
	for _, p := range realTalkSwaps[1:] {
		swaps = append(swaps, registerSwap{
			regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(p[from]) + `(\n\[Your name\])`),
			p[to] + "${1}",
		})
	}
	return swaps
}

var (
	expandSubs   = substitutions(contractions)
	contractSubs = substitutions(contractible)
	casualSwaps  = registerSwaps(true)
	cleanSwaps   = registerSwaps(false)
)

// Formalize expands contractions.
func Formalize(text string) string { return applySubstitutions(text, expandSubs) }

// Contract contracts common two-word forms.
func Contract(text string) string { return applySubstitutions(text, contractSubs) }

// RealTalk is the casual register pass: contractions plus relaxed greetings and sign-offs.
func RealTalk(text string) string {
	return applySwaps(Contract(text), casualSwaps)
}

// CleanUp undoes the greeting and sign-off swaps of RealTalk. Everything else,
// including role frames and contractions, is left as is.
func CleanUp(text string) string {
	return applySwaps(text, cleanSwaps)
}

func applySwaps(text string, swaps []registerSwap) string {
	for _, s := range swaps {
		text = s.re.ReplaceAllString(text, s.with)
	}
	return text
}
