package generator

import "time"

// Format is the kind of artifact requested.
type Format string

const (
	FormatMessage     Format = "message"
	FormatToast       Format = "toast"
	FormatSpeech      Format = "speech"
	FormatLetter      Format = "letter"
	FormatPoem        Format = "poem"
	FormatRap         Format = "rap"
	FormatPrayer      Format = "prayer"
	FormatEmail       Format = "email"
	FormatResignation Format = "resignation"
	FormatLoveLetter  Format = "love-letter"
	FormatApology     Format = "apology"
	FormatRejection   Format = "rejection"
)

var formats = []Format{
	FormatMessage, FormatToast, FormatSpeech, FormatLetter, FormatPoem, FormatRap,
	FormatPrayer, FormatEmail, FormatResignation, FormatLoveLetter, FormatApology, FormatRejection,
}

func (f Format) Valid() bool { return contains(formats, f) }

// emailLike formats carry a subject line.
func (f Format) emailLike() bool {
	return f == FormatEmail || f == FormatResignation || f == FormatRejection
}

// Tone is the requested register.
type Tone string

const (
	ToneFunny        Tone = "funny"
	ToneHeartfelt    Tone = "heartfelt"
	ToneEmotional    Tone = "emotional"
	ToneFormal       Tone = "formal"
	ToneRomantic     Tone = "romantic"
	ToneReligious    Tone = "religious"
	ToneChildlike    Tone = "childlike"
	ToneCasual       Tone = "casual"
	ToneProfessional Tone = "professional"
	ToneMotivational Tone = "motivational"
)

var tones = []Tone{
	ToneFunny, ToneHeartfelt, ToneEmotional, ToneFormal, ToneRomantic,
	ToneReligious, ToneChildlike, ToneCasual, ToneProfessional, ToneMotivational,
}

func (t Tone) Valid() bool { return contains(tones, t) }

// Duration is the requested speaking length.
type Duration string

const (
	Duration15s    Duration = "15s"
	Duration30s    Duration = "30s"
	Duration1Min   Duration = "1min"
	Duration2Min   Duration = "2min"
	Duration3Min   Duration = "3min"
	Duration5Min   Duration = "5min"
	DurationShort  Duration = "short"
	DurationMedium Duration = "medium"
	DurationLong   Duration = "long"
	DurationCustom Duration = "custom"
)

var durations = []Duration{
	Duration15s, Duration30s, Duration1Min, Duration2Min, Duration3Min, Duration5Min,
	DurationShort, DurationMedium, DurationLong, DurationCustom,
}

func (d Duration) Valid() bool { return contains(durations, d) }

// Voice is only read by playback; the engine ignores it.
type Voice string

const (
	VoiceAdultMale   Voice = "adult-male"
	VoiceAdultFemale Voice = "adult-female"
	VoiceTeen        Voice = "teen"
	VoiceChildMale   Voice = "child-male"
	VoiceChildFemale Voice = "child-female"
	VoiceRobotic     Voice = "robotic"
)

var voices = []Voice{VoiceAdultMale, VoiceAdultFemale, VoiceTeen, VoiceChildMale, VoiceChildFemale, VoiceRobotic}

func (v Voice) Valid() bool { return contains(voices, v) }

// CulturalContext selects the closing blessing.
type CulturalContext string

const (
	CultureUniversal CulturalContext = "universal"
	CultureAfrican   CulturalContext = "african"
	CultureAmerican  CulturalContext = "american"
	CultureBritish   CulturalContext = "british"
	CultureNigerian  CulturalContext = "nigerian"
	CultureChristian CulturalContext = "christian"
	CultureIslamic   CulturalContext = "islamic"
)

var cultures = []CulturalContext{
	CultureUniversal, CultureAfrican, CultureAmerican, CultureBritish,
	CultureNigerian, CultureChristian, CultureIslamic,
}

func (c CulturalContext) Valid() bool { return contains(cultures, c) }

// RoleVoice is the persona the whole text is framed in.
type RoleVoice string

const (
	RoleSelf       RoleVoice = "self"
	RolePet        RoleVoice = "pet"
	RoleGrandma    RoleVoice = "grandma"
	RoleFutureSelf RoleVoice = "future-self"
	RoleChildSelf  RoleVoice = "child-self"
	RoleWiseElder  RoleVoice = "wise-elder"
)

var roles = []RoleVoice{RoleSelf, RolePet, RoleGrandma, RoleFutureSelf, RoleChildSelf, RoleWiseElder}

func (r RoleVoice) Valid() bool { return contains(roles, r) }

// Request is one generation call. It is never mutated by the engine.
type Request struct {
	Prompt          string          `json:"prompt"`
	Format          Format          `json:"format"`
	Tone            Tone            `json:"tone"`
	Duration        Duration        `json:"duration"`
	Voice           Voice           `json:"voice"`
	CulturalContext CulturalContext `json:"cultural_context,omitempty"`
	RoleVoice       RoleVoice       `json:"role_voice,omitempty"`
	IsPrivateMode   bool            `json:"is_private_mode,omitempty"`
	// RealTalk turns off clean mode: a casual register pass runs last.
	RealTalk bool `json:"real_talk,omitempty"`

	Occasion     string `json:"occasion,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	PersonName   string `json:"person_name,omitempty"`
	Location     string `json:"location,omitempty"`
}

// Signals is what the analyzer pulls out of a prompt.
type Signals struct {
	Names            []string `json:"names"`
	Occasion         string   `json:"occasion,omitempty"`
	Relationship     string   `json:"relationship,omitempty"`
	RelationshipTerm string   `json:"relationship_term,omitempty"`
	Emotions         []string `json:"emotions"`
	Details          []string `json:"details"`
	IsPersonal       bool     `json:"is_personal"`
	IsProfessional   bool     `json:"is_professional"`
}

// VisualStyle is cosmetic metadata for renderers.
type VisualStyle struct {
	FontFamily      string `json:"font_family"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	BorderColor     string `json:"border_color"`
}

// Content is the generation result.
type Content struct {
	Text              string      `json:"text"`
	SubjectLine       string      `json:"subject_line,omitempty"`
	WordCount         int         `json:"word_count"`
	EstimatedDuration string      `json:"estimated_duration"`
	Stickers          []string    `json:"stickers,omitempty"`
	VisualStyle       VisualStyle `json:"visual_style"`
	Template          string      `json:"template"`
	Signals           Signals     `json:"signals"`
}

// Turn records one step of a session: the first draft, a regeneration or a tweak.
type Turn struct {
	Tweak     TweakKind `json:"tweak,omitempty"`
	Content   Content   `json:"content"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
