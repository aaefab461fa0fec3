package generator

import (
	"fmt"
	"strings"
)

// templateInput is everything a composer may read.
type templateInput struct {
	Name         string
	Tone         Tone
	Format       Format
	Occasion     string
	Relationship string
	Term         string
	Details      []string
	Emotions     []string
	Culture      CulturalContext
	Location     string
}

type composer func(in templateInput) string

// Template is a selected composer plus the id used to identify the branch taken.
type Template struct {
	ID      string
	compose composer
	subject func(in templateInput) string
}

// Rendered is a template's output before the transform pipeline.
type Rendered struct {
	TemplateID string
	Subject    string
	Body       string
}

// occasionComposers serve formats whose text depends on the occasion.
var occasionComposers = map[string]composer{
	OccasionWedding:    composeWedding,
	OccasionBirthday:   composeBirthday,
	OccasionFuneral:    composeFuneral,
	OccasionGraduation: composeGraduation,
	OccasionFarewell:   composeFarewell,
	OccasionApology:    composeApology,
	OccasionThankYou:   composeThankYou,
}

// occasionFormats vary by occasion; everything else has a dedicated composer.
var occasionFormats = []Format{FormatMessage, FormatToast, FormatSpeech, FormatLetter}

// SelectTemplate performs the two-level lookup: format first, then occasion for the
// formats that vary by it. Unknown formats are treated as messages.
func SelectTemplate(format Format, s Signals, tone Tone) Template {
	variant := toneVariant(tone)
	switch format {
	case FormatPoem:
		return Template{ID: fmt.Sprintf("%s-poem-%s", occasionKey(s.Occasion, poemOpenings), variant), compose: composePoem}
	case FormatPrayer:
		return Template{ID: fmt.Sprintf("%s-prayer-%s", occasionKey(s.Occasion, prayerIntentions), variant), compose: composePrayer}
	case FormatRap:
		return Template{ID: "rap-" + variant, compose: composeRap}
	case FormatEmail:
		return Template{ID: "email-" + variant, compose: composeEmail, subject: emailSubject}
	case FormatResignation:
		return Template{ID: "resignation-" + variant, compose: composeResignation, subject: resignationSubject}
	case FormatLoveLetter:
		return Template{ID: "love-letter-" + variant, compose: composeLoveLetter}
	case FormatApology:
		return Template{ID: "apology-apology-" + variant, compose: composeApology}
	case FormatRejection:
		return Template{ID: "rejection-" + variant, compose: composeRejection, subject: rejectionSubject}
	}

	f := format
	if !contains(occasionFormats, f) {
		f = FormatMessage
	}
	if c, ok := occasionComposers[s.Occasion]; ok {
		return Template{ID: fmt.Sprintf("%s-%s-%s", s.Occasion, f, variant), compose: c}
	}
	return Template{ID: fmt.Sprintf("generic-%s-%s", f, variant), compose: composeGeneric}
}

// Render composes the base text for a request and its signals.
func Render(req Request, s Signals) Rendered {
	t := SelectTemplate(req.Format, s, req.Tone)
	in := templateInput{
		Name:         RecipientName(req.Format, s),
		Tone:         req.Tone,
		Format:       req.Format,
		Occasion:     s.Occasion,
		Relationship: s.Relationship,
		Term:         relationTerm(s),
		Details:      s.Details,
		Emotions:     s.Emotions,
		Culture:      req.CulturalContext,
		Location:     strings.TrimSpace(req.Location),
	}
	out := Rendered{TemplateID: t.ID, Body: t.compose(in)}
	if t.subject != nil {
		out.Subject = t.subject(in)
	}
	return out
}

// RecipientName resolves who the text addresses: the first extracted name, else
// "my <relationship>", else a placeholder matching the format's formality.
func RecipientName(format Format, s Signals) string {
	if len(s.Names) > 0 {
		return s.Names[0]
	}
	if term := relationTerm(s); term != "" {
		return "my " + term
	}
	switch format {
	case FormatResignation:
		return "Manager"
	case FormatLetter, FormatLoveLetter, FormatEmail, FormatRejection, FormatApology:
		return "Friend"
	}
	return "you"
}

func relationTerm(s Signals) string {
	if s.RelationshipTerm != "" {
		return s.RelationshipTerm
	}
	switch s.Relationship {
	case RelationRomantic:
		return "partner"
	case RelationProfessional:
		return "colleague"
	}
	return s.Relationship
}

func toneVariant(t Tone) string {
	switch t {
	case ToneFunny:
		return "funny"
	case ToneFormal, ToneProfessional:
		return "formal"
	}
	return "heartfelt"
}

func occasionKey(occasion string, table map[string]string) string {
	if _, ok := table[occasion]; ok {
		return occasion
	}
	return "generic"
}

// paragraphs joins non-empty blocks with blank lines.
func paragraphs(blocks ...string) string {
	kept := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b = strings.TrimSpace(b); b != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, "\n\n")
}

// when returns s if cond holds.
func when(cond bool, s string) string {
	if cond {
		return s
	}
	return ""
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

// detailSentence splices extracted fragments in verbatim, or uses the fallback.
func detailSentence(details []string, fallback string) string {
	if len(details) == 0 {
		return fallback
	}
	return fmt.Sprintf("Above all, I keep coming back to this: %s.", strings.Join(details, "; "))
}

func capFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (in templateInput) mine() string {
	if in.Term == "" {
		return ""
	}
	return "my " + in.Term
}

func (in templateInput) here() string {
	if in.Location == "" {
		return ""
	}
	return " here in " + in.Location
}

func (in templateInput) funny() bool { return in.Tone == ToneFunny }

func (in templateInput) tender() bool {
	return in.Tone == ToneHeartfelt || in.Tone == ToneEmotional || in.Tone == ToneRomantic
}

func (in templateInput) formal() bool {
	return in.Tone == ToneFormal || in.Tone == ToneProfessional
}

func (in templateInput) longForm() bool {
	return in.Format == FormatToast || in.Format == FormatSpeech
}
