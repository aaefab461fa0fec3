package generator

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Occasion categories, in detection priority order.
const (
	OccasionWedding     = "wedding"
	OccasionBirthday    = "birthday"
	OccasionFuneral     = "funeral"
	OccasionGraduation  = "graduation"
	OccasionResignation = "resignation"
	OccasionApology     = "apology"
	OccasionThankYou    = "thank-you"
	OccasionFarewell    = "farewell"
	OccasionPromotion   = "promotion"
	OccasionAnniversary = "anniversary"
)

// Relationship categories, in detection priority order.
const (
	RelationBoss         = "boss"
	RelationColleague    = "colleague"
	RelationFriend       = "friend"
	RelationFamily       = "family"
	RelationRomantic     = "romantic"
	RelationProfessional = "professional"
)

// OccasionRules only recognise explicit keywords. "our argument" does not imply an
// apology; only "apolog*" and "sorry" do.
var OccasionRules = []Rule{
	rule(OccasionWedding, "wedding", "marriage", "married", "bride", "groom"),
	rule(OccasionBirthday, "birthday", "bday"),
	rule(OccasionFuneral, "funeral", "eulogy", "memorial", "passed away"),
	rule(OccasionGraduation, "graduat*"),
	rule(OccasionResignation, "resign*", "quitting"),
	rule(OccasionApology, "apolog*", "sorry"),
	rule(OccasionThankYou, "thank*", "gratitude"),
	rule(OccasionFarewell, "farewell", "goodbye", "good-bye", "retire*"),
	rule(OccasionPromotion, "promot*"),
	rule(OccasionAnniversary, "anniversar*"),
}

var RelationshipRules = []Rule{
	rule(RelationBoss, "boss", "manager", "supervisor"),
	rule(RelationColleague, "colleague", "coworker", "co-worker", "teammate"),
	rule(RelationFriend, "friend", "buddy", "bestie"),
	rule(RelationFamily, "mother", "mom", "mum", "father", "dad", "sister", "brother",
		"daughter", "son", "grandma", "grandmother", "grandpa", "grandfather", "aunt",
		"uncle", "cousin", "niece", "nephew", "family", "parent", "grandchild*"),
	rule(RelationRomantic, "wife", "husband", "girlfriend", "boyfriend", "partner",
		"fianc*", "spouse", "sweetheart"),
	rule(RelationProfessional, "client", "mentor", "teacher", "professor", "coach",
		"employee", "customer", "team"),
}

// EmotionRules are matched exhaustively; output follows this declaration order.
var EmotionRules = []Rule{
	rule("happy", "happy", "joy*"),
	rule("sad", "sad", "grief", "grieving", "heartbroken"),
	rule("excited", "excited", "thrilled"),
	rule("nervous", "nervous", "anxious"),
	rule("proud", "proud"),
	rule("grateful", "grateful", "thankful"),
	rule("sorry", "sorry", "regret*"),
	rule("angry", "angry", "furious", "upset"),
	rule("disappointed", "disappointed"),
	rule("hopeful", "hopeful", "hope"),
	rule("loving", "love", "loves", "loving", "adore*"),
	rule("missing", "miss", "missing"),
}

var personalRelations = []string{RelationFriend, RelationFamily, RelationRomantic}
var professionalRelations = []string{RelationBoss, RelationColleague, RelationProfessional}

var namePatterns = []*regexp.Regexp{
	// "for my sister Sarah", "to Mike", "dear Anna"
	regexp.MustCompile(`\b(?i:for|to|dear)\s+(?:[a-z]+\s+){0,3}([A-Z][a-zA-Z]+)\b`),
	// "Sarah's"
	regexp.MustCompile(`\b([A-Z][a-zA-Z]+)['’]s\b`),
	// "named sarah", "called Sarah"
	regexp.MustCompile(`\b(?i:named|called)\s+([A-Za-z]+)\b`),
}

var nameStopwords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "my": true, "to": true, "for": true, "dear": true,
}

var detailPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\babout\s+([^.!?\n]+)`),
	regexp.MustCompile(`(?i)\bregarding\s+([^.!?\n]+)`),
	regexp.MustCompile(`(?i)\bbecause\s+([^.!?\n]+)`),
	regexp.MustCompile(`(?i)\bwho\s+([^.!?\n]+)`),
	regexp.MustCompile(`(?i)\bthat\s+([^.!?\n]+)`),
}

// Analyze extracts signals from a free-text prompt. It never fails; an empty or
// unrecognisable prompt yields empty signals.
func Analyze(prompt string) Signals {
	s := Signals{
		Names:    extractNames(prompt),
		Emotions: []string{},
		Details:  extractDetails(prompt),
	}
	if m, ok := FirstMatch(OccasionRules, prompt); ok {
		s.Occasion = m.Category
	}
	if m, ok := FirstMatch(RelationshipRules, prompt); ok {
		s.Relationship = m.Category
		s.RelationshipTerm = strings.ToLower(m.Term)
	}
	for _, m := range AllMatches(EmotionRules, prompt) {
		s.Emotions = append(s.Emotions, m.Category)
	}
	s.classify()
	return s
}

// applyOverrides lets caller-supplied fields bypass inference.
func (s *Signals) applyOverrides(req Request) {
	if occ := strings.TrimSpace(req.Occasion); occ != "" {
		if m, ok := FirstMatch(OccasionRules, occ); ok {
			s.Occasion = m.Category
		} else {
			s.Occasion = strings.ToLower(occ)
		}
	}
	if rel := strings.TrimSpace(req.Relationship); rel != "" {
		s.RelationshipTerm = strings.ToLower(rel)
		if m, ok := FirstMatch(RelationshipRules, rel); ok {
			s.Relationship = m.Category
		} else {
			s.Relationship = strings.ToLower(rel)
		}
	}
	if name := strings.TrimSpace(req.PersonName); name != "" {
		name = titleCase(name)
		names := []string{name}
		for _, n := range s.Names {
			if n != name {
				names = append(names, n)
			}
		}
		s.Names = names
	}
	s.classify()
}

func (s *Signals) classify() {
	s.IsPersonal = contains(personalRelations, s.Relationship)
	s.IsProfessional = contains(professionalRelations, s.Relationship)
}

func extractNames(prompt string) []string {
	names := []string{}
	seen := map[string]bool{}
	for _, re := range namePatterns {
		for _, m := range re.FindAllStringSubmatch(prompt, -1) {
			name := titleCase(m[1])
			if name == "" || nameStopwords[strings.ToLower(name)] || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func extractDetails(prompt string) []string {
	type hit struct {
		start, end int
		text       string
	}
	var hits []hit
	for _, re := range detailPatterns {
		for _, loc := range re.FindAllStringSubmatchIndex(prompt, -1) {
			text := strings.TrimSpace(prompt[loc[2]:loc[3]])
			if text == "" {
				continue
			}
			hits = append(hits, hit{start: loc[0], end: loc[1], text: text})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	details := []string{}
	covered := -1
	for _, h := range hits {
		// a connective inside an earlier fragment belongs to that fragment
		if h.start < covered {
			continue
		}
		details = append(details, h.text)
		covered = h.end
	}
	return details
}

func titleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(strings.ToLower(s))
	return string(unicode.ToUpper(r)) + strings.ToLower(s)[size:]
}
