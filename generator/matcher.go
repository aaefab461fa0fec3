package generator

import "regexp"

// Rule maps a pattern to a category. Rules are evaluated in slice order, so the
// slice itself is the priority order.
type Rule struct {
	Category string
	Pattern  *regexp.Regexp
}

// Match is a rule hit.
type Match struct {
	Category string
	Term     string
}

// rule compiles a case-insensitive, word-bounded alternation of keywords. A keyword
// ending in "*" matches as a stem.
func rule(category string, keywords ...string) Rule {
	expr := `(?i)\b(?:`
	for i, kw := range keywords {
		if i > 0 {
			expr += "|"
		}
		if n := len(kw); n > 0 && kw[n-1] == '*' {
			expr += regexp.QuoteMeta(kw[:n-1]) + `\w*`
			continue
		}
		expr += regexp.QuoteMeta(kw) + `s?`
	}
	expr += `)\b`
	return Rule{Category: category, Pattern: regexp.MustCompile(expr)}
}

// FirstMatch returns the first rule in declared order whose pattern occurs in text.
func FirstMatch(rules []Rule, text string) (Match, bool) {
	for _, r := range rules {
		if term := r.Pattern.FindString(text); term != "" {
			return Match{Category: r.Category, Term: term}, true
		}
	}
	return Match{}, false
}

// AllMatches returns every matching rule, in declared order, each category once.
func AllMatches(rules []Rule, text string) []Match {
	var out []Match
	for _, r := range rules {
		if term := r.Pattern.FindString(text); term != "" {
			out = append(out, Match{Category: r.Category, Term: term})
		}
	}
	return out
}
