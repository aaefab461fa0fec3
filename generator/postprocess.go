package generator

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// PostProcess trims the pipeline output and fills the metric and cosmetic fields.
func PostProcess(text string, req Request) Content {
	text = strings.TrimSpace(text)
	words := WordCount(text)
	return Content{
		Text:              text,
		WordCount:         words,
		EstimatedDuration: EstimatedDuration(words),
		Stickers:          StickersFor(req.Tone),
		VisualStyle:       VisualStyleFor(req.Tone),
	}
}

// WordCount counts non-empty whitespace-separated tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// EstimatedDuration renders ceil(words/150) minutes, never less than one.
func EstimatedDuration(words int) string {
	minutes := int(math.Ceil(float64(words) / WordsPerMinute))
	if minutes <= 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", minutes)
}

// Digest is a one-line preview: the first non-empty line, collapsed and cut to limit runes.
func Digest(text string, limit int) string {
	var first string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			first = line
			break
		}
	}
	compact := strings.Join(strings.Fields(first), " ")
	if limit <= 0 || utf8.RuneCountInString(compact) <= limit {
		return compact
	}
	return string([]rune(compact)[:limit]) + "…"
}
