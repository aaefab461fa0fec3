package generator

import (
	"fmt"
	"strings"
)

// Fallback is the guidance content served when generation itself fails. The engine
// never returns it; hosts that wrap generation defensively do.
func Fallback(req Request) Content {
	article := "a message"
	switch req.Format {
	case FormatSpeech:
		article = "a speech"
	case FormatToast:
		article = "a toast"
	}
	tone := req.Tone
	if tone == "" {
		tone = ToneHeartfelt
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("I understand you're looking for %s with a %s tone.\n\n", article, tone))
	sb.WriteString(fmt.Sprintf("Based on your request: %q\n\n", req.Prompt))
	sb.WriteString("I want to help you express exactly what's in your heart. Sometimes the most powerful words come from speaking authentically about what someone means to you.\n\n")
	sb.WriteString("Consider sharing:\n")
	for _, hint := range []string{
		"A specific memory you cherish",
		"What you admire most about them",
		"How they've impacted your life",
		"Your hopes for their future",
	} {
		sb.WriteString("- " + hint + "\n")
	}
	sb.WriteString("\nRemember, the best speeches come from the heart. Your genuine feelings and personal connection will make any words meaningful.")

	text := sb.String()
	return Content{
		Text:              text,
		WordCount:         WordCount(text),
		EstimatedDuration: EstimatedDuration(0),
		Stickers:          []string{"💙", "✨", "🤗"},
		VisualStyle: VisualStyle{
			FontFamily:      "serif",
			BackgroundColor: "from-blue-50 to-purple-50",
			TextColor:       "text-blue-800",
			BorderColor:     "border-blue-200",
		},
		Template: "fallback",
		Signals:  Signals{Names: []string{}, Emotions: []string{}, Details: []string{}},
	}
}
