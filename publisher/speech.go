package publisher

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strings"

	"speakup/generator"
)

// VoiceSettings configure a text-to-speech engine for one playback.
type VoiceSettings struct {
	VoiceIndex int     `json:"voice_index"`
	Rate       float64 `json:"rate"`
	Pitch      float64 `json:"pitch"`
}

var voiceIndexes = map[generator.Voice]int{
	generator.VoiceAdultMale:   0,
	generator.VoiceAdultFemale: 1,
	generator.VoiceTeen:        2,
	generator.VoiceChildMale:   3,
	generator.VoiceChildFemale: 4,
}

// VoiceSettingsFor maps a requested voice to engine settings. Unknown voices use
// the adult female voice.
func VoiceSettingsFor(v generator.Voice) VoiceSettings {
	vs := VoiceSettings{VoiceIndex: 1, Rate: 0.9, Pitch: 1.0}
	if idx, ok := voiceIndexes[v]; ok {
		vs.VoiceIndex = idx
	}
	switch {
	case strings.Contains(string(v), "child"):
		vs.Pitch = 1.2
	case v == generator.VoiceRobotic:
		vs.Pitch = 0.8
	}
	return vs
}

// SpeechPlayer plays text aloud. Hosts provide the engine; the generator never calls it.
type SpeechPlayer interface {
	Speak(ctx context.Context, text string, settings VoiceSettings) error
	Stop() error
}

// Exporter writes a document in a given format.
type Exporter interface {
	Export(ctx context.Context, doc Document, format Format, w io.Writer) error
}

var _ Exporter = (*Publisher)(nil)

// SSML renders text as a speech script, one <p> per paragraph.
func SSML(text string, vs VoiceSettings) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<speak version="1.1" xmlns="http://www.w3.org/2001/10/synthesis">` + "\n")
	fmt.Fprintf(&b, `  <prosody rate="%d%%" pitch="%+d%%">`+"\n",
		int(math.Round(vs.Rate*100)), int(math.Round((vs.Pitch-1)*100)))
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.Join(strings.Fields(para), " ")
		if para == "" {
			continue
		}
		b.WriteString("    <p>")
		_ = xml.EscapeText(&b, []byte(para))
		b.WriteString("</p>\n")
	}
	b.WriteString("  </prosody>\n</speak>\n")
	return b.String()
}

// ScriptPlayer "plays" text by writing its SSML script, for hosts without audio.
type ScriptPlayer struct {
	W io.Writer
}

var _ SpeechPlayer = (*ScriptPlayer)(nil)

func (p *ScriptPlayer) Speak(ctx context.Context, text string, vs VoiceSettings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := io.WriteString(p.W, SSML(text, vs))
	return err
}

func (p *ScriptPlayer) Stop() error { return nil }
