package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speakup/generator"
)

func testDocument() Document {
	req := generator.Request{
		Prompt:          "Birthday email to Anna",
		Format:          generator.FormatEmail,
		Tone:            generator.ToneFunny,
		Duration:        generator.Duration1Min,
		Voice:           generator.VoiceChildFemale,
		CulturalContext: generator.CultureBritish,
	}
	return Document{
		Content:   generator.New(generator.WithSeed(1)).Generate(req),
		Request:   req,
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"txt": FormatText, ".MD": FormatMarkdown, "markdown": FormatMarkdown, "html": FormatHTML, "ssml": FormatSSML, "json": FormatJSON} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("pdf")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestDocumentTitle(t *testing.T) {
	assert.Equal(t, "SpeakUp Love Letter", Document{Request: generator.Request{Format: generator.FormatLoveLetter}}.Title())
	assert.Equal(t, "SpeakUp Message", Document{}.Title())
}

func TestRenderText(t *testing.T) {
	doc := testDocument()
	out, err := New(nil).Render(doc, FormatText)
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasPrefix(text, "SpeakUp Email\n\nSubject: Happy Birthday, Anna!\nFormat: email\nTone: funny\nDuration: 1min\nCultural Context: british\n"))
	assert.Contains(t, text, doc.Content.Text)
}

func TestRenderMarkdownDefaultsCulture(t *testing.T) {
	doc := testDocument()
	doc.Request.CulturalContext = ""
	out, err := New(nil).Render(doc, FormatMarkdown)
	require.NoError(t, err)
	assert.Contains(t, string(out), "# SpeakUp Email\n")
	assert.Contains(t, string(out), "- **Cultural Context:** Universal\n")
}

func TestRenderHTMLCard(t *testing.T) {
	doc := testDocument()
	out, err := New(nil).Render(doc, FormatHTML)
	require.NoError(t, err)

	page := string(out)
	assert.Contains(t, page, "<title>SpeakUp Email</title>")
	assert.Contains(t, page, "font-family:sans-serif")
	assert.Contains(t, page, "border:2px solid #fed7aa")
	assert.Contains(t, page, "linear-gradient(135deg,#fefce8,#fff7ed)")
	assert.Contains(t, page, `<span class="sticker">😂</span>`)
	assert.Contains(t, page, `<h1 style="font-size:28px;`)
	assert.NotContains(t, page, "<ul>")
}

func TestNormalizeForCardFlattensLists(t *testing.T) {
	in := "<h2>Tips</h2>\n<ul>\n<li>one</li>\n<li>two</li>\n</ul>\n<p>end</p>"
	out := normalizeForCard(in, generator.VisualStyleFor(generator.ToneHeartfelt), []string{"A", "B"})

	assert.Contains(t, out, `<h2 style="font-size:24px;font-weight:700;margin:0 0 0.8em;color:#9f1239;">Tips</h2>`)
	assert.Contains(t, out, `<span class="sticker">A</span> • one</p>`)
	assert.Contains(t, out, `<span class="sticker">B</span> • two</p>`)
	assert.Contains(t, out, `<span class="sticker">A</span> end</p>`)
}

func TestRenderSSML(t *testing.T) {
	out, err := New(nil).Render(Document{
		Content: generator.Content{Text: "Hi & welcome.\n\nSecond  line\nwraps."},
		Request: generator.Request{Voice: generator.VoiceRobotic},
	}, FormatSSML)
	require.NoError(t, err)

	ssml := string(out)
	assert.Contains(t, ssml, `<prosody rate="90%" pitch="-20%">`)
	assert.Contains(t, ssml, "<p>Hi &amp; welcome.</p>")
	assert.Contains(t, ssml, "<p>Second line wraps.</p>")
}

func TestRenderJSON(t *testing.T) {
	doc := testDocument()
	out, err := New(nil).Render(doc, FormatJSON)
	require.NoError(t, err)

	var back Document
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, doc.Content.Text, back.Content.Text)
	assert.Equal(t, doc.Request.Format, back.Request.Format)
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := New(nil).Render(testDocument(), Format("pdf"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestExportWrites(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(nil).Export(context.Background(), testDocument(), FormatText, &buf))
	assert.True(t, strings.HasPrefix(buf.String(), "SpeakUp Email"))
}

func TestVoiceSettingsFor(t *testing.T) {
	assert.Equal(t, VoiceSettings{VoiceIndex: 0, Rate: 0.9, Pitch: 1.0}, VoiceSettingsFor(generator.VoiceAdultMale))
	assert.Equal(t, VoiceSettings{VoiceIndex: 4, Rate: 0.9, Pitch: 1.2}, VoiceSettingsFor(generator.VoiceChildFemale))
	assert.Equal(t, VoiceSettings{VoiceIndex: 1, Rate: 0.9, Pitch: 0.8}, VoiceSettingsFor(generator.VoiceRobotic))
	assert.Equal(t, VoiceSettings{VoiceIndex: 1, Rate: 0.9, Pitch: 1.0}, VoiceSettingsFor(generator.Voice("")))
}

func TestScriptPlayer(t *testing.T) {
	var buf bytes.Buffer
	p := &ScriptPlayer{W: &buf}
	require.NoError(t, p.Speak(context.Background(), "Hello.", VoiceSettingsFor(generator.VoiceTeen)))
	assert.Contains(t, buf.String(), `pitch="+0%"`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, p.Speak(ctx, "Hello.", VoiceSettings{}))
	assert.NoError(t, p.Stop())
}
