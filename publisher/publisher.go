package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	goldhtml "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"

	"speakup/generator"
)

// Format is an export target.
type Format string

const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
	FormatSSML     Format = "ssml"
	FormatJSON     Format = "json"
)

var ErrUnknownFormat = errors.New("unknown export format")

var contentTypes = map[Format]string{
	FormatText:     "text/plain; charset=utf-8",
	FormatMarkdown: "text/markdown; charset=utf-8",
	FormatHTML:     "text/html; charset=utf-8",
	FormatSSML:     "application/ssml+xml",
	FormatJSON:     "application/json",
}

// ParseFormat accepts a format name or a file extension with a leading dot.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	if f == "markdown" {
		f = FormatMarkdown
	}
	if _, ok := contentTypes[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

func ContentType(f Format) string { return contentTypes[f] }

// FileName is the download name for an export.
func FileName(f Format) string { return "speakup-speech." + string(f) }

// Document is generated content plus the request it came from.
type Document struct {
	Content   generator.Content `json:"content"`
	Request   generator.Request `json:"request"`
	CreatedAt time.Time         `json:"created_at"`
}

// Title is the document heading, e.g. "SpeakUp Love Letter".
func (d Document) Title() string {
	f := string(d.Request.Format)
	if f == "" {
		f = string(generator.FormatMessage)
	}
	words := strings.Fields(strings.ReplaceAll(f, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return "SpeakUp " + strings.Join(words, " ")
}

// Publisher renders documents into export formats.
type Publisher struct {
	md  goldmark.Markdown
	log *zap.Logger
}

func New(log *zap.Logger) *Publisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Publisher{
		md:  goldmark.New(goldmark.WithRendererOptions(goldhtml.WithHardWraps())),
		log: log,
	}
}

// Export writes the rendered document to w.
func (p *Publisher) Export(_ context.Context, doc Document, format Format, w io.Writer) error {
	out, err := p.Render(doc, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write %s export: %w", format, err)
	}
	return nil
}

func (p *Publisher) Render(doc Document, format Format) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch format {
	case FormatText:
		out = []byte(renderText(doc))
	case FormatMarkdown:
		out = []byte(renderMarkdown(doc))
	case FormatHTML:
		out, err = p.renderHTML(doc)
	case FormatSSML:
		out = []byte(SSML(doc.Content.Text, VoiceSettingsFor(doc.Request.Voice)))
	case FormatJSON:
		out, err = json.MarshalIndent(doc, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	p.log.Debug("rendered export", zap.String("format", string(format)), zap.Int("bytes", len(out)))
	return out, nil
}

type metaLine struct{ label, value string }

func metadata(doc Document) []metaLine {
	culture := string(doc.Request.CulturalContext)
	if culture == "" {
		culture = "Universal"
	}
	lines := []metaLine{
		{"Format", string(doc.Request.Format)},
		{"Tone", string(doc.Request.Tone)},
		{"Duration", string(doc.Request.Duration)},
		{"Cultural Context", culture},
		{"Words", fmt.Sprintf("%d (%s)", doc.Content.WordCount, doc.Content.EstimatedDuration)},
	}
	if doc.Content.SubjectLine != "" {
		lines = append([]metaLine{{"Subject", doc.Content.SubjectLine}}, lines...)
	}
	return lines
}

func renderText(doc Document) string {
	var b strings.Builder
	b.WriteString(doc.Title() + "\n\n")
	for _, m := range metadata(doc) {
		fmt.Fprintf(&b, "%s: %s\n", m.label, m.value)
	}
	b.WriteString("\n" + doc.Content.Text + "\n")
	return b.String()
}

func renderMarkdown(doc Document) string {
	var b strings.Builder
	b.WriteString("# " + doc.Title() + "\n\n")
	for _, m := range metadata(doc) {
		fmt.Fprintf(&b, "- **%s:** %s\n", m.label, m.value)
	}
	b.WriteString("\n---\n\n" + doc.Content.Text + "\n")
	return b.String()
}

func (p *Publisher) renderHTML(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.md.Convert([]byte("# "+doc.Title()+"\n\n"+doc.Content.Text), &buf); err != nil {
		return nil, err
	}
	style := doc.Content.VisualStyle
	if style.FontFamily == "" {
		style = generator.VisualStyleFor(doc.Request.Tone)
	}
	body := normalizeForCard(buf.String(), style, doc.Content.Stickers)

	from, to := gradient(style.BackgroundColor)
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body style="margin:0;background:linear-gradient(135deg,#f8fafc,#e2e8f0);">
<article style="max-width:720px;margin:40px auto;padding:32px;border:2px solid %s;border-radius:16px;background:linear-gradient(135deg,%s,%s);color:%s;font-family:%s;">
%s</article>
</body>
</html>
`, html.EscapeString(doc.Title()), cssColor(style.BorderColor), from, to, cssColor(style.TextColor), style.FontFamily, body)
	return []byte(page), nil
}

var (
	headingRe   = regexp.MustCompile(`(?s)<h([1-6])[^>]*>(.*?)</h[1-6]>`)
	listRe      = regexp.MustCompile(`(?s)<[ou]l[^>]*>(.*?)</[ou]l>`)
	listItemRe  = regexp.MustCompile(`(?s)<li[^>]*>(.*?)</li>`)
	paragraphRe = regexp.MustCompile(`<p>`)
)

var headingSizes = map[string]string{"1": "28px", "2": "24px", "3": "20px"}

// normalizeForCard styles headings, flattens lists into paragraphs and prefixes each
// paragraph with a sticker, cycling through the set.
func normalizeForCard(body string, style generator.VisualStyle, stickers []string) string {
	body = headingRe.ReplaceAllStringFunc(body, func(block string) string {
		parts := headingRe.FindStringSubmatch(block)
		size := headingSizes[parts[1]]
		if size == "" {
			size = "18px"
		}
		return fmt.Sprintf(`<h%s style="font-size:%s;font-weight:700;margin:0 0 0.8em;color:%s;">%s</h%s>`,
			parts[1], size, cssColor(style.TextColor), strings.TrimSpace(parts[2]), parts[1])
	})

	body = listRe.ReplaceAllStringFunc(body, func(block string) string {
		var b strings.Builder
		for _, item := range listItemRe.FindAllStringSubmatch(block, -1) {
			b.WriteString("<p>• " + strings.TrimSpace(item[1]) + "</p>\n")
		}
		return b.String()
	})

	i := 0
	return paragraphRe.ReplaceAllStringFunc(body, func(string) string {
		open := `<p style="line-height:1.7;margin:0 0 1em;">`
		if len(stickers) > 0 {
			open += `<span class="sticker">` + stickers[i%len(stickers)] + `</span> `
		}
		i++
		return open
	})
}

// palette maps the Tailwind tokens carried by visual styles to CSS colours.
var palette = map[string]string{
	"pink-50":    "#fdf2f8",
	"rose-50":    "#fff1f2",
	"yellow-50":  "#fefce8",
	"orange-50":  "#fff7ed",
	"blue-50":    "#eff6ff",
	"indigo-50":  "#eef2ff",
	"purple-50":  "#faf5ff",
	"rose-200":   "#fecdd3",
	"orange-200": "#fed7aa",
	"indigo-200": "#c7d2fe",
	"purple-200": "#e9d5ff",
	"blue-200":   "#bfdbfe",
	"rose-800":   "#9f1239",
	"orange-800": "#9a3412",
	"indigo-800": "#3730a3",
	"purple-800": "#6b21a8",
	"blue-800":   "#1e40af",
}

// cssColor resolves "text-rose-800" or "border-rose-200"; unknown tokens pass through.
func cssColor(token string) string {
	for _, prefix := range []string{"text-", "border-", "from-", "to-"} {
		if c, ok := palette[strings.TrimPrefix(token, prefix)]; ok && strings.HasPrefix(token, prefix) {
			return c
		}
	}
	if token == "" {
		return "inherit"
	}
	return token
}

// gradient splits "from-pink-50 to-rose-50" into its two colours.
func gradient(bg string) (string, string) {
	from, to := "#ffffff", "#ffffff"
	for _, f := range strings.Fields(bg) {
		switch {
		case strings.HasPrefix(f, "from-"):
			from = cssColor(f)
		case strings.HasPrefix(f, "to-"):
			to = cssColor(f)
		}
	}
	return from, to
}
