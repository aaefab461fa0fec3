package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"speakup/generator"
)

var (
	ErrNotFound = errors.New("saved message not found")
	// ErrPrivate is returned for content generated in private mode, which is never stored.
	ErrPrivate = errors.New("private mode content cannot be saved")
)

// SavedMessage is a snapshot of generated content taken on explicit user action.
type SavedMessage struct {
	ID              string                    `json:"id"`
	Text            string                    `json:"text"`
	SubjectLine     string                    `json:"subject_line,omitempty"`
	Prompt          string                    `json:"prompt"`
	Format          generator.Format          `json:"format"`
	Tone            generator.Tone            `json:"tone"`
	Duration        generator.Duration        `json:"duration"`
	CulturalContext generator.CulturalContext `json:"cultural_context,omitempty"`
	WordCount       int                       `json:"word_count"`
	CreatedAt       time.Time                 `json:"created_at"`
}

// NewMessage snapshots content and the request it came from.
func NewMessage(req generator.Request, c generator.Content, now time.Time) (SavedMessage, error) {
	if req.IsPrivateMode {
		return SavedMessage{}, ErrPrivate
	}
	return SavedMessage{
		ID:              uuid.NewString(),
		Text:            c.Text,
		SubjectLine:     c.SubjectLine,
		Prompt:          req.Prompt,
		Format:          req.Format,
		Tone:            req.Tone,
		Duration:        req.Duration,
		CulturalContext: req.CulturalContext,
		WordCount:       c.WordCount,
		CreatedAt:       now.UTC(),
	}, nil
}

// Filter narrows List. Zero values match everything; Search is case-insensitive
// over prompt and text.
type Filter struct {
	Search string
	Format generator.Format
	Tone   generator.Tone
	Limit  int
}

func (f Filter) Match(m SavedMessage) bool {
	if f.Format != "" && m.Format != f.Format {
		return false
	}
	if f.Tone != "" && m.Tone != f.Tone {
		return false
	}
	if q := strings.ToLower(f.Search); q != "" {
		return strings.Contains(strings.ToLower(m.Prompt), q) || strings.Contains(strings.ToLower(m.Text), q)
	}
	return true
}

// Store persists saved messages. List returns newest first.
type Store interface {
	Save(ctx context.Context, m *SavedMessage) error
	Get(ctx context.Context, id string) (SavedMessage, error)
	List(ctx context.Context, f Filter) ([]SavedMessage, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// Open returns the backend named by the configuration.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(path)
	}
	return nil, fmt.Errorf("unknown store backend %q", backend)
}

// ExportJSON writes every saved message as an indented JSON array.
func ExportJSON(ctx context.Context, s Store, w io.Writer) error {
	msgs, err := s.List(ctx, Filter{})
	if err != nil {
		return fmt.Errorf("list saved messages: %w", err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(msgs); err != nil {
		return fmt.Errorf("encode saved messages: %w", err)
	}
	return nil
}

func prepare(m *SavedMessage) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	m.CreatedAt = m.CreatedAt.UTC()
}
