package store

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speakup/generator"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	sqlite, err := NewSQLiteStore(filepath.Join(t.TempDir(), "speakup.db"))
	require.NoError(t, err)

	stores := map[string]Store{"memory": NewMemoryStore(), "sqlite": sqlite}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

var base = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

func seed(t *testing.T, s Store) []SavedMessage {
	t.Helper()
	msgs := []SavedMessage{
		{ID: "a", Prompt: "Birthday toast for Sarah", Text: "Happy birthday!", Format: generator.FormatToast, Tone: generator.ToneFunny, WordCount: 2, CreatedAt: base},
		{ID: "b", Prompt: "Apology to Mike", Text: "I am sorry, Mike.", Format: generator.FormatMessage, Tone: generator.ToneEmotional, WordCount: 4, CreatedAt: base.Add(time.Hour)},
		{ID: "c", Prompt: "Thank you note", Text: "Thanks SARAH for everything.", Format: generator.FormatMessage, Tone: generator.ToneFunny, WordCount: 4, CreatedAt: base.Add(2 * time.Hour)},
	}
	for i := range msgs {
		require.NoError(t, s.Save(context.Background(), &msgs[i]))
	}
	return msgs
}

func ids(msgs []SavedMessage) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.ID
	}
	return out
}

func TestStoreList(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			seed(t, s)

			all, err := s.List(ctx, Filter{})
			require.NoError(t, err)
			assert.Equal(t, []string{"c", "b", "a"}, ids(all))

			tests := []struct {
				filter Filter
				want   []string
			}{
				{Filter{Search: "sarah"}, []string{"c", "a"}},
				{Filter{Format: generator.FormatMessage}, []string{"c", "b"}},
				{Filter{Tone: generator.ToneFunny, Format: generator.FormatToast}, []string{"a"}},
				{Filter{Limit: 1}, []string{"c"}},
				{Filter{Search: "nobody"}, []string{}},
			}
			for _, tt := range tests {
				got, err := s.List(ctx, tt.filter)
				require.NoError(t, err)
				assert.Equal(t, tt.want, ids(got), "%+v", tt.filter)
			}
		})
	}
}

func TestStoreSearchFoldsUnicode(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			msgs := []SavedMessage{
				{ID: "z", Prompt: "Toast for ZOË", Text: "Cheers, Zoë!", CreatedAt: base},
				{ID: "e", Prompt: "Letter to Élodie", Text: "Chère Élodie.", CreatedAt: base.Add(time.Hour)},
				{ID: "x", Prompt: "Note to Sam", Text: "Hi Sam.", CreatedAt: base.Add(2 * time.Hour)},
			}
			for i := range msgs {
				require.NoError(t, s.Save(ctx, &msgs[i]))
			}

			for q, want := range map[string][]string{
				"zoë":    {"z"},
				"ÉLODIE": {"e"},
				"o":      {"x", "e", "z"},
			} {
				got, err := s.List(ctx, Filter{Search: q})
				require.NoError(t, err)
				assert.Equal(t, want, ids(got), q)
			}

			got, err := s.List(ctx, Filter{Search: "o", Limit: 2})
			require.NoError(t, err)
			assert.Equal(t, []string{"x", "e"}, ids(got))
		})
	}
}

func TestStoreGetAndDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			msgs := seed(t, s)

			got, err := s.Get(ctx, "b")
			require.NoError(t, err)
			assert.Equal(t, msgs[1].Text, got.Text)
			assert.Equal(t, generator.ToneEmotional, got.Tone)
			assert.True(t, msgs[1].CreatedAt.Equal(got.CreatedAt))

			require.NoError(t, s.Delete(ctx, "b"))
			_, err = s.Get(ctx, "b")
			assert.ErrorIs(t, err, ErrNotFound)
			assert.ErrorIs(t, s.Delete(ctx, "b"), ErrNotFound)
		})
	}
}

func TestStoreSaveAssignsIDAndTime(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			m := SavedMessage{Prompt: "p", Text: "t"}
			require.NoError(t, s.Save(context.Background(), &m))
			assert.NotEmpty(t, m.ID)
			assert.False(t, m.CreatedAt.IsZero())

			got, err := s.Get(context.Background(), m.ID)
			require.NoError(t, err)
			assert.Equal(t, "t", got.Text)
		})
	}
}

func TestNewMessage(t *testing.T) {
	req := generator.Request{Prompt: "Birthday email to Anna", Format: generator.FormatEmail, Tone: generator.ToneHeartfelt}
	content := generator.New(generator.WithSeed(1)).Generate(req)

	m, err := NewMessage(req, content, base)
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, content.Text, m.Text)
	assert.Equal(t, "Happy Birthday, Anna!", m.SubjectLine)
	assert.Equal(t, content.WordCount, m.WordCount)
	assert.Equal(t, base, m.CreatedAt)

	req.IsPrivateMode = true
	_, err = NewMessage(req, content, base)
	assert.ErrorIs(t, err, ErrPrivate)
}

func TestExportJSON(t *testing.T) {
	s := NewMemoryStore()
	seed(t, s)

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(context.Background(), s, &buf))

	var got []SavedMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"c", "b", "a"}, ids(got))
	assert.Contains(t, buf.String(), "\n  {\n")
}

func TestOpen(t *testing.T) {
	s, err := Open("memory", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = Open("sqlite", filepath.Join(t.TempDir(), "x.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, s.Close())

	_, err = Open("redis", "")
	assert.Error(t, err)
}
