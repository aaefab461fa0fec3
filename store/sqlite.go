package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"speakup/generator"
)

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore persists messages in a single SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite store requires a path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS saved_messages (
			id TEXT PRIMARY KEY,
			text TEXT NOT NULL,
			subject_line TEXT NOT NULL DEFAULT '',
			prompt TEXT NOT NULL,
			format TEXT NOT NULL,
			tone TEXT NOT NULL,
			duration TEXT NOT NULL,
			cultural_context TEXT NOT NULL DEFAULT '',
			word_count INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_saved_messages_created_at ON saved_messages (created_at);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, m *SavedMessage) error {
	prepare(m)
	_, err := s.db.ExecContext(ctx, `
	INSERT OR REPLACE INTO saved_messages
		(id, text, subject_line, prompt, format, tone, duration, cultural_context, word_count, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Text, m.SubjectLine, m.Prompt, string(m.Format), string(m.Tone), string(m.Duration),
		string(m.CulturalContext), m.WordCount, m.CreatedAt.Format(timeLayout))
	if err != nil {
		return fmt.Errorf("save message %s: %w", m.ID, err)
	}
	return nil
}

const selectColumns = `SELECT id, text, subject_line, prompt, format, tone, duration, cultural_context, word_count, created_at FROM saved_messages`

func (s *SQLiteStore) Get(ctx context.Context, id string) (SavedMessage, error) {
	m, err := scanMessage(s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return SavedMessage{}, ErrNotFound
	}
	if err != nil {
		return SavedMessage{}, fmt.Errorf("get message %s: %w", id, err)
	}
	return m, nil
}

// List filters format and tone in SQL. Search runs in Go through Filter.Match
// because SQLite's lower() only folds ASCII.
func (s *SQLiteStore) List(ctx context.Context, f Filter) ([]SavedMessage, error) {
	var (
		where []string
		args  []any
	)
	if f.Format != "" {
		where = append(where, `format = ?`)
		args = append(args, string(f.Format))
	}
	if f.Tone != "" {
		where = append(where, `tone = ?`)
		args = append(args, string(f.Tone))
	}

	query := selectColumns
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY created_at DESC, rowid DESC`
	if f.Limit > 0 && f.Search == "" {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	out := []SavedMessage{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("list messages: %w", err)
		}
		if !f.Match(m) {
			continue
		}
		out = append(out, m)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM saved_messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete message %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(row scanner) (SavedMessage, error) {
	var (
		m                                        SavedMessage
		format, tone, duration, culture, created string
	)
	err := row.Scan(&m.ID, &m.Text, &m.SubjectLine, &m.Prompt, &format, &tone, &duration, &culture, &m.WordCount, &created)
	if err != nil {
		return SavedMessage{}, err
	}
	m.Format = generator.Format(format)
	m.Tone = generator.Tone(tone)
	m.Duration = generator.Duration(duration)
	m.CulturalContext = generator.CulturalContext(culture)
	if m.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return SavedMessage{}, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	return m, nil
}
