// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists advisor responses and display settings in a
// local SQLite database. Only the raw Markdown of each response is stored;
// parsed records are rebuilt from it when an item is shown again.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/research-assistant/pkg/types"
)

const (
	dbFile       = "history.db"
	historyTable = "history"
	settingTable = "settings"
)

var (
	// ErrNotFound is returned when no item has the requested ID.
	ErrNotFound = errors.New("history item not found")

	// ErrInvalidKind is returned for kinds other than analysis,
	// inspiration, and feedback.
	ErrInvalidKind = errors.New("invalid history kind")
)

var historyColumns = []string{"id", "kind", "topic", "response", "created_at"}

// Store manages the history database.
type Store struct {
	db         *sql.DB
	maxResults int
	now        func() time.Time
}

// DefaultDataDir returns ~/.local/share/research-assistant, or the working
// directory when the home directory cannot be determined.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "research-assistant")
}

// Open opens or creates dataDir/history.db and its schema.
func Open(cfg types.HistoryConfig) (*Store, error) {
	dir := cfg.DataDir
	if dir == "" {
		dir = DefaultDataDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}
	s := &Store{db: db, maxResults: maxResults, now: time.Now}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS history (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			topic TEXT NOT NULL,
			response TEXT NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_history_kind ON history(kind)`,
		`CREATE INDEX IF NOT EXISTS idx_history_created_at ON history(created_at)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Add records a response and returns the stored item.
func (s *Store) Add(ctx context.Context, kind types.HistoryKind, topic, response string) (types.HistoryItem, error) {
	if !kind.Valid() {
		return types.HistoryItem{}, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	item := types.HistoryItem{
		ID:        uuid.New().String(),
		Kind:      kind,
		Topic:     strings.TrimSpace(topic),
		Response:  response,
		Timestamp: s.now().UTC(),
	}

	query, args, err := sq.Insert(historyTable).
		Columns(historyColumns...).
		Values(item.ID, string(item.Kind), item.Topic, item.Response, item.Timestamp.UnixNano()).
		ToSql()
	if err != nil {
		return types.HistoryItem{}, fmt.Errorf("building insert: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return types.HistoryItem{}, fmt.Errorf("inserting history item: %w", err)
	}
	return item, nil
}

// Get returns the item with the given ID. A unique ID prefix of at least
// eight characters is also accepted.
func (s *Store) Get(ctx context.Context, id string) (types.HistoryItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return types.HistoryItem{}, ErrNotFound
	}

	where := sq.Or{sq.Eq{"id": id}}
	if len(id) >= 8 {
		where = append(where, sq.Like{"id": id + "%"})
	}
	items, err := s.query(ctx, sq.Select(historyColumns...).From(historyTable).Where(where).Limit(2))
	if err != nil {
		return types.HistoryItem{}, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	switch len(items) {
	case 0:
		return types.HistoryItem{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	case 1:
		return items[0], nil
	}
	return types.HistoryItem{}, fmt.Errorf("ambiguous id prefix %q", id)
}

// ListOptions filters List.
type ListOptions struct {
	// Kind restricts results to one kind. Empty lists every kind.
	Kind types.HistoryKind

	// Query matches a case-insensitive substring of the topic.
	Query string

	// Limit caps the result count. Zero uses the configured default;
	// negative means no limit.
	Limit int
}

// List returns items newest first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]types.HistoryItem, error) {
	b := sq.Select(historyColumns...).From(historyTable).OrderBy("created_at DESC", "rowid DESC")
	if opts.Kind != "" {
		if !opts.Kind.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKind, opts.Kind)
		}
		b = b.Where(sq.Eq{"kind": string(opts.Kind)})
	}
	if q := strings.TrimSpace(opts.Query); q != "" {
		b = b.Where(sq.Like{"lower(topic)": "%" + strings.ToLower(q) + "%"})
	}

	limit := opts.Limit
	if limit == 0 {
		limit = s.maxResults
	}
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	return s.query(ctx, b)
}

// Delete removes one item by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	query, args, err := sq.Delete(historyTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("building delete: %w", err)
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting history item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Clear removes every item of kind, or every item when kind is empty. It
// returns the number of items removed.
func (s *Store) Clear(ctx context.Context, kind types.HistoryKind) (int64, error) {
	b := sq.Delete(historyTable)
	if kind != "" {
		if !kind.Valid() {
			return 0, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
		}
		b = b.Where(sq.Eq{"kind": string(kind)})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("building delete: %w", err)
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	return res.RowsAffected()
}

// SetSetting stores a key/value pair, replacing any previous value.
func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	query, args, err := sq.Insert(settingTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("building upsert: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("saving setting %s: %w", key, err)
	}
	return nil
}

// Setting returns the stored value for key and whether it was set.
func (s *Store) Setting(ctx context.Context, key string) (string, bool, error) {
	query, args, err := sq.Select("value").From(settingTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", false, fmt.Errorf("building select: %w", err)
	}
	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) query(ctx context.Context, b sq.SelectBuilder) ([]types.HistoryItem, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	items := []types.HistoryItem{}
	for rows.Next() {
		var (
			it      types.HistoryItem
			kind    string
			created int64
		)
		if err := rows.Scan(&it.ID, &kind, &it.Topic, &it.Response, &created); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		it.Kind = types.HistoryKind(kind)
		it.Timestamp = time.Unix(0, created).UTC()
		items = append(items, it)
	}
	return items, rows.Err()
}
