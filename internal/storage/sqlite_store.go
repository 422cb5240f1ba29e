package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/moodlogapp/moodlog/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id         INTEGER PRIMARY KEY,
	text       TEXT NOT NULL,
	mood_score INTEGER,
	created_at TEXT NOT NULL,
	analysis   TEXT
);
CREATE TABLE IF NOT EXISTS sync_meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// SQLiteCache is the file-backed Cache implementation.
type SQLiteCache struct {
	path string
	db   *sql.DB
}

// NewSQLiteCache creates a cache stored at path. Init must be called
// before use.
func NewSQLiteCache(path string) *SQLiteCache {
	return &SQLiteCache{path: path}
}

func (c *SQLiteCache) Init() error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", c.path)
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize cache schema: %w", err)
	}
	c.db = db
	return nil
}

func (c *SQLiteCache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

func (c *SQLiteCache) ReplaceEntries(entries []models.Entry) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO entries (id, text, mood_score, created_at, analysis) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		var mood sql.NullInt64
		if e.MoodScore != nil {
			mood = sql.NullInt64{Int64: int64(*e.MoodScore), Valid: true}
		}
		var analysis sql.NullString
		if e.Analysis != nil {
			payload, err := json.Marshal(e.Analysis)
			if err != nil {
				return fmt.Errorf("failed to encode analysis for entry %d: %w", e.ID, err)
			}
			analysis = sql.NullString{String: string(payload), Valid: true}
		}
		if _, err := stmt.Exec(e.ID, e.Text, mood, e.CreatedAt.Format(time.RFC3339Nano), analysis); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(
		`INSERT INTO sync_meta (key, value) VALUES ('synced_at', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (c *SQLiteCache) Entries() ([]models.Entry, error) {
	rows, err := c.db.Query(`SELECT id, text, mood_score, created_at, analysis FROM entries`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var e models.Entry
		var mood sql.NullInt64
		var createdAt string
		var analysis sql.NullString
		if err := rows.Scan(&e.ID, &e.Text, &mood, &createdAt, &analysis); err != nil {
			return nil, err
		}
		if mood.Valid {
			score := int(mood.Int64)
			e.MoodScore = &score
		}
		e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("corrupt created_at for entry %d: %w", e.ID, err)
		}
		if analysis.Valid {
			var a models.AnalysisResult
			if err := json.Unmarshal([]byte(analysis.String), &a); err != nil {
				return nil, fmt.Errorf("corrupt analysis for entry %d: %w", e.ID, err)
			}
			e.Analysis = &a
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (c *SQLiteCache) RemoveEntry(id int64) error {
	_, err := c.db.Exec(`DELETE FROM entries WHERE id = ?`, id)
	return err
}

func (c *SQLiteCache) SyncedAt() (string, error) {
	var value string
	err := c.db.QueryRow(`SELECT value FROM sync_meta WHERE key = 'synced_at'`).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
