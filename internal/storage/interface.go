package storage

import "github.com/moodlogapp/moodlog/internal/models"

// Cache mirrors the last successfully fetched entry archive so list and
// stats views keep working while the server is unreachable. The server
// stays the system of record: the mirror is replaced wholesale on every
// successful sync and is never written from user input directly.
type Cache interface {
	Init() error
	Close() error

	// ReplaceEntries swaps the whole mirror for the given archive.
	ReplaceEntries(entries []models.Entry) error
	// Entries returns the mirrored archive in no particular order.
	Entries() ([]models.Entry, error)
	// RemoveEntry drops one entry after a confirmed server delete.
	RemoveEntry(id int64) error
	// SyncedAt returns the RFC3339 time of the last successful sync,
	// empty when never synced.
	SyncedAt() (string, error)
}
