package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/moodlogapp/moodlog/internal/api"
	"github.com/moodlogapp/moodlog/internal/logger"
	"github.com/moodlogapp/moodlog/internal/models"
	"github.com/moodlogapp/moodlog/internal/session"
	"github.com/moodlogapp/moodlog/internal/storage"
)

// commandTimeout bounds every one-shot CLI request.
const commandTimeout = 60 * time.Second

// Context carries the shared collaborators into every command Run.
type Context struct {
	Client    *api.Client
	Session   *session.Store
	Cache     storage.Cache
	ConfigDir string
}

// RequestContext returns the context used for a one-shot command call.
func (c *Context) RequestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

// SyncCache mirrors a freshly fetched archive into the local cache.
// Cache failures are logged, never surfaced: the data just came from the
// server and is already on screen.
func (c *Context) SyncCache(entries []models.Entry) {
	if c.Cache == nil {
		return
	}
	LogCacheError("replace", c.Cache.ReplaceEntries(entries))
}

// CachedEntries loads the mirrored archive with its last sync time.
func (c *Context) CachedEntries() ([]models.Entry, string, error) {
	if c.Cache == nil {
		return nil, "", fmt.Errorf("local cache is not available")
	}
	entries, err := c.Cache.Entries()
	if err != nil {
		return nil, "", err
	}
	synced, err := c.Cache.SyncedAt()
	if err != nil {
		return nil, "", err
	}
	if synced == "" {
		return nil, "", fmt.Errorf("no cached archive yet, run 'moodlog entry list' online first")
	}
	return entries, synced, nil
}

// WrapRequestError rewrites the unauthenticated sentinel into guidance;
// anything else passes through with the server detail intact.
func WrapRequestError(err error) error {
	if errors.Is(err, api.ErrUnauthenticated) {
		return fmt.Errorf("you are not logged in (run 'moodlog login')")
	}
	return err
}

// LogCacheError records a cache write failure without interrupting the
// user-visible flow.
func LogCacheError(op string, err error) {
	if err != nil {
		logger.Warn("Local cache update failed", "op", op, "error", err)
	}
}
