package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/moodlogapp/moodlog/internal/logger"
	"github.com/moodlogapp/moodlog/internal/models"
)

// ListEntries fetches the full entry archive. No ordering is guaranteed;
// callers apply the view package for display order.
func (c *Client) ListEntries(ctx context.Context) ([]models.Entry, error) {
	var entries []models.Entry
	if err := c.do(ctx, http.MethodGet, "/entries/", nil, &entries, true); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateEntry saves a new entry, optionally embedding an analysis result
// obtained beforehand.
func (c *Client) CreateEntry(ctx context.Context, create models.EntryCreate) (models.Entry, error) {
	var entry models.Entry
	if err := c.do(ctx, http.MethodPost, "/entries/", create, &entry, true); err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}

// DeleteEntry deletes an entry by ID. On success the caller removes the
// entry from its local slice; the archive is never re-fetched just to
// reflect a delete.
func (c *Client) DeleteEntry(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/entries/%d", id), nil, nil, true)
}

// Analyze submits text to the distortion-analysis service.
func (c *Client) Analyze(ctx context.Context, text string) (*models.AnalysisResult, error) {
	var result models.AnalysisResult
	err := c.do(ctx, http.MethodPost, "/analyze/", models.AnalyzeRequest{
		Text:   text,
		UserID: "self", // identity comes from the token; the field is required by the wire format
	}, &result, true)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ComposeResult is the outcome of the analyze-then-save pipeline.
type ComposeResult struct {
	Entry models.Entry
	// AnalysisErr is set when the analyze step failed but the entry was
	// still saved. The save is degraded, not failed, and the UI must say
	// so.
	AnalysisErr error
}

// Analyzed reports whether the saved entry carries an analysis.
func (r ComposeResult) Analyzed() bool {
	return r.AnalysisErr == nil && r.Entry.Analysis != nil
}

// ComposeEntry runs the hard-sequential new-entry pipeline: analyze
// first, then save with the analysis embedded in the create body. The
// save cannot be issued until the analyze call resolves. An analysis
// failure degrades to saving the entry without it; an expired session
// aborts the whole pipeline.
func (c *Client) ComposeEntry(ctx context.Context, text string, moodScore *int) (ComposeResult, error) {
	var result ComposeResult

	analysis, err := c.Analyze(ctx, text)
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			return result, err
		}
		logger.Warn("Analysis unavailable, saving entry without it", "error", err)
		result.AnalysisErr = err
		analysis = nil
	}

	entry, err := c.CreateEntry(ctx, models.EntryCreate{
		Text:      text,
		MoodScore: moodScore,
		Analysis:  analysis,
	})
	if err != nil {
		return result, err
	}
	result.Entry = entry
	return result, nil
}
