package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/moodlogapp/moodlog/internal/models"
)

func newTestCache(t *testing.T) *SQLiteCache {
	t.Helper()
	c := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	if err := c.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func sampleEntries() []models.Entry {
	mood := 4
	conf := 0.8
	return []models.Entry{
		{
			ID:        1,
			Text:      "a good day",
			MoodScore: &mood,
			CreatedAt: time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
			Analysis: &models.AnalysisResult{
				RiskLevel: "low",
				Distortions: []models.Distortion{
					{Type: "labeling", Sentence: "I am a failure", Confidence: &conf},
				},
				Recommendations: []string{"keep a gratitude list"},
			},
		},
		{
			ID:        2,
			Text:      "unanalyzed entry",
			CreatedAt: time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC),
		},
	}
}

func TestReplaceAndReadBack(t *testing.T) {
	c := newTestCache(t)

	if err := c.ReplaceEntries(sampleEntries()); err != nil {
		t.Fatalf("ReplaceEntries() failed: %v", err)
	}

	got, err := c.Entries()
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}

	byID := map[int64]models.Entry{}
	for _, e := range got {
		byID[e.ID] = e
	}

	first := byID[1]
	if first.Text != "a good day" {
		t.Errorf("Text = %q", first.Text)
	}
	if first.MoodScore == nil || *first.MoodScore != 4 {
		t.Errorf("MoodScore = %v, want 4", first.MoodScore)
	}
	if !first.CreatedAt.Equal(time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)) {
		t.Errorf("CreatedAt = %v", first.CreatedAt)
	}
	if first.Analysis == nil || first.Analysis.RiskLevel != "low" {
		t.Fatalf("Analysis = %+v", first.Analysis)
	}
	if len(first.Analysis.Distortions) != 1 || first.Analysis.Distortions[0].Type != "labeling" {
		t.Errorf("Distortions = %+v", first.Analysis.Distortions)
	}

	second := byID[2]
	if second.MoodScore != nil || second.Analysis != nil {
		t.Errorf("entry 2 should have no mood or analysis: %+v", second)
	}
}

func TestReplaceIsWholesale(t *testing.T) {
	c := newTestCache(t)

	if err := c.ReplaceEntries(sampleEntries()); err != nil {
		t.Fatalf("first ReplaceEntries() failed: %v", err)
	}
	// A new sync with one entry drops the stale rows
	if err := c.ReplaceEntries(sampleEntries()[:1]); err != nil {
		t.Fatalf("second ReplaceEntries() failed: %v", err)
	}

	got, err := c.Entries()
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("entries after re-sync = %+v, want only ID 1", got)
	}
}

func TestRemoveEntry(t *testing.T) {
	c := newTestCache(t)

	if err := c.ReplaceEntries(sampleEntries()); err != nil {
		t.Fatalf("ReplaceEntries() failed: %v", err)
	}
	if err := c.RemoveEntry(1); err != nil {
		t.Fatalf("RemoveEntry() failed: %v", err)
	}

	got, err := c.Entries()
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("entries after remove = %+v, want only ID 2", got)
	}

	// Removing an absent entry is not an error
	if err := c.RemoveEntry(99); err != nil {
		t.Errorf("RemoveEntry(99) = %v, want nil", err)
	}
}

func TestSyncedAt(t *testing.T) {
	c := newTestCache(t)

	synced, err := c.SyncedAt()
	if err != nil {
		t.Fatalf("SyncedAt() failed: %v", err)
	}
	if synced != "" {
		t.Errorf("SyncedAt() before any sync = %q, want empty", synced)
	}

	if err := c.ReplaceEntries(nil); err != nil {
		t.Fatalf("ReplaceEntries(nil) failed: %v", err)
	}
	synced, err = c.SyncedAt()
	if err != nil {
		t.Fatalf("SyncedAt() failed: %v", err)
	}
	if _, err := time.Parse(time.RFC3339, synced); err != nil {
		t.Errorf("SyncedAt() = %q, not RFC3339: %v", synced, err)
	}
}
