package stats

import (
	"testing"
	"time"

	"github.com/moodlogapp/moodlog/internal/models"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func entryAt(day int, mood *int, analysis *models.AnalysisResult) models.Entry {
	return models.Entry{
		ID:        int64(day),
		Text:      "entry",
		MoodScore: mood,
		CreatedAt: time.Date(2025, 3, day, 12, 0, 0, 0, time.UTC),
		Analysis:  analysis,
	}
}

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil)

	if s.EntryCount != 0 {
		t.Errorf("EntryCount = %d, want 0", s.EntryCount)
	}
	if s.TotalDistortions != 0 {
		t.Errorf("TotalDistortions = %d, want 0", s.TotalDistortions)
	}
	if len(s.DistortionFreq) != 0 {
		t.Errorf("DistortionFreq has %d rows, want 0", len(s.DistortionFreq))
	}
	if s.HighRiskPercentage != 0 || s.MediumPlusRiskPercent != 0 {
		t.Error("risk percentages must be 0 for an empty archive")
	}
	if s.MoodTrend.Percentage != 0 {
		t.Errorf("MoodTrend.Percentage = %d, want 0", s.MoodTrend.Percentage)
	}
}

func TestAggregateNoAnalyses(t *testing.T) {
	entries := []models.Entry{
		entryAt(1, intPtr(3), nil),
		entryAt(2, intPtr(4), nil),
	}

	s := Aggregate(entries)
	if s.EntryCount != 2 {
		t.Errorf("EntryCount = %d, want 2", s.EntryCount)
	}
	if s.TotalDistortions != 0 {
		t.Errorf("TotalDistortions = %d, want 0", s.TotalDistortions)
	}
	if len(s.DistortionFreq) != 0 {
		t.Errorf("DistortionFreq = %v, want empty", s.DistortionFreq)
	}
	if s.AnalyzedEntries != 0 {
		t.Errorf("AnalyzedEntries = %d, want 0", s.AnalyzedEntries)
	}
}

func TestAggregateEmptyAnalysisFieldsAreNotErrors(t *testing.T) {
	// An analysis with nil distortions/recommendations counts as analyzed
	// with zero distortions
	entries := []models.Entry{
		entryAt(1, intPtr(3), &models.AnalysisResult{RiskLevel: "low"}),
	}

	s := Aggregate(entries)
	if s.AnalyzedEntries != 1 {
		t.Errorf("AnalyzedEntries = %d, want 1", s.AnalyzedEntries)
	}
	if s.TotalDistortions != 0 {
		t.Errorf("TotalDistortions = %d, want 0", s.TotalDistortions)
	}
	if s.RiskDistribution.Low != 1 {
		t.Errorf("RiskDistribution.Low = %d, want 1", s.RiskDistribution.Low)
	}
}

func TestDistortionFrequencyRanking(t *testing.T) {
	analysis := func(types ...string) *models.AnalysisResult {
		a := &models.AnalysisResult{RiskLevel: "low"}
		for _, typ := range types {
			a.Distortions = append(a.Distortions, models.Distortion{Type: typ})
		}
		return a
	}
	entries := []models.Entry{
		entryAt(1, nil, analysis("catastrophizing", "mind reading")),
		entryAt(2, nil, analysis("overgeneralization", "catastrophizing")),
		entryAt(3, nil, analysis("catastrophizing", "mind reading")),
	}

	s := Aggregate(entries)
	if s.TotalDistortions != 6 {
		t.Fatalf("TotalDistortions = %d, want 6", s.TotalDistortions)
	}

	want := []models.DistortionFrequency{
		{Type: "catastrophizing", Count: 3, Percentage: 50},
		// mind reading and overgeneralization both have 2 and 1; the tie
		// rule is first-seen order, exercised below with equal counts
		{Type: "mind reading", Count: 2, Percentage: 33},
		{Type: "overgeneralization", Count: 1, Percentage: 17},
	}
	if len(s.DistortionFreq) != len(want) {
		t.Fatalf("DistortionFreq has %d rows, want %d", len(s.DistortionFreq), len(want))
	}
	for i, w := range want {
		got := s.DistortionFreq[i]
		if got != w {
			t.Errorf("DistortionFreq[%d] = %+v, want %+v", i, got, w)
		}
	}
}

func TestDistortionFrequencyTiesFirstSeen(t *testing.T) {
	entries := []models.Entry{
		entryAt(1, nil, &models.AnalysisResult{Distortions: []models.Distortion{
			{Type: "labeling"},
			{Type: "personalization"},
			{Type: "labeling"},
			{Type: "personalization"},
		}}),
	}

	s := Aggregate(entries)
	if s.DistortionFreq[0].Type != "labeling" || s.DistortionFreq[1].Type != "personalization" {
		t.Errorf("tie should keep first-seen order, got %v", s.DistortionFreq)
	}
}

func TestMoodTimelineSortedAscending(t *testing.T) {
	entries := []models.Entry{
		entryAt(3, intPtr(4), nil),
		entryAt(1, intPtr(2), nil),
		{ID: 99, Text: "no mood", CreatedAt: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
		entryAt(5, intPtr(5), nil),
	}

	s := Aggregate(entries)
	wantDates := []string{"2025-03-01", "2025-03-03", "2025-03-05"}
	wantScores := []int{2, 4, 5}
	if len(s.MoodTimeline) != 3 {
		t.Fatalf("MoodTimeline has %d points, want 3", len(s.MoodTimeline))
	}
	for i, p := range s.MoodTimeline {
		if p.Date != wantDates[i] || p.MoodScore != wantScores[i] {
			t.Errorf("MoodTimeline[%d] = %+v, want {%s %d}", i, p, wantDates[i], wantScores[i])
		}
	}
}

func TestMoodTrendImproving(t *testing.T) {
	// Chronological moods [2,2,4,4]: earlier mean 2, later mean 4
	entries := []models.Entry{
		entryAt(1, intPtr(2), nil),
		entryAt(2, intPtr(2), nil),
		entryAt(3, intPtr(4), nil),
		entryAt(4, intPtr(4), nil),
	}

	s := Aggregate(entries)
	if s.MoodTrend.Direction != TrendImproving {
		t.Errorf("Direction = %q, want %q", s.MoodTrend.Direction, TrendImproving)
	}
	if s.MoodTrend.Percentage != 100 {
		t.Errorf("Percentage = %d, want 100", s.MoodTrend.Percentage)
	}
}

func TestMoodTrendWorsening(t *testing.T) {
	entries := []models.Entry{
		entryAt(1, intPtr(5), nil),
		entryAt(2, intPtr(4), nil),
		entryAt(3, intPtr(2), nil),
		entryAt(4, intPtr(1), nil),
	}

	s := Aggregate(entries)
	if s.MoodTrend.Direction != TrendWorsening {
		t.Errorf("Direction = %q, want %q", s.MoodTrend.Direction, TrendWorsening)
	}
	if s.MoodTrend.Percentage <= 0 {
		t.Errorf("Percentage = %d, want positive", s.MoodTrend.Percentage)
	}
}

func TestMoodTrendFlatAndShort(t *testing.T) {
	tests := []struct {
		name  string
		moods []int
	}{
		{name: "single point", moods: []int{3}},
		{name: "no points", moods: nil},
		{name: "identical halves", moods: []int{3, 3, 3, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []models.Entry
			for i, m := range tt.moods {
				entries = append(entries, entryAt(i+1, intPtr(m), nil))
			}
			s := Aggregate(entries)
			if s.MoodTrend.Direction != TrendFlat {
				t.Errorf("Direction = %q, want %q", s.MoodTrend.Direction, TrendFlat)
			}
			if s.MoodTrend.Percentage != 0 {
				t.Errorf("Percentage = %d, want 0", s.MoodTrend.Percentage)
			}
		})
	}
}

func TestMoodTrendOddTimeline(t *testing.T) {
	// Five points split at index 2: earlier [1,1] mean 1, later [3,5,5]
	// mean 4.33, change 333%
	entries := []models.Entry{
		entryAt(1, intPtr(1), nil),
		entryAt(2, intPtr(1), nil),
		entryAt(3, intPtr(3), nil),
		entryAt(4, intPtr(5), nil),
		entryAt(5, intPtr(5), nil),
	}

	s := Aggregate(entries)
	if s.MoodTrend.Direction != TrendImproving {
		t.Errorf("Direction = %q, want %q", s.MoodTrend.Direction, TrendImproving)
	}
	if s.MoodTrend.Percentage != 333 {
		t.Errorf("Percentage = %d, want 333", s.MoodTrend.Percentage)
	}
}

func TestRiskDistribution(t *testing.T) {
	risk := func(level string) *models.AnalysisResult {
		return &models.AnalysisResult{RiskLevel: level}
	}
	entries := []models.Entry{
		entryAt(1, nil, risk("low")),
		entryAt(2, nil, risk("low")),
		entryAt(3, nil, risk("medium")),
		entryAt(4, nil, risk("high")),
		entryAt(5, nil, risk("panic")), // unexpected value, counted but unknown
		entryAt(6, nil, nil),           // not analyzed, excluded entirely
	}

	s := Aggregate(entries)
	dist := s.RiskDistribution
	if dist.Low != 2 || dist.Medium != 1 || dist.High != 1 || dist.Unknown != 1 {
		t.Errorf("RiskDistribution = %+v, want low=2 medium=1 high=1 unknown=1", dist)
	}
	// 5 analyzed entries: high 1/5 = 20%, medium+high 2/5 = 40%
	if s.HighRiskPercentage != 20 {
		t.Errorf("HighRiskPercentage = %d, want 20", s.HighRiskPercentage)
	}
	if s.MediumPlusRiskPercent != 40 {
		t.Errorf("MediumPlusRiskPercent = %d, want 40", s.MediumPlusRiskPercent)
	}
}

func TestSeverityAndConfidence(t *testing.T) {
	entries := []models.Entry{
		entryAt(1, nil, &models.AnalysisResult{Distortions: []models.Distortion{
			{Type: "labeling", Severity: "high", Confidence: floatPtr(0.9)},
			{Type: "labeling", Severity: "low", Confidence: floatPtr(0.6)},
			{Type: "mind reading"}, // no severity, no confidence
		}}),
	}

	s := Aggregate(entries)
	if s.SeverityCounts["high"] != 1 || s.SeverityCounts["low"] != 1 {
		t.Errorf("SeverityCounts = %v", s.SeverityCounts)
	}
	if _, ok := s.SeverityCounts[""]; ok {
		t.Error("empty severity must not be counted")
	}
	if s.AverageConfidence != 75 {
		t.Errorf("AverageConfidence = %d, want 75", s.AverageConfidence)
	}
}

func TestMoodDistribution(t *testing.T) {
	entries := []models.Entry{
		entryAt(1, intPtr(4), nil),
		entryAt(2, intPtr(4), nil),
		entryAt(3, intPtr(1), nil),
		entryAt(4, nil, nil),
	}

	s := Aggregate(entries)
	if s.DominantMood != "happy" {
		t.Errorf("DominantMood = %q, want %q", s.DominantMood, "happy")
	}
	if len(s.MoodDistribution) != 2 {
		t.Fatalf("MoodDistribution rows = %d, want 2", len(s.MoodDistribution))
	}
	// Rows are emitted in score order
	if s.MoodDistribution[0].Label != "very sad" || s.MoodDistribution[0].Percentage != 33 {
		t.Errorf("MoodDistribution[0] = %+v", s.MoodDistribution[0])
	}
	if s.MoodDistribution[1].Label != "happy" || s.MoodDistribution[1].Percentage != 67 {
		t.Errorf("MoodDistribution[1] = %+v", s.MoodDistribution[1])
	}
}
