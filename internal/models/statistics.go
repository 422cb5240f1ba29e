package models

// DistortionFrequency is one row of the per-type distortion ranking.
type DistortionFrequency struct {
	Type       string `json:"type"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// MoodPoint is one point of the mood time series. Date is the calendar
// date derived from the entry timestamp.
type MoodPoint struct {
	Date      string `json:"date"`
	MoodScore int    `json:"mood_score"`
}

// MoodTrend describes the direction of mood change across the timeline.
type MoodTrend struct {
	Direction  string `json:"direction"` // improving | worsening | flat
	Percentage int    `json:"percentage"`
}

// RiskDistribution counts analyzed entries per risk level.
type RiskDistribution struct {
	Low     int `json:"low"`
	Medium  int `json:"medium"`
	High    int `json:"high"`
	Unknown int `json:"unknown,omitempty"`
}

// MoodDistribution counts entries per mood score label.
type MoodDistribution struct {
	Label      string `json:"label"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// StatisticsSummary is the aggregated dashboard view over an entry list.
// A zero value is the correct summary for an empty archive.
type StatisticsSummary struct {
	EntryCount        int                   `json:"entry_count"`
	AnalyzedEntries   int                   `json:"analyzed_entries"`
	TotalDistortions  int                   `json:"total_distortions"`
	DistortionFreq    []DistortionFrequency `json:"distortion_frequency,omitempty"`
	SeverityCounts    map[string]int        `json:"severity_distribution,omitempty"`
	AverageConfidence int                   `json:"average_confidence"`

	MoodTimeline     []MoodPoint        `json:"mood_timeline,omitempty"`
	MoodTrend        MoodTrend          `json:"mood_trend"`
	MoodDistribution []MoodDistribution `json:"mood_distribution,omitempty"`
	DominantMood     string             `json:"dominant_mood,omitempty"`

	RiskDistribution      RiskDistribution `json:"risk_distribution"`
	HighRiskPercentage    int              `json:"high_risk_percentage"`
	MediumPlusRiskPercent int              `json:"medium_plus_risk_percentage"`
}

// Insights is the server-generated narrative over the statistics.
type Insights struct {
	AIInsights string `json:"ai_insights"`
}
