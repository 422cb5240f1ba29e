package models

import "time"

// Entry is one journal submission. The server owns the ID and creation
// timestamp; MoodScore is the user's self-reported 1-5 rating and is nil
// when the user skipped it.
type Entry struct {
	ID        int64           `json:"id"`
	Text      string          `json:"text"`
	MoodScore *int            `json:"mood_score,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Analysis  *AnalysisResult `json:"analysis,omitempty"`
}

// HasMood reports whether the entry carries a displayable mood score.
// Scores outside 1-5 have no display mapping and count as unknown.
func (e Entry) HasMood() bool {
	return e.MoodScore != nil && *e.MoodScore >= 1 && *e.MoodScore <= 5
}

// AnalysisResult is the cognitive-distortion analysis attached to at most
// one entry. It is produced once by the analysis service and immutable
// afterwards. Missing slices mean "none detected", never an error.
type AnalysisResult struct {
	RiskLevel         string       `json:"risk_level,omitempty"`
	Distortions       []Distortion `json:"distortions,omitempty"`
	Recommendations   []string     `json:"recommendations,omitempty"`
	AnalysisTimestamp *time.Time   `json:"analysis_timestamp,omitempty"`
}

// Distortion is a tagged instance of a cognitive-distortion pattern
// detected in an entry's text.
type Distortion struct {
	Type        string   `json:"type"`
	Sentence    string   `json:"sentence"`
	Explanation string   `json:"explanation"`
	Alternative string   `json:"alternative"`
	Severity    string   `json:"severity,omitempty"`
	Confidence  *float64 `json:"confidence,omitempty"`
}

// EntryCreate is the request body for creating an entry. Analysis is
// embedded when the analyze step succeeded before the save.
type EntryCreate struct {
	Text      string          `json:"text"`
	MoodScore *int            `json:"mood_score,omitempty"`
	Analysis  *AnalysisResult `json:"analysis,omitempty"`
}

// AnalyzeRequest is the request body for the analysis endpoint.
type AnalyzeRequest struct {
	Text   string `json:"text"`
	UserID string `json:"user_id"`
}
