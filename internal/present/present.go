// Package present maps analysis results and entry fields into
// display-ready values: colors, labels, progress proxies. It never
// errors; unrecognized input gets a neutral default.
package present

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/moodlogapp/moodlog/internal/constants"
	"github.com/moodlogapp/moodlog/internal/models"
)

var (
	lowStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)
	mediumStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	highStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	neutralStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// riskProgress is a fixed display proxy per risk level. These are
// constants of the scale, not a measured quantity, and must not be
// derived from distortion counts.
var riskProgress = map[constants.RiskLevel]int{
	constants.RiskLow:    20,
	constants.RiskMedium: 60,
	constants.RiskHigh:   100,
}

// Risk is the display form of a risk level.
type Risk struct {
	Label    string
	Style    lipgloss.Style
	Progress int // 0-100
}

// RiskView maps a raw risk level string to its display form. Any value
// outside the three known levels renders as a neutral "unknown".
func RiskView(level string) Risk {
	rl := constants.RiskLevel(strings.ToLower(strings.TrimSpace(level)))
	switch rl {
	case constants.RiskLow:
		return Risk{Label: "LOW", Style: lowStyle, Progress: riskProgress[rl]}
	case constants.RiskMedium:
		return Risk{Label: "MEDIUM", Style: mediumStyle, Progress: riskProgress[rl]}
	case constants.RiskHigh:
		return Risk{Label: "HIGH", Style: highStyle, Progress: riskProgress[rl]}
	default:
		return Risk{Label: "UNKNOWN", Style: neutralStyle, Progress: 0}
	}
}

// Mood is the display form of a mood score.
type Mood struct {
	Label string
	Icon  string
	Style lipgloss.Style
}

var moodViews = map[int]Mood{
	1: {Label: "very sad", Icon: "😢", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("27"))},
	2: {Label: "sad", Icon: "🙁", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("39"))},
	3: {Label: "neutral", Icon: "😐", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("245"))},
	4: {Label: "happy", Icon: "🙂", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("40"))},
	5: {Label: "very happy", Icon: "😄", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("220"))},
}

// MoodView maps a mood score to its display form. Scores without a
// mapping (nil or outside 1-5) come back as "unknown".
func MoodView(score *int) Mood {
	if score != nil {
		if m, ok := moodViews[*score]; ok {
			return m
		}
	}
	return Mood{Label: "unknown", Icon: "·", Style: neutralStyle}
}

// ConfidencePercent renders an optional 0-1 confidence as a rounded
// percentage string, empty when absent.
func ConfidencePercent(confidence *float64) string {
	if confidence == nil {
		return ""
	}
	return fmt.Sprintf("%d%%", int(math.Round(*confidence*100)))
}

// ProgressBar renders a fixed-width textual progress bar for a 0-100
// value.
func ProgressBar(value, width int) string {
	if width <= 0 {
		return ""
	}
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	filled := value * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Truncate shortens a body for list previews, cutting on runes and
// appending an ellipsis when anything was removed.
func Truncate(text string, max int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= max {
		return string(runes)
	}
	if max <= 1 {
		return "…"
	}
	return strings.TrimRight(string(runes[:max-1]), " ") + "…"
}

// DisplayModel is an analysis decorated for an entry detail view.
// Missing distortions or recommendations are rendered as empty sections,
// never as an error.
type DisplayModel struct {
	Risk            Risk
	Distortions     []DistortionView
	Recommendations []string
	AnalyzedAt      string
}

// DistortionView is one distortion with display-ready extras.
type DistortionView struct {
	models.Distortion
	ConfidenceLabel string
}

// Analysis builds the detail-view display model for an analysis. A nil
// analysis yields an empty model with an unknown risk view.
func Analysis(a *models.AnalysisResult) DisplayModel {
	if a == nil {
		return DisplayModel{Risk: RiskView("")}
	}

	dm := DisplayModel{
		Risk:            RiskView(a.RiskLevel),
		Recommendations: a.Recommendations,
	}
	if a.AnalysisTimestamp != nil {
		dm.AnalyzedAt = a.AnalysisTimestamp.Format(constants.DateTimeFormat)
	}
	for _, d := range a.Distortions {
		dm.Distortions = append(dm.Distortions, DistortionView{
			Distortion:      d,
			ConfidenceLabel: ConfidencePercent(d.Confidence),
		})
	}
	return dm
}
