// Package stats computes the dashboard summary over an entry collection.
// Everything here is a pure transformation: the server is the system of
// record, this package only shapes what it returned for display.
package stats

import (
	"math"
	"sort"

	"github.com/moodlogapp/moodlog/internal/constants"
	"github.com/moodlogapp/moodlog/internal/models"
)

// Trend directions reported by Aggregate.
const (
	TrendImproving = "improving"
	TrendWorsening = "worsening"
	TrendFlat      = "flat"
)

var moodLabels = map[int]string{
	1: "very sad",
	2: "sad",
	3: "neutral",
	4: "happy",
	5: "very happy",
}

// Aggregate computes a StatisticsSummary over entries. The input may be
// in any order, may be empty, and entries may lack mood scores or
// analyses; none of that is an error. Every percentage is rounded to the
// nearest integer and every division is guarded, so an empty archive
// yields an all-zero summary.
func Aggregate(entries []models.Entry) models.StatisticsSummary {
	s := models.StatisticsSummary{EntryCount: len(entries)}
	if len(entries) == 0 {
		return s
	}

	var distortions []models.Distortion
	for _, e := range entries {
		if e.Analysis == nil {
			continue
		}
		s.AnalyzedEntries++
		distortions = append(distortions, e.Analysis.Distortions...)
		countRisk(&s.RiskDistribution, e.Analysis.RiskLevel)
	}
	s.TotalDistortions = len(distortions)

	s.DistortionFreq = distortionFrequency(distortions)
	s.SeverityCounts = severityCounts(distortions)
	s.AverageConfidence = averageConfidence(distortions)

	s.MoodTimeline = moodTimeline(entries)
	s.MoodTrend = moodTrend(s.MoodTimeline)
	s.MoodDistribution, s.DominantMood = moodDistribution(entries)

	analyzed := s.AnalyzedEntries
	s.HighRiskPercentage = percent(s.RiskDistribution.High, analyzed)
	s.MediumPlusRiskPercent = percent(s.RiskDistribution.Medium+s.RiskDistribution.High, analyzed)

	return s
}

func countRisk(dist *models.RiskDistribution, level string) {
	switch constants.RiskLevel(level) {
	case constants.RiskLow:
		dist.Low++
	case constants.RiskMedium:
		dist.Medium++
	case constants.RiskHigh:
		dist.High++
	default:
		dist.Unknown++
	}
}

// distortionFrequency ranks distortion types by occurrence count,
// descending, with ties broken by first appearance in the input.
func distortionFrequency(distortions []models.Distortion) []models.DistortionFrequency {
	if len(distortions) == 0 {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string
	for i, d := range distortions {
		if _, ok := counts[d.Type]; !ok {
			firstSeen[d.Type] = i
			order = append(order, d.Type)
		}
		counts[d.Type]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	total := len(distortions)
	out := make([]models.DistortionFrequency, 0, len(order))
	for _, typ := range order {
		out = append(out, models.DistortionFrequency{
			Type:       typ,
			Count:      counts[typ],
			Percentage: percent(counts[typ], total),
		})
	}
	return out
}

func severityCounts(distortions []models.Distortion) map[string]int {
	var out map[string]int
	for _, d := range distortions {
		if d.Severity == "" {
			continue
		}
		if out == nil {
			out = make(map[string]int)
		}
		out[d.Severity]++
	}
	return out
}

func averageConfidence(distortions []models.Distortion) int {
	var sum float64
	var n int
	for _, d := range distortions {
		if d.Confidence == nil {
			continue
		}
		sum += *d.Confidence
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(sum / float64(n) * 100))
}

// moodTimeline emits one (date, score) point per entry with a
// displayable mood, ordered ascending by creation time.
func moodTimeline(entries []models.Entry) []models.MoodPoint {
	withMood := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if e.HasMood() {
			withMood = append(withMood, e)
		}
	}
	sort.SliceStable(withMood, func(i, j int) bool {
		return withMood[i].CreatedAt.Before(withMood[j].CreatedAt)
	})

	out := make([]models.MoodPoint, 0, len(withMood))
	for _, e := range withMood {
		out = append(out, models.MoodPoint{
			Date:      e.CreatedAt.Format(constants.DateFormat),
			MoodScore: *e.MoodScore,
		})
	}
	return out
}

// moodTrend compares the mean mood of the earlier half of the timeline
// against the later half, split at the midpoint index. Fewer than two
// points, or an earlier mean of zero, reports a flat 0% trend.
func moodTrend(timeline []models.MoodPoint) models.MoodTrend {
	if len(timeline) < 2 {
		return models.MoodTrend{Direction: TrendFlat}
	}

	mid := len(timeline) / 2
	earlier := meanScore(timeline[:mid])
	later := meanScore(timeline[mid:])
	if earlier == 0 {
		return models.MoodTrend{Direction: TrendFlat}
	}

	trend := models.MoodTrend{
		Percentage: percentFloat(math.Abs(later-earlier) / earlier * 100),
	}
	switch {
	case later > earlier:
		trend.Direction = TrendImproving
	case later < earlier:
		trend.Direction = TrendWorsening
	default:
		trend.Direction = TrendFlat
	}
	return trend
}

func meanScore(points []models.MoodPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum int
	for _, p := range points {
		sum += p.MoodScore
	}
	return float64(sum) / float64(len(points))
}

func moodDistribution(entries []models.Entry) ([]models.MoodDistribution, string) {
	counts := make(map[int]int)
	total := 0
	for _, e := range entries {
		if e.HasMood() {
			counts[*e.MoodScore]++
			total++
		}
	}
	if total == 0 {
		return nil, ""
	}

	out := make([]models.MoodDistribution, 0, len(counts))
	dominant, dominantCount := "", 0
	for score := constants.MoodScoreMin; score <= constants.MoodScoreMax; score++ {
		count, ok := counts[score]
		if !ok {
			continue
		}
		label := moodLabels[score]
		out = append(out, models.MoodDistribution{
			Label:      label,
			Count:      count,
			Percentage: percent(count, total),
		})
		if count > dominantCount {
			dominant, dominantCount = label, count
		}
	}
	return out, dominant
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return percentFloat(float64(part) / float64(total) * 100)
}

func percentFloat(v float64) int {
	return int(math.Round(v))
}
