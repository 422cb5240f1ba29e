// Package statistics holds the dashboard-facing commands: the aggregated
// summary, the generated narrative over it, and the coping technique
// lookup for a distortion type.
package statistics

import (
	"fmt"
	"strings"

	"github.com/moodlogapp/moodlog/internal/cli"
	"github.com/moodlogapp/moodlog/internal/models"
	"github.com/moodlogapp/moodlog/internal/present"
	"github.com/moodlogapp/moodlog/internal/stats"
)

type StatsCmd struct {
	Cached bool `help:"Aggregate the local mirror instead of asking the server."`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	var summary models.StatisticsSummary

	if c.Cached {
		cached, synced, err := ctx.CachedEntries()
		if err != nil {
			return err
		}
		summary = stats.Aggregate(cached)
		fmt.Printf("Computed from cached archive (last synced %s)\n\n", synced)
	} else {
		reqCtx, cancel := ctx.RequestContext()
		defer cancel()

		s, err := ctx.Client.Statistics(reqCtx)
		if err != nil {
			return cli.WrapRequestError(err)
		}
		summary = s
	}

	printSummary(summary)
	return nil
}

func printSummary(s models.StatisticsSummary) {
	if s.EntryCount == 0 {
		fmt.Println("No entries yet. Write one with 'moodlog entry add'.")
		return
	}

	fmt.Printf("Entries: %d (%d analyzed)\n", s.EntryCount, s.AnalyzedEntries)
	fmt.Printf("Distortions found: %d\n", s.TotalDistortions)
	if s.AverageConfidence > 0 {
		fmt.Printf("Average detection confidence: %d%%\n", s.AverageConfidence)
	}

	if len(s.DistortionFreq) > 0 {
		fmt.Println("\nMost frequent distortions:")
		for _, f := range s.DistortionFreq {
			fmt.Printf("  %-24s %3d  %s %d%%\n",
				f.Type, f.Count, present.ProgressBar(f.Percentage, 20), f.Percentage)
		}
	}

	fmt.Println("\nRisk distribution:")
	printRiskRow("low", s.RiskDistribution.Low)
	printRiskRow("medium", s.RiskDistribution.Medium)
	printRiskRow("high", s.RiskDistribution.High)
	if s.RiskDistribution.Unknown > 0 {
		printRiskRow("unknown", s.RiskDistribution.Unknown)
	}
	fmt.Printf("High risk: %d%%  Medium or above: %d%%\n",
		s.HighRiskPercentage, s.MediumPlusRiskPercent)

	if len(s.MoodDistribution) > 0 {
		fmt.Println("\nMood distribution:")
		for _, m := range s.MoodDistribution {
			fmt.Printf("  %-12s %3d  %s %d%%\n",
				m.Label, m.Count, present.ProgressBar(m.Percentage, 20), m.Percentage)
		}
		if s.DominantMood != "" {
			fmt.Printf("Dominant mood: %s\n", s.DominantMood)
		}
	}

	if len(s.MoodTimeline) > 1 {
		fmt.Printf("\nMood trend: %s", s.MoodTrend.Direction)
		if s.MoodTrend.Direction != stats.TrendFlat && s.MoodTrend.Percentage > 0 {
			fmt.Printf(" by %d%%", s.MoodTrend.Percentage)
		}
		fmt.Println()
		fmt.Printf("Timeline: %s\n", sparkline(s.MoodTimeline))
	}
}

func printRiskRow(level string, count int) {
	risk := present.RiskView(level)
	fmt.Printf("  %s %d\n", risk.Style.Render(fmt.Sprintf("%-8s", risk.Label)), count)
}

var sparkRunes = []rune("▁▂▄▆█")

// sparkline renders the mood timeline as one rune per point, scaled to
// the 1-5 mood range.
func sparkline(points []models.MoodPoint) string {
	var b strings.Builder
	for _, p := range points {
		idx := p.MoodScore - 1
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkRunes) {
			idx = len(sparkRunes) - 1
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}
