package entries

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/moodlogapp/moodlog/internal/cli"
	"github.com/moodlogapp/moodlog/internal/errors"
	"github.com/moodlogapp/moodlog/internal/logger"
	"github.com/moodlogapp/moodlog/internal/models"
	"github.com/moodlogapp/moodlog/internal/present"
	"github.com/moodlogapp/moodlog/internal/validation"
)

type EntryAddCmd struct {
	Text string `arg:"" optional:"" help:"Entry body. Prompts when omitted."`
	Mood int    `short:"m" default:"0" help:"Mood score 1-5 (0 to skip)."`
}

func (c *EntryAddCmd) Run(ctx *cli.Context) error {
	if strings.TrimSpace(c.Text) == "" {
		if err := c.prompt(); err != nil {
			return errors.Wrap(err, "unable to read entry")
		}
	}

	if err := validation.EntryText(c.Text); err != nil {
		return err
	}
	if err := validation.MoodScore(c.Mood); err != nil {
		return err
	}

	var mood *int
	if c.Mood != 0 {
		m := c.Mood
		mood = &m
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	res, err := ctx.Client.ComposeEntry(reqCtx, strings.TrimSpace(c.Text), mood)
	if err != nil {
		return cli.WrapRequestError(err)
	}

	fmt.Printf("Saved entry #%d\n", res.Entry.ID)
	if !res.Analyzed() {
		logger.Debug("analysis unavailable", "err", res.AnalysisErr)
		fmt.Println("Analysis was unavailable; the entry was saved without it.")
		return nil
	}

	printAnalysis(res.Entry.Analysis)
	return nil
}

func (c *EntryAddCmd) prompt() error {
	moodStr := "0"
	form := huh.NewForm(huh.NewGroup(
		huh.NewText().
			Title("How are you feeling today?").
			Placeholder("Write freely; this stays between you and your journal.").
			Value(&c.Text),
		huh.NewSelect[string]().
			Title("Mood score").
			Options(
				huh.NewOption("skip", "0"),
				huh.NewOption("1 — very sad", "1"),
				huh.NewOption("2 — sad", "2"),
				huh.NewOption("3 — neutral", "3"),
				huh.NewOption("4 — happy", "4"),
				huh.NewOption("5 — very happy", "5"),
			).
			Value(&moodStr),
	))
	if err := form.Run(); err != nil {
		return err
	}
	c.Mood, _ = strconv.Atoi(moodStr)
	return nil
}

func printAnalysis(a *models.AnalysisResult) {
	dm := present.Analysis(a)

	fmt.Printf("\nRisk: %s %s\n",
		dm.Risk.Style.Render(dm.Risk.Label),
		present.ProgressBar(dm.Risk.Progress, 20),
	)

	if len(dm.Distortions) == 0 {
		fmt.Println("No cognitive distortions detected.")
	}
	for _, d := range dm.Distortions {
		fmt.Printf("\n• %s", d.Type)
		if d.ConfidenceLabel != "" {
			fmt.Printf(" (%s)", d.ConfidenceLabel)
		}
		fmt.Println()
		if d.Sentence != "" {
			fmt.Printf("  \"%s\"\n", d.Sentence)
		}
		if d.Explanation != "" {
			fmt.Printf("  %s\n", d.Explanation)
		}
		if d.Alternative != "" {
			fmt.Printf("  Try instead: %s\n", d.Alternative)
		}
	}

	if len(dm.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for _, r := range dm.Recommendations {
			fmt.Printf("  - %s\n", r)
		}
	}
}
