package entries

import (
	"fmt"

	"github.com/moodlogapp/moodlog/internal/cli"
	"github.com/moodlogapp/moodlog/internal/constants"
	"github.com/moodlogapp/moodlog/internal/models"
	"github.com/moodlogapp/moodlog/internal/present"
)

type EntryShowCmd struct {
	ID     int64 `arg:"" help:"Entry ID to show."`
	Cached bool  `help:"Read the local mirror instead of the server."`
}

func (c *EntryShowCmd) Run(ctx *cli.Context) error {
	var entries []models.Entry

	if c.Cached {
		cached, _, err := ctx.CachedEntries()
		if err != nil {
			return err
		}
		entries = cached
	} else {
		reqCtx, cancel := ctx.RequestContext()
		defer cancel()

		fetched, err := ctx.Client.ListEntries(reqCtx)
		if err != nil {
			return cli.WrapRequestError(err)
		}
		entries = fetched
		ctx.SyncCache(entries)
	}

	for _, e := range entries {
		if e.ID == c.ID {
			printEntryDetail(e)
			return nil
		}
	}
	return fmt.Errorf("entry #%d not found", c.ID)
}

func printEntryDetail(e models.Entry) {
	mood := present.MoodView(e.MoodScore)

	fmt.Printf("Entry #%d — %s\n", e.ID, e.CreatedAt.Format(constants.DateTimeFormat))
	fmt.Printf("Mood: %s %s\n\n", mood.Icon, mood.Style.Render(mood.Label))
	fmt.Println(e.Text)

	if e.Analysis == nil {
		fmt.Println("\nNo analysis recorded for this entry.")
		return
	}
	printAnalysis(e.Analysis)
	if at := present.Analysis(e.Analysis).AnalyzedAt; at != "" {
		fmt.Printf("\nAnalyzed at %s\n", at)
	}
}
