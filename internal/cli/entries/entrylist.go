package entries

import (
	"fmt"

	"github.com/moodlogapp/moodlog/internal/cli"
	"github.com/moodlogapp/moodlog/internal/constants"
	"github.com/moodlogapp/moodlog/internal/models"
	"github.com/moodlogapp/moodlog/internal/present"
	"github.com/moodlogapp/moodlog/internal/view"
)

type EntryListCmd struct {
	Search string `short:"s" help:"Filter entries containing this text (case-insensitive)."`
	Sort   string `help:"Sort order (newest|oldest|mood-high|mood-low)." default:"newest" enum:"newest,oldest,mood-high,mood-low"`
	Cached bool   `help:"Read the local mirror instead of the server."`
}

func (c *EntryListCmd) Run(ctx *cli.Context) error {
	var entries []models.Entry

	if c.Cached {
		cached, synced, err := ctx.CachedEntries()
		if err != nil {
			return err
		}
		entries = cached
		fmt.Printf("Showing cached archive (last synced %s)\n\n", synced)
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

	ordered := view.View(entries, c.Search, constants.SortKey(c.Sort))
	if len(ordered) == 0 {
		if c.Search != "" {
			fmt.Println("No entries match the search.")
		} else {
			fmt.Println("No entries yet.")
		}
		return nil
	}

	for _, e := range ordered {
		printEntryLine(e)
	}
	return nil
}

func printEntryLine(e models.Entry) {
	mood := present.MoodView(e.MoodScore)
	line := fmt.Sprintf("  %s %s  #%d  %s",
		mood.Icon,
		e.CreatedAt.Format(constants.DateTimeFormat),
		e.ID,
		present.Truncate(e.Text, 60),
	)
	fmt.Println(line)

	if e.Analysis != nil {
		risk := present.RiskView(e.Analysis.RiskLevel)
		fmt.Printf("     risk %s, %d distortion(s)\n",
			risk.Style.Render(risk.Label), len(e.Analysis.Distortions))
	}
}
