package entries

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/moodlogapp/moodlog/internal/cli"
	"github.com/moodlogapp/moodlog/internal/errors"
)

type EntryDeleteCmd struct {
	ID    int64 `arg:"" help:"Entry ID to delete."`
	Force bool  `short:"f" help:"Skip the confirmation prompt."`
}

func (c *EntryDeleteCmd) Run(ctx *cli.Context) error {
	if !c.Force {
		var confirmed bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete entry #%d?", c.ID)).
				Description("This cannot be undone.").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return errors.Wrap(err, "unable to confirm deletion")
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	if err := ctx.Client.DeleteEntry(reqCtx, c.ID); err != nil {
		return cli.WrapRequestError(err)
	}

	// Mirror the deletion locally; a cache miss is not an error.
	if ctx.Cache != nil {
		cli.LogCacheError("remove", ctx.Cache.RemoveEntry(c.ID))
	}

	fmt.Printf("Deleted entry #%d\n", c.ID)
	return nil
}
