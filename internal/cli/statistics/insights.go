package statistics

import (
	"fmt"
	"strings"

	"github.com/moodlogapp/moodlog/internal/cli"
)

type InsightsCmd struct{}

func (c *InsightsCmd) Run(ctx *cli.Context) error {
	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	insights, err := ctx.Client.Insights(reqCtx)
	if err != nil {
		return cli.WrapRequestError(err)
	}

	text := strings.TrimSpace(insights.AIInsights)
	if text == "" {
		fmt.Println("No insights available yet. Write a few more entries first.")
		return nil
	}
	fmt.Println(text)
	return nil
}
