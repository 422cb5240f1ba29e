package api

import (
	"context"
	"net/http"

	"github.com/moodlogapp/moodlog/internal/models"
)

// Statistics fetches the server-side pre-aggregated dashboard summary.
// The stats package computes the same shape locally from a cached
// archive when the server is unreachable.
func (c *Client) Statistics(ctx context.Context) (models.StatisticsSummary, error) {
	var summary models.StatisticsSummary
	if err := c.do(ctx, http.MethodGet, "/statistics/", nil, &summary, true); err != nil {
		return models.StatisticsSummary{}, err
	}
	return summary, nil
}

// Insights fetches the server-generated narrative over the statistics.
func (c *Client) Insights(ctx context.Context) (models.Insights, error) {
	var insights models.Insights
	if err := c.do(ctx, http.MethodGet, "/statistics/insights", nil, &insights, true); err != nil {
		return models.Insights{}, err
	}
	return insights, nil
}
