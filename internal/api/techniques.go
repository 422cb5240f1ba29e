package api

import (
	"context"
	"net/http"

	"github.com/moodlogapp/moodlog/internal/models"
)

// Techniques fetches coping techniques for a distortion type, optionally
// personalized with free-text context from the entry being viewed.
func (c *Client) Techniques(ctx context.Context, distortionType, userContext string) (models.TechniqueBundle, error) {
	var envelope struct {
		Data models.TechniqueBundle `json:"data"`
	}
	err := c.do(ctx, http.MethodPost, "/rag/techniques/", models.TechniqueRequest{
		DistortionType: distortionType,
		UserContext:    userContext,
	}, &envelope, true)
	if err != nil {
		return models.TechniqueBundle{}, err
	}
	return envelope.Data, nil
}
