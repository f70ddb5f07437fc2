package metaclient

import (
	"context"

	metadomain "github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/meta/domain"
)

var (
	MediaFields = []string{
		"id", "caption", "media_type", "media_url", "permalink",
		"thumbnail_url", "timestamp", "like_count", "comments_count",
	}
	StoryFields = []string{"id", "media_type", "media_url", "permalink", "timestamp"}
)

// ListMedia devolve só a primeira página de /{accountID}/media
func (c *MetaClient) ListMedia(ctx context.Context, accessToken, accountID string, limit int) ([]metadomain.Media, error) {
	var resp metadomain.ListResponse[metadomain.Media]
	params := limitParam(fieldsParam(MediaFields), limit)
	if err := c.get(ctx, objectPath(accountID, "media"), accessToken, params, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return []metadomain.Media{}, nil
	}
	return resp.Data, nil
}

func (c *MetaClient) ListStories(ctx context.Context, accessToken, accountID string, limit int) ([]metadomain.Story, error) {
	var resp metadomain.ListResponse[metadomain.Story]
	params := limitParam(fieldsParam(StoryFields), limit)
	if err := c.get(ctx, objectPath(accountID, "stories"), accessToken, params, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return []metadomain.Story{}, nil
	}
	return resp.Data, nil
}
