package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/meta/domain"
)

// GetInsights chama /{objectID}/insights; params carrega metric, period, since e until
func (c *MetaClient) GetInsights(ctx context.Context, accessToken, objectID string, params url.Values) (*metadomain.InsightsResponse, error) {
	resp := &metadomain.InsightsResponse{}
	if err := c.get(ctx, objectPath(objectID, "insights"), accessToken, params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
