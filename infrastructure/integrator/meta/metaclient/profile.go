package metaclient

import (
	"context"

	metadomain "github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/meta/domain"
)

// GetProfile busca /{accountID} com os campos pedidos
func (c *MetaClient) GetProfile(ctx context.Context, accessToken, accountID string, fields []string) (*metadomain.Profile, error) {
	profile := &metadomain.Profile{}
	if err := c.get(ctx, objectPath(accountID), accessToken, fieldsParam(fields), profile); err != nil {
		return nil, err
	}
	return profile, nil
}
