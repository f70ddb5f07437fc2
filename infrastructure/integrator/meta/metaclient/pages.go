package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/meta/domain"
)

// ListPages lista as páginas do usuário em /me/accounts
func (c *MetaClient) ListPages(ctx context.Context, accessToken string) ([]metadomain.Page, error) {
	var resp metadomain.ListResponse[metadomain.Page]
	params := url.Values{"fields": {"id,name,access_token,instagram_business_account"}}
	if err := c.get(ctx, "/me/accounts", accessToken, params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetPage consulta só a conta business vinculada a uma página
func (c *MetaClient) GetPage(ctx context.Context, accessToken, pageID string) (*metadomain.Page, error) {
	page := &metadomain.Page{}
	params := url.Values{"fields": {"instagram_business_account"}}
	if err := c.get(ctx, objectPath(pageID), accessToken, params, page); err != nil {
		return nil, err
	}
	return page, nil
}
