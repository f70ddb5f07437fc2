package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/meta/domain"
)

// ExchangeCode troca o código de autorização do Facebook Login por um token de curta duração
func (c *MetaClient) ExchangeCode(ctx context.Context, appID, appSecret, redirectURI, code string) (*metadomain.TokenResponse, error) {
	params := url.Values{}
	params.Add("client_id", appID)
	params.Add("client_secret", appSecret)
	params.Add("redirect_uri", redirectURI)
	params.Add("code", code)

	tokenResp := &metadomain.TokenResponse{}
	if err := c.get(ctx, "/oauth/access_token", "", params, tokenResp); err != nil {
		return nil, err
	}
	return tokenResp, nil
}

// GetLongLivedToken obtém um token de longa duração do Meta
// usando um token de curta duração
func (c *MetaClient) GetLongLivedToken(ctx context.Context, appID, appSecret, shortLivedToken string) (*metadomain.TokenResponse, error) {
	if shortLivedToken == "" {
		return nil, fmt.Errorf("token de acesso não pode ser vazio")
	}

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", appID)
	params.Add("client_secret", appSecret)
	params.Add("fb_exchange_token", shortLivedToken)

	tokenResp := &metadomain.TokenResponse{}
	if err := c.get(ctx, "/oauth/access_token", "", params, tokenResp); err != nil {
		return nil, err
	}

	if tokenResp.ExpiresIn > 0 {
		logrus.Infof("Token de longa duração obtido com sucesso. Expira em %s.", FormatDuration(tokenResp.ExpiresIn))
	}

	return tokenResp, nil
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}
