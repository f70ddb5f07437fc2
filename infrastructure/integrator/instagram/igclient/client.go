package igclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	igdomain "github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/ig-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	ExchangeCode(ctx context.Context, appID, appSecret, redirectURI, code string) (*igdomain.ShortLivedToken, error)
	GetLongLivedToken(ctx context.Context, appSecret, shortLivedToken string) (*igdomain.LongLivedToken, error)
	GetProfile(ctx context.Context, accessToken, userID string) (*igdomain.Profile, error)
}

// IGClient fala com o login direto do Instagram (api.instagram.com e graph.instagram.com)
type IGClient struct {
	oauthURL     string
	graphURL     string
	graphVersion string
	httpClient   *http.Client
}

func NewClient(cfg *config.Config) Client {
	return New(cfg.Instagram.OAuthURL, cfg.Instagram.GraphURL, cfg.Instagram.GraphVersion, &http.Client{Timeout: cfg.Meta.Timeout})
}

func New(oauthURL, graphURL, graphVersion string, httpClient *http.Client) *IGClient {
	return &IGClient{
		oauthURL:     strings.TrimRight(oauthURL, "/"),
		graphURL:     strings.TrimRight(graphURL, "/"),
		graphVersion: graphVersion,
		httpClient:   httpClient,
	}
}

// ExchangeCode envia o código como formulário; falhas chegam em error_message
func (c *IGClient) ExchangeCode(ctx context.Context, appID, appSecret, redirectURI, code string) (*igdomain.ShortLivedToken, error) {
	form := url.Values{}
	form.Set("client_id", appID)
	form.Set("client_secret", appSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", redirectURI)
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.oauthURL+"/oauth/access_token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	token := &igdomain.ShortLivedToken{}
	status, err := c.do(req, token)
	if err != nil {
		return nil, err
	}

	if token.ErrorMessage != "" {
		return nil, errors.New(token.ErrorMessage)
	}
	if status >= http.StatusBadRequest || token.AccessToken == "" {
		return nil, fmt.Errorf("instagram token exchange failed with status %d", status)
	}

	return token, nil
}

// GetLongLivedToken troca o token curto pelo de 60 dias (grant ig_exchange_token)
func (c *IGClient) GetLongLivedToken(ctx context.Context, appSecret, shortLivedToken string) (*igdomain.LongLivedToken, error) {
	params := url.Values{}
	params.Set("grant_type", "ig_exchange_token")
	params.Set("client_secret", appSecret)
	params.Set("access_token", shortLivedToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.graphURL+"/access_token?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	token := &igdomain.LongLivedToken{}
	if _, err := c.do(req, token); err != nil {
		return nil, err
	}
	if token.Error != nil {
		return nil, errors.New(token.Error.Message)
	}

	return token, nil
}

func (c *IGClient) GetProfile(ctx context.Context, accessToken, userID string) (*igdomain.Profile, error) {
	params := url.Values{}
	params.Set("fields", "id,username,name,profile_picture_url")
	params.Set("access_token", accessToken)

	requestURL := fmt.Sprintf("%s/%s/%s?%s", c.graphURL, c.graphVersion, url.PathEscape(userID), params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	profile := &igdomain.Profile{}
	if _, err := c.do(req, profile); err != nil {
		return nil, err
	}
	if profile.Error != nil {
		return nil, errors.New(profile.Error.Message)
	}

	return profile, nil
}

// do executa a requisição e decodifica o JSON mesmo quando o status é de erro
func (c *IGClient) do(req *http.Request, out any) (int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("url", req.URL.Host+req.URL.Path).Error("Erro ao chamar a API do Instagram")
		return 0, errors.Wrap(err, "instagram request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, errors.Wrap(err, "erro ao ler resposta do Instagram")
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"body":        string(body),
		}).Error("Resposta do Instagram não é JSON")
		return resp.StatusCode, fmt.Errorf("instagram API %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return resp.StatusCode, nil
}
