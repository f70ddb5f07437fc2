package metaclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ig-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetProfile(ctx context.Context, accessToken, accountID string, fields []string) (*metadomain.Profile, error)
	ListMedia(ctx context.Context, accessToken, accountID string, limit int) ([]metadomain.Media, error)
	ListStories(ctx context.Context, accessToken, accountID string, limit int) ([]metadomain.Story, error)
	GetInsights(ctx context.Context, accessToken, objectID string, params url.Values) (*metadomain.InsightsResponse, error)
	ExchangeCode(ctx context.Context, appID, appSecret, redirectURI, code string) (*metadomain.TokenResponse, error)
	GetLongLivedToken(ctx context.Context, appID, appSecret, shortLivedToken string) (*metadomain.TokenResponse, error)
	ListPages(ctx context.Context, accessToken string) ([]metadomain.Page, error)
	GetPage(ctx context.Context, accessToken, pageID string) (*metadomain.Page, error)
}

// MetaClient fala com a Graph API do Facebook (graph.facebook.com/<versão>)
type MetaClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return New(cfg.Meta.URL, &http.Client{Timeout: cfg.Meta.Timeout})
}

// New recebe a URL já com a versão, por exemplo https://graph.facebook.com/v24.0
func New(baseURL string, httpClient *http.Client) *MetaClient {
	return &MetaClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// get faz um GET em baseURL+path com access_token e params, e decodifica o corpo em out
func (c *MetaClient) get(ctx context.Context, path, accessToken string, params url.Values, out any) error {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	if accessToken != "" {
		query.Set("access_token", accessToken)
	}

	requestURL := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição para a Graph API")
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Error("Erro ao fazer a requisição para a Graph API")
		return errors.Wrap(err, "Graph API request failed")
	}
	defer resp.Body.Close()

	body, err := HandleResponse(resp)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).WithField("path", path).Error("Erro ao decodificar JSON da Graph API")
		return errors.Wrap(err, "invalid Graph API response")
	}
	return nil
}

// HandleResponse lê o corpo e converte respostas de erro em *metadomain.GraphError.
// A Graph API às vezes devolve {"error": ...} com status 200; isso também é erro.
func HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta da Graph API")
	}

	var envelope struct {
		Error jsoniter.RawMessage `json:"error"`
	}
	isJSON := json.Unmarshal(body, &envelope) == nil
	hasError := isJSON && len(envelope.Error) > 0 && !bytes.Equal(envelope.Error, []byte("null"))

	if resp.StatusCode < 300 && !hasError {
		return body, nil
	}

	graphErr := &metadomain.GraphError{StatusCode: resp.StatusCode, Raw: string(body)}
	if hasError {
		graphErr.Raw = string(bytes.TrimSpace(envelope.Error))

		details := &metadomain.ErrorDetails{}
		if json.Unmarshal(envelope.Error, details) == nil {
			graphErr.Details = details
		}
	}

	logrus.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"error":       graphErr.Raw,
	}).Warn("Graph API devolveu erro")

	return nil, graphErr
}

func objectPath(id string, suffix ...string) string {
	path := "/" + url.PathEscape(id)
	for _, s := range suffix {
		path += "/" + s
	}
	return path
}

func fieldsParam(fields []string) url.Values {
	return url.Values{"fields": {strings.Join(fields, ",")}}
}

func limitParam(params url.Values, limit int) url.Values {
	params.Set("limit", fmt.Sprint(limit))
	return params
}
