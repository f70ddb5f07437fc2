package meta

import (
	"context"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ig-dashboard-api/internal/config"
	"github.com/vfg2006/ig-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=service.go -destination=mocks/meta_integrator.go -package=mocks

// Integrator expõe a Graph API do Facebook já nos tipos do domínio
type Integrator interface {
	GetProfile(ctx context.Context, accessToken, accountID string, fields []string) (*domain.Profile, error)
	GetMedia(ctx context.Context, accessToken, accountID string, limit int) ([]domain.MediaItem, error)
	GetStories(ctx context.Context, accessToken, accountID string, limit int) ([]domain.StoryItem, error)
	GetMediaInsights(ctx context.Context, accessToken string, item domain.MediaItem) (map[string]float64, error)
	GetStoryInsights(ctx context.Context, accessToken, storyID string) (map[string]float64, error)
	GetInsights(ctx context.Context, accessToken, objectID string, query domain.InsightsQuery) ([]domain.MetricValue, error)

	ExchangeCode(ctx context.Context, appID, appSecret, redirectURI, code string) (*domain.OAuthToken, error)
	ExchangeLongLivedToken(ctx context.Context, appID, appSecret, shortLivedToken string) (*domain.OAuthToken, error)
	GetPages(ctx context.Context, accessToken string) ([]domain.FacebookPage, error)
	GetPageInstagramAccount(ctx context.Context, accessToken, pageID string) (string, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) Integrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) GetProfile(ctx context.Context, accessToken, accountID string, fields []string) (*domain.Profile, error) {
	resp, err := s.Client.GetProfile(ctx, accessToken, accountID, fields)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ig_account_id": accountID,
			"error":         err.Error(),
		}).Error("meta: failed to get profile")
		return nil, err
	}

	return &domain.Profile{
		ID:                resp.ID,
		Username:          resp.Username,
		Name:              resp.Name,
		Biography:         resp.Biography,
		FollowersCount:    resp.FollowersCount,
		FollowsCount:      resp.FollowsCount,
		MediaCount:        resp.MediaCount,
		ProfilePictureURL: resp.ProfilePictureURL,
		Website:           resp.Website,
	}, nil
}

func (s *MetaIntegrator) GetMedia(ctx context.Context, accessToken, accountID string, limit int) ([]domain.MediaItem, error) {
	resp, err := s.Client.ListMedia(ctx, accessToken, accountID, limit)
	if err != nil {
		return nil, err
	}

	items := make([]domain.MediaItem, 0, len(resp))
	for _, m := range resp {
		items = append(items, domain.MediaItem{
			ID:            m.ID,
			Caption:       m.Caption,
			MediaType:     m.MediaType,
			MediaURL:      m.MediaURL,
			Permalink:     m.Permalink,
			ThumbnailURL:  m.ThumbnailURL,
			Timestamp:     m.Timestamp,
			LikeCount:     m.LikeCount,
			CommentsCount: m.CommentsCount,
		})
	}
	return items, nil
}

func (s *MetaIntegrator) GetStories(ctx context.Context, accessToken, accountID string, limit int) ([]domain.StoryItem, error) {
	resp, err := s.Client.ListStories(ctx, accessToken, accountID, limit)
	if err != nil {
		return nil, err
	}

	items := make([]domain.StoryItem, 0, len(resp))
	for _, st := range resp {
		items = append(items, domain.StoryItem{
			ID:        st.ID,
			MediaType: st.MediaType,
			MediaURL:  st.MediaURL,
			Permalink: st.Permalink,
			Timestamp: st.Timestamp,
		})
	}
	return items, nil
}

// GetMediaInsights escolhe o conjunto de métricas pelo tipo do item e devolve nome → último valor
func (s *MetaIntegrator) GetMediaInsights(ctx context.Context, accessToken string, item domain.MediaItem) (map[string]float64, error) {
	metrics := PostMetrics
	if item.IsVideo() {
		metrics = ReelMetrics
	}

	values, err := s.GetInsights(ctx, accessToken, item.ID, domain.InsightsQuery{Metrics: metrics})
	if err != nil {
		return nil, err
	}
	return domain.ToNumberMap(values), nil
}

func (s *MetaIntegrator) GetStoryInsights(ctx context.Context, accessToken, storyID string) (map[string]float64, error) {
	values, err := s.GetInsights(ctx, accessToken, storyID, domain.InsightsQuery{Metrics: StoryMetrics})
	if err != nil {
		return nil, err
	}
	return domain.ToNumberMap(values), nil
}

func (s *MetaIntegrator) GetInsights(ctx context.Context, accessToken, objectID string, query domain.InsightsQuery) ([]domain.MetricValue, error) {
	params := url.Values{}
	params.Set("metric", strings.Join(query.Metrics, ","))
	if query.Period != "" {
		params.Set("period", query.Period)
	}
	if query.Since != "" {
		params.Set("since", query.Since)
	}
	if query.Until != "" {
		params.Set("until", query.Until)
	}

	resp, err := s.Client.GetInsights(ctx, accessToken, objectID, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"object_id": objectID,
			"metric":    params.Get("metric"),
			"error":     err.Error(),
		}).Debug("meta: insights request failed")
		return nil, err
	}

	return ToMetricValues(resp.Data), nil
}

func (s *MetaIntegrator) ExchangeCode(ctx context.Context, appID, appSecret, redirectURI, code string) (*domain.OAuthToken, error) {
	resp, err := s.Client.ExchangeCode(ctx, appID, appSecret, redirectURI, code)
	if err != nil {
		return nil, err
	}
	return toOAuthToken(resp), nil
}

func (s *MetaIntegrator) ExchangeLongLivedToken(ctx context.Context, appID, appSecret, shortLivedToken string) (*domain.OAuthToken, error) {
	resp, err := s.Client.GetLongLivedToken(ctx, appID, appSecret, shortLivedToken)
	if err != nil {
		return nil, err
	}
	return toOAuthToken(resp), nil
}

func (s *MetaIntegrator) GetPages(ctx context.Context, accessToken string) ([]domain.FacebookPage, error) {
	resp, err := s.Client.ListPages(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	pages := make([]domain.FacebookPage, 0, len(resp))
	for _, p := range resp {
		pages = append(pages, toFacebookPage(p))
	}
	return pages, nil
}

// GetPageInstagramAccount devolve o id da conta business vinculada, ou "" se não houver
func (s *MetaIntegrator) GetPageInstagramAccount(ctx context.Context, accessToken, pageID string) (string, error) {
	page, err := s.Client.GetPage(ctx, accessToken, pageID)
	if err != nil {
		return "", err
	}
	if page.InstagramBusinessAccount == nil {
		return "", nil
	}
	return page.InstagramBusinessAccount.ID, nil
}

func toOAuthToken(resp *metadomain.TokenResponse) *domain.OAuthToken {
	return &domain.OAuthToken{
		AccessToken: resp.AccessToken,
		ExpiresIn:   resp.ExpiresIn,
	}
}

func toFacebookPage(p metadomain.Page) domain.FacebookPage {
	page := domain.FacebookPage{
		ID:          p.ID,
		Name:        p.Name,
		AccessToken: p.AccessToken,
	}
	if p.InstagramBusinessAccount != nil {
		page.InstagramBusinessAccountID = p.InstagramBusinessAccount.ID
	}
	return page
}
