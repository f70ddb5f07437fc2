package instagram

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/instagram/igclient"
	"github.com/vfg2006/ig-dashboard-api/internal/config"
	"github.com/vfg2006/ig-dashboard-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/instagram_integrator.go -package=mocks

// Integrator cobre o login direto do Instagram
type Integrator interface {
	ExchangeCode(ctx context.Context, appID, appSecret, redirectURI, code string) (*domain.OAuthToken, error)
	ExchangeLongLivedToken(ctx context.Context, appSecret, shortLivedToken string) (*domain.OAuthToken, error)
	GetProfile(ctx context.Context, accessToken, userID string) (*domain.Profile, error)
}

type InstagramService struct {
	cfg    *config.Config
	Client igclient.Client
}

func New(cfg *config.Config, client igclient.Client) Integrator {
	return &InstagramService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *InstagramService) ExchangeCode(ctx context.Context, appID, appSecret, redirectURI, code string) (*domain.OAuthToken, error) {
	resp, err := s.Client.ExchangeCode(ctx, appID, appSecret, redirectURI, code)
	if err != nil {
		logrus.WithError(err).Error("instagram: code exchange failed")
		return nil, err
	}

	return &domain.OAuthToken{
		AccessToken: resp.AccessToken,
		UserID:      resp.UserID.String(),
	}, nil
}

// ExchangeLongLivedToken devolve AccessToken vazio quando o Instagram não emite o token longo
func (s *InstagramService) ExchangeLongLivedToken(ctx context.Context, appSecret, shortLivedToken string) (*domain.OAuthToken, error) {
	resp, err := s.Client.GetLongLivedToken(ctx, appSecret, shortLivedToken)
	if err != nil {
		logrus.WithError(err).Error("instagram: long-lived token exchange failed")
		return nil, err
	}

	return &domain.OAuthToken{
		AccessToken: resp.AccessToken,
		ExpiresIn:   resp.ExpiresIn,
	}, nil
}

func (s *InstagramService) GetProfile(ctx context.Context, accessToken, userID string) (*domain.Profile, error) {
	resp, err := s.Client.GetProfile(ctx, accessToken, userID)
	if err != nil {
		return nil, err
	}

	return &domain.Profile{
		ID:                resp.ID,
		Username:          resp.Username,
		Name:              resp.Name,
		ProfilePictureURL: resp.ProfilePictureURL,
	}, nil
}
