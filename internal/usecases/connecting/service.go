package connecting

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/instagram"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/messaging"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ig-dashboard-api/internal/config"
	"github.com/vfg2006/ig-dashboard-api/internal/domain"
	"github.com/vfg2006/ig-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ig-dashboard-api/pkg/log"
	"github.com/vfg2006/ig-dashboard-api/pkg/validation"
)

//go:generate mockgen -source=service.go -destination=mocks/connector.go -package=mocks

// Connector troca códigos OAuth por tokens e grava a conta conectada do usuário
type Connector interface {
	ConnectFacebook(ctx context.Context, input domain.FacebookConnectInput) (*domain.ConnectResult, error)
	ConnectInstagram(ctx context.Context, input domain.InstagramConnectInput) (*domain.ConnectResult, error)
}

type Service struct {
	cfg              *config.Config
	metaService      meta.Integrator
	instagramService instagram.Integrator
	accountRepo      repository.ConnectedAccountRepository
	publisher        messaging.Publisher
	now              func() time.Time
}

func NewService(
	cfg *config.Config,
	metaService meta.Integrator,
	instagramService instagram.Integrator,
	accountRepo repository.ConnectedAccountRepository,
	publisher messaging.Publisher,
) *Service {
	return &Service{
		cfg:              cfg,
		metaService:      metaService,
		instagramService: instagramService,
		accountRepo:      accountRepo,
		publisher:        publisher,
		now:              time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ConnectFacebook percorre as páginas do usuário até achar uma com conta business vinculada
func (s *Service) ConnectFacebook(ctx context.Context, input domain.FacebookConnectInput) (*domain.ConnectResult, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"user_id":  input.UserID,
		"provider": domain.ProviderFacebook,
	})

	if input.UserID == "" {
		return nil, NewConnectError(ErrUserIDRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if err := validation.Struct(input); err != nil {
		return nil, NewConnectError(ErrInvalidCode, apiErrors.ErrInvalidFormat, "")
	}

	appID, appSecret := s.cfg.Facebook.AppID, s.cfg.Facebook.AppSecret
	if appID == "" || appSecret == "" {
		return nil, NewConnectError(ErrFacebookCredentials, apiErrors.ErrMissingConfig, "")
	}

	shortLived, err := s.metaService.ExchangeCode(ctx, appID, appSecret, s.cfg.Facebook.RedirectURI, input.Code)
	if err != nil {
		logger.WithError(err).Error("oauth: facebook code exchange failed")
		return nil, NewConnectError(ErrFacebookToken, apiErrors.ErrExternalService, reason(err))
	}

	longLived, err := s.metaService.ExchangeLongLivedToken(ctx, appID, appSecret, shortLived.AccessToken)
	if err != nil {
		logger.WithError(err).Error("oauth: long-lived token exchange failed")
		return nil, NewConnectError(ErrLongLivedToken, apiErrors.ErrExternalService, reason(err))
	}
	userToken := longLived.AccessToken

	pages, err := s.metaService.GetPages(ctx, userToken)
	if err != nil {
		logger.WithError(err).Error("oauth: pages fetch failed")
		return nil, NewConnectError(ErrPagesFetch, apiErrors.ErrExternalService, reason(err))
	}
	if len(pages) == 0 {
		return nil, NewConnectError(ErrNoPages, apiErrors.ErrNoPages, "")
	}

	page, igAccountID := s.findLinkedPage(ctx, logger, userToken, pages)
	if igAccountID == "" {
		names := make([]string, 0, len(pages))
		for _, p := range pages {
			names = append(names, p.Name)
		}
		connErr := NewConnectError(ErrNoBusinessAccount, apiErrors.ErrNoBusinessAccount, "")
		connErr.Message = "No Instagram Business Account found. Your Facebook Pages (" + strings.Join(names, ", ") +
			") are not linked to an Instagram Business account. Please link your Instagram Business/Creator account to a Facebook Page."
		return nil, connErr
	}

	pageToken := page.AccessToken
	if pageToken == "" {
		pageToken = userToken
	}

	profile, err := s.metaService.GetProfile(ctx, pageToken, igAccountID, meta.ConnectProfileFields)
	if err != nil {
		logger.WithError(err).Error("oauth: instagram profile fetch failed")
		return nil, NewConnectError(ErrProfileFetch, apiErrors.ErrExternalService, reason(err))
	}

	now := s.now()
	account := &domain.ConnectedAccount{
		UserID:            input.UserID,
		Provider:          domain.ProviderFacebook,
		ProviderAccountID: igAccountID,
		AccessToken:       pageToken,
		AccountUsername:   profile.Username,
		AccountName:       profile.Name,
		ProfilePictureURL: profile.ProfilePictureURL,
		UpdatedAt:         now,
	}
	expiresAt := domain.TokenExpiresAt(now, longLived.ExpiresIn)
	account.TokenExpiresAt = &expiresAt

	if err := s.save(ctx, account); err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"ig_account_id": igAccountID,
		"page_id":       page.ID,
	}).Info("oauth: facebook account connected")

	return &domain.ConnectResult{
		Success:           true,
		Provider:          domain.ProviderFacebook,
		InstagramUserID:   igAccountID,
		Username:          profile.Username,
		Name:              profile.Name,
		ProfilePictureURL: profile.ProfilePictureURL,
		PageName:          page.Name,
	}, nil
}

// findLinkedPage usa o vínculo já listado em /me/accounts e, na falta dele, consulta a página.
// Falha na consulta de uma página só pula para a próxima.
func (s *Service) findLinkedPage(ctx context.Context, logger log.Logger, userToken string, pages []domain.FacebookPage) (domain.FacebookPage, string) {
	for _, page := range pages {
		if page.InstagramBusinessAccountID != "" {
			return page, page.InstagramBusinessAccountID
		}

		token := page.AccessToken
		if token == "" {
			token = userToken
		}
		igAccountID, err := s.metaService.GetPageInstagramAccount(ctx, token, page.ID)
		if err != nil {
			logger.WithError(err).WithField("page_id", page.ID).Warn("oauth: page lookup failed, skipping")
			continue
		}
		if igAccountID != "" {
			return page, igAccountID
		}
	}
	return domain.FacebookPage{}, ""
}

// ConnectInstagram atende o login direto do Instagram e o provider=facebook legado, que usa só a primeira página
func (s *Service) ConnectInstagram(ctx context.Context, input domain.InstagramConnectInput) (*domain.ConnectResult, error) {
	if input.Provider == "" {
		input.Provider = domain.ProviderInstagram
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"user_id":  input.UserID,
		"provider": input.Provider,
	})

	if input.Code == "" {
		return nil, NewConnectError(ErrCodeRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if input.UserID == "" {
		return nil, NewConnectError(ErrUserIDRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if err := validation.Struct(input); err != nil {
		var fieldErr *validation.FieldError
		if errors.As(err, &fieldErr) && fieldErr.Field == "provider" {
			return nil, NewConnectError(ErrInvalidProvider, apiErrors.ErrInvalidRequest, string(input.Provider))
		}
		return nil, NewConnectError(ErrInvalidCode, apiErrors.ErrInvalidFormat, "")
	}

	var (
		link *linkedAccount
		err  error
	)
	if input.Provider == domain.ProviderFacebook {
		link, err = s.linkViaFacebook(ctx, logger, input.Code)
	} else {
		link, err = s.linkViaInstagram(ctx, logger, input.Code)
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	account := &domain.ConnectedAccount{
		UserID:            input.UserID,
		Provider:          input.Provider,
		ProviderAccountID: link.accountID,
		AccessToken:       link.accessToken,
		AccountUsername:   link.profile.Username,
		AccountName:       link.profile.Name,
		ProfilePictureURL: link.profile.ProfilePictureURL,
		UpdatedAt:         now,
	}
	expiresAt := domain.TokenExpiresAt(now, link.expiresIn)
	account.TokenExpiresAt = &expiresAt

	if err := s.save(ctx, account); err != nil {
		return nil, err
	}

	logger.WithField("ig_account_id", link.accountID).Info("oauth: instagram account connected")

	return &domain.ConnectResult{
		Success:         true,
		Provider:        input.Provider,
		InstagramUserID: link.accountID,
		Username:        link.profile.Username,
	}, nil
}

type linkedAccount struct {
	accountID   string
	accessToken string
	expiresIn   int64
	profile     domain.Profile
}

func (s *Service) linkViaInstagram(ctx context.Context, logger log.Logger, code string) (*linkedAccount, error) {
	appID, appSecret := s.cfg.Instagram.AppID, s.cfg.Instagram.AppSecret
	if appID == "" || appSecret == "" {
		return nil, NewConnectError(ErrInstagramCredentials, apiErrors.ErrMissingConfig, "")
	}

	shortLived, err := s.instagramService.ExchangeCode(ctx, appID, appSecret, s.cfg.Facebook.RedirectURI, code)
	if err != nil {
		logger.WithError(err).Error("oauth: instagram code exchange failed")
		return nil, NewConnectError(err, apiErrors.ErrExternalService, "")
	}

	longLived, err := s.instagramService.ExchangeLongLivedToken(ctx, appSecret, shortLived.AccessToken)
	if err != nil {
		logger.WithError(err).Error("oauth: instagram long-lived exchange failed")
		return nil, NewConnectError(err, apiErrors.ErrExternalService, "")
	}

	link := &linkedAccount{
		accountID:   shortLived.UserID,
		accessToken: longLived.AccessToken,
		expiresIn:   longLived.ExpiresIn,
	}
	if link.accessToken == "" {
		link.accessToken = shortLived.AccessToken
	}

	profile, err := s.instagramService.GetProfile(ctx, link.accessToken, link.accountID)
	if err != nil {
		logger.WithError(err).Warn("oauth: instagram profile unavailable, saving without it")
	} else if profile != nil {
		link.profile = *profile
	}

	return link, nil
}

func (s *Service) linkViaFacebook(ctx context.Context, logger log.Logger, code string) (*linkedAccount, error) {
	appID, appSecret := s.cfg.Facebook.AppID, s.cfg.Facebook.AppSecret
	if appID == "" || appSecret == "" {
		return nil, NewConnectError(ErrFacebookCredentials, apiErrors.ErrMissingConfig, "")
	}

	shortLived, err := s.metaService.ExchangeCode(ctx, appID, appSecret, s.cfg.Facebook.RedirectURI, code)
	if err != nil {
		logger.WithError(err).Error("oauth: facebook code exchange failed")
		return nil, graphConnectError(err)
	}

	longLived, err := s.metaService.ExchangeLongLivedToken(ctx, appID, appSecret, shortLived.AccessToken)
	if err != nil {
		logger.WithError(err).Error("oauth: long-lived token exchange failed")
		return nil, graphConnectError(err)
	}
	userToken := longLived.AccessToken

	pages, err := s.metaService.GetPages(ctx, userToken)
	if err != nil {
		logger.WithError(err).Warn("oauth: pages fetch failed")
	}
	if len(pages) == 0 {
		return nil, NewConnectError(ErrNoPagesFound, apiErrors.ErrNoPages, "")
	}

	igAccountID, err := s.metaService.GetPageInstagramAccount(ctx, userToken, pages[0].ID)
	if err != nil {
		logger.WithError(err).WithField("page_id", pages[0].ID).Warn("oauth: page lookup failed")
	}
	if igAccountID == "" {
		return nil, NewConnectError(ErrPageNotLinked, apiErrors.ErrNoBusinessAccount, "")
	}

	link := &linkedAccount{
		accountID:   igAccountID,
		accessToken: userToken,
		expiresIn:   longLived.ExpiresIn,
	}

	profile, err := s.metaService.GetProfile(ctx, userToken, igAccountID, meta.ConnectProfileFields)
	if err != nil {
		logger.WithError(err).Warn("oauth: instagram profile unavailable, saving without it")
	} else if profile != nil {
		link.profile = *profile
	}

	return link, nil
}

// save grava a conta e publica account.connected; falha na publicação não desfaz a conexão
func (s *Service) save(ctx context.Context, account *domain.ConnectedAccount) error {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"user_id":       account.UserID,
		"provider":      account.Provider,
		"ig_account_id": account.ProviderAccountID,
	})

	if err := s.accountRepo.Upsert(ctx, account); err != nil {
		logger.WithError(err).Error("oauth: failed to save connected account")
		return NewConnectError(ErrSaveAccount, apiErrors.ErrDatabaseOperation, "")
	}

	event := domain.AccountConnectedEvent{
		UserID:            account.UserID,
		Provider:          account.Provider,
		ProviderAccountID: account.ProviderAccountID,
		Username:          account.AccountUsername,
		ConnectedAt:       account.UpdatedAt,
	}
	if account.TokenExpiresAt != nil {
		event.TokenExpiresAt = *account.TokenExpiresAt
	}

	if err := s.publisher.Publish(ctx, domain.EventAccountConnected, event); err != nil {
		logger.WithError(err).Warn("oauth: failed to publish account.connected")
	}
	return nil
}

// reason extrai a mensagem curta de um erro da Graph API
func reason(err error) string {
	var graphErr *metadomain.GraphError
	if errors.As(err, &graphErr) {
		return graphErr.Reason()
	}
	return err.Error()
}

func graphConnectError(err error) *ConnectError {
	connErr := NewConnectError(err, apiErrors.ErrExternalService, "")
	connErr.Message = reason(err)
	return connErr
}
