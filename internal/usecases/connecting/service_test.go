package connecting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	igmocks "github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/instagram/mocks"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/meta/domain"
	metamocks "github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/meta/mocks"
	pubmocks "github.com/vfg2006/ig-dashboard-api/infrastructure/messaging/mocks"
	repomocks "github.com/vfg2006/ig-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ig-dashboard-api/internal/config"
	"github.com/vfg2006/ig-dashboard-api/internal/domain"
	"github.com/vfg2006/ig-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const (
	testUserID = "5b1c9a36-3c9e-4d55-9a3e-2f7f0b1d8f10"
	testCode   = "AQBx-valid-authorization-code"
)

var fixedNow = time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)

type testDeps struct {
	meta      *metamocks.MockIntegrator
	instagram *igmocks.MockIntegrator
	repo      *repomocks.MockConnectedAccountRepository
	publisher *pubmocks.MockPublisher
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Facebook.AppID = "fb-app"
	cfg.Facebook.AppSecret = "fb-secret"
	cfg.Facebook.RedirectURI = "https://app.example.com/auth/callback"
	cfg.Instagram.AppID = "ig-app"
	cfg.Instagram.AppSecret = "ig-secret"
	return cfg
}

func newTestService(t *testing.T, cfg *config.Config) (*Service, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := testDeps{
		meta:      metamocks.NewMockIntegrator(ctrl),
		instagram: igmocks.NewMockIntegrator(ctrl),
		repo:      repomocks.NewMockConnectedAccountRepository(ctrl),
		publisher: pubmocks.NewMockPublisher(ctrl),
	}
	service := NewService(cfg, deps.meta, deps.instagram, deps.repo, deps.publisher).
		WithClock(func() time.Time { return fixedNow })
	return service, deps
}

func graphErr(message string) error {
	return &metadomain.GraphError{
		StatusCode: 400,
		Raw:        `{"message":"` + message + `"}`,
		Details:    &metadomain.ErrorDetails{Message: message, Type: "OAuthException"},
	}
}

func assertConnectError(t *testing.T, err error, wantMessage, wantCode string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, wantMessage, err.Error())

	var connErr *ConnectError
	require.True(t, errors.As(err, &connErr))
	assert.Equal(t, wantCode, connErr.Code)
}

func TestService_ConnectFacebook_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       domain.FacebookConnectInput
		mutateCfg   func(cfg *config.Config)
		setup       func(d testDeps)
		wantMessage string
		wantCode    string
	}{
		{
			name:        "código curto demais",
			input:       domain.FacebookConnectInput{UserID: testUserID, Code: "abc"},
			wantMessage: "Invalid authorization code format",
			wantCode:    apiErrors.ErrInvalidFormat,
		},
		{
			name:        "sem usuário",
			input:       domain.FacebookConnectInput{Code: testCode},
			wantMessage: "User ID is required",
			wantCode:    apiErrors.ErrMissingRequiredData,
		},
		{
			name:        "app do Facebook sem credenciais",
			input:       domain.FacebookConnectInput{UserID: testUserID, Code: testCode},
			mutateCfg:   func(cfg *config.Config) { cfg.Facebook.AppSecret = "" },
			wantMessage: "Facebook app credentials not configured",
			wantCode:    apiErrors.ErrMissingConfig,
		},
		{
			name:  "troca do código falha",
			input: domain.FacebookConnectInput{UserID: testUserID, Code: testCode},
			setup: func(d testDeps) {
				d.meta.EXPECT().ExchangeCode(gomock.Any(), "fb-app", "fb-secret", "https://app.example.com/auth/callback", testCode).
					Return(nil, graphErr("This authorization code has expired."))
			},
			wantMessage: "Facebook token error: This authorization code has expired.",
			wantCode:    apiErrors.ErrExternalService,
		},
		{
			name:  "troca por long-lived falha",
			input: domain.FacebookConnectInput{UserID: testUserID, Code: testCode},
			setup: func(d testDeps) {
				d.meta.EXPECT().ExchangeCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.OAuthToken{AccessToken: "SHORT"}, nil)
				d.meta.EXPECT().ExchangeLongLivedToken(gomock.Any(), "fb-app", "fb-secret", "SHORT").
					Return(nil, graphErr("Error validating access token"))
			},
			wantMessage: "Long-lived token error: Error validating access token",
			wantCode:    apiErrors.ErrExternalService,
		},
		{
			name:  "listagem de páginas falha",
			input: domain.FacebookConnectInput{UserID: testUserID, Code: testCode},
			setup: func(d testDeps) {
				d.meta.EXPECT().ExchangeCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.OAuthToken{AccessToken: "SHORT"}, nil)
				d.meta.EXPECT().ExchangeLongLivedToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.OAuthToken{AccessToken: "LONG", ExpiresIn: 5183944}, nil)
				d.meta.EXPECT().GetPages(gomock.Any(), "LONG").Return(nil, graphErr("(#100) Missing permissions"))
			},
			wantMessage: "Pages fetch error: (#100) Missing permissions",
			wantCode:    apiErrors.ErrExternalService,
		},
		{
			name:  "usuário sem páginas",
			input: domain.FacebookConnectInput{UserID: testUserID, Code: testCode},
			setup: func(d testDeps) {
				d.meta.EXPECT().ExchangeCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.OAuthToken{AccessToken: "SHORT"}, nil)
				d.meta.EXPECT().ExchangeLongLivedToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.OAuthToken{AccessToken: "LONG"}, nil)
				d.meta.EXPECT().GetPages(gomock.Any(), "LONG").Return([]domain.FacebookPage{}, nil)
			},
			wantMessage: "No Facebook Pages found. Please create a Facebook Page and link it to your Instagram Business account.",
			wantCode:    apiErrors.ErrNoPages,
		},
		{
			name:  "nenhuma página vinculada",
			input: domain.FacebookConnectInput{UserID: testUserID, Code: testCode},
			setup: func(d testDeps) {
				d.meta.EXPECT().ExchangeCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.OAuthToken{AccessToken: "SHORT"}, nil)
				d.meta.EXPECT().ExchangeLongLivedToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.OAuthToken{AccessToken: "LONG"}, nil)
				d.meta.EXPECT().GetPages(gomock.Any(), "LONG").Return([]domain.FacebookPage{
					{ID: "p1", Name: "Loja A", AccessToken: "PAGE_A"},
					{ID: "p2", Name: "Loja B"},
				}, nil)
				d.meta.EXPECT().GetPageInstagramAccount(gomock.Any(), "PAGE_A", "p1").Return("", nil)
				d.meta.EXPECT().GetPageInstagramAccount(gomock.Any(), "LONG", "p2").Return("", errors.New("timeout"))
			},
			wantMessage: "No Instagram Business Account found. Your Facebook Pages (Loja A, Loja B) are not linked to an Instagram Business account. Please link your Instagram Business/Creator account to a Facebook Page.",
			wantCode:    apiErrors.ErrNoBusinessAccount,
		},
		{
			name:  "perfil do Instagram falha",
			input: domain.FacebookConnectInput{UserID: testUserID, Code: testCode},
			setup: func(d testDeps) {
				d.meta.EXPECT().ExchangeCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.OAuthToken{AccessToken: "SHORT"}, nil)
				d.meta.EXPECT().ExchangeLongLivedToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.OAuthToken{AccessToken: "LONG"}, nil)
				d.meta.EXPECT().GetPages(gomock.Any(), "LONG").Return([]domain.FacebookPage{
					{ID: "p1", Name: "Loja A", AccessToken: "PAGE_A", InstagramBusinessAccountID: "1784"},
				}, nil)
				d.meta.EXPECT().GetProfile(gomock.Any(), "PAGE_A", "1784", meta.ConnectProfileFields).
					Return(nil, graphErr("Unsupported get request."))
			},
			wantMessage: "Profile fetch error: Unsupported get request.",
			wantCode:    apiErrors.ErrExternalService,
		},
		{
			name:  "falha ao gravar",
			input: domain.FacebookConnectInput{UserID: testUserID, Code: testCode},
			setup: func(d testDeps) {
				d.meta.EXPECT().ExchangeCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.OAuthToken{AccessToken: "SHORT"}, nil)
				d.meta.EXPECT().ExchangeLongLivedToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.OAuthToken{AccessToken: "LONG"}, nil)
				d.meta.EXPECT().GetPages(gomock.Any(), "LONG").Return([]domain.FacebookPage{
					{ID: "p1", Name: "Loja A", AccessToken: "PAGE_A", InstagramBusinessAccountID: "1784"},
				}, nil)
				d.meta.EXPECT().GetProfile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.Profile{ID: "1784", Username: "loja"}, nil)
				d.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			wantMessage: "Failed to save connected account",
			wantCode:    apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig()
			if tt.mutateCfg != nil {
				tt.mutateCfg(cfg)
			}
			service, deps := newTestService(t, cfg)
			if tt.setup != nil {
				tt.setup(deps)
			}

			result, err := service.ConnectFacebook(context.Background(), tt.input)

			assert.Nil(t, result)
			assertConnectError(t, err, tt.wantMessage, tt.wantCode)
		})
	}
}

func TestService_ConnectFacebook_Success(t *testing.T) {
	service, deps := newTestService(t, newTestConfig())

	deps.meta.EXPECT().ExchangeCode(gomock.Any(), "fb-app", "fb-secret", "https://app.example.com/auth/callback", testCode).
		Return(&domain.OAuthToken{AccessToken: "SHORT", ExpiresIn: 3600}, nil)
	deps.meta.EXPECT().ExchangeLongLivedToken(gomock.Any(), "fb-app", "fb-secret", "SHORT").
		Return(&domain.OAuthToken{AccessToken: "LONG", ExpiresIn: 0}, nil)
	deps.meta.EXPECT().GetPages(gomock.Any(), "LONG").Return([]domain.FacebookPage{
		{ID: "p1", Name: "Loja A", AccessToken: "PAGE_A"},
		{ID: "p2", Name: "Loja B"},
	}, nil)
	deps.meta.EXPECT().GetPageInstagramAccount(gomock.Any(), "PAGE_A", "p1").Return("", errors.New("rate limited"))
	deps.meta.EXPECT().GetPageInstagramAccount(gomock.Any(), "LONG", "p2").Return("17841400000000001", nil)
	deps.meta.EXPECT().GetProfile(gomock.Any(), "LONG", "17841400000000001", meta.ConnectProfileFields).
		Return(&domain.Profile{ID: "17841400000000001", Username: "lojab", Name: "Loja B", ProfilePictureURL: "https://cdn/pic.jpg"}, nil)

	var saved *domain.ConnectedAccount
	deps.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, account *domain.ConnectedAccount) error {
			saved = account
			return nil
		})
	deps.publisher.EXPECT().Publish(gomock.Any(), domain.EventAccountConnected, gomock.Any()).
		Return(errors.New("channel closed"))

	result, err := service.ConnectFacebook(context.Background(), domain.FacebookConnectInput{UserID: testUserID, Code: testCode})

	require.NoError(t, err)
	assert.Equal(t, &domain.ConnectResult{
		Success:           true,
		Provider:          domain.ProviderFacebook,
		InstagramUserID:   "17841400000000001",
		Username:          "lojab",
		Name:              "Loja B",
		ProfilePictureURL: "https://cdn/pic.jpg",
		PageName:          "Loja B",
	}, result)

	require.NotNil(t, saved)
	assert.Equal(t, testUserID, saved.UserID)
	assert.Equal(t, domain.ProviderFacebook, saved.Provider)
	assert.Equal(t, "17841400000000001", saved.ProviderAccountID)
	assert.Equal(t, "LONG", saved.AccessToken)
	assert.Equal(t, "lojab", saved.AccountUsername)
	require.NotNil(t, saved.TokenExpiresAt)
	assert.Equal(t, fixedNow.Add(60*24*time.Hour), *saved.TokenExpiresAt)
}

func TestService_ConnectFacebook_UsesPageToken(t *testing.T) {
	service, deps := newTestService(t, newTestConfig())

	deps.meta.EXPECT().ExchangeCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.OAuthToken{AccessToken: "SHORT"}, nil)
	deps.meta.EXPECT().ExchangeLongLivedToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.OAuthToken{AccessToken: "LONG", ExpiresIn: 86400}, nil)
	deps.meta.EXPECT().GetPages(gomock.Any(), "LONG").Return([]domain.FacebookPage{
		{ID: "p1", Name: "Loja A", AccessToken: "PAGE_A", InstagramBusinessAccountID: "1784"},
	}, nil)
	deps.meta.EXPECT().GetProfile(gomock.Any(), "PAGE_A", "1784", meta.ConnectProfileFields).
		Return(&domain.Profile{ID: "1784", Username: "lojaa"}, nil)
	deps.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, account *domain.ConnectedAccount) error {
			assert.Equal(t, "PAGE_A", account.AccessToken)
			require.NotNil(t, account.TokenExpiresAt)
			assert.Equal(t, fixedNow.Add(24*time.Hour), *account.TokenExpiresAt)
			return nil
		})
	deps.publisher.EXPECT().Publish(gomock.Any(), domain.EventAccountConnected, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload any) error {
			event, ok := payload.(domain.AccountConnectedEvent)
			require.True(t, ok)
			assert.Equal(t, "1784", event.ProviderAccountID)
			assert.Equal(t, "lojaa", event.Username)
			return nil
		})

	result, err := service.ConnectFacebook(context.Background(), domain.FacebookConnectInput{UserID: testUserID, Code: testCode})

	require.NoError(t, err)
	assert.Equal(t, "Loja A", result.PageName)
}

func TestService_ConnectInstagram_Validation(t *testing.T) {
	tests := []struct {
		name        string
		input       domain.InstagramConnectInput
		mutateCfg   func(cfg *config.Config)
		wantMessage string
		wantCode    string
	}{
		{
			name:        "sem código",
			input:       domain.InstagramConnectInput{UserID: testUserID},
			wantMessage: "Authorization code is required",
			wantCode:    apiErrors.ErrMissingRequiredData,
		},
		{
			name:        "sem usuário",
			input:       domain.InstagramConnectInput{Code: testCode},
			wantMessage: "User ID is required",
			wantCode:    apiErrors.ErrMissingRequiredData,
		},
		{
			name:        "código longo demais",
			input:       domain.InstagramConnectInput{UserID: testUserID, Code: string(make([]byte, 1001))},
			wantMessage: "Invalid authorization code format",
			wantCode:    apiErrors.ErrInvalidFormat,
		},
		{
			name:        "provider desconhecido",
			input:       domain.InstagramConnectInput{UserID: testUserID, Code: testCode, Provider: "tiktok"},
			wantMessage: "Invalid provider: tiktok",
			wantCode:    apiErrors.ErrInvalidRequest,
		},
		{
			name:        "app do Instagram sem credenciais",
			input:       domain.InstagramConnectInput{UserID: testUserID, Code: testCode},
			mutateCfg:   func(cfg *config.Config) { cfg.Instagram.AppID = "" },
			wantMessage: "Instagram app credentials not configured",
			wantCode:    apiErrors.ErrMissingConfig,
		},
		{
			name:        "provider facebook sem credenciais",
			input:       domain.InstagramConnectInput{UserID: testUserID, Code: testCode, Provider: domain.ProviderFacebook},
			mutateCfg:   func(cfg *config.Config) { cfg.Facebook.AppID = "" },
			wantMessage: "Facebook app credentials not configured",
			wantCode:    apiErrors.ErrMissingConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig()
			if tt.mutateCfg != nil {
				tt.mutateCfg(cfg)
			}
			service, _ := newTestService(t, cfg)

			result, err := service.ConnectInstagram(context.Background(), tt.input)

			assert.Nil(t, result)
			assertConnectError(t, err, tt.wantMessage, tt.wantCode)
		})
	}
}

func TestService_ConnectInstagram_Direct(t *testing.T) {
	t.Run("token long-lived vazio usa o short-lived e perfil indisponível não bloqueia", func(t *testing.T) {
		service, deps := newTestService(t, newTestConfig())

		deps.instagram.EXPECT().ExchangeCode(gomock.Any(), "ig-app", "ig-secret", "https://app.example.com/auth/callback", testCode).
			Return(&domain.OAuthToken{AccessToken: "IG_SHORT", UserID: "17841400000000002"}, nil)
		deps.instagram.EXPECT().ExchangeLongLivedToken(gomock.Any(), "ig-secret", "IG_SHORT").
			Return(&domain.OAuthToken{}, nil)
		deps.instagram.EXPECT().GetProfile(gomock.Any(), "IG_SHORT", "17841400000000002").
			Return(nil, errors.New("instagram API 500: oops"))
		deps.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, account *domain.ConnectedAccount) error {
				assert.Equal(t, domain.ProviderInstagram, account.Provider)
				assert.Equal(t, "IG_SHORT", account.AccessToken)
				assert.Equal(t, "17841400000000002", account.ProviderAccountID)
				assert.Empty(t, account.AccountUsername)
				return nil
			})
		deps.publisher.EXPECT().Publish(gomock.Any(), domain.EventAccountConnected, gomock.Any()).Return(nil)

		result, err := service.ConnectInstagram(context.Background(), domain.InstagramConnectInput{UserID: testUserID, Code: testCode})

		require.NoError(t, err)
		assert.Equal(t, &domain.ConnectResult{
			Success:         true,
			Provider:        domain.ProviderInstagram,
			InstagramUserID: "17841400000000002",
		}, result)
	})

	t.Run("token long-lived e perfil", func(t *testing.T) {
		service, deps := newTestService(t, newTestConfig())

		deps.instagram.EXPECT().ExchangeCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.OAuthToken{AccessToken: "IG_SHORT", UserID: "42"}, nil)
		deps.instagram.EXPECT().ExchangeLongLivedToken(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.OAuthToken{AccessToken: "IG_LONG", ExpiresIn: 5184000}, nil)
		deps.instagram.EXPECT().GetProfile(gomock.Any(), "IG_LONG", "42").
			Return(&domain.Profile{ID: "42", Username: "criadora"}, nil)
		deps.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, account *domain.ConnectedAccount) error {
				assert.Equal(t, "IG_LONG", account.AccessToken)
				assert.Equal(t, "criadora", account.AccountUsername)
				return nil
			})
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		result, err := service.ConnectInstagram(context.Background(), domain.InstagramConnectInput{UserID: testUserID, Code: testCode, Provider: domain.ProviderInstagram})

		require.NoError(t, err)
		assert.Equal(t, "criadora", result.Username)
	})

	t.Run("erro da troca é repassado como veio", func(t *testing.T) {
		service, deps := newTestService(t, newTestConfig())

		deps.instagram.EXPECT().ExchangeCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("Invalid authorization code"))

		result, err := service.ConnectInstagram(context.Background(), domain.InstagramConnectInput{UserID: testUserID, Code: testCode})

		assert.Nil(t, result)
		assertConnectError(t, err, "Invalid authorization code", apiErrors.ErrExternalService)
	})
}

func TestService_ConnectInstagram_ViaFacebook(t *testing.T) {
	input := domain.InstagramConnectInput{UserID: testUserID, Code: testCode, Provider: domain.ProviderFacebook}

	expectTokens := func(d testDeps) {
		d.meta.EXPECT().ExchangeCode(gomock.Any(), "fb-app", "fb-secret", gomock.Any(), testCode).
			Return(&domain.OAuthToken{AccessToken: "SHORT"}, nil)
		d.meta.EXPECT().ExchangeLongLivedToken(gomock.Any(), "fb-app", "fb-secret", "SHORT").
			Return(&domain.OAuthToken{AccessToken: "LONG", ExpiresIn: 5184000}, nil)
	}

	t.Run("erro da Graph API vira a mensagem curta", func(t *testing.T) {
		service, deps := newTestService(t, newTestConfig())
		deps.meta.EXPECT().ExchangeCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, graphErr("Invalid verification code format."))

		_, err := service.ConnectInstagram(context.Background(), input)

		assertConnectError(t, err, "Invalid verification code format.", apiErrors.ErrExternalService)
	})

	t.Run("sem páginas", func(t *testing.T) {
		service, deps := newTestService(t, newTestConfig())
		expectTokens(deps)
		deps.meta.EXPECT().GetPages(gomock.Any(), "LONG").Return(nil, graphErr("boom"))

		_, err := service.ConnectInstagram(context.Background(), input)

		assertConnectError(t, err, "No Facebook pages found", apiErrors.ErrNoPages)
	})

	t.Run("primeira página sem conta business", func(t *testing.T) {
		service, deps := newTestService(t, newTestConfig())
		expectTokens(deps)
		deps.meta.EXPECT().GetPages(gomock.Any(), "LONG").Return([]domain.FacebookPage{{ID: "p1"}, {ID: "p2"}}, nil)
		deps.meta.EXPECT().GetPageInstagramAccount(gomock.Any(), "LONG", "p1").Return("", nil)

		_, err := service.ConnectInstagram(context.Background(), input)

		assertConnectError(t, err, "No Instagram business account linked to Facebook page", apiErrors.ErrNoBusinessAccount)
	})

	t.Run("conecta pela primeira página", func(t *testing.T) {
		service, deps := newTestService(t, newTestConfig())
		expectTokens(deps)
		deps.meta.EXPECT().GetPages(gomock.Any(), "LONG").Return([]domain.FacebookPage{{ID: "p1", AccessToken: "PAGE"}}, nil)
		deps.meta.EXPECT().GetPageInstagramAccount(gomock.Any(), "LONG", "p1").Return("1784", nil)
		deps.meta.EXPECT().GetProfile(gomock.Any(), "LONG", "1784", meta.ConnectProfileFields).
			Return(nil, graphErr("temporarily unavailable"))
		deps.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, account *domain.ConnectedAccount) error {
				assert.Equal(t, domain.ProviderFacebook, account.Provider)
				assert.Equal(t, "LONG", account.AccessToken)
				assert.Equal(t, "1784", account.ProviderAccountID)
				return nil
			})
		deps.publisher.EXPECT().Publish(gomock.Any(), domain.EventAccountConnected, gomock.Any()).Return(nil)

		result, err := service.ConnectInstagram(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, &domain.ConnectResult{Success: true, Provider: domain.ProviderFacebook, InstagramUserID: "1784"}, result)
	})
}
