package credentialing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ig-dashboard-api/internal/domain"
	"github.com/vfg2006/ig-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestService_GetToken(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)
	userID := "5b1c9a36-3c9e-4d55-9a3e-2f7f0b1d8f10"

	tests := []struct {
		name        string
		userID      string
		setup       func(repo *mocks.MockConnectedAccountRepository)
		want        *domain.InstagramToken
		wantMessage string
		wantCode    string
	}{
		{
			name:        "sem usuário",
			userID:      "",
			wantMessage: "User ID is required",
			wantCode:    apiErrors.ErrMissingRequiredData,
		},
		{
			name:   "nenhuma conta",
			userID: userID,
			setup: func(repo *mocks.MockConnectedAccountRepository) {
				repo.EXPECT().GetLatestByUserID(gomock.Any(), userID).Return(nil, nil)
			},
			wantMessage: "No connected account found",
			wantCode:    apiErrors.ErrNoConnectedAccount,
		},
		{
			name:   "erro de banco é tratado como conta inexistente",
			userID: userID,
			setup: func(repo *mocks.MockConnectedAccountRepository) {
				repo.EXPECT().GetLatestByUserID(gomock.Any(), userID).Return(nil, errors.New("connection reset"))
			},
			wantMessage: "No connected account found",
			wantCode:    apiErrors.ErrNoConnectedAccount,
		},
		{
			name:   "token vencido",
			userID: userID,
			setup: func(repo *mocks.MockConnectedAccountRepository) {
				repo.EXPECT().GetLatestByUserID(gomock.Any(), userID).Return(&domain.ConnectedAccount{
					UserID:            userID,
					ProviderAccountID: "1784",
					AccessToken:       "OLD",
					TokenExpiresAt:    timePtr(now.Add(-time.Minute)),
				}, nil)
			},
			wantMessage: "Token expired. Please reconnect your account.",
			wantCode:    apiErrors.ErrExpiredToken,
		},
		{
			name:   "vence exatamente agora",
			userID: userID,
			setup: func(repo *mocks.MockConnectedAccountRepository) {
				repo.EXPECT().GetLatestByUserID(gomock.Any(), userID).Return(&domain.ConnectedAccount{
					AccessToken:    "EDGE",
					TokenExpiresAt: timePtr(now),
				}, nil)
			},
			wantMessage: "Token expired. Please reconnect your account.",
			wantCode:    apiErrors.ErrExpiredToken,
		},
		{
			name:   "token válido",
			userID: userID,
			setup: func(repo *mocks.MockConnectedAccountRepository) {
				repo.EXPECT().GetLatestByUserID(gomock.Any(), userID).Return(&domain.ConnectedAccount{
					ProviderAccountID: "17841400000000001",
					AccessToken:       "IG_LONG",
					TokenExpiresAt:    timePtr(now.Add(59 * 24 * time.Hour)),
				}, nil)
			},
			want: &domain.InstagramToken{AccessToken: "IG_LONG", InstagramUserID: "17841400000000001"},
		},
		{
			name:   "sem vencimento registrado",
			userID: userID,
			setup: func(repo *mocks.MockConnectedAccountRepository) {
				repo.EXPECT().GetLatestByUserID(gomock.Any(), userID).Return(&domain.ConnectedAccount{
					ProviderAccountID: "42",
					AccessToken:       "FOREVER",
				}, nil)
			},
			want: &domain.InstagramToken{AccessToken: "FOREVER", InstagramUserID: "42"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockConnectedAccountRepository(ctrl)
			if tt.setup != nil {
				tt.setup(repo)
			}

			service := NewService(repo).WithClock(func() time.Time { return now })
			got, err := service.GetToken(context.Background(), tt.userID)

			if tt.wantMessage != "" {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.Equal(t, tt.wantMessage, err.Error())

				var tokenErr *TokenError
				require.True(t, errors.As(err, &tokenErr))
				assert.Equal(t, tt.wantCode, tokenErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
