package credentialing

import (
	"context"
	"time"

	"github.com/vfg2006/ig-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ig-dashboard-api/internal/domain"
	"github.com/vfg2006/ig-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ig-dashboard-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/token_reader.go -package=mocks

// TokenReader devolve o token da conta conectada mais recente do usuário
type TokenReader interface {
	GetToken(ctx context.Context, userID string) (*domain.InstagramToken, error)
}

type Service struct {
	accountRepo repository.ConnectedAccountRepository
	now         func() time.Time
}

func NewService(accountRepo repository.ConnectedAccountRepository) *Service {
	return &Service{
		accountRepo: accountRepo,
		now:         time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// GetToken não tenta renovar: token vencido exige reconectar
func (s *Service) GetToken(ctx context.Context, userID string) (*domain.InstagramToken, error) {
	if userID == "" {
		return nil, NewTokenError(ErrUserIDRequired, apiErrors.ErrMissingRequiredData)
	}

	logger := log.ForContext(ctx).WithField("user_id", userID)

	account, err := s.accountRepo.GetLatestByUserID(ctx, userID)
	if err != nil {
		// Para o cliente, erro de banco e ausência de conta são a mesma coisa
		logger.WithError(err).Error("token: failed to load connected account")
		return nil, NewTokenError(ErrNoConnectedAccount, apiErrors.ErrNoConnectedAccount)
	}
	if account == nil {
		logger.Info("token: no connected account")
		return nil, NewTokenError(ErrNoConnectedAccount, apiErrors.ErrNoConnectedAccount)
	}

	if account.IsExpired(s.now()) {
		logger.WithFields(log.Fields{
			"provider":         account.Provider,
			"ig_account_id":    account.ProviderAccountID,
			"token_expires_at": account.TokenExpiresAt,
		}).Warn("token: connected account token expired")
		return nil, NewTokenError(ErrTokenExpired, apiErrors.ErrExpiredToken)
	}

	return &domain.InstagramToken{
		AccessToken:     account.AccessToken,
		InstagramUserID: account.ProviderAccountID,
	}, nil
}
