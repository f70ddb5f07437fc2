package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/messaging"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ig-dashboard-api/internal/config"
	"github.com/vfg2006/ig-dashboard-api/internal/domain"
)

// TokenExpiryWatchConfig representa a configuração da verificação de tokens a vencer
type TokenExpiryWatchConfig struct {
	CronSchedule string
	Window       time.Duration
	Enabled      bool
}

// TokenExpiryWatchService avisa, via token.expiring, quais contas conectadas precisam ser reconectadas
type TokenExpiryWatchService struct {
	scheduler       *gocron.Scheduler
	config          TokenExpiryWatchConfig
	accountRepo     repository.ConnectedAccountRepository
	publisher       messaging.Publisher
	now             func() time.Time
	running         bool
	mutex           sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastNotified    int
}

func NewTokenExpiryWatchService(
	accountRepo repository.ConnectedAccountRepository,
	publisher messaging.Publisher,
	appConfig *config.Config,
) *TokenExpiryWatchService {
	watchConfig := TokenExpiryWatchConfig{
		CronSchedule: appConfig.TokenExpiryWatch.CronSchedule,
		Window:       appConfig.TokenExpiryWatch.Window,
		Enabled:      appConfig.TokenExpiryWatch.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": watchConfig.CronSchedule,
		"window":        watchConfig.Window.String(),
		"enabled":       watchConfig.Enabled,
	}).Info("Configuração da verificação de tokens carregada")

	return &TokenExpiryWatchService{
		scheduler:   gocron.NewScheduler(time.UTC),
		config:      watchConfig,
		accountRepo: accountRepo,
		publisher:   publisher,
		now:         time.Now,
	}
}

// Start agenda a verificação; desligada por configuração, não faz nada
func (s *TokenExpiryWatchService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Verificação de tokens a vencer desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da verificação de tokens")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação de tokens: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da verificação de tokens")
		s.scheduler.Stop()
	}()

	return nil
}

// Run executa uma verificação e devolve quantas contas foram notificadas.
// Uma execução em andamento faz a chamada retornar 0 sem fazer nada.
func (s *TokenExpiryWatchService) Run(ctx context.Context) int {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Verificação de tokens já em andamento, ignorando")
		return 0
	}
	s.running = true
	s.lastStartedAt = s.now()
	s.mutex.Unlock()

	notified := 0
	defer func() {
		s.mutex.Lock()
		s.running = false
		s.lastCompletedAt = s.now()
		s.lastNotified = notified
		s.mutex.Unlock()
	}()

	now := s.now()
	accounts, err := s.accountRepo.ListExpiringBefore(ctx, now.Add(s.config.Window))
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar contas com token a vencer")
		return 0
	}

	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta com token a vencer")
		return 0
	}

	for _, account := range accounts {
		if account.TokenExpiresAt == nil {
			continue
		}

		event := domain.TokenExpiringEvent{
			UserID:            account.UserID,
			Provider:          account.Provider,
			ProviderAccountID: account.ProviderAccountID,
			TokenExpiresAt:    *account.TokenExpiresAt,
			Expired:           account.IsExpired(now),
		}

		fields := logrus.Fields{
			"user_id":          account.UserID,
			"provider":         account.Provider,
			"ig_account_id":    account.ProviderAccountID,
			"token_expires_at": account.TokenExpiresAt.Format(time.RFC3339),
			"expired":          event.Expired,
		}
		logrus.WithFields(fields).Warn("Token da conta conectada vencido ou perto de vencer")

		if err := s.publisher.Publish(ctx, domain.EventTokenExpiring, event); err != nil {
			logrus.WithFields(fields).WithError(err).Error("Erro ao publicar token.expiring")
			continue
		}
		notified++
	}

	logrus.WithFields(logrus.Fields{
		"accounts": len(accounts),
		"notified": notified,
	}).Info("Verificação de tokens concluída")

	return notified
}

// GetStatus retorna o status atual do agendador
func (s *TokenExpiryWatchService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"window":            s.config.Window.String(),
		"running":           s.running,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_notified":     s.lastNotified,
	}
}
