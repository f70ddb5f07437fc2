package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ig-dashboard-api/internal/api/handler"
	"github.com/vfg2006/ig-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ig-dashboard-api/internal/config"
	"github.com/vfg2006/ig-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ig-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ig-dashboard-api/internal/usecases/connecting"
	"github.com/vfg2006/ig-dashboard-api/internal/usecases/credentialing"
	"github.com/vfg2006/ig-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/ig-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services reúne os casos de uso expostos pela API
type Services struct {
	Dashboard        dashboarding.Dashboarder
	Connector        connecting.Connector
	TokenReader      credentialing.TokenReader
	Authenticator    authenticating.Authenticator
	TokenExpiryWatch *scheduler.TokenExpiryWatchService
}

func New(config *config.Config, policy *middleware.Policy, services Services) (*Server, error) {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, policy, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// NewHandler monta o router com a cadeia de middlewares: panic, log e CORS
func NewHandler(config *config.Config, policy *middleware.Policy, services Services) http.Handler {
	cronServices := handler.CronJobServices{
		TokenExpiryWatchService: services.TokenExpiryWatch,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Dashboard(services.Dashboard)...),
		router.WithRoutes(handler.OAuth(services.Connector, services.Authenticator)...),
		router.WithRoutes(handler.Tokens(services.TokenReader)...),
		router.WithRoutes(handler.CronJobs(cronServices, config.App.DevSecret)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(policy),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
