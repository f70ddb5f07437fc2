package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/instagram"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/instagram/igclient"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/messaging"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/messaging/rabbitmq"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ig-dashboard-api/internal/api"
	"github.com/vfg2006/ig-dashboard-api/internal/config"
	"github.com/vfg2006/ig-dashboard-api/internal/domain"
	"github.com/vfg2006/ig-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ig-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ig-dashboard-api/internal/usecases/connecting"
	"github.com/vfg2006/ig-dashboard-api/internal/usecases/credentialing"
	"github.com/vfg2006/ig-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/ig-dashboard-api/pkg/middleware"
	"github.com/vfg2006/ig-dashboard-api/pkg/secret"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migration.Apply(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	sealer, err := secret.NewSealer(cfg.Database.TokenEncryptionKey)
	if err != nil {
		logrus.WithError(err).Fatal("TOKEN_ENCRYPTION_KEY inválida")
	}
	if !sealer.Enabled() {
		logrus.Warn("TOKEN_ENCRYPTION_KEY não configurada, tokens serão gravados em texto puro")
	}

	accountRepo := repository.NewConnectedAccountRepository(pgConn, sealer)

	publisher := newPublisher(cfg)
	defer publisher.Close()

	policy := corsPolicy(cfg)

	metaIntegrator := meta.New(cfg, metaclient.NewClient(cfg))
	instagramIntegrator := instagram.New(cfg, igclient.NewClient(cfg))

	authenticator := authenticating.NewService(cfg)
	dashboardService := dashboarding.NewService(cfg, metaIntegrator)
	connectService := connecting.NewService(cfg, metaIntegrator, instagramIntegrator, accountRepo, publisher)
	tokenService := credentialing.NewService(accountRepo)

	tokenExpiryWatch := scheduler.NewTokenExpiryWatchService(accountRepo, publisher, cfg)
	if err := tokenExpiryWatch.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a verificação de tokens a vencer")
	}

	server, err := api.New(cfg, policy, api.Services{
		Dashboard:        dashboardService,
		Connector:        connectService,
		TokenReader:      tokenService,
		Authenticator:    authenticator,
		TokenExpiryWatch: tokenExpiryWatch,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// newPublisher usa o RabbitMQ quando RABBITMQ_URL está configurada; sem ela os eventos só vão para o log
func newPublisher(cfg *config.Config) messaging.Publisher {
	if cfg.RabbitMQ.URL == "" {
		logrus.Info("RABBITMQ_URL não configurada, eventos serão apenas registrados em log")
		return messaging.NewNopPublisher()
	}

	publisher, err := rabbitmq.NewRabbitMQ(rabbitmq.Config{
		URL:         cfg.RabbitMQ.URL,
		Exchange:    cfg.RabbitMQ.Exchange,
		QueueName:   cfg.RabbitMQ.Queue,
		RoutingKeys: []string{domain.EventAccountConnected, domain.EventTokenExpiring},
	})
	if err != nil {
		logrus.WithError(err).Warn("Erro ao conectar ao RabbitMQ, eventos serão apenas registrados em log")
		return messaging.NewNopPublisher()
	}

	logrus.WithField("exchange", cfg.RabbitMQ.Exchange).Info("Conexão com RabbitMQ estabelecida com sucesso")
	return publisher
}

// corsPolicy monta a política de origens a partir do ambiente, sobrescrita pelo CORS_POLICY_FILE se houver
func corsPolicy(cfg *config.Config) *middleware.Policy {
	policy := middleware.NewPolicy(cfg.Cors.AllowedOrigins, cfg.Cors.TrustedDomains, cfg.Cors.AllowPrivateNetwork)
	if cfg.Cors.PolicyFile == "" {
		return policy
	}

	filePolicy, err := middleware.LoadPolicyFile(cfg.Cors.PolicyFile, policy)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar a política de CORS")
	}
	return filePolicy
}
