package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Meta             Meta             `mapstructure:",squash"`
	Dashboard        Dashboard        `mapstructure:",squash"`
	Facebook         Facebook         `mapstructure:",squash"`
	Instagram        Instagram        `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Cors             Cors             `mapstructure:",squash"`
	RabbitMQ         RabbitMQ         `mapstructure:",squash"`
	TokenExpiryWatch TokenExpiryWatch `mapstructure:",squash"`
}

type App struct {
	LogLevel  string `mapstructure:"log_level"`
	DevSecret string `mapstructure:"dev_secret"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	// Chave hexadecimal de 32 bytes; vazia grava os tokens em texto puro
	TokenEncryptionKey string `mapstructure:"token_encryption_key"`
}

type Meta struct {
	BaseURL        string        `mapstructure:"meta_base_url"`
	URL            string        `mapstructure:"-"`
	Version        string        `mapstructure:"meta_version"`
	Timeout        time.Duration `mapstructure:"graph_timeout"`
	MaxConcurrency int           `mapstructure:"graph_max_concurrency"`
}

// Dashboard guarda as credenciais do servidor usadas pelo /ig-dashboard
type Dashboard struct {
	AccessToken string `mapstructure:"ig_access_token"`
	BusinessID  string `mapstructure:"ig_business_id"`
	PageID      string `mapstructure:"fb_page_id"`
}

type Facebook struct {
	AppID       string `mapstructure:"facebook_app_id"`
	AppSecret   string `mapstructure:"facebook_app_secret"`
	RedirectURI string `mapstructure:"oauth_redirect_uri"`
}

type Instagram struct {
	AppID        string `mapstructure:"instagram_app_id"`
	AppSecret    string `mapstructure:"instagram_app_secret"`
	OAuthURL     string `mapstructure:"instagram_oauth_url"`
	GraphURL     string `mapstructure:"instagram_graph_url"`
	GraphVersion string `mapstructure:"instagram_graph_version"`
}

type Auth struct {
	SupabaseJWTSecret string `mapstructure:"supabase_jwt_secret"`
}

type Cors struct {
	AllowedOrigins      []string `mapstructure:"cors_allowed_origins"`
	TrustedDomains      []string `mapstructure:"cors_trusted_domains"`
	AllowPrivateNetwork bool     `mapstructure:"cors_allow_private_network"`
	PolicyFile          string   `mapstructure:"cors_policy_file"`
}

type RabbitMQ struct {
	URL      string `mapstructure:"rabbitmq_url"`
	Exchange string `mapstructure:"rabbitmq_exchange"`
	Queue    string `mapstructure:"rabbitmq_queue"`
}

type TokenExpiryWatch struct {
	CronSchedule string        `mapstructure:"token_expiry_watch_cron"`
	Window       time.Duration `mapstructure:"token_expiry_watch_window"`
	Enabled      bool          `mapstructure:"token_expiry_watch_enabled"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)
	v.SetDefault("LOG_LEVEL", "debug")
	v.SetDefault("DEV_SECRET", "")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/igdashboard?sslmode=disable")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "root")
	v.SetDefault("TOKEN_ENCRYPTION_KEY", "")

	v.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	v.SetDefault("META_VERSION", "v24.0")
	v.SetDefault("GRAPH_TIMEOUT", "30s")
	v.SetDefault("GRAPH_MAX_CONCURRENCY", 50)

	v.SetDefault("IG_ACCESS_TOKEN", "")
	v.SetDefault("IG_BUSINESS_ID", "")
	v.SetDefault("FB_PAGE_ID", "")

	v.SetDefault("FACEBOOK_APP_ID", "")
	v.SetDefault("FACEBOOK_APP_SECRET", "")
	v.SetDefault("OAUTH_REDIRECT_URI", "https://insta-glow-up-39.lovable.app/auth/callback")

	v.SetDefault("INSTAGRAM_APP_ID", "")
	v.SetDefault("INSTAGRAM_APP_SECRET", "")
	v.SetDefault("INSTAGRAM_OAUTH_URL", "https://api.instagram.com")
	v.SetDefault("INSTAGRAM_GRAPH_URL", "https://graph.instagram.com")
	v.SetDefault("INSTAGRAM_GRAPH_VERSION", "v18.0")

	v.SetDefault("SUPABASE_JWT_SECRET", "")

	// A primeira origem também é a resposta para origens recusadas
	v.SetDefault("CORS_ALLOWED_ORIGINS", "https://insta-glow-up-39.lovable.app,https://lovable.dev,http://localhost:5173,http://localhost:8080")
	v.SetDefault("CORS_TRUSTED_DOMAINS", "lovable.dev")
	v.SetDefault("CORS_ALLOW_PRIVATE_NETWORK", true)
	v.SetDefault("CORS_POLICY_FILE", "")

	// Sem URL os eventos são apenas registrados em log
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "ig-dashboard")
	v.SetDefault("RABBITMQ_QUEUE", "ig-dashboard.events")

	v.SetDefault("TOKEN_EXPIRY_WATCH_CRON", "0 */6 * * *") // A cada 6 horas
	v.SetDefault("TOKEN_EXPIRY_WATCH_WINDOW", "168h")      // Avisa com 7 dias de antecedência
	v.SetDefault("TOKEN_EXPIRY_WATCH_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	SetDefaults(viper.GetViper())

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return Load(viper.GetViper())
}

// Load decodifica uma instância do viper já configurada; separado de NewConfig para os testes
func Load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", strings.TrimRight(config.Meta.BaseURL, "/"), config.Meta.Version)
	if config.Meta.MaxConcurrency < 1 {
		config.Meta.MaxConcurrency = 1
	}

	config.Cors.AllowedOrigins = trimAll(config.Cors.AllowedOrigins)
	config.Cors.TrustedDomains = trimAll(config.Cors.TrustedDomains)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
