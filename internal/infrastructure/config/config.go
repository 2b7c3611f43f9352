package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Identity IdentityConfig
	Billing  BillingConfig
	Storage  StorageConfig
	Sentry   SentryConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
	AppURL  string // URL do frontend, usada nos redirects de billing
}

type DatabaseConfig struct {
	Host          string
	Port          int
	User          string
	Password      string
	DBName        string
	SSLMode       string
	MaxConns      int
	MinConns      int
	MaxIdleTime   int
	RunMigrations bool
}

// IdentityConfig configura a verificação dos tokens de sessão e webhooks do provedor de identidade
type IdentityConfig struct {
	JWTPublicKey  string // PEM RSA; tem prioridade sobre o segredo HMAC
	JWTSecret     string
	Issuer        string
	WebhookSecret string // segredo svix (whsec_...)
}

type BillingConfig struct {
	StripeSecretKey     string
	StripeWebhookSecret string
	StripePriceID       string
}

// StorageConfig configura o bucket S3 compatível (Cloudflare R2)
type StorageConfig struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

type SentryConfig struct {
	DSN              string
	TracesSampleRate float64
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// Load carrega as configurações do ambiente, lendo o arquivo .env quando existir
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	config := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			Host:    v.GetString("HOST"),
			BaseURL: v.GetString("API_BASE_URL"),
			AppURL:  v.GetString("APP_URL"),
		},
		Database: DatabaseConfig{
			Host:          v.GetString("DB_HOST"),
			Port:          v.GetInt("DB_PORT"),
			User:          v.GetString("DB_USER"),
			Password:      v.GetString("DB_PASS"),
			DBName:        v.GetString("DB_NAME"),
			SSLMode:       v.GetString("DB_SSL_MODE"),
			MaxConns:      v.GetInt("DB_MAX_CONNS"),
			MinConns:      v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime:   v.GetInt("DB_MAX_IDLE_TIME"),
			RunMigrations: v.GetBool("DB_RUN_MIGRATIONS"),
		},
		Identity: IdentityConfig{
			JWTPublicKey:  v.GetString("IDENTITY_JWT_PUBLIC_KEY"),
			JWTSecret:     v.GetString("IDENTITY_JWT_SECRET"),
			Issuer:        v.GetString("IDENTITY_ISSUER"),
			WebhookSecret: v.GetString("IDENTITY_WEBHOOK_SECRET"),
		},
		Billing: BillingConfig{
			StripeSecretKey:     v.GetString("STRIPE_SECRET_KEY"),
			StripeWebhookSecret: v.GetString("STRIPE_WEBHOOK_SECRET"),
			StripePriceID:       v.GetString("STRIPE_PRICE_ID"),
		},
		Storage: StorageConfig{
			Endpoint:      v.GetString("STORAGE_ENDPOINT"),
			Region:        v.GetString("STORAGE_REGION"),
			Bucket:        v.GetString("STORAGE_BUCKET"),
			AccessKey:     v.GetString("STORAGE_ACCESS_KEY"),
			SecretKey:     v.GetString("STORAGE_SECRET_KEY"),
			PublicBaseURL: strings.TrimSuffix(v.GetString("STORAGE_PUBLIC_BASE_URL"), "/"),
		},
		Sentry: SentryConfig{
			DSN:              v.GetString("SENTRY_DSN"),
			TracesSampleRate: v.GetFloat64("SENTRY_TRACES_SAMPLE_RATE"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.SetDefault("APP_URL", "http://localhost:3000")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "recruit")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("DB_RUN_MIGRATIONS", true)
	v.SetDefault("STORAGE_REGION", "auto")
	v.SetDefault("SENTRY_TRACES_SAMPLE_RATE", 0.2)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

// IsProduction indica se a aplicação roda em produção
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate verifica as configurações obrigatórias.
// Em produção todos os segredos dos provedores externos são exigidos.
func (c *Config) Validate() error {
	var missing []string

	if c.Identity.JWTPublicKey == "" && c.Identity.JWTSecret == "" {
		missing = append(missing, "IDENTITY_JWT_PUBLIC_KEY or IDENTITY_JWT_SECRET")
	}

	if c.IsProduction() {
		required := map[string]string{
			"DB_PASS":                 c.Database.Password,
			"IDENTITY_WEBHOOK_SECRET": c.Identity.WebhookSecret,
			"STRIPE_SECRET_KEY":       c.Billing.StripeSecretKey,
			"STRIPE_WEBHOOK_SECRET":   c.Billing.StripeWebhookSecret,
			"STRIPE_PRICE_ID":         c.Billing.StripePriceID,
			"STORAGE_BUCKET":          c.Storage.Bucket,
			"STORAGE_PUBLIC_BASE_URL": c.Storage.PublicBaseURL,
		}
		for _, key := range slices.Sorted(maps.Keys(required)) {
			if required[key] == "" {
				missing = append(missing, key)
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
