// Package config loads service configuration from an optional .env file and
// the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every option recognised by the identity service.
type Config struct {
	App      AppConfig      `envPrefix:"APP_"`
	Postgres PostgresConfig `envPrefix:"POSTGRES_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	Kafka    KafkaConfig    `envPrefix:"KAFKA_"`

	AccessToken            TokenConfig `envPrefix:"JWT_ACCESS_"`
	RefreshToken           TokenConfig `envPrefix:"JWT_REFRESH_"`
	EmailVerificationToken TokenConfig `envPrefix:"JWT_EMAIL_VERIFICATION_"`

	Registration RegistrationConfig
	Status       StatusConfig `envPrefix:"STATUS_"`

	Google OAuthProviderConfig `envPrefix:"OAUTH_GOOGLE_"`
	Kakao  OAuthProviderConfig `envPrefix:"OAUTH_KAKAO_"`
	Naver  OAuthProviderConfig `envPrefix:"OAUTH_NAVER_"`

	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"5s"`
	IssueCodeTTL    time.Duration `env:"ISSUE_CODE_TTL" envDefault:"1m"`
	StoreTxRetries  uint64        `env:"STORE_TX_RETRIES" envDefault:"2"`
}

type AppConfig struct {
	Host        string `env:"HOST" envDefault:"localhost"`
	Port        string `env:"PORT" envDefault:"8080"`
	GRPCPort    string `env:"GRPC_PORT" envDefault:"50051"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"DEVELOPMENT" envDefault:"false"`
}

type PostgresConfig struct {
	Host         string `env:"HOST" envDefault:"localhost"`
	Port         int    `env:"PORT" envDefault:"5432"`
	User         string `env:"USER" envDefault:"user"`
	Password     string `env:"PASSWORD" envDefault:"password"`
	DB           string `env:"DB" envDefault:"database"`
	MaxOpenConns int    `env:"MAX_OPEN_CONNS" envDefault:"16"`
	MaxIdleConns int    `env:"MAX_IDLE_CONNS" envDefault:"8"`
}

// DSN builds the pgx connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DB)
}

type RedisConfig struct {
	Host         string `env:"HOST" envDefault:"localhost"`
	Port         int    `env:"PORT" envDefault:"6379"`
	DB           int    `env:"DB" envDefault:"0"`
	Password     string `env:"PASSWORD"`
	PoolSize     int    `env:"POOL_SIZE" envDefault:"10"`
	MinIdleConns int    `env:"MIN_IDLE_CONNS" envDefault:"2"`
}

type KafkaConfig struct {
	Brokers   []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	MailTopic string   `env:"MAIL_TOPIC" envDefault:"identity.email-verification"`
}

// TokenConfig describes how one token kind is signed. HMAC algorithms use
// Secret; RSA and ECDSA algorithms use the PEM key files.
type TokenConfig struct {
	Algorithm      string        `env:"ALGORITHM" envDefault:"HS256"`
	Secret         string        `env:"SECRET"`
	PrivateKeyFile string        `env:"PRIVATE_KEY_FILE"`
	PublicKeyFile  string        `env:"PUBLIC_KEY_FILE"`
	TTL            time.Duration `env:"TTL"`
}

type RegistrationConfig struct {
	ResendMinDelay    time.Duration `env:"RESEND_MIN_DELAY" envDefault:"1m"`
	ResendMaxAttempts int           `env:"RESEND_MAX_ATTEMPTS" envDefault:"5"`
	ConfirmEmailURL   string        `env:"CONFIRM_EMAIL_URL" envDefault:"http://localhost:3000/auth/confirm"`
}

// StatusConfig toggles local email/password flows independently.
type StatusConfig struct {
	LocalSignup bool `env:"LOCAL_SIGNUP" envDefault:"true"`
	LocalSignin bool `env:"LOCAL_SIGNIN" envDefault:"true"`
}

type OAuthProviderConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURI  string `env:"REDIRECT_URI"`
	AuthURL      string `env:"AUTH_URL"`
	TokenURL     string `env:"TOKEN_URL"`
	ProfileURL   string `env:"PROFILE_URL"`
}

// Enabled reports whether the provider has client credentials configured.
func (c OAuthProviderConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

var (
	ErrMissingTokenKey = errors.New("token signing key is not configured")
	ErrInvalidTTL      = errors.New("token ttl must be positive")
)

// Load reads the env file at path (a missing file is not an error), parses the
// environment into Config and validates it.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	applyTokenDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyTokenDefaults(cfg *Config) {
	if cfg.AccessToken.TTL == 0 {
		cfg.AccessToken.TTL = 15 * time.Minute
	}
	if cfg.RefreshToken.TTL == 0 {
		cfg.RefreshToken.TTL = 14 * 24 * time.Hour
	}
	if cfg.EmailVerificationToken.TTL == 0 {
		cfg.EmailVerificationToken.TTL = 7 * 24 * time.Hour
	}
}

// Validate checks that every token kind can be signed.
func (c *Config) Validate() error {
	tokens := map[string]TokenConfig{
		"access":             c.AccessToken,
		"refresh":            c.RefreshToken,
		"email_verification": c.EmailVerificationToken,
	}
	for kind, tc := range tokens {
		if tc.TTL <= 0 {
			return fmt.Errorf("%s: %w", kind, ErrInvalidTTL)
		}
		if tc.Secret == "" && tc.PrivateKeyFile == "" {
			return fmt.Errorf("%s: %w", kind, ErrMissingTokenKey)
		}
	}
	return nil
}
