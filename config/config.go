package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	TokenFormatJWT    = "jwt"
	TokenFormatPaseto = "paseto"
)

// AppConfig holds the application configuration
type AppConfig struct {
	Env      string
	HTTPPort string
	LogLevel string

	DBURL    string
	RedisURL string

	JWT  JWTConfig
	SMTP SMTPConfig

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
	BcryptCost         int
}

// JWTConfig holds the bearer token settings shared by every token format.
type JWTConfig struct {
	Key           string
	Issuer        string
	Audience      string
	ExpireMinutes int
	Format        string
}

// SMTPConfig holds the mailer settings used for password reset codes.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
}

// Load reads configuration from the environment, after loading a .env file if one exists.
func Load() (*AppConfig, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "production")
	v.SetDefault("HTTP_PORT", "8930")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_ISSUER", "HospitalManagement.Api")
	v.SetDefault("JWT_AUDIENCE", "HospitalManagement.Client")
	v.SetDefault("JWT_EXPIRE_MINUTES", 60)
	v.SetDefault("TOKEN_FORMAT", TokenFormatJWT)
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 15)
	v.SetDefault("RATE_LIMIT_BURST", 30)
	v.SetDefault("BCRYPT_COST", 10)

	cfg := &AppConfig{
		Env:      v.GetString("ENV"),
		HTTPPort: v.GetString("HTTP_PORT"),
		LogLevel: v.GetString("LOG_LEVEL"),
		DBURL:    v.GetString("DB_URL"),
		RedisURL: v.GetString("REDIS_URL"),
		JWT: JWTConfig{
			Key:           v.GetString("JWT_KEY"),
			Issuer:        v.GetString("JWT_ISSUER"),
			Audience:      v.GetString("JWT_AUDIENCE"),
			ExpireMinutes: v.GetInt("JWT_EXPIRE_MINUTES"),
			Format:        strings.ToLower(v.GetString("TOKEN_FORMAT")),
		},
		SMTP: SMTPConfig{
			Host: v.GetString("SMTP_HOST"),
			Port: v.GetInt("SMTP_PORT"),
			User: v.GetString("SMTP_USER"),
			Pass: v.GetString("SMTP_PASS"),
		},
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimitRPS:       v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:     v.GetInt("RATE_LIMIT_BURST"),
		BcryptCost:         v.GetInt("BCRYPT_COST"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the required settings are present and consistent.
func (c *AppConfig) Validate() error {
	if c.DBURL == "" {
		return errors.New("missing DB_URL environment variable")
	}
	if c.JWT.Key == "" {
		return errors.New("missing JWT_KEY environment variable")
	}
	if c.JWT.Issuer == "" || c.JWT.Audience == "" {
		return errors.New("JWT_ISSUER and JWT_AUDIENCE must not be empty")
	}
	if c.JWT.ExpireMinutes <= 0 {
		return fmt.Errorf("JWT_EXPIRE_MINUTES must be positive, got %d", c.JWT.ExpireMinutes)
	}
	switch c.JWT.Format {
	case TokenFormatJWT:
		if len(c.JWT.Key) < 32 {
			return fmt.Errorf("JWT_KEY must be at least 32 bytes long. Current length: %d", len(c.JWT.Key))
		}
	case TokenFormatPaseto:
		if len(c.JWT.Key) != 32 {
			return fmt.Errorf("JWT_KEY must be exactly 32 bytes long for paseto tokens. Current length: %d", len(c.JWT.Key))
		}
	default:
		return fmt.Errorf("unsupported TOKEN_FORMAT %q", c.JWT.Format)
	}
	return nil
}

// TokenLifetime returns the configured bearer token lifetime.
func (c *AppConfig) TokenLifetime() time.Duration {
	return time.Duration(c.JWT.ExpireMinutes) * time.Minute
}

// IsDevelopment reports whether the service runs in development mode.
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// MailerConfigured reports whether SMTP settings are complete enough to send mail.
func (c *AppConfig) MailerConfigured() bool {
	return c.SMTP.Host != "" && c.SMTP.Port > 0
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
