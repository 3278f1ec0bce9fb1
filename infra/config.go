package infra

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gin-giftregistry/constants"

	"github.com/sirupsen/logrus"
)

const (
	defaultSecretKey     = "super-secret"
	defaultAdminPassword = "changeMe123"
	defaultDatabaseURL   = "sqlite:///gift_registry.db"
	defaultPort          = "5000"
)

type Config struct {
	Env            string
	Port           string
	SecretKey      string
	DatabaseURL    string
	AdminEmail     string
	AdminPassword  string
	LogLevel       logrus.Level
	SessionTTL     time.Duration
	PreviewTimeout time.Duration
	AllowedOrigins []string
}

func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// InsecureDefaults lists the secret settings still carrying their built-in
// development values.
func (c *Config) InsecureDefaults() []string {
	var names []string
	if c.SecretKey == defaultSecretKey {
		names = append(names, "SECRET_KEY")
	}
	if c.AdminPassword == defaultAdminPassword {
		names = append(names, "ADMIN_PASSWORD")
	}
	return names
}

// LoadConfig reads the configuration from the environment. Call Initialize
// first to pick up a .env file.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Env:           getEnv("ENV", "dev"),
		Port:          getEnv("PORT", defaultPort),
		SecretKey:     getEnv("SECRET_KEY", defaultSecretKey),
		DatabaseURL:   getEnv("DB_URL", defaultDatabaseURL),
		AdminEmail:    strings.ToLower(strings.TrimSpace(getEnv("ADMIN_EMAIL", constants.DefaultAdminEmail))),
		AdminPassword: getEnv("ADMIN_PASSWORD", defaultAdminPassword),
	}

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.PreviewTimeout, err = getDuration("PREVIEW_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}

	for _, origin := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	if insecure := cfg.InsecureDefaults(); cfg.IsProd() && len(insecure) > 0 {
		return nil, fmt.Errorf("refusing to start in prod with default values for %s", strings.Join(insecure, ", "))
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}
