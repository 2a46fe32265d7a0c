package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type JWTConfig struct {
	Secret string
	Issuer string
	Expiry time.Duration
}

type Config struct {
	AppEnv         string
	LogLevel       string
	Port           string
	DatabaseURL    string
	BcryptCost     int
	CORSOrigins    string
	LoginRateLimit int
	LabelBaseURL   string
	JWT            JWTConfig
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
		Port:         getEnv("PORT", "8000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		CORSOrigins:  getEnv("CORS_ORIGINS", "http://localhost:8081"),
		LabelBaseURL: getEnv("LABEL_BASE_URL", "http://localhost:8081/geradores/"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	// Credentialed CORS needs explicit origins
	for _, origin := range strings.Split(cfg.CORSOrigins, ",") {
		if strings.TrimSpace(origin) == "*" {
			return nil, fmt.Errorf("CORS_ORIGINS must list explicit origins, got %q", cfg.CORSOrigins)
		}
	}

	// JWT config
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.Issuer = os.Getenv("JWT_ISSUER")
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	minutes, err := getInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	if minutes <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %d", minutes)
	}
	cfg.JWT.Expiry = time.Duration(minutes) * time.Minute

	if cfg.BcryptCost, err = getInt("BCRYPT_COST", 10); err != nil {
		return nil, err
	}
	if cfg.LoginRateLimit, err = getInt("LOGIN_RATE_LIMIT", 20); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}
