package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sefazor/geradores-backend/internal/config"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/geradores")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("LOGIN_RATE_LIMIT", "")
	t.Setenv("LABEL_BASE_URL", "")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, 30*time.Minute, cfg.JWT.Expiry)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 20, cfg.LoginRateLimit)
	assert.Equal(t, "http://localhost:8081", cfg.CORSOrigins)
	assert.Equal(t, "http://localhost:8081/geradores/", cfg.LabelBaseURL)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("JWT_ISSUER", "geradores")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 5*time.Minute, cfg.JWT.Expiry)
	assert.Equal(t, "geradores", cfg.JWT.Issuer)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"missing database url", map[string]string{"DATABASE_URL": ""}, "DATABASE_URL"},
		{"missing jwt secret", map[string]string{"JWT_SECRET": ""}, "JWT_SECRET"},
		{"non-numeric expiry", map[string]string{"ACCESS_TOKEN_EXPIRE_MINUTES": "soon"}, "ACCESS_TOKEN_EXPIRE_MINUTES"},
		{"zero expiry", map[string]string{"ACCESS_TOKEN_EXPIRE_MINUTES": "0"}, "ACCESS_TOKEN_EXPIRE_MINUTES"},
		{"bad bcrypt cost", map[string]string{"BCRYPT_COST": "x"}, "BCRYPT_COST"},
		{"wildcard cors origin", map[string]string{"CORS_ORIGINS": "*"}, "CORS_ORIGINS"},
		{"wildcard among origins", map[string]string{"CORS_ORIGINS": "http://localhost:8081, *"}, "CORS_ORIGINS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
