package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("MAX_CONTENT_LENGTH", "")
	t.Setenv("REDIS_ADDR", "")

	cfg := LoadConfig()
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "jwt-secret-string", cfg.JWTSecret)
	assert.Equal(t, 16*1024*1024, cfg.MaxContentLength)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET_KEY", "override")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("APP_ENV", "production")

	cfg := LoadConfig()
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "override", cfg.JWTSecret)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.False(t, cfg.Debug)
}

func TestLoadConfigBadPortFallsBack(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("PORT", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, 5000, cfg.Port)
}
