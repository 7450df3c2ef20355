package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ACCESS_TOKEN_TTL", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxFileSize)
	assert.Len(t, cfg.CORSOrigins, 2)
	assert.False(t, cfg.Supabase.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "Production")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")
	t.Setenv("UPLOAD_MAX_FILES", "2")
	t.Setenv("UPLOAD_MAX_FILE_SIZE", "not-a-number")
	t.Setenv("CORS_ORIGINS", "https://admin.example.com, ,https://example.com")
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_KEY", "service-key")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 2, cfg.Upload.MaxFiles)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxFileSize)
	assert.Equal(t, []string{"https://admin.example.com", "https://example.com"}, cfg.CORSOrigins)
	assert.True(t, cfg.Supabase.Enabled())
}
