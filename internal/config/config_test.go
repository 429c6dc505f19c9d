package config

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("INFERENCE_MODEL", "meta-llama/Llama-3.1-8B-Instruct")
	t.Setenv("INFERENCE_TIMEOUT", "15s")
	t.Setenv("POSTER_CLEANUP_ON_REJECT", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "meta-llama/Llama-3.1-8B-Instruct", cfg.Inference.Model)
	assert.Equal(t, 15*time.Second, cfg.Inference.Timeout)
	assert.True(t, cfg.PosterCleanupOnReject)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "movie-posters", cfg.MinIO.Bucket)
	assert.Equal(t, "https://router.huggingface.co/v1", cfg.Inference.BaseURL)
	assert.Equal(t, 240, cfg.Inference.MaxTokens)
	assert.False(t, cfg.PosterCleanupOnReject)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "many")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLocation(t *testing.T) {
	cfg := &AppConfig{Timezone: "Asia/Jakarta"}
	assert.Equal(t, "Asia/Jakarta", cfg.Location().String())

	cfg.Timezone = "Not/AZone"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestBodyLimit(t *testing.T) {
	assert.Equal(t, 10*1024*1024, (&AppConfig{MaxUploadMB: 10}).BodyLimit())
	assert.Equal(t, 4*1024*1024, (&AppConfig{}).BodyLimit())
}
