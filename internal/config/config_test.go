package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "REDIS_ADDR", "KAFKA_BROKERS", "CHAT_REPLY_DELAY", "CHAT_CANCEL_ON_CLOSE"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, 600*time.Millisecond, cfg.ChatReplyDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.ChatEffectDelay)
	assert.False(t, cfg.ChatCancelOnClose)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("CHAT_REPLY_DELAY", "1s")
	t.Setenv("CHAT_CANCEL_ON_CLOSE", "true")
	t.Setenv("SESSION_TTL", "15m")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, time.Second, cfg.ChatReplyDelay)
	assert.True(t, cfg.ChatCancelOnClose)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	t.Setenv("CHAT_EFFECT_DELAY", "soon")
	_, err := FromEnv()
	assert.ErrorContains(t, err, "CHAT_EFFECT_DELAY")

	t.Setenv("CHAT_EFFECT_DELAY", "")
	t.Setenv("CHAT_CANCEL_ON_CLOSE", "maybe")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "CHAT_CANCEL_ON_CLOSE")
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORE_EMAIL=shop@example.com\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("STORE_EMAIL", "")
	require.NoError(t, os.Unsetenv("STORE_EMAIL"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "shop@example.com", cfg.StoreEmail)
	require.NoError(t, os.Unsetenv("STORE_EMAIL"))
}
