// Package config reads the service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	// RedisAddr selects the redis session store. Empty keeps sessions in
	// process memory.
	RedisAddr string
	// KafkaBrokers enables publishing hand-off copies. Empty disables it.
	KafkaBrokers []string
	// CatalogDBPath selects the sqlite catalog. Empty serves the built-in list.
	CatalogDBPath string

	WhatsAppPhone string
	InstagramURL  string
	StoreEmail    string

	ChatReplyDelay    time.Duration
	ChatEffectDelay   time.Duration
	ChatCancelOnClose bool
	SessionTTL        time.Duration

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	Tracing   string
	LogLevel  string
	LogFormat string
}

// Load reads an optional .env file from the working directory and then the
// process environment. Real environment variables win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		KafkaBrokers:  splitList(getEnv("KAFKA_BROKERS", "")),
		CatalogDBPath: getEnv("CATALOG_DB_PATH", ""),
		WhatsAppPhone: getEnv("WHATSAPP_PHONE", "+919876543210"),
		InstagramURL:  getEnv("INSTAGRAM_URL", "https://www.instagram.com/artisiannest"),
		StoreEmail:    getEnv("STORE_EMAIL", "hello@artisiannest.in"),
		Tracing:       getEnv("TRACING", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
	}

	var err error
	if cfg.ChatReplyDelay, err = getDuration("CHAT_REPLY_DELAY", 600*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.ChatEffectDelay, err = getDuration("CHAT_EFFECT_DELAY", 500*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.ChatCancelOnClose, err = getBool("CHAT_CANCEL_ON_CLOSE", false); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 2*time.Hour); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
