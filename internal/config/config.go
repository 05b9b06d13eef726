// Package config loads application settings from configs/config.yml with
// environment overrides for the values that change per deployment.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// DefaultSecret is the development fallback for the application secret.
// Running with it in production leaves sessions forgeable and, when no
// explicit encryption key is set, makes the derived encryption key guessable.
const DefaultSecret = "dev-secret-change-me"

type Config struct {
	Port     string
	LogLevel string
	DBPath   string

	// Secret signs session tokens and is the fallback source for the
	// encryption key.
	Secret string

	// EncryptionKeyHex is an optional hex-encoded AES key (16, 24 or 32
	// bytes). Empty means "derive from Secret".
	EncryptionKeyHex string

	SessionTTL time.Duration
}

// Load reads configs/config.yml and applies env overrides. A missing config
// file is not an error; defaults and environment cover every setting.
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath("configs")
	v.SetConfigName("config")

	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "profile.db")
	v.SetDefault("secret", DefaultSecret)
	v.SetDefault("session.ttl", "24h")

	// Same environment contract as the deployment docs: SECRET_KEY,
	// ENCRYPTION_KEY, DATABASE_PATH, PORT.
	bindings := map[string]string{
		"secret":         "SECRET_KEY",
		"encryption.key": "ENCRYPTION_KEY",
		"db.path":        "DATABASE_PATH",
		"port":           "PORT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:             v.GetString("port"),
		LogLevel:         v.GetString("log.level"),
		DBPath:           v.GetString("db.path"),
		Secret:           v.GetString("secret"),
		EncryptionKeyHex: v.GetString("encryption.key"),
		SessionTTL:       v.GetDuration("session.ttl"),
	}
	if cfg.Secret == "" {
		return nil, errors.New("secret must not be empty")
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	return cfg, nil
}

// EncryptionKey decodes the explicit key, or returns nil when the derived
// fallback should be used.
func (c *Config) EncryptionKey() ([]byte, error) {
	if c.EncryptionKeyHex == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(c.EncryptionKeyHex)
	if err != nil {
		return nil, fmt.Errorf("decode encryption key: %w", err)
	}
	switch len(key) {
	case 16, 24, 32:
		return key, nil
	default:
		return nil, fmt.Errorf("encryption key must be 16, 24 or 32 bytes, got %d", len(key))
	}
}
