// Package config loads demo-host configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	App     AppConfig
	Session SessionConfig
	UI      UIConfig
}

// AppConfig identifies the host application.
type AppConfig struct {
	Name string
}

// SessionConfig selects and parameterizes the session store backend.
type SessionConfig struct {
	// Backend is one of "file", "sqlite", "redis".
	Backend string
	// Path backs the file and sqlite stores. Empty means the per-user
	// config directory.
	Path string
	// RedisAddr and RedisDB back the redis store.
	RedisAddr string `mapstructure:"redis_addr"`
	RedisDB   int    `mapstructure:"redis_db"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ButtonLabel string `mapstructure:"button_label"`
	AltScreen   bool   `mapstructure:"alt_screen"`
}

// Load reads configuration from file and env. Env var overrides use prefix UNIAUTH_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("app.name", "uniauth demo")
	v.SetDefault("session.backend", "file")
	v.SetDefault("session.path", "")
	v.SetDefault("session.redis_addr", "localhost:6379")
	v.SetDefault("session.redis_db", 0)
	v.SetDefault("ui.button_label", "Log In")
	v.SetDefault("ui.alt_screen", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("UNIAUTH_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "uniauth"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("UNIAUTH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
