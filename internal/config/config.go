package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"live-auction/internal/catalog"
	model "live-auction/internal/models"
	"live-auction/internal/repository"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from an optional config file or environment variables.
type Config struct {
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	AdminUser         string        `mapstructure:"ADMIN_USER"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	Categories        string        `mapstructure:"CATEGORIES"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
	SubscriberBuffer  int           `mapstructure:"SUBSCRIBER_BUFFER"`
	WSWriteWait       time.Duration `mapstructure:"WS_WRITE_WAIT"`
	WSPongWait        time.Duration `mapstructure:"WS_PONG_WAIT"`
	WSPingPeriod      time.Duration `mapstructure:"WS_PING_PERIOD"`
	WSMaxMessageBytes int64         `mapstructure:"WS_MAX_MESSAGE_BYTES"`
	ShutdownTimeout   time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// LoadConfig reads configuration from the file at path (if it exists) and the environment.
// Environment variables take precedence over the file.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("HTTP_SERVER_ADDRESS", defaultAddress())
	v.SetDefault("ADMIN_USER", repository.DefaultAdminUser)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CATEGORIES", catalog.DefaultCategories)
	v.SetDefault("ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SUBSCRIBER_BUFFER", 64)
	v.SetDefault("WS_WRITE_WAIT", "10s")
	v.SetDefault("WS_PONG_WAIT", "60s")
	v.SetDefault("WS_PING_PERIOD", "54s")
	v.SetDefault("WS_MAX_MESSAGE_BYTES", 4096)
	v.SetDefault("SHUTDOWN_TIMEOUT", "5s")

	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the loaded values are usable
func (c Config) Validate() error {
	if c.HTTPServerAddress == "" {
		return fmt.Errorf("HTTP_SERVER_ADDRESS is required")
	}
	if c.AdminUser == "" {
		return fmt.Errorf("ADMIN_USER is required")
	}
	if _, err := c.CategoryConfig(); err != nil {
		return fmt.Errorf("CATEGORIES: %w", err)
	}
	if c.SubscriberBuffer <= 0 {
		return fmt.Errorf("SUBSCRIBER_BUFFER must be positive")
	}
	if c.WSPingPeriod <= 0 || c.WSPingPeriod >= c.WSPongWait {
		return fmt.Errorf("WS_PING_PERIOD must be positive and shorter than WS_PONG_WAIT")
	}
	if c.WSWriteWait <= 0 {
		return fmt.Errorf("WS_WRITE_WAIT must be positive")
	}
	if c.WSMaxMessageBytes <= 0 {
		return fmt.Errorf("WS_MAX_MESSAGE_BYTES must be positive")
	}
	return nil
}

// CategoryConfig parses the configured category list
func (c Config) CategoryConfig() (model.CategoryConfig, error) {
	return catalog.ParseConfig(c.Categories)
}

// defaultAddress honours PORT for platforms that only set that
func defaultAddress() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
