package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
)

const defaultNotificationHour = 10

// Config is the typed view of the bot's YAML configuration file. Slack
// credentials are deliberately kept out of the file and read from the
// environment instead.
type Config struct {
	DatabasePath          string                 `mapstructure:"database_path"`
	LocalNotificationHour int                    `mapstructure:"local_notification_hour"`
	Timezones             []entity.TimezoneGroup `mapstructure:"timezones"`
	LogDir                string                 `mapstructure:"log_dir"`
	Port                  string                 `mapstructure:"port"`

	SlackBotToken      string `mapstructure:"-"`
	SlackSigningSecret string `mapstructure:"-"`
	LogLevel           string `mapstructure:"-"`
}

// Load reads the YAML config at path (or ./config.yaml when empty), applies
// defaults, pulls secrets from the environment and validates required fields.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetDefault("local_notification_hour", defaultNotificationHour)
	v.SetDefault("log_dir", "./logs")
	v.SetDefault("port", "3000")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.SlackBotToken = os.Getenv("SLACK_BOT_TOKEN")
	cfg.SlackSigningSecret = os.Getenv("SLACK_SIGNING_SECRET")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("config: database_path is required")
	}
	if len(c.Timezones) == 0 {
		return fmt.Errorf("config: at least one timezones group is required")
	}
	if c.LocalNotificationHour < 0 || c.LocalNotificationHour > 23 {
		return fmt.Errorf("config: local_notification_hour must be between 0 and 23, got %d", c.LocalNotificationHour)
	}
	for _, group := range c.Timezones {
		if _, err := time.LoadLocation(group.Timezone); err != nil {
			return fmt.Errorf("config: invalid timezone %q: %w", group.Timezone, err)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
