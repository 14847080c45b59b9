package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Study Plan Assistant specifics
	OpenRouter     OpenRouterConfig
	Storage        StorageConfig
	GoogleCalendar GoogleCalendarConfig
	RateLimit      RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	Referer string
}

type StorageConfig struct {
	Path string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	Timezone        string
	ExportByDefault bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// OpenRouter
	cfg.OpenRouter.APIKey = viper.GetString("openrouter.api_key")
	cfg.OpenRouter.Model = viper.GetString("openrouter.model")
	cfg.OpenRouter.Referer = viper.GetString("openrouter.referer")
	if key := viper.GetString("openrouter_api_key"); key != "" {
		cfg.OpenRouter.APIKey = key
	}
	if cfg.OpenRouter.APIKey == "" {
		return nil, fmt.Errorf("openrouter.api_key is required - set it in config.yaml or OPENROUTER_API_KEY")
	}

	// Storage
	cfg.Storage.Path = viper.GetString("storage.path")
	if path := viper.GetString("storage_path"); path != "" {
		cfg.Storage.Path = path
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	cfg.GoogleCalendar.ExportByDefault = viper.GetBool("google_calendar.export_by_default")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Rate limiting
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("openrouter.model", "deepseek/deepseek-chat-v3-0324:free")
	viper.SetDefault("storage.path", "data/study-plan.db")
	viper.SetDefault("google_calendar.timezone", "UTC")
	viper.SetDefault("rate_limit.requests_per_min", 60)
}
