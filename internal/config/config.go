package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrUnknownDefaultLanguage      = errors.New("default language is not in the language list")
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env"`              // current application environment (local, dev, production etc)
	TelegramAPIToken string   `mapstructure:"-"`                // Telegram API token loaded from environment
	CatalogPath      string   `mapstructure:"catalog_path"`     // path to the question catalog JSON
	Languages        []string `mapstructure:"languages"`        // content languages offered to the user
	DefaultLanguage  string   `mapstructure:"default_language"` // language a new session starts with
	DB               DB       `mapstructure:"database"`         // database configuration section
	Telegram         Telegram `mapstructure:"telegram"`         // bot API configuration section
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int32         `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Enabled reports whether the answer journal database is configured.
func (db DB) Enabled() bool {
	return db.URL != ""
}

// Telegram contains bot API parameters.
type Telegram struct {
	Debug         bool `mapstructure:"debug"`          // log raw bot API traffic
	UpdateTimeout int  `mapstructure:"update_timeout"` // long polling timeout in seconds
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// A missing .env file is fine, the environment may be set already.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("catalog_path", "assets/data/questions.json")
	v.SetDefault("languages", []string{"de", "en"})
	v.SetDefault("default_language", "de")
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_conn_lifetime", "30m")
	v.SetDefault("telegram.debug", false)
	v.SetDefault("telegram.update_timeout", 60)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database.url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	// Optional: the journal is disabled without it.
	cfg.DB.URL = v.GetString("database.url")

	if !contains(cfg.Languages, cfg.DefaultLanguage) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefaultLanguage, cfg.DefaultLanguage)
	}

	return &cfg, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
