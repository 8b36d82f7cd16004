package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config holds all application configuration
type Config struct {
	Environment           string            `koanf:"environment"`
	Database              DatabaseConfig    `koanf:"database"`
	Preferences           PreferencesConfig `koanf:"preferences"`
	Log                   LogConfig         `koanf:"log"`
	Telegram              TelegramConfig    `koanf:"telegram"`
	AllowedChatIDs        []int64           `koanf:"allowed_chat_ids"`
	AutoLeaveUnauthorized bool              `koanf:"auto_leave_unauthorized"`
}

// DatabaseConfig holds the embedded SQLite database configuration
type DatabaseConfig struct {
	Path        string        `koanf:"path" validate:"required"`
	BusyTimeout time.Duration `koanf:"busy_timeout"` // e.g., "5s"
}

// PreferencesConfig selects where user preferences are persisted
type PreferencesConfig struct {
	Backend string `koanf:"backend" validate:"oneof=file database memory"`
	Path    string `koanf:"path" validate:"required_if=Backend file"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=text json pretty"`
	File   string `koanf:"file"` // optional, rotated when set
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	Token string `koanf:"token"`
}

// DSN returns the SQLite data source name understood by modernc.org/sqlite
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		c.Path,
		c.BusyTimeout.Milliseconds(),
	)
}

// Load loads configuration from environment variables and config files
func Load(environment string) (*Config, error) {
	k := koanf.New(".")
	// Load defaults first (lowest priority)
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}

	// Config file is optional
	configFile := fmt.Sprintf("config/%s.yaml", environment)
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		fmt.Printf("Warning: could not load config file %s: %v\n", configFile, err)
	}

	// Environment variables with CITAS_ prefix override config file values
	if err := k.Load(env.ProviderWithValue("CITAS_", "__", func(key string, value string) (string, interface{}) {
		finalKey := strings.TrimPrefix(strings.ToLower(key), "citas_")

		switch k.Get(finalKey).(type) {
		case []interface{}, []string, []int64:
			parts := strings.Split(value, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			return finalKey, parts
		}

		return finalKey, value
	}), nil); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.Environment = environment

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// defaultConfig returns the default configuration values
func defaultConfig() Config {
	return Config{
		Database: DatabaseConfig{
			Path:        "citas.db",
			BusyTimeout: 5 * time.Second,
		},
		Preferences: PreferencesConfig{
			Backend: "file",
			Path:    "preferences.yaml",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		AllowedChatIDs: []int64{},
	}
}
