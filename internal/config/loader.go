package config

import (
	"fmt"
	"time"

	"utilityapi/internal/db"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration. Components receive the pieces
// they need at construction instead of reading ambient process state.
type Config struct {
	Database db.Config
	Server   ServerConfig
	Cleanup  CleanupConfig
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string
}

// CleanupConfig controls the background purge job.
type CleanupConfig struct {
	Interval time.Duration
}

// DefaultConfig returns defaults suitable for local development.
func DefaultConfig() Config {
	return Config{
		Database: db.DefaultConfig(),
		Server:   ServerConfig{Addr: ":8080"},
		Cleanup:  CleanupConfig{Interval: 24 * time.Hour},
	}
}

// Load reads config.yaml from configPath, with environment overrides.
func Load(configPath string) (Config, error) {
	// Start with default
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AutomaticEnv()      // allow environment overrides
	v.SetEnvPrefix("API") // map env vars like API_DATABASE_HOST

	// Optional: Map nested keys to flat env vars
	v.BindEnv("database.host")
	v.BindEnv("database.port")
	v.BindEnv("database.user")
	v.BindEnv("database.password")
	v.BindEnv("database.dbname")
	v.BindEnv("database.sslmode")
	v.BindEnv("server.addr")
	v.BindEnv("cleanup.interval_hours")

	if err := v.ReadInConfig(); err != nil {
		// Config file not found? Just log it, use defaults + env
		fmt.Println("No config.yaml found, using defaults and env vars")
	} else {
		fmt.Println("Loaded config.yaml")
	}

	// Override defaults if values exist
	if v.IsSet("database.host") {
		cfg.Database.Host = v.GetString("database.host")
	}
	if v.IsSet("database.port") {
		cfg.Database.Port = v.GetInt("database.port")
	}
	if v.IsSet("database.user") {
		cfg.Database.User = v.GetString("database.user")
	}
	if v.IsSet("database.password") {
		cfg.Database.Password = v.GetString("database.password")
	}
	if v.IsSet("database.dbname") {
		cfg.Database.DBName = v.GetString("database.dbname")
	}
	if v.IsSet("database.sslmode") {
		cfg.Database.SSLMode = v.GetString("database.sslmode")
	}
	if v.IsSet("server.addr") {
		cfg.Server.Addr = v.GetString("server.addr")
	}
	if v.IsSet("cleanup.interval_hours") {
		hours := v.GetInt("cleanup.interval_hours")
		if hours > 0 {
			cfg.Cleanup.Interval = time.Duration(hours) * time.Hour
		}
	}

	return cfg, nil
}
