package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Env              string
	ListenAddr       string
	DatabaseURL      string
	SQLitePath       string
	ReminderWorkers  int
	ReminderInterval time.Duration
	LogLevel         string
	LogFormat        string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the environment. A missing DATABASE_URL is reported but not fatal:
// callers fall back to the local SQLite store.
func Load() (Config, error) {
	cfg := Config{
		Env:              getenv("APP_ENV", "development"),
		ListenAddr:       getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		SQLitePath:       getenv("SQLITE_PATH", "govassess.db"),
		ReminderWorkers:  getenvInt("REMINDER_WORKERS", 1),
		ReminderInterval: getenvDuration("REMINDER_INTERVAL", time.Hour),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		LogFormat:        getenv("LOG_FORMAT", "json"),
	}
	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL not set, using sqlite at %s", cfg.SQLitePath)
	}
	return cfg, nil
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil {
			return out
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
