package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	Port               string        `env:"PORT" envDefault:"8080"`
	DatabaseURL        string        `env:"DATABASE_URL"`
	DBHost             string        `env:"DB_HOST"`
	DBPort             string        `env:"DB_PORT" envDefault:"5432"`
	DBUser             string        `env:"DB_USER"`
	DBPassword         string        `env:"DB_PASSWORD"`
	DBName             string        `env:"DB_NAME"`
	DBSSLMode          string        `env:"DB_SSLMODE" envDefault:"disable"`
	DBConnectTimeout   time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"30s"`
	RunMigrations      bool          `env:"RUN_MIGRATIONS" envDefault:"true"`
	BaseURL            string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DriveCredentials   string        `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	DriveLibraryFolder string        `env:"DRIVE_LIBRARY_FOLDER_ID"`
	ChromePath         string        `env:"CHROME_PATH"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.DatabaseURL == "" && (cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "") {
		return nil, fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}

	return &cfg, nil
}

// ConnString builds the postgres connection string.
func (c *Config) ConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}
