package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultSessionSecret is only acceptable when CAREERS_ENV=development.
const DefaultSessionSecret = "change-me-session-secret"

type Config struct {
	Addr           string        `yaml:"addr"`
	SessionSecret  string        `yaml:"session_secret"`
	APITimeout     time.Duration `yaml:"timeout"`
	DatabasePath   string        `yaml:"database_path"`
	SessionTTL     time.Duration `yaml:"session_ttl"`
	SweepInterval  time.Duration `yaml:"sweep_interval"`
	CookieSecure   bool          `yaml:"cookie_secure"`
	MigrateOnStart bool          `yaml:"migrate_on_start"`
	SeedDemoData   bool          `yaml:"seed_demo_data"`
	// AdminPassword bootstraps the admin_settings row when it is empty.
	AdminPassword string `yaml:"admin_password"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:           getEnv("CAREERS_ADDR", ":8080"),
		SessionSecret:  getEnv("CAREERS_SESSION_SECRET", DefaultSessionSecret),
		APITimeout:     15 * time.Second,
		DatabasePath:   getEnv("CAREERS_DATABASE_PATH", "careers.db"),
		SessionTTL:     8 * time.Hour,
		SweepInterval:  10 * time.Minute,
		CookieSecure:   getEnvBool("CAREERS_COOKIE_SECURE", false),
		MigrateOnStart: true,
		AdminPassword:  os.Getenv("CAREERS_ADMIN_PASSWORD"),
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	return cfg, nil
}

// Validate checks the configuration and fills defaults for zero durations.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr is required")
	}
	if c.DatabasePath == "" {
		return errors.New("database_path is required")
	}
	if c.SessionSecret == "" {
		return errors.New("session_secret is required")
	}
	if c.SessionSecret == DefaultSessionSecret && !IsDevelopment() {
		return errors.New("session_secret uses the insecure default; set CAREERS_SESSION_SECRET or CAREERS_ENV=development")
	}
	if c.APITimeout < 0 || c.SessionTTL < 0 || c.SweepInterval < 0 {
		return errors.New("durations must not be negative")
	}

	if c.APITimeout == 0 {
		c.APITimeout = 15 * time.Second
	}
	if c.SessionTTL == 0 {
		c.SessionTTL = 8 * time.Hour
	}
	if c.SweepInterval == 0 {
		c.SweepInterval = 10 * time.Minute
	}

	return nil
}

// IsDevelopment reports whether CAREERS_ENV is set to development.
func IsDevelopment() bool {
	return os.Getenv("CAREERS_ENV") == "development"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
