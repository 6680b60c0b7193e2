package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	yaml "gopkg.in/yaml.v3"

	"github.com/blogem/visitlog/logger"
)

// Store kinds
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Config holds application configuration
type Config struct {
	Port string `yaml:"port"`
	Env  string `yaml:"env"`

	// Secure session cookies
	UseHTTPS bool `yaml:"use_https"`

	Store    string         `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Audit    AuditConfig    `yaml:"audit"`
	OIDC     OIDCConfig     `yaml:"oidc"`
}

// DatabaseConfig holds the sqlite settings
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// RedisConfig holds the redis connection settings
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// AuditConfig controls the visitor log dispatcher and the handler titles
type AuditConfig struct {
	Workers    int           `yaml:"workers"`
	BufferSize int           `yaml:"buffer_size"`
	DropIfFull bool          `yaml:"drop_if_full"`
	Timeout    time.Duration `yaml:"timeout"`

	// Titles maps a handler name to the title recorded with its visits.
	// Entries here override the titles registered in code.
	Titles map[string]string `yaml:"titles"`
}

// OIDCConfig holds the admin login provider settings
type OIDCConfig struct {
	Domain       string `yaml:"domain"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	CallbackURL  string `yaml:"callback_url"`
}

// Enabled reports whether enough is configured to mount the login routes
func (c OIDCConfig) Enabled() bool {
	return c.Domain != "" && c.ClientID != ""
}

// Load loads configuration from .env, the optional YAML file named by
// VISITLOG_CONFIG, and the environment, in that order of precedence (lowest first).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Get().Warn("no .env file found, using environment only")
	}

	cfg := defaults()

	if path := os.Getenv("VISITLOG_CONFIG"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Port:  "8080",
		Env:   "development",
		Store: StoreSQLite,
		Database: DatabaseConfig{
			Path: "visitlog.db",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Audit: AuditConfig{
			Workers:    2,
			BufferSize: 256,
			DropIfFull: true,
			Timeout:    5 * time.Second,
		},
	}
}

// loadFile overlays the YAML file at path onto cfg
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path) //nolint:gosec // operator supplied path
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnv overlays environment variables onto cfg
func applyEnv(cfg *Config) error {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.Store = getEnv("STORE", cfg.Store)
	cfg.Database.Path = getEnv("DB_PATH", cfg.Database.Path)
	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.OIDC.Domain = getEnv("OIDC_DOMAIN", cfg.OIDC.Domain)
	cfg.OIDC.ClientID = getEnv("OIDC_CLIENT_ID", cfg.OIDC.ClientID)
	cfg.OIDC.ClientSecret = getEnv("OIDC_CLIENT_SECRET", cfg.OIDC.ClientSecret)
	cfg.OIDC.CallbackURL = getEnv("OIDC_CALLBACK_URL", cfg.OIDC.CallbackURL)

	if v := os.Getenv("USE_HTTPS"); v != "" {
		cfg.UseHTTPS = v == "true"
	}

	var err error
	if cfg.Redis.DB, err = getEnvInt("REDIS_DB", cfg.Redis.DB); err != nil {
		return err
	}
	if cfg.Audit.Workers, err = getEnvInt("AUDIT_WORKERS", cfg.Audit.Workers); err != nil {
		return err
	}
	if cfg.Audit.BufferSize, err = getEnvInt("AUDIT_BUFFER", cfg.Audit.BufferSize); err != nil {
		return err
	}

	if v := os.Getenv("AUDIT_DROP_IF_FULL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid AUDIT_DROP_IF_FULL %q: %w", v, err)
		}
		cfg.Audit.DropIfFull = b
	}

	if v := os.Getenv("AUDIT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid AUDIT_TIMEOUT %q: %w", v, err)
		}
		cfg.Audit.Timeout = d
	}

	return nil
}

// Validate checks the configuration for values the service cannot run with
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}

	switch c.Store {
	case StoreSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("database.path is required for the sqlite store")
		}
	case StoreRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for the redis store")
		}
	default:
		return fmt.Errorf("invalid store %q (must be %q or %q)", c.Store, StoreSQLite, StoreRedis)
	}

	if c.Audit.Workers < 1 || c.Audit.Workers > 64 {
		return fmt.Errorf("invalid audit.workers: %d (must be between 1 and 64)", c.Audit.Workers)
	}
	if c.Audit.BufferSize < 1 {
		return fmt.Errorf("invalid audit.buffer_size: %d (must be positive)", c.Audit.BufferSize)
	}
	if c.Audit.Timeout <= 0 {
		return fmt.Errorf("invalid audit.timeout: %s (must be positive)", c.Audit.Timeout)
	}

	for name, title := range c.Audit.Titles {
		if title == "" {
			return fmt.Errorf("audit.titles[%s] cannot be empty", name)
		}
	}

	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
