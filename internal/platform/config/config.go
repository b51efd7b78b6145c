package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr              string        `yaml:"addr"`
	Environment       string        `yaml:"environment"`
	LogLevel          string        `yaml:"log_level"`
	DatabaseURL       string        `yaml:"database_url"`
	DBMaxConns        int           `yaml:"db_max_conns"`
	MistralAPIKey     string        `yaml:"mistral_api_key"`
	CompletionURL     string        `yaml:"completion_url"`
	CompletionTimeout time.Duration `yaml:"completion_timeout"`
	CertificateDir    string        `yaml:"certificate_dir"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	RunMigrations     bool          `yaml:"run_migrations"`
	MetricsEnabled    bool          `yaml:"metrics_enabled"`
}

func Default() Config {
	return Config{
		Addr:           ":8000",
		Environment:    "development",
		LogLevel:       "info",
		DBMaxConns:     10,
		CertificateDir: "certificates",
		MaxBodyBytes:   1048576,
		RunMigrations:  true,
		MetricsEnabled: true,
	}
}

// Load resolves configuration from defaults, the optional CONFIG_FILE and
// the environment, in that order of precedence.
func Load() (Config, error) {
	cfg := Default()
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.Addr = getEnv("APP_ADDR", cfg.Addr)
	cfg.Environment = getEnv("APP_ENV", cfg.Environment)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.DBMaxConns = getEnvInt("DB_MAX_CONNS", cfg.DBMaxConns)
	cfg.MistralAPIKey = getEnv("MISTRAL_API_KEY", cfg.MistralAPIKey)
	cfg.CompletionURL = getEnv("COMPLETION_URL", cfg.CompletionURL)
	cfg.CompletionTimeout = getEnvDuration("COMPLETION_TIMEOUT", cfg.CompletionTimeout)
	cfg.CertificateDir = getEnv("CERTIFICATE_DIR", cfg.CertificateDir)
	cfg.MaxBodyBytes = int64(getEnvInt("MAX_BODY_BYTES", int(cfg.MaxBodyBytes)))
	cfg.RunMigrations = getEnvBool("RUN_MIGRATIONS", cfg.RunMigrations)
	cfg.MetricsEnabled = getEnvBool("METRICS_ENABLED", cfg.MetricsEnabled)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Validate reports the first setting that prevents the server from starting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.MistralAPIKey) == "" {
		return fmt.Errorf("MISTRAL_API_KEY is not set. Check your .env file")
	}
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.DBMaxConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	if strings.TrimSpace(c.CertificateDir) == "" {
		return fmt.Errorf("CERTIFICATE_DIR must not be empty")
	}
	return nil
}
