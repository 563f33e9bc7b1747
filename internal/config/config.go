package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration. Values are layered: defaults, then
// the optional YAML file named by CARETRAIN_CONFIG, then environment variables
// (including any loaded from .env).
type Config struct {
	Addr           string `yaml:"addr"`          // CARETRAIN_ADDR, default ":8080"
	DBDriver       string `yaml:"db_driver"`     // CARETRAIN_DB_DRIVER, sqlite|postgres, default "sqlite"
	DSN            string `yaml:"db"`            // CARETRAIN_DB, default "caretrain.db"
	SchemaLocation string `yaml:"schema"`        // CARETRAIN_SCHEMA, embedded|<path>|s3://bucket/key
	DemoPassword   string `yaml:"demo_password"` // CARETRAIN_DEMO_PASSWORD, default "password123"
	AdminToken     string `yaml:"admin_token"`   // CARETRAIN_ADMIN_TOKEN, optional
	APIBase        string `yaml:"api_base"`      // API_BASE, default "http://localhost:8080"
	S3Region       string `yaml:"s3_region"`     // CARETRAIN_S3_REGION, default "us-east-1"
	S3Endpoint     string `yaml:"s3_endpoint"`   // CARETRAIN_S3_ENDPOINT, optional
	S3PathStyle    bool   `yaml:"s3_path_style"` // CARETRAIN_S3_PATH_STYLE
	LogLevel       string `yaml:"log_level"`     // CARETRAIN_LOG_LEVEL, default "info"
	LogFormat      string `yaml:"log_format"`    // CARETRAIN_LOG_FORMAT, text|json
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Addr:           ":8080",
		DBDriver:       "sqlite",
		DSN:            "caretrain.db",
		SchemaLocation: "embedded",
		DemoPassword:   "password123",
		APIBase:        "http://localhost:8080",
		S3Region:       "us-east-1",
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Load reads configuration from .env, the optional YAML file and environment
// variables.
func Load() (Config, error) {
	envFile := envOr("CARETRAIN_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Defaults()
	if path := os.Getenv("CARETRAIN_CONFIG"); path != "" {
		b, err := os.ReadFile(path) //nolint:gosec // operator-supplied path
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.Addr = envOr("CARETRAIN_ADDR", cfg.Addr)
	cfg.DBDriver = envOr("CARETRAIN_DB_DRIVER", cfg.DBDriver)
	cfg.DSN = envOr("CARETRAIN_DB", cfg.DSN)
	cfg.SchemaLocation = envOr("CARETRAIN_SCHEMA", cfg.SchemaLocation)
	cfg.DemoPassword = envOr("CARETRAIN_DEMO_PASSWORD", cfg.DemoPassword)
	cfg.AdminToken = envOr("CARETRAIN_ADMIN_TOKEN", cfg.AdminToken)
	cfg.APIBase = envOr("API_BASE", cfg.APIBase)
	cfg.S3Region = envOr("CARETRAIN_S3_REGION", cfg.S3Region)
	cfg.S3Endpoint = envOr("CARETRAIN_S3_ENDPOINT", cfg.S3Endpoint)
	if v := os.Getenv("CARETRAIN_S3_PATH_STYLE"); v != "" {
		cfg.S3PathStyle = strings.EqualFold(v, "true")
	}
	cfg.LogLevel = envOr("CARETRAIN_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = envOr("CARETRAIN_LOG_FORMAT", cfg.LogFormat)

	return cfg, nil
}

// Level parses LogLevel, falling back to info for unknown values.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
