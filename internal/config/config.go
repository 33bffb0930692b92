package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultEnvironment     = "development"
	defaultLogLevel        = "info"
	defaultSchedulerAPIURL = "http://localhost:8080"
	defaultMigrationsPath  = "migrations"
	defaultConfigPath      = "config.yaml"
	defaultRefreshInterval = time.Hour
)

type Config struct {
	TelegramToken          string        `yaml:"telegram_token"`
	Environment            string        `yaml:"env"`
	LogLevel               string        `yaml:"log_level"`
	DBDSN                  string        `yaml:"db_dsn"`
	SchedulerAPIURL        string        `yaml:"scheduler_api_url"`
	MigrationsPath         string        `yaml:"migrations_path"`
	CatalogRefreshInterval time.Duration `yaml:"catalog_refresh_interval"`

	// Источники, из которых собран конфиг (для лога при старте)
	Sources []string `yaml:"-"`
}

// Load собирает конфиг: значения по умолчанию, затем YAML-файл (CONFIG_PATH,
// если есть), затем переменные окружения. Файл .env подгружается в окружение заранее.
func Load() (*Config, error) {
	cfg := &Config{
		Environment:            defaultEnvironment,
		LogLevel:               defaultLogLevel,
		SchedulerAPIURL:        defaultSchedulerAPIURL,
		MigrationsPath:         defaultMigrationsPath,
		CatalogRefreshInterval: defaultRefreshInterval,
	}

	// Отсутствие .env - нормальная ситуация
	if err := godotenv.Load(".env"); err == nil {
		cfg.Sources = append(cfg.Sources, ".env")
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}
	loaded, err := cfg.loadFile(path)
	if err != nil {
		return nil, err
	}
	if loaded {
		cfg.Sources = append(cfg.Sources, path)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.Sources = append(cfg.Sources, "env")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return false, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return true, nil
}

func (c *Config) applyEnv() error {
	setString(&c.TelegramToken, "TELEGRAM_TOKEN")
	setString(&c.Environment, "ENV")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.DBDSN, "DB_DSN")
	setString(&c.SchedulerAPIURL, "SCHEDULER_API_URL")
	setString(&c.MigrationsPath, "MIGRATIONS_PATH")

	if raw := os.Getenv("CATALOG_REFRESH_INTERVAL"); raw != "" {
		// "0" без единиц измерения тоже допустим
		interval, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("CATALOG_REFRESH_INTERVAL: %w", err)
		}
		c.CatalogRefreshInterval = interval
	}

	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	if c.CatalogRefreshInterval < 0 {
		return fmt.Errorf("catalog refresh interval must not be negative")
	}
	c.SchedulerAPIURL = strings.TrimRight(c.SchedulerAPIURL, "/")
	if c.SchedulerAPIURL == "" {
		return fmt.Errorf("SCHEDULER_API_URL must not be empty")
	}
	return nil
}

// UseDatabase сообщает, настроено ли хранение результатов в PostgreSQL
func (c *Config) UseDatabase() bool {
	return c.DBDSN != ""
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
