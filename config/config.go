package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig
	Cache    CacheConfig

	// Security
	JWT       JWTConfig
	RateLimit RateLimitConfig

	// Stock ledger
	Stock StockConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	DSN          string
	MaxOpenConns int
}

type CacheConfig struct {
	StaffNameSize int
	StaffNameTTL  time.Duration
}

type JWTConfig struct {
	SecretKey string
}

type RateLimitConfig struct {
	RequestsPerMin int
	Enabled        bool
}

// StockConfig holds the clinic-wide stock thresholds and dispense tuning.
type StockConfig struct {
	LowStockThreshold  int
	UrgentRatio        float64
	NearExpiryDays     int
	LowStockLimit      int
	DispenseMaxRetries int
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/clinic/
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/clinic/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(envReplacer())

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envReplacer maps keys like stock.low_stock_threshold to STOCK_LOW_STOCK_THRESHOLD.
func envReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Database.DSN = v.GetString("database.dsn")
	cfg.Database.MaxOpenConns = v.GetInt("database.max_open_conns")
	cfg.Cache.StaffNameSize = v.GetInt("cache.staff_name_size")
	cfg.Cache.StaffNameTTL = v.GetDuration("cache.staff_name_ttl")

	// Security
	cfg.JWT.SecretKey = v.GetString("jwt.secret_key")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")

	// Stock ledger
	cfg.Stock.LowStockThreshold = v.GetInt("stock.low_stock_threshold")
	cfg.Stock.UrgentRatio = v.GetFloat64("stock.urgent_ratio")
	cfg.Stock.NearExpiryDays = v.GetInt("stock.near_expiry_days")
	cfg.Stock.LowStockLimit = v.GetInt("stock.low_stock_limit")
	cfg.Stock.DispenseMaxRetries = v.GetInt("stock.dispense_max_retries")

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("database.dsn", "file:clinic.db?_pragma=journal_mode(WAL)")
	v.SetDefault("database.max_open_conns", 1)
	v.SetDefault("cache.staff_name_size", 256)
	v.SetDefault("cache.staff_name_ttl", "10m")
	v.SetDefault("rate_limit.requests_per_min", 120)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("stock.low_stock_threshold", 10)
	v.SetDefault("stock.urgent_ratio", 0.1)
	v.SetDefault("stock.near_expiry_days", 30)
	v.SetDefault("stock.low_stock_limit", 10)
	v.SetDefault("stock.dispense_max_retries", 3)
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", c.HTTPServer.Port)
	}
	if c.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}
	if c.JWT.SecretKey == "" && c.Environment.Name != "development" {
		return fmt.Errorf("jwt.secret_key is required in %s", c.Environment.Name)
	}
	if c.Stock.UrgentRatio < 0 || c.Stock.UrgentRatio > 1 {
		return fmt.Errorf("stock.urgent_ratio must be within [0, 1], got %v", c.Stock.UrgentRatio)
	}
	return nil
}
