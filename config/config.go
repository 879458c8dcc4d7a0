package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	defaultServerPort          = "8080"
	defaultPriceCacheTTL       = 10 * time.Minute
	defaultShoppingWorkers     = 4
	defaultSupplementRateLimit = 30
	defaultMigrationsDir       = "migrations"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Supplement pipeline settings
	PriceCacheTTL       time.Duration
	ShoppingWorkers     int
	SupplementRateLimit int
	MigrationsDir       string
}

// fileConfig is the optional YAML overlay pointed to by CONFIG_FILE. It only carries
// non-secret settings; passwords and signing keys stay in env vars or Docker secrets.
type fileConfig struct {
	ServerPort          string `yaml:"server_port"`
	ServerHost          string `yaml:"server_host"`
	DBHost              string `yaml:"db_host"`
	DBPort              string `yaml:"db_port"`
	DBName              string `yaml:"db_name"`
	DBSSLMode           string `yaml:"db_ssl_mode"`
	RedisHost           string `yaml:"redis_host"`
	RedisPort           string `yaml:"redis_port"`
	RedisDB             int    `yaml:"redis_db"`
	PriceCacheTTL       string `yaml:"price_cache_ttl"`
	ShoppingWorkers     int    `yaml:"shopping_workers"`
	SupplementRateLimit int    `yaml:"supplement_rate_limit"`
	MigrationsDir       string `yaml:"migrations_dir"`
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case CI:
		loadCIConfig(cfg)
	case Development, Test:
		loadDevConfig(cfg)
	case Production:
		loadProdConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}
	if err := applySupplementSettings(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig reads everything from the runner's environment
func loadCIConfig(cfg *Config) {
	cfg.ServerPort = os.Getenv("SERVER_PORT")
	cfg.ServerHost = os.Getenv("SERVER_HOST")
	cfg.DBHost = os.Getenv("DB_HOST")
	cfg.DBPort = os.Getenv("DB_PORT")
	cfg.DBUser = os.Getenv("DB_USER")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBName = os.Getenv("DB_NAME")
	cfg.DBSSLMode = os.Getenv("DB_SSL_MODE")
	cfg.RedisHost = os.Getenv("REDIS_HOST")
	cfg.RedisPort = os.Getenv("REDIS_PORT")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.RedisDB = 0
}

// loadDevConfig prefers Docker secrets and falls back to plain env vars so a
// developer can run the API without a secrets directory.
func loadDevConfig(cfg *Config) {
	cfg.ServerPort = secretOrEnv("server_port", "SERVER_PORT")
	cfg.ServerHost = secretOrEnv("server_host", "SERVER_HOST")
	cfg.DBHost = secretOrEnv("db_host", "DB_HOST")
	cfg.DBPort = secretOrEnv("db_port", "DB_PORT")
	cfg.DBUser = secretOrEnv("db_user", "DB_USER")
	cfg.DBPassword = secretOrEnv("db_password", "DB_PASSWORD")
	cfg.DBName = secretOrEnv("db_name", "DB_NAME")
	cfg.DBSSLMode = secretOrEnv("db_ssl_mode", "DB_SSL_MODE")
	cfg.RedisHost = secretOrEnv("redis_host", "REDIS_HOST")
	cfg.RedisPort = secretOrEnv("redis_port", "REDIS_PORT")
	cfg.RedisPassword = secretOrEnv("redis_password", "REDIS_PASSWORD")
	cfg.RedisURL = secretOrEnv("redis_url", "REDIS_URL")
	cfg.JWTSecret = secretOrEnv("jwt_secret", "JWT_SECRET")
	cfg.RedisDB = 0
}

// loadProdConfig loads configuration for production environment using ONLY Docker secrets
func loadProdConfig(cfg *Config) {
	cfg.ServerPort = readSecret("server_port")
	cfg.ServerHost = readSecret("server_host")
	cfg.DBHost = readSecret("db_host")
	cfg.DBPort = readSecret("db_port")
	cfg.DBUser = readSecret("db_user")
	cfg.DBPassword = readSecret("db_password")
	cfg.DBName = readSecret("db_name")
	cfg.DBSSLMode = readSecret("db_ssl_mode")
	cfg.RedisHost = readSecret("redis_host")
	cfg.RedisPort = readSecret("redis_port")
	cfg.RedisPassword = readSecret("redis_password")
	cfg.RedisURL = readSecret("redis_url")
	cfg.JWTSecret = readSecret("jwt_secret")
	cfg.RedisDB = 0
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	override(&cfg.ServerPort, fc.ServerPort)
	override(&cfg.ServerHost, fc.ServerHost)
	override(&cfg.DBHost, fc.DBHost)
	override(&cfg.DBPort, fc.DBPort)
	override(&cfg.DBName, fc.DBName)
	override(&cfg.DBSSLMode, fc.DBSSLMode)
	override(&cfg.RedisHost, fc.RedisHost)
	override(&cfg.RedisPort, fc.RedisPort)
	override(&cfg.MigrationsDir, fc.MigrationsDir)
	if fc.RedisDB > 0 {
		cfg.RedisDB = fc.RedisDB
	}
	if fc.PriceCacheTTL != "" {
		ttl, err := time.ParseDuration(fc.PriceCacheTTL)
		if err != nil {
			return ValidationError{Field: "price_cache_ttl", Message: err.Error()}
		}
		cfg.PriceCacheTTL = ttl
	}
	if fc.ShoppingWorkers > 0 {
		cfg.ShoppingWorkers = fc.ShoppingWorkers
	}
	if fc.SupplementRateLimit > 0 {
		cfg.SupplementRateLimit = fc.SupplementRateLimit
	}
	return nil
}

// applySupplementSettings reads the pipeline knobs from the environment. They are
// not secrets, so every environment reads them the same way.
func applySupplementSettings(cfg *Config) error {
	if v := os.Getenv("PRICE_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return ValidationError{Field: "PRICE_CACHE_TTL", Message: err.Error()}
		}
		cfg.PriceCacheTTL = ttl
	}
	if v := os.Getenv("SHOPPING_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return ValidationError{Field: "SHOPPING_WORKERS", Message: "must be a positive integer"}
		}
		cfg.ShoppingWorkers = n
	}
	if v := os.Getenv("SUPPLEMENT_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return ValidationError{Field: "SUPPLEMENT_RATE_LIMIT", Message: "must be a positive integer"}
		}
		cfg.SupplementRateLimit = n
	}
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		cfg.MigrationsDir = v
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.ServerPort == "" {
		cfg.ServerPort = defaultServerPort
	}
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = "disable"
	}
	if cfg.PriceCacheTTL <= 0 {
		cfg.PriceCacheTTL = defaultPriceCacheTTL
	}
	if cfg.ShoppingWorkers <= 0 {
		cfg.ShoppingWorkers = defaultShoppingWorkers
	}
	if cfg.SupplementRateLimit <= 0 {
		cfg.SupplementRateLimit = defaultSupplementRateLimit
	}
	if cfg.MigrationsDir == "" {
		cfg.MigrationsDir = defaultMigrationsDir
	}
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func secretOrEnv(secret, env string) string {
	if v := readSecret(secret); v != "" {
		return v
	}
	return os.Getenv(env)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

// DSN returns the postgres connection string for gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// Defaults returns a config carrying only the built-in defaults. Local tools that
// open a SQLite file use it instead of LoadConfig.
func Defaults() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}
