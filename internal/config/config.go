package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Directory DirectoryConfig
	Redis     RedisConfig
	Cron      CronConfig
	RateLimit RateLimitConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration time.Duration
	AccessExpiration  time.Duration
	SecureCookie      bool
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// DirectoryConfig points at the manager directory sources. When both are
// set the roster spreadsheet wins for the directory and also feeds imports.
type DirectoryConfig struct {
	ManagersPath string
	RosterPath   string
	LoginDomain  string
}

// RedisConfig is optional. An empty Addr disables the employee cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type CronConfig struct {
	TokenPurgeInterval time.Duration
}

type RateLimitConfig struct {
	LoginPerSecond float64
	LoginBurst     int
}

func Load() (*Config, error) {
	// .env is optional; real deployments pass the environment directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	} else if err != nil {
		slog.Debug("no .env file, using process environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timeclock_adjustment"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	accessExpiration, err := getEnvDuration("JWT_ACCESS_EXPIRATION_TIME", time.Hour)
	if err != nil {
		return nil, err
	}
	refreshExpiration, err := getEnvDuration("JWT_REFRESH_EXPIRATION_TIME", 168*time.Hour)
	if err != nil {
		return nil, err
	}
	secureCookie, err := strconv.ParseBool(getEnv("JWT_SECURE_COOKIE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_SECURE_COOKIE: %w", err)
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  accessExpiration,
		RefreshExpiration: refreshExpiration,
		SecureCookie:      secureCookie,
	}

	// Directory configuration
	config.Directory = DirectoryConfig{
		ManagersPath: getEnv("MANAGER_DIRECTORY_PATH", ""),
		RosterPath:   getEnv("ROSTER_XLSX_PATH", ""),
		LoginDomain:  getEnv("LOGIN_DOMAIN", "ajusteponto.local"),
	}

	// Redis configuration
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cacheTTL, err := getEnvDuration("EMPLOYEE_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	config.Redis = RedisConfig{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
		TTL:      cacheTTL,
	}

	// Cron configuration
	purgeInterval, err := getEnvDuration("TOKEN_PURGE_INTERVAL", time.Hour)
	if err != nil {
		return nil, err
	}
	config.Cron = CronConfig{TokenPurgeInterval: purgeInterval}

	// Login rate limit
	loginRate, err := strconv.ParseFloat(getEnv("LOGIN_RATE_PER_SECOND", "0.2"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_PER_SECOND: %w", err)
	}
	loginBurst, err := strconv.Atoi(getEnv("LOGIN_RATE_BURST", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_BURST: %w", err)
	}
	config.RateLimit = RateLimitConfig{LoginPerSecond: loginRate, LoginBurst: loginBurst}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.JWT.AccessExpiration <= 0 || c.JWT.RefreshExpiration <= 0 {
		return fmt.Errorf("JWT expiration times must be positive")
	}
	if c.Directory.ManagersPath == "" && c.Directory.RosterPath == "" {
		return fmt.Errorf("MANAGER_DIRECTORY_PATH or ROSTER_XLSX_PATH is required")
	}
	if c.RateLimit.LoginPerSecond <= 0 || c.RateLimit.LoginBurst <= 0 {
		return fmt.Errorf("login rate limit must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
