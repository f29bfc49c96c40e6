package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App     AppConfig
	Sheet   SheetConfig
	Refresh RefreshConfig
	Redis   RedisConfig
	Logger  LoggerConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// SheetConfig locates the upstream issue feed.
type SheetConfig struct {
	SpreadsheetID string
	SheetName     string
	URL           string
	FetchTimeout  time.Duration
}

// RefreshConfig controls the refresh cycle and derived views.
type RefreshConfig struct {
	Interval         time.Duration
	ManualPerMinute  int
	ManualBurst      int
	StaleAgeDays     int
	SnapshotCacheTTL time.Duration
}

// RedisConfig holds snapshot cache connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "issue-dashboard"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Sheet: SheetConfig{
			SpreadsheetID: os.Getenv("SHEET_SPREADSHEET_ID"),
			SheetName:     getEnv("SHEET_NAME", "Issues"),
			URL:           os.Getenv("SHEET_URL"),
			FetchTimeout:  time.Duration(getEnvAsInt("FETCH_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Refresh: RefreshConfig{
			Interval:         time.Duration(getEnvAsInt("REFRESH_INTERVAL_SECONDS", 300)) * time.Second,
			ManualPerMinute:  getEnvAsInt("REFRESH_MANUAL_PER_MINUTE", 6),
			ManualBurst:      getEnvAsInt("REFRESH_MANUAL_BURST", 2),
			StaleAgeDays:     getEnvAsInt("STALE_AGE_THRESHOLD_DAYS", 20),
			SnapshotCacheTTL: time.Duration(getEnvAsInt("SNAPSHOT_CACHE_TTL_SECONDS", 86400)) * time.Second,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
