package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Shift    ShiftConfig
	Holiday  HolidayConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// ShiftConfig holds the attendance and leave timing rules. The shift is
// company-wide; per-employee schedules are not modelled.
type ShiftConfig struct {
	StartMinute       int // minute of day the shift opens
	EarlyGraceMinutes int // check-ins this much before start still count as on time
	HalfDayCutoff     int // same-day First Half / Full Day requests close at this minute
	SecondHalfCutoff  int // same-day Second Half requests close at this minute
	DefaultLabel      string
}

// HolidayConfig controls the holiday calendar snapshot refresh.
type HolidayConfig struct {
	PollInterval time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "markwave-hr"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Shift timing rules
	shiftStart, err := getEnvMinute("SHIFT_START", "09:30")
	if err != nil {
		return nil, err
	}
	halfDayCutoff, err := getEnvMinute("HALF_DAY_CUTOFF", "12:30")
	if err != nil {
		return nil, err
	}
	secondHalfCutoff, err := getEnvMinute("SECOND_HALF_CUTOFF", "14:00")
	if err != nil {
		return nil, err
	}
	earlyGrace, err := strconv.Atoi(getEnv("EARLY_GRACE_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid EARLY_GRACE_MINUTES: %w", err)
	}

	config.Shift = ShiftConfig{
		StartMinute:       shiftStart,
		EarlyGraceMinutes: earlyGrace,
		HalfDayCutoff:     halfDayCutoff,
		SecondHalfCutoff:  secondHalfCutoff,
		DefaultLabel:      getEnv("SHIFT_LABEL", "09:30 AM - 06:30 PM"),
	}

	pollInterval, err := time.ParseDuration(getEnv("HOLIDAY_POLL_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid HOLIDAY_POLL_INTERVAL: %w", err)
	}
	config.Holiday = HolidayConfig{PollInterval: pollInterval}

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
	if c.Shift.StartMinute <= 0 {
		return fmt.Errorf("SHIFT_START must be after midnight")
	}
	if c.Shift.EarlyGraceMinutes < 0 {
		return fmt.Errorf("EARLY_GRACE_MINUTES must not be negative")
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

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvMinute reads an "HH:MM" value as a minute of day.
func getEnvMinute(key, fallback string) (int, error) {
	value := getEnv(key, fallback)
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
