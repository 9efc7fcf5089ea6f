package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppEnv string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string

	// Postgres
	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDB       string
	PGSSLMode  string
	Migrate    bool

	// Calendar / jobs
	Timezone        string
	CleanupSchedule string
	CleanupEnabled  bool

	// Cache
	RedisHost       string
	RedisPort       string
	RedisPassword   string
	CacheTTLSeconds int

	// Member lookup limiter
	LookupRatePerSec int
	LookupBurst      int
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,
		CORSOrigins:  splitList(getEnv("CORS_ORIGINS", "https://*,http://localhost:5000")),

		PGHost:     getEnv("PG_HOST", "localhost"),
		PGPort:     getEnv("PG_PORT", "5432"),
		PGUser:     getEnv("PG_USER", "postgres"),
		PGPassword: getEnv("PG_PASSWORD", ""),
		PGDB:       getEnv("PG_DB", "fujiparasystem"),
		PGSSLMode:  getEnv("PG_SSLMODE", "disable"),
		Migrate:    getEnvAsBool("MIGRATE_ON_START", false),

		Timezone:        getEnv("APP_TIMEZONE", "Asia/Tokyo"),
		CleanupSchedule: getEnv("CLEANUP_SCHEDULE", "0 0 1 * *"),
		CleanupEnabled:  getEnvAsBool("CLEANUP_ENABLED", true),

		RedisHost:       getEnv("REDIS_HOST", ""),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		CacheTTLSeconds: getEnvAsInt("CACHE_TTL_SECONDS", 300),

		LookupRatePerSec: getEnvAsInt("LOOKUP_RATE_PER_SEC", 5),
		LookupBurst:      getEnvAsInt("LOOKUP_BURST", 10),
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PostgresDSN builds the connection string shared by the sqlx and GORM connections.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB, c.PGSSLMode)
}

// Location resolves the time zone that defines "today".
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	switch strings.ToLower(getEnv(key, "")) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
