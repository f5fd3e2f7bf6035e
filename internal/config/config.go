package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"finhealth/internal/engine"
	"finhealth/internal/models"
)

// Config holds application configuration
type Config struct {
	// Environment
	Env      string
	LogLevel string

	// Server
	Port string

	// Database
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	SQLitePath     string
	MigrationsPath string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Snapshot cache
	CacheTTL  time.Duration
	CacheSize int

	// Scheduler
	PurgeSchedule string

	// Internal endpoints
	ServiceAPIKey string

	// Health engine constants
	Policy engine.Policy
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", ""),

		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "finhealth"),
		DBPassword:     getEnv("DB_PASSWORD", "finhealth"),
		DBName:         getEnv("DB_NAME", "finhealth"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		SQLitePath:     getEnv("SQLITE_PATH", "finhealth.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		PurgeSchedule: getEnv("REVOKED_TOKEN_PURGE_SCHEDULE", "@hourly"),
		ServiceAPIKey: getEnv("SERVICE_API_KEY", ""),
	}

	if config.DBDriver != "postgres" && config.DBDriver != "sqlite" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", config.DBDriver)
	}

	config.JWTExpirationDur = getDuration("JWT_EXPIRES_IN", 24*time.Hour)
	config.CacheTTL = getDuration("SNAPSHOT_CACHE_TTL", 5*time.Minute)

	size, err := strconv.Atoi(getEnv("SNAPSHOT_CACHE_SIZE", "1024"))
	if err != nil || size <= 0 {
		return nil, fmt.Errorf("invalid SNAPSHOT_CACHE_SIZE: must be a positive integer")
	}
	config.CacheSize = size

	policy, err := loadPolicy()
	if err != nil {
		return nil, err
	}
	config.Policy = policy

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// loadPolicy starts from the engine defaults and applies POLICY_* overrides.
func loadPolicy() (engine.Policy, error) {
	p := engine.DefaultPolicy()

	floats := []struct {
		key string
		dst *float64
	}{
		{"POLICY_INVESTMENT_FRACTION", &p.InvestmentFraction},
		{"POLICY_INVESTMENT_SALARY_CAP", &p.InvestmentSalaryCap},
		{"POLICY_AT_RISK_TOLERANCE", &p.AtRiskTolerance},
		{"POLICY_EMERGENCY_TARGET_MONTHS", &p.EmergencyTargetMonths},
		{"POLICY_RATIO_SENTINEL", &p.RatioSentinel},
		{"POLICY_WEIGHT_BURN", &p.Weights.Burn},
		{"POLICY_WEIGHT_DEBT", &p.Weights.Debt},
		{"POLICY_WEIGHT_EMERGENCY", &p.Weights.Emergency},
		{"POLICY_WEIGHT_GOALS", &p.Weights.Goals},
	}
	for _, f := range floats {
		if err := setFloat(f.key, f.dst); err != nil {
			return p, err
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"POLICY_LIQUIDITY_THRESHOLD", &p.LiquidityThreshold},
		{"POLICY_NEGATIVE_NET_WORTH_PENALTY", &p.NegativeNetWorthPenalty},
		{"POLICY_MAX_PAYOFF_MONTHS", &p.MaxPayoffMonths},
		{"POLICY_PROJECTION_MONTHS", &p.ProjectionMonths},
	}
	for _, f := range ints {
		if err := setInt(f.key, f.dst); err != nil {
			return p, err
		}
	}

	// POLICY_GROWTH_RATE_MUTUAL_FUND, POLICY_GROWTH_RATE_BANK, ...
	for _, t := range models.AssetTypes {
		key := "POLICY_GROWTH_RATE_" + strings.ToUpper(strings.ReplaceAll(string(t), " ", "_"))
		rate := p.GrowthRates[t]
		if err := setFloat(key, &rate); err != nil {
			return p, err
		}
		p.GrowthRates[t] = rate
	}

	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("invalid policy: %w", err)
	}
	return p, nil
}

func setFloat(key string, dst *float64) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = v
	return nil
}

func setInt(key string, dst *int) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = v
	return nil
}

// getDuration parses a duration variable, falling back on bad input.
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, fallback.String())
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, fallback)
		return fallback
	}
	return d
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
