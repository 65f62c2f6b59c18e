package config

import (
	"os"
	"strconv"

	"github.com/azmirfakkri/jomsplit/internal/bill/split"
)

// Config holds all application configuration
type Config struct {
	// DatabaseURL is the PostgreSQL DSN. When empty the server falls back
	// to in-memory storage, mirroring the product's behaviour when its
	// managed backend is unconfigured.
	DatabaseURL string
	Port        string

	SSTRate            float64
	ServiceChargeRate  float64
	ServiceChargeScope split.ServiceChargeScope
}

// Load reads configuration from environment variables
func Load() *Config {
	defaults := split.DefaultConfig()
	return &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		Port:               getEnv("PORT", "8080"),
		SSTRate:            getFloat("SST_RATE", defaults.SSTRate),
		ServiceChargeRate:  getFloat("SERVICE_CHARGE_RATE", defaults.ServiceChargeRate),
		ServiceChargeScope: getScope("SERVICE_CHARGE_SCOPE", defaults.ServiceChargeScope),
	}
}

// SplitConfig builds the split engine configuration from the loaded rates.
func (c *Config) SplitConfig() split.Config {
	return split.Config{
		SSTRate:            c.SSTRate,
		ServiceChargeRate:  c.ServiceChargeRate,
		ServiceChargeScope: c.ServiceChargeScope,
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getFloat retrieves a float environment variable or returns a default value
func getFloat(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getScope retrieves a service-charge scope or returns a default value
func getScope(key string, defaultValue split.ServiceChargeScope) split.ServiceChargeScope {
	switch split.ServiceChargeScope(os.Getenv(key)) {
	case split.ScopeAllParticipants:
		return split.ScopeAllParticipants
	case split.ScopeItemSharers:
		return split.ScopeItemSharers
	default:
		return defaultValue
	}
}
