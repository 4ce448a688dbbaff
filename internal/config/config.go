package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	ServerPort string
	Debug      bool

	// TeslaMate database (read-only)
	DatabaseHost string
	DatabasePort string
	DatabaseName string
	DatabaseUser string
	DatabasePass string
	DatabaseSSL  string

	// Chat client
	APIBaseURL    string
	ClientTimeout time.Duration

	// Journal / efficiency defaults
	RatePerMil         float64
	BatteryCapacityKwh float64
}

func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:         getEnv("PORT", "8000"),
		Debug:              getEnvBool("DEBUG", false),
		DatabaseHost:       getEnv("DATABASE_HOST", "database"),
		DatabasePort:       getEnv("DATABASE_PORT", "5432"),
		DatabaseName:       getEnv("DATABASE_NAME", "teslamate"),
		DatabaseUser:       getEnv("DATABASE_USER", "teslamate"),
		DatabasePass:       getEnv("DATABASE_PASS", "secret"),
		DatabaseSSL:        getEnv("DATABASE_SSL_MODE", "disable"),
		APIBaseURL:         getEnv("TESLACHAT_API_URL", "http://localhost:8000"),
		ClientTimeout:      getEnvDuration("TESLACHAT_API_TIMEOUT", 10*time.Second),
		RatePerMil:         getEnvFloat("RATE_PER_MIL", 25.0),
		BatteryCapacityKwh: getEnvFloat("BATTERY_CAPACITY_KWH", 75.0),
	}

	return cfg, nil
}

// DatabaseURL assembles the pgx connection string from the discrete fields.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DatabaseUser, c.DatabasePass, c.DatabaseHost, c.DatabasePort, c.DatabaseName, c.DatabaseSSL)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}
