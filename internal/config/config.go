package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-fulfillment/internal/fulfillment"
	"github.com/i474232898/weather-fulfillment/internal/weather"
)

type AppConfig struct {
	WWOAPIKey   string
	WWOBaseURL  string // empty means the production endpoint
	WWOLanguage string

	DefaultCity     string
	DefaultUnit     weather.Unit
	MaxForecastDays int

	// Temperature bucket boundaries per unit.
	Limits fulfillment.Limits

	// Outbound HTTP client timeout.
	HTTPTimeout time.Duration

	// Provider availability probe.
	ProbeInterval   time.Duration
	ProbeMaxHistory int
	ProbeMaxAge     time.Duration

	// Optional Google API key; enables coordinates->city resolution.
	GoogleAPIKey string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.WWOAPIKey = os.Getenv("WWO_API_KEY")
	cfg.WWOBaseURL = os.Getenv("WWO_BASE_URL")
	cfg.WWOLanguage = getenvDefault("WWO_LANGUAGE", "es")

	cfg.DefaultCity = getenvDefault("DEFAULT_CITY", "Madrid")

	unit := weather.Unit(getenvDefault("DEFAULT_UNIT", "C"))
	if unit != weather.UnitCelsius && unit != weather.UnitFahrenheit {
		return nil, fmt.Errorf("invalid DEFAULT_UNIT: %q", unit)
	}
	cfg.DefaultUnit = unit

	cfg.MaxForecastDays = getenvInt("MAX_FORECAST_DAYS", 13)

	cfg.Limits = fulfillment.Limits{
		weather.UnitCelsius:    {Hot: 25, Warm: 15, Chilly: 15, Cold: -5},
		weather.UnitFahrenheit: {Hot: 77, Warm: 59, Chilly: 41, Cold: 23},
	}

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	probeStr := getenvDefault("PROBE_INTERVAL", "15m")
	probeInterval, err := time.ParseDuration(probeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PROBE_INTERVAL: %w", err)
	}
	cfg.ProbeInterval = probeInterval

	cfg.ProbeMaxHistory = getenvInt("PROBE_MAX_HISTORY", 96)

	maxAgeStr := getenvDefault("PROBE_MAX_AGE", "24h")
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PROBE_MAX_AGE: %w", err)
	}
	cfg.ProbeMaxAge = maxAge

	cfg.GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
