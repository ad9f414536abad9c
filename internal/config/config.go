package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration resolved from the environment.
// A .env file in the working directory is honored when present.
type Config struct {
	APIURL         string
	Debug          bool
	RequestTimeout time.Duration
	RequestsPerSec float64
}

func Load() Config {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	return Config{
		APIURL:         getEnv("LIFELENS_API_URL", "http://localhost:8000"),
		Debug:          getBool("LIFELENS_DEBUG", false),
		RequestTimeout: getDuration("LIFELENS_REQUEST_TIMEOUT", 30*time.Second),
		RequestsPerSec: getFloat("LIFELENS_REQUESTS_PER_SEC", 5),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
