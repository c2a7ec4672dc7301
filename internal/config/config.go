package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL      string
	Port         string
	UserAgent    string
	FetchTimeout time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		BaseURL:      getEnv("BASE_URL", "https://sensorika.uz"),
		Port:         getEnv("PORT", "8080"),
		UserAgent:    getEnv("USER_AGENT", "Mozilla/5.0"),
		FetchTimeout: time.Duration(getEnvInt("FETCH_TIMEOUT_SECONDS", 15)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
