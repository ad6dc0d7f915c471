package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DBDSN        string
	QueryTimeout time.Duration
	LogLevel     string
}

func Load() Config {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg := Config{
		Port:         getenv("PORT", "8080"),
		DBDSN:        getenv("DB_DSN", "farmstand.db"),
		QueryTimeout: getdur("DB_QUERY_TIMEOUT", 5*time.Second),
		LogLevel:     getenv("LOG_LEVEL", "info"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s DB_QUERY_TIMEOUT=%s LOG_LEVEL=%s",
		cfg.Port, cfg.DBDSN, cfg.QueryTimeout, cfg.LogLevel)
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getdur(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[config] ignoring bad %s=%q", key, v)
		return fallback
	}
	return d
}
