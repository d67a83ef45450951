package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   string
	JWTTTL      time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	ttl := 60 * time.Minute
	if exp := os.Getenv("JWT_TTL"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			ttl = parsed
		}
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=fintrack port=5432 sslmode=disable"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTTTL:      ttl,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
