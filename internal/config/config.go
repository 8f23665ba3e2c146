package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string

	// Payment provider
	MPBaseURL     string
	MPAccessToken string
	// Public base URL the provider redirects the buyer's browser back to.
	MPBackBase string
}

func Load() Config {
	godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DBDSN:         getEnv("DB_DSN", "huertohogar.db"), // sqlite file in project root
		LogFile:       getEnv("LOG_FILE", "./huertohogar.log"),
		MPBaseURL:     getEnv("MP_BASE_URL", "https://api.mercadopago.com"),
		MPAccessToken: getEnv("MP_ACCESS_TOKEN", ""),
		MPBackBase:    getEnv("MP_BACK_BASE", "http://localhost:8080"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s MP_BASE_URL=%s", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.MPBaseURL)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
