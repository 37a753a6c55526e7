package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort       string
	DatabaseDSN    string
	CORSOrigins    string
	CurrencySymbol string // display only, amounts are never converted
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println(".env file loaded")
	}

	if os.Getenv("DATABASE_DSN") == "" {
		log.Println("[WARN] DATABASE_DSN not set, using the local default.")
	}

	return &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8001"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=halimou port=5432 sslmode=disable"),
		CORSOrigins:    getEnv("CORS_ALLOWED_ORIGINS", "*"),
		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "DA"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
