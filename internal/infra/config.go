package infra

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const defaultAuthSecret = "gbu-sports-portal-secret"

type Config struct {
	DatabaseURL  string
	DatabaseName string
	AuthSecret   string
	Port         string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		AuthSecret:   getEnv("AUTH_SECRET", defaultAuthSecret),
		Port:         getEnv("PORT", "8000"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
