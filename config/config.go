package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file if one is present. Missing files are fine;
// deployed environments set variables directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
