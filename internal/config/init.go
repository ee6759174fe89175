package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Init loads .env and verifies the settings the app cannot run without.
func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	required := []string{"DB_DSN", "MONGO_URI", "MONGO_DB", "REDIS_ADDR", "JWT_SECRET", "APP_PORT"}
	for _, key := range required {
		if os.Getenv(key) == "" {
			Logger.Fatal("missing required environment variable: " + key)
		}
	}
}
