package infra

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// AppConfig is the whole process configuration, loaded once and injected.
type AppConfig struct {
	Port        string
	PostgresURL string // when set, postgres is used instead of sqlite
	SQLitePath  string
	JWTSecret   string
}

func LoadConfig() AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}

	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		PostgresURL: get("POSTGRES_URL", ""),
		SQLitePath:  get("SQLITE_PATH", "trip.db"),
		JWTSecret:   get("JWT_SECRET", ""),
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	return cfg
}
