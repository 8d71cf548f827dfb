package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is everything the binary reads from the environment.
type Config struct {
	ListenAddr    string // websocket device server address
	AllowedOrigin string // empty allows any origin
}

// Load reads .env when present, then the environment, falling back to
// defaults suitable for local play.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}
	return Config{
		ListenAddr:    getenv("PICKUP_LISTEN_ADDR", ":8080"),
		AllowedOrigin: os.Getenv("PICKUP_ALLOWED_ORIGIN"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
