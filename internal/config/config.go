// Package config loads the storefront client settings from the environment.
// Values from a local .env file are applied first; every setting has a default
// so the client can start against a local backend without any configuration.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	LogLevel         string
	ServerRunAddress string
	// APIURL is the backend origin every resource service is built on.
	APIURL string

	// StorageKind selects the durable client storage: file, memory, redis or postgres.
	StorageKind   string
	StoragePath   string
	RedisAddr     string
	RedisPassword string
	DatabaseURI   string

	// MaxPages caps the game listing page walk.
	MaxPages int
	// PerPage is the default catalog page size.
	PerPage int
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	LogLevel = getenv("LOG_LEVEL", "info")
	ServerRunAddress = getenv("SERVER_RUN_ADDRESS", "0.0.0.0:8080")
	APIURL = getenv("API_URL", "http://localhost:8000/api")

	StorageKind = getenv("STORAGE", "file")
	StoragePath = getenv("STORAGE_PATH", ".storefront")
	RedisAddr = getenv("REDIS_ADDR", "localhost:6379")
	RedisPassword = os.Getenv("REDIS_PASSWORD")
	DatabaseURI = getenv("DATABASE_URI", "host=localhost user=postgres password=password dbname=storefront sslmode=disable")

	MaxPages = getenvInt("MAX_PAGES", 100)
	PerPage = getenvInt("PER_PAGE", 12)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
