package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"auction-house/utils"
)

// Config holds the runtime configuration of the auction house server
type Config struct {
	Port string

	JWTSecret   string
	TokenMaxAge int // seconds

	// UserCapacity limits how many users may register; 0 means unbounded
	UserCapacity int
}

// Load reads configuration from a .env file if present, falling back to
// environment variables and defaults
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Info("no .env file found, relying on environment variables", nil)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}

	tokenMaxAge, err := strconv.Atoi(os.Getenv("TOKEN_MAX_AGE"))
	if err != nil || tokenMaxAge <= 0 {
		tokenMaxAge = 3600
	}

	userCapacity, err := strconv.Atoi(os.Getenv("USER_CAPACITY"))
	if err != nil || userCapacity < 0 {
		userCapacity = 0
	}

	return &Config{
		Port:         port,
		JWTSecret:    secret,
		TokenMaxAge:  tokenMaxAge,
		UserCapacity: userCapacity,
	}
}
