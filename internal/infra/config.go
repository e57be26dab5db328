package infra

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultTokenTTL = 7 * 24 * time.Hour

type Config struct {
	PostgresURL string
	Port        string
	JWTSecret   string
	FrontendURL string
	TokenTTL    time.Duration
}

// LoadConfig reads the environment (plus an optional .env file). The JWT
// secret is mandatory: starting with a default one would let anyone
// forge session tokens, so the process refuses to come up without it.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	ttl := defaultTokenTTL
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, errors.New("TOKEN_TTL is not a valid duration")
		}
		ttl = parsed
	}

	return &Config{
		PostgresURL: os.Getenv("POSTGRES_URL"),
		Port:        port,
		JWTSecret:   secret,
		FrontendURL: os.Getenv("FRONTEND_URL"),
		TokenTTL:    ttl,
	}, nil
}
