package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	AllowedOrigin  string
	AccessPolicy   string
	IdentityPolicy string
}

func LoadConfig() (*Config, error) {
	// Optional .env for local development; real environment variables win.
	_ = godotenv.Load()

	cfg := &Config{
		Port:           os.Getenv("PORT"),
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDB:        os.Getenv("MONGO_DB"),
		AllowedOrigin:  os.Getenv("ALLOWED_ORIGIN"),
		AccessPolicy:   os.Getenv("ACCESS_POLICY"),
		IdentityPolicy: os.Getenv("IDENTITY_POLICY"),
	}

	if cfg.MongoURI == "" {
		log.Error().Msg("MONGO_URI environment variable is not set")
		return nil, errors.New("MONGO_URI is required")
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	if cfg.MongoDB == "" {
		cfg.MongoDB = "esatto"
	}

	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = "http://127.0.0.1:3000"
		log.Info().Msg("ALLOWED_ORIGIN not set, using default: http://127.0.0.1:3000")
	}

	switch cfg.AccessPolicy {
	case "":
		cfg.AccessPolicy = "origin"
	case "origin", "same-origin":
	default:
		return nil, fmt.Errorf("invalid ACCESS_POLICY %q, must be origin or same-origin", cfg.AccessPolicy)
	}

	switch cfg.IdentityPolicy {
	case "":
		cfg.IdentityPolicy = "vat-key"
	case "vat-key", "generated":
	default:
		return nil, fmt.Errorf("invalid IDENTITY_POLICY %q, must be vat-key or generated", cfg.IdentityPolicy)
	}

	return cfg, nil
}
