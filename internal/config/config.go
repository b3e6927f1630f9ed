package config

import (
	"fmt"
	"os"
	"strconv"
)

// App holds the web application configuration.
type App struct {
	Port          int
	StoreURL      string
	SessionSecret string
	CookieSecure  bool
}

// Store holds the record store configuration.
type Store struct {
	Port         int
	DatabasePath string
}

// LoadApp loads the web application configuration from environment
// variables. SESSION_SECRET is mandatory and must be long enough to
// key the cookie signer.
func LoadApp() (*App, error) {
	port, err := intEnv("PORT", 8080)
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("SESSION_SECRET")
	if len(secret) < 32 {
		return nil, fmt.Errorf("SESSION_SECRET must be set and at least 32 characters")
	}

	secure, err := boolEnv("COOKIE_SECURE", false)
	if err != nil {
		return nil, err
	}

	return &App{
		Port:          port,
		StoreURL:      getEnv("STORE_URL", "http://localhost:3001"),
		SessionSecret: secret,
		CookieSecure:  secure,
	}, nil
}

// LoadStore loads the record store configuration from environment
// variables or sets defaults.
func LoadStore() (*Store, error) {
	port, err := intEnv("PORT", 3001)
	if err != nil {
		return nil, err
	}

	return &Store{
		Port:         port,
		DatabasePath: getEnv("DATABASE_PATH", "./store.db"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return n, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
