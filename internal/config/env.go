package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServiceURL = "http://localhost:8080"
	defaultTimeoutMS  = 25000
)

// loads configuration from environment variables. Everything has a
// default - the client must run with no configuration at all against a
// local development service.
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - a .env file is optional
	}

	environment := os.Getenv("CRITIQUE_ENV")
	if environment == "" {
		environment = "development"
	}

	serviceURL := os.Getenv("CRITIQUE_API_ENDPOINT")
	if serviceURL == "" {
		serviceURL = defaultServiceURL
	}

	timeout, err := timeoutFromEnv()
	if err != nil {
		return nil, err
	}

	stateDir := os.Getenv("CRITIQUE_STATE_DIR")
	if stateDir == "" {
		stateDir = defaultStateDir()
	}

	backend := os.Getenv("CRITIQUE_STATE_BACKEND")
	switch backend {
	case "":
		backend = BackendFile
	case BackendFile, BackendSQLite:
	default:
		return nil, fmt.Errorf("CRITIQUE_STATE_BACKEND must be %q or %q, got %q", BackendFile, BackendSQLite, backend)
	}

	return &Config{
		Environment:    environment,
		ServiceURL:     serviceURL,
		RequestTimeout: timeout,
		AuthSecret:     os.Getenv("CRITIQUE_AUTH_SECRET"),
		StateDir:       stateDir,
		StateBackend:   backend,
	}, nil
}

func timeoutFromEnv() (time.Duration, error) {
	raw := os.Getenv("CRITIQUE_TIMEOUT_MS")
	if raw == "" {
		return defaultTimeoutMS * time.Millisecond, nil
	}

	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		return 0, fmt.Errorf("CRITIQUE_TIMEOUT_MS must be a positive integer, got %q", raw)
	}

	return time.Duration(ms) * time.Millisecond, nil
}

// falls back to the working directory when the user config dir is
// unavailable (rare, but possible in minimal containers)
func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".critique"
	}

	return filepath.Join(base, "critique")
}
