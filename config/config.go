package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// BaseURL is the root of the remote food-ordering API.
	BaseURL string        `yaml:"baseURL"`
	Timeout time.Duration `yaml:"timeout"`

	// PollInterval is the order status polling interval.
	PollInterval time.Duration `yaml:"pollInterval"`
	// SimulateDelay separates simulated status steps.
	SimulateDelay time.Duration `yaml:"simulateDelay"`
	// SimulateStatus enables the status simulation loop by default.
	SimulateStatus bool `yaml:"simulateStatus"`

	// RequestsPerSecond caps the client request rate; zero disables it.
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`

	// MockAddr is the listen address for the embedded mock API server.
	MockAddr string `yaml:"mockAddr"`
}

// Load builds the configuration from defaults, an optional YAML file,
// and environment variables, in increasing priority. A missing .env
// file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{
		BaseURL:        "http://localhost:2000",
		Timeout:        30 * time.Second,
		PollInterval:   3000 * time.Millisecond,
		SimulateDelay:  4000 * time.Millisecond,
		SimulateStatus: true,
		MockAddr:       ":2000",
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg.BaseURL = getEnv("API_BASE_URL", cfg.BaseURL)
	cfg.MockAddr = getEnv("MOCK_ADDR", cfg.MockAddr)
	cfg.Timeout = getEnvDuration("HTTP_TIMEOUT", cfg.Timeout)
	cfg.PollInterval = getEnvDuration("POLL_INTERVAL", cfg.PollInterval)
	cfg.SimulateDelay = getEnvDuration("SIMULATE_DELAY", cfg.SimulateDelay)
	cfg.SimulateStatus = getEnvBool("SIMULATE_STATUS", cfg.SimulateStatus)
	cfg.RequestsPerSecond = getEnvFloat("REQUESTS_PER_SECOND", cfg.RequestsPerSecond)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Warning: invalid duration for %s: %q", key, value)
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
		log.Printf("Warning: invalid boolean for %s: %q", key, value)
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Warning: invalid number for %s: %q", key, value)
	}
	return defaultValue
}
