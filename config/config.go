package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"eurojackpot/database"
	"eurojackpot/history"
)

// Draw source selection
const (
	DrawSourceBundled  = "bundled"
	DrawSourceDatabase = "database"
)

const dateLayout = "2006-01-02"

// Config holds all application configuration
type Config struct {
	// Discord configuration; the bot is disabled without a token
	DiscordToken string
	GuildID      string

	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// Where tickets read their draw history from: "bundled" or "database"
	DrawSource string

	// HTTP listen address; empty disables the server
	HTTPAddr string

	// History import
	HistoryBaseURL           string
	HistoryStartDate         time.Time
	HistoryRequestsPerSecond float64

	// Logging
	LogLevel string

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// GetDatabaseURL combines the base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// UsesDatabase reports whether draws are read from the draw store
func (c *Config) UsesDatabase() bool {
	return c.DrawSource == DrawSourceDatabase
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		GuildID:      os.Getenv("GUILD_ID"),

		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		DrawSource: strings.ToLower(os.Getenv("DRAW_SOURCE")),

		HistoryBaseURL:           getEnvWithDefault("HISTORY_BASE_URL", history.DefaultBaseURL),
		HistoryStartDate:         time.Date(2012, time.March, 23, 0, 0, 0, 0, time.UTC),
		HistoryRequestsPerSecond: 1,

		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
	}

	// HTTP_ADDR may be set to an empty string to disable the server
	config.HTTPAddr = ":8080"
	if addr, ok := os.LookupEnv("HTTP_ADDR"); ok {
		config.HTTPAddr = addr
	}

	if start := os.Getenv("HISTORY_START_DATE"); start != "" {
		parsed, err := time.Parse(dateLayout, start)
		if err != nil {
			return nil, fmt.Errorf("invalid HISTORY_START_DATE %q: %w", start, err)
		}
		config.HistoryStartDate = parsed
	}
	if rps := os.Getenv("HISTORY_REQUESTS_PER_SECOND"); rps != "" {
		parsed, err := strconv.ParseFloat(rps, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid HISTORY_REQUESTS_PER_SECOND %q: %w", rps, err)
		}
		config.HistoryRequestsPerSecond = parsed
	}

	if config.DrawSource == "" {
		config.DrawSource = DrawSourceBundled
		if config.DatabaseURL != "" {
			config.DrawSource = DrawSourceDatabase
		}
	}

	switch config.DrawSource {
	case DrawSourceBundled:
	case DrawSourceDatabase:
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when DRAW_SOURCE is %s", DrawSourceDatabase)
		}
	default:
		return nil, fmt.Errorf("invalid DRAW_SOURCE %q: must be %s or %s", config.DrawSource, DrawSourceBundled, DrawSourceDatabase)
	}

	return config, nil
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		DrawSource:       DrawSourceBundled,
		HistoryBaseURL:   history.DefaultBaseURL,
		HistoryStartDate: time.Date(2012, time.March, 23, 0, 0, 0, 0, time.UTC),
		LogLevel:         "info",
		Environment:      "test",
	}
}
