package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string

	// Database configuration. Empty means persistence is disabled and the bot
	// runs on zero/empty defaults instead of aborting startup.
	DatabaseURL string

	// Economy configuration
	CurrencyName       string
	SecondsPerCurrency int64

	// Blackjack configuration
	BlackjackTimeoutSeconds int

	// Horse race configuration
	RaceStartMinutes     []int // wall-clock minutes that trigger a race
	RaceLockoutMinutes   int   // minutes around a start minute during which betting is closed
	RaceTrackLength      int
	RaceTickSeconds      int
	RacePayoutMultiplier int64

	// Health endpoint
	HealthPort string

	// Environment
	Environment string // "development" or "production"
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

	// If instance is already set (e.g., by tests), return it
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

// load loads configuration from environment variables
func load() (*Config, error) {
	// Load .env file if present; absence is fine in production
	_ = godotenv.Load()

	config := &Config{
		// Discord
		DiscordToken: os.Getenv("DISCORD_TOKEN"),

		// Database
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// Economy defaults
		CurrencyName:       "GB",
		SecondsPerCurrency: 60,

		// Game defaults
		BlackjackTimeoutSeconds: 180,
		RaceStartMinutes:        []int{0, 30},
		RaceLockoutMinutes:      1,
		RaceTrackLength:         30,
		RaceTickSeconds:         2,
		RacePayoutMultiplier:    4,

		HealthPort: "8080",

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if name := os.Getenv("CURRENCY_NAME"); name != "" {
		config.CurrencyName = name
	}
	if ratio := os.Getenv("SECONDS_PER_CURRENCY"); ratio != "" {
		if parsed, err := strconv.ParseInt(ratio, 10, 64); err == nil && parsed > 0 {
			config.SecondsPerCurrency = parsed
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		config.HealthPort = port
	}
	if mult := os.Getenv("RACE_PAYOUT_MULTIPLIER"); mult != "" {
		if parsed, err := strconv.ParseInt(mult, 10, 64); err == nil && parsed > 0 {
			config.RacePayoutMultiplier = parsed
		}
	}

	// Parse race start minutes, e.g. "0,15,30,45"
	if minutes := os.Getenv("RACE_START_MINUTES"); minutes != "" {
		var parsed []int
		for _, part := range strings.Split(minutes, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if m, err := strconv.Atoi(part); err == nil && m >= 0 && m < 60 {
				parsed = append(parsed, m)
			}
		}
		if len(parsed) > 0 {
			config.RaceStartMinutes = parsed
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// The bot cannot run without a token. A missing DATABASE_URL degrades
		// persistence instead of failing here.
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
	}

	return config, nil
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
// This should only be called from test files
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
// This should only be called from test files
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:             "test",
		CurrencyName:            "GB",
		SecondsPerCurrency:      60,
		BlackjackTimeoutSeconds: 180,
		RaceStartMinutes:        []int{0, 30},
		RaceLockoutMinutes:      1,
		RaceTrackLength:         30,
		RaceTickSeconds:         2,
		RacePayoutMultiplier:    4,
		HealthPort:              "8080",
	}
}
