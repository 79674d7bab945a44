package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Redis    RedisConfig
	NewRelic NewRelicConfig
	Booking  BookingConfig
	Chat     ChatConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// BackendConfig holds the remote booking backend configuration.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
}

// NewRelicConfig holds New Relic configuration.
type NewRelicConfig struct {
	AppName    string
	LicenseKey string
	Enabled    bool
}

// BookingConfig holds booking wizard knobs.
type BookingConfig struct {
	// MaxSeatSelect caps the seats one booking may hold.
	MaxSeatSelect int
	// NotificationPollInterval is the unread-badge refresh interval.
	NotificationPollInterval time.Duration
	// DraftTTL is how long an abandoned draft survives before the sweep
	// removes it.
	DraftTTL time.Duration
}

// ChatConfig holds chat widget configuration.
type ChatConfig struct {
	DefaultStaff string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8081"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Backend: BackendConfig{
			BaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:8080/api/v1"),
			Timeout: getDurationEnv("BACKEND_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Addr:        getEnv("REDIS_ADDR", "localhost:6379"),
			Password:    getEnv("REDIS_PASSWORD", ""),
			DB:          getIntEnv("REDIS_DB", 0),
			PoolSize:    getIntEnv("REDIS_POOL_SIZE", 10),
			DialTimeout: getDurationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
		},
		NewRelic: NewRelicConfig{
			AppName:    getEnv("NEW_RELIC_APP_NAME", "busline-booking-client"),
			LicenseKey: getEnv("NEW_RELIC_LICENSE_KEY", ""),
			Enabled:    getBoolEnv("NEW_RELIC_ENABLED", false),
		},
		Booking: BookingConfig{
			MaxSeatSelect:            getIntEnv("BOOKING_MAX_SEAT_SELECT", 5),
			NotificationPollInterval: getDurationEnv("NOTIFICATION_POLL_INTERVAL", 30*time.Second),
			DraftTTL:                 getDurationEnv("BOOKING_DRAFT_TTL", 2*time.Hour),
		},
		Chat: ChatConfig{
			DefaultStaff: getEnv("CHAT_DEFAULT_STAFF", "support"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
