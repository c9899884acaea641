package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, remote endpoint, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Booking   BookingConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
	Session   SessionConfig
	CORS      CORSConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type BookingConfig struct {
	Mode          string        `envconfig:"BOOKING_MODE" default:"local"`
	RemoteURL     string        `envconfig:"BOOKING_REMOTE_URL"`
	RemoteTimeout time.Duration `envconfig:"BOOKING_REMOTE_TIMEOUT" default:"15s"`
	CacheTTL      time.Duration `envconfig:"BOOKING_CACHE_TTL" default:"300s"`
	MaxDates      int           `envconfig:"BOOKING_MAX_DATES" default:"6"`
	HorizonDays   int           `envconfig:"BOOKING_HORIZON_DAYS" default:"30"`
	SeedDemo      bool          `envconfig:"BOOKING_SEED_DEMO" default:"false"`
}

type AdminConfig struct {
	IDs []int64 `envconfig:"ADMIN_IDS"`
}

// Owned by the HTTP front-end, not by the ledger.
type RateLimitConfig struct {
	Requests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"15"`
	Window   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"60s"`
}

// Accepted so deployments sharing an env file with the chat front-end keep starting.
type SessionConfig struct {
	Timeout time.Duration `envconfig:"SESSION_TIMEOUT" default:"600s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Requester-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Moscow"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
}

func (c *AdminConfig) IsAdmin(requesterID int64) bool {
	for _, id := range c.IDs {
		if id == requesterID {
			return true
		}
	}
	return false
}

func (c *BookingConfig) Validate() error {
	if c.MaxDates <= 0 {
		return fmt.Errorf("BOOKING_MAX_DATES must be positive, got %d", c.MaxDates)
	}
	if c.HorizonDays <= 0 {
		return fmt.Errorf("BOOKING_HORIZON_DAYS must be positive, got %d", c.HorizonDays)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Booking.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid booking config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Booking: BookingConfig{
			Mode:          "local",
			RemoteTimeout: 2 * time.Second,
			CacheTTL:      300 * time.Second,
			MaxDates:      6,
			HorizonDays:   30,
		},
		Admin: AdminConfig{
			IDs: []int64{5097581039},
		},
		RateLimit: RateLimitConfig{
			Requests: 1000,
			Window:   time.Minute,
		},
		Session: SessionConfig{
			Timeout: 600 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Moscow",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 10800,
		},
	}
}
