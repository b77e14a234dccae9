package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Gateway  GatewayConfig
	Checkout CheckoutConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Berlin"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Berlin"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

// GatewayConfig configures the external payment provider client.
type GatewayConfig struct {
	BaseURL      string        `envconfig:"GATEWAY_BASE_URL" required:"true"`
	ClientID     string        `envconfig:"GATEWAY_CLIENT_ID" required:"true"`
	ClientSecret string        `envconfig:"GATEWAY_CLIENT_SECRET" required:"true"`
	Currency     string        `envconfig:"GATEWAY_CURRENCY" default:"EUR"`
	BrandName    string        `envconfig:"GATEWAY_BRAND_NAME" default:"Gemstore"`
	ReturnURL    string        `envconfig:"GATEWAY_RETURN_URL" default:"https://gemstore.example/return"`
	CancelURL    string        `envconfig:"GATEWAY_CANCEL_URL" default:"https://gemstore.example/cancel"`
	Timeout      time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"10s"`
}

// CheckoutConfig controls checkout snapshot retention and the purge sweep.
type CheckoutConfig struct {
	SweepInterval time.Duration `envconfig:"CHECKOUT_SWEEP_INTERVAL" default:"2h"`
	Retention     time.Duration `envconfig:"CHECKOUT_RETENTION" default:"30m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Berlin",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Berlin",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		Gateway: GatewayConfig{
			BaseURL:      "http://localhost:18080",
			ClientID:     "test-client",
			ClientSecret: "test-secret",
			Currency:     "EUR",
			BrandName:    "Gemstore",
			ReturnURL:    "http://localhost/return",
			CancelURL:    "http://localhost/cancel",
			Timeout:      2 * time.Second,
		},
		Checkout: CheckoutConfig{
			SweepInterval: 2 * time.Hour,
			Retention:     30 * time.Minute,
		},
	}
}
