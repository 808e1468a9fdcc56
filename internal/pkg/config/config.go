package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, data location)
// - default: Values common across all environments (timeouts, formats)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

// StoreConfig locates the three backing JSON documents. Missing files are
// created with an empty array on startup.
type StoreConfig struct {
	DataDir          string `envconfig:"DATA_DIR" default:"data"`
	CustomersFile    string `envconfig:"CUSTOMERS_FILE" default:"customers.json"`
	HotelsFile       string `envconfig:"HOTELS_FILE" default:"hotels.json"`
	ReservationsFile string `envconfig:"RESERVATIONS_FILE" default:"reservations.json"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func (c *StoreConfig) CustomersPath() string {
	return filepath.Join(c.DataDir, c.CustomersFile)
}

func (c *StoreConfig) HotelsPath() string {
	return filepath.Join(c.DataDir, c.HotelsFile)
}

func (c *StoreConfig) ReservationsPath() string {
	return filepath.Join(c.DataDir, c.ReservationsFile)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig(dataDir string) Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			DataDir:          dataDir,
			CustomersFile:    "customers.json",
			HotelsFile:       "hotels.json",
			ReservationsFile: "reservations.json",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
