// Package config loads process settings. Values come from built-in
// defaults, then an optional YAML file, then PIZZERIA_* environment
// variables (a .env file in the working directory is read first).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Madhavee/PizzaOrderingSystem/internal/product"
)

// EnvPrefix prefixes every environment variable.
const EnvPrefix = "PIZZERIA"

// Storage drivers.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

type Config struct {
	Port     string         `yaml:"port" split_words:"true"`
	LogLevel string         `yaml:"log_level" split_words:"true"`
	Storage  StorageConfig  `yaml:"storage" split_words:"true"`
	NATS     NATSConfig     `yaml:"nats" split_words:"true"`
	Loyalty  LoyaltyConfig  `yaml:"loyalty" split_words:"true"`
	Tracking TrackingConfig `yaml:"tracking" split_words:"true"`
	Menu     MenuConfig     `yaml:"menu" split_words:"true"`
}

// StorageConfig selects where promotions and favorites are kept. Dir holds
// promotions.yaml and favorites.json for the file driver; Path is the
// database file for sqlite.
type StorageConfig struct {
	Driver string `yaml:"driver" split_words:"true"`
	Dir    string `yaml:"dir" split_words:"true"`
	Path   string `yaml:"path" split_words:"true"`
}

// NATSConfig enables status events when URL is set.
type NATSConfig struct {
	URL     string `yaml:"url" split_words:"true"`
	Subject string `yaml:"subject" split_words:"true"`
}

type LoyaltyConfig struct {
	StartingPoints int `yaml:"starting_points" split_words:"true"`
}

type TrackingConfig struct {
	Interval time.Duration `yaml:"interval" split_words:"true"`
}

// MenuConfig prices customized products. Amounts are decimal strings.
type MenuConfig struct {
	Small   string `yaml:"small" split_words:"true"`
	Medium  string `yaml:"medium" split_words:"true"`
	Large   string `yaml:"large" split_words:"true"`
	Topping string `yaml:"topping" split_words:"true"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:     "50052",
		LogLevel: "info",
		Storage: StorageConfig{
			Driver: DriverFile,
			Dir:    "data",
			Path:   "data/pizzeria.db",
		},
		NATS: NATSConfig{
			Subject: "pizzeria.orders.status",
		},
		Loyalty: LoyaltyConfig{
			StartingPoints: 200,
		},
		Tracking: TrackingConfig{
			Interval: 5 * time.Second,
		},
		Menu: MenuConfig{
			Small:   "10",
			Medium:  "15",
			Large:   "20",
			Topping: "1.50",
		},
	}
}

// Load builds the configuration. An empty path skips the YAML file.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at startup.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("port is required")
	}
	switch c.Storage.Driver {
	case DriverMemory, DriverFile, DriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Loyalty.StartingPoints < 0 {
		return errors.New("starting loyalty points must not be negative")
	}
	if c.Tracking.Interval <= 0 {
		return errors.New("tracking interval must be positive")
	}
	if _, err := c.Menu.ProductMenu(); err != nil {
		return err
	}
	return nil
}

// ProductMenu parses the menu prices.
func (m MenuConfig) ProductMenu() (product.Menu, error) {
	parse := func(name, value string) (decimal.Decimal, error) {
		d, err := decimal.NewFromString(value)
		if err != nil {
			return decimal.Zero, fmt.Errorf("menu %s price %q: %w", name, value, err)
		}
		if d.IsNegative() {
			return decimal.Zero, fmt.Errorf("menu %s price must not be negative", name)
		}
		return d, nil
	}
	small, err := parse("small", m.Small)
	if err != nil {
		return product.Menu{}, err
	}
	medium, err := parse("medium", m.Medium)
	if err != nil {
		return product.Menu{}, err
	}
	large, err := parse("large", m.Large)
	if err != nil {
		return product.Menu{}, err
	}
	topping, err := parse("topping", m.Topping)
	if err != nil {
		return product.Menu{}, err
	}
	return product.Menu{
		SizePrices: map[product.Size]decimal.Decimal{
			product.SizeSmall:  small,
			product.SizeMedium: medium,
			product.SizeLarge:  large,
		},
		ToppingPrice: topping,
	}, nil
}
