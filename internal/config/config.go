package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/RitterHou/search-platform/pkg/utils"
)

var ErrInvalid = errors.New("invalid configuration")

const defaultBackendTimeout = 30 * time.Second

// Config is the console configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Store   StoreConfig   `yaml:"store"`
	Backend BackendConfig `yaml:"backend"`
	Auth    AuthConfig    `yaml:"auth"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// StoreConfig selects the local database used when no backend is configured
type StoreConfig struct {
	Driver string `yaml:"driver"` // sqlite3 or postgres
	DSN    string `yaml:"dsn"`
}

// BackendConfig points the console at a running search platform backend
type BackendConfig struct {
	APIRoot    string  `yaml:"api_root"`
	Token      string  `yaml:"token"`
	Timeout    string  `yaml:"timeout"`
	RateLimit  float64 `yaml:"rate_limit"`
	RateBurst  int     `yaml:"rate_burst"`
	MaxRetries int     `yaml:"max_retries"`
}

type AuthConfig struct {
	// Secret signs HS256 bearer tokens. Authentication is off when empty.
	Secret string `yaml:"secret"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Store:  StoreConfig{Driver: "sqlite3", DSN: "console.db"},
		Backend: BackendConfig{
			Timeout:    defaultBackendTimeout.String(),
			RateLimit:  10,
			RateBurst:  5,
			MaxRetries: 3,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Addr = getEnv("CONSOLE_ADDR", c.Server.Addr)
	c.Store.Driver = getEnv("CONSOLE_STORE_DRIVER", c.Store.Driver)
	c.Store.DSN = getEnv("CONSOLE_STORE_DSN", c.Store.DSN)
	c.Backend.APIRoot = getEnv("CONSOLE_BACKEND", c.Backend.APIRoot)
	c.Backend.Token = getEnv("CONSOLE_BACKEND_TOKEN", c.Backend.Token)
	c.Auth.Secret = getEnv("CONSOLE_AUTH_SECRET", c.Auth.Secret)
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalid)
	}
	if c.Backend.APIRoot == "" {
		switch c.Store.Driver {
		case "sqlite3", "postgres":
		default:
			return fmt.Errorf("%w: store.driver %q is not sqlite3 or postgres", ErrInvalid, c.Store.Driver)
		}
		if c.Store.DSN == "" {
			return fmt.Errorf("%w: store.dsn is empty", ErrInvalid)
		}
	}
	if c.Backend.Timeout != "" {
		if _, err := time.ParseDuration(c.Backend.Timeout); err != nil {
			return fmt.Errorf("%w: backend.timeout: %v", ErrInvalid, err)
		}
	}
	if c.Backend.RateLimit < 0 || c.Backend.RateBurst < 0 || c.Backend.MaxRetries < 0 {
		return fmt.Errorf("%w: backend rate_limit, rate_burst and max_retries must not be negative", ErrInvalid)
	}
	return nil
}

// UseBackend reports whether records live in a remote backend rather than the local store
func (c *Config) UseBackend() bool {
	return c.Backend.APIRoot != ""
}

// BackendTimeout returns the per request timeout for backend calls
func (c *Config) BackendTimeout() time.Duration {
	return utils.ParseDuration(c.Backend.Timeout, defaultBackendTimeout)
}
