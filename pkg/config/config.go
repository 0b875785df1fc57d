package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"logging"`
	Quote struct {
		BaseURL   string        `yaml:"base_url" default:"https://query1.finance.yahoo.com"`
		Timeout   time.Duration `yaml:"timeout" default:"10s"`
		UserAgent string        `yaml:"user_agent" default:"Mozilla/5.0 (compatible; mockshot/1.0)"`
	} `yaml:"quote"`
	Session struct {
		TTL time.Duration `yaml:"ttl" default:"2h"`
	} `yaml:"session"`
	Capture struct {
		ChromeBin      string        `yaml:"chrome_bin"`
		Headless       bool          `yaml:"headless" default:"true"`
		ViewportWidth  int           `yaml:"viewport_width" default:"800"`
		ViewportHeight int           `yaml:"viewport_height" default:"1200"`
		DeviceScale    float64       `yaml:"device_scale" default:"2"`
		PageTimeout    time.Duration `yaml:"page_timeout" default:"15s"`
		SettleDelay    time.Duration `yaml:"settle_delay" default:"300ms"`
		EmbedDebounce  time.Duration `yaml:"embed_debounce" default:"800ms"`
	} `yaml:"capture"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("QUOTE_BASE_URL"); v != "" {
		c.Quote.BaseURL = v
	}
	if v := os.Getenv("CHROME_BIN"); v != "" {
		c.Capture.ChromeBin = v
	}
	if v := os.Getenv("HEADLESS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Capture.Headless = b
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	if c.Quote.BaseURL == "" {
		return fmt.Errorf("quote.base_url is required")
	}
	if c.Capture.SettleDelay < 0 {
		return fmt.Errorf("capture.settle_delay cannot be negative")
	}
	if c.Capture.EmbedDebounce <= 0 {
		return fmt.Errorf("capture.embed_debounce must be positive")
	}
	return nil
}
