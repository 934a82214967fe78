package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed config.toml.sample
var configTemplate string

// Config holds the client settings. Everything has a sane default so the
// tool works without a config file at all.
type Config struct {
	// BaseURL is the root of the video search endpoint.
	BaseURL string `toml:"base_url"`

	// UserAgent and AcceptLanguage are sent with every retrieval. The
	// results page only serves the parseable desktop markup to browser-like
	// clients.
	UserAgent      string `toml:"user_agent"`
	AcceptLanguage string `toml:"accept_language"`

	// Timeout bounds a single retrieval attempt.
	Timeout Duration `toml:"timeout"`

	// MaxRetries caps retries on transient failures. The total worst-case
	// blocking time for one search is roughly Timeout * (MaxRetries + 1)
	// plus backoff sleeps.
	MaxRetries     int      `toml:"max_retries"`
	InitialBackoff Duration `toml:"initial_backoff"`
	MaxBackoff     Duration `toml:"max_backoff"`

	// RequestsPerMinute paces successive retrievals so rapid refinements
	// don't hammer the endpoint. 0 disables pacing.
	RequestsPerMinute int `toml:"requests_per_minute"`

	// MaxResults limits how many records a search keeps after filtering.
	MaxResults int `toml:"max_results"`

	// ShowDescriptions sets the initial state of the description toggle.
	ShowDescriptions bool `toml:"show_descriptions"`
}

type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func GetDefaultConfig() *Config {
	return &Config{
		BaseURL:           "https://www.youtube.com",
		UserAgent:         "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
		AcceptLanguage:    "en-US,en;q=0.9",
		Timeout:           Duration{15 * time.Second},
		MaxRetries:        3,
		InitialBackoff:    Duration{1 * time.Second},
		MaxBackoff:        Duration{10 * time.Second},
		RequestsPerMinute: 30,
		MaxResults:        25,
		ShowDescriptions:  false,
	}
}

// LoadConfig reads the config file at configPath, falling back to defaults
// when the file does not exist. Unset keys keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	cfg := GetDefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate clamps out-of-range values instead of failing where a reasonable
// bound exists, and rejects settings that cannot be repaired.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url cannot be empty")
	}
	if c.Timeout.Duration <= 0 {
		c.Timeout = Duration{15 * time.Second}
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.MaxRetries > 10 {
		c.MaxRetries = 10
	}
	if c.InitialBackoff.Duration <= 0 {
		c.InitialBackoff = Duration{1 * time.Second}
	}
	if c.MaxBackoff.Duration < c.InitialBackoff.Duration {
		c.MaxBackoff = c.InitialBackoff
	}
	if c.RequestsPerMinute < 0 {
		c.RequestsPerMinute = 0
	}
	if c.MaxResults <= 0 {
		c.MaxResults = 25
	}
	if c.MaxResults > 100 {
		c.MaxResults = 100
	}
	return nil
}

// SaveSampleConfig writes the annotated sample config to configPath,
// creating parent directories as needed. It refuses to overwrite.
func SaveSampleConfig(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists at %s", configPath)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetDefaultConfigPath returns ~/.config/yt-search/config.toml (or the
// platform equivalent).
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting user config directory: %w", err)
	}
	return filepath.Join(configDir, "yt-search", "config.toml"), nil
}
