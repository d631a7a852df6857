package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigError reports invalid presenter configuration. It is fatal at
// startup and never produced by navigation.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "config: " + e.Reason
}

// Config is the top-level presenter.yml configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	TLS    TLSConfig    `yaml:"tls"`
	Slides SlidesConfig `yaml:"slides"`
}

// ServerConfig specifies the listen address.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// TLSConfig enables HTTPS serving.
type TLSConfig struct {
	Enabled    bool   `yaml:"enabled"`
	CertFile   string `yaml:"cert_file"`
	KeyFile    string `yaml:"key_file"`
	MinVersion string `yaml:"min_version"`
}

// SlidesConfig carries the optional manual slide-boundary list as the
// raw comma-separated text form, e.g. "1,4,9".
type SlidesConfig struct {
	AudiencePages string `yaml:"audience_pages"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: "8080"},
		TLS:    TLSConfig{MinVersion: "1.2"},
	}
}

// Load reads and validates a presenter.yml. Unset server fields fall
// back to the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("parse %s: %v", path, err)}
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate performs strict validation on the configuration.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return &ConfigError{Reason: fmt.Sprintf("invalid port %q", c.Server.Port)}
	}
	if c.TLS.Enabled {
		if c.TLS.CertFile == "" || c.TLS.KeyFile == "" {
			return &ConfigError{Reason: "tls enabled but cert_file/key_file not set"}
		}
	}
	if _, err := ParsePageList(c.Slides.AudiencePages); err != nil {
		return err
	}
	return nil
}

// ParsePageList parses the comma-separated, 1-indexed audience page
// list ("1, 4,9"). Entries are trimmed and must be positive integers.
// An empty or all-whitespace input means "no manual boundaries" and
// parses to nil.
func ParsePageList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	pages := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, &ConfigError{Reason: fmt.Sprintf("invalid page number %q", part)}
		}
		if n < 1 {
			return nil, &ConfigError{Reason: fmt.Sprintf("page numbers are 1-indexed, got %d", n)}
		}
		pages = append(pages, n)
	}
	return pages, nil
}
