// Package config parses the HCL configuration for the cellmorph stream
// server: the listen address plus one block per named generator stream.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/cellmorph/utils/rng"
)

// Config is the complete server configuration.
type Config struct {
	Server  ServerSettings `hcl:"server,block"`
	Streams []StreamConfig `hcl:"stream,block"`
}

// ServerSettings contains server-level configuration.
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// StreamConfig defines one named generator stream.
type StreamConfig struct {
	Name      string `hcl:"name,label"`
	Generator string `hcl:"generator"`
	Seed      int64  `hcl:"seed,optional"`
	Rate      int    `hcl:"rate,optional"`   // values per second
	Format    string `hcl:"format,optional"` // "uint64" or "float64"
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8090,
			LogLevel: "info",
		},
		Streams: []StreamConfig{
			{Name: "default", Generator: rng.NameXoroshiro128PP, Rate: 10, Format: "float64"},
		},
	}
}

// Load reads configuration from an HCL file, falling back to Default when
// the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values.
	if cfg.Server.Address == "" {
		cfg.Server.Address = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8090
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	for i := range cfg.Streams {
		if cfg.Streams[i].Rate == 0 {
			cfg.Streams[i].Rate = 10
		}
		if cfg.Streams[i].Format == "" {
			cfg.Streams[i].Format = "float64"
		}
	}

	return &cfg, nil
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if len(c.Streams) == 0 {
		return fmt.Errorf("at least one stream must be configured")
	}

	names := make(map[string]bool)
	for _, s := range c.Streams {
		if names[s.Name] {
			return fmt.Errorf("stream %s: duplicate name", s.Name)
		}
		names[s.Name] = true

		if _, err := rng.NewFromName(s.Generator, 0); err != nil {
			return fmt.Errorf("stream %s: unknown generator %q (valid: %v)", s.Name, s.Generator, rng.Names())
		}
		if s.Rate < 1 || s.Rate > 100000 {
			return fmt.Errorf("stream %s: rate must be between 1 and 100000, got %d", s.Name, s.Rate)
		}
		if s.Format != "uint64" && s.Format != "float64" {
			return fmt.Errorf("stream %s: format must be uint64 or float64, got %q", s.Name, s.Format)
		}
	}
	return nil
}

// ListenAddress returns the full server address.
func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// StreamByName returns a stream configuration by name, or nil.
func (c *Config) StreamByName(name string) *StreamConfig {
	for i := range c.Streams {
		if c.Streams[i].Name == name {
			return &c.Streams[i]
		}
	}
	return nil
}
