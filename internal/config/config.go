package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the complete flvdump configuration.
// All fields have explicit defaults; running without a config file is valid.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Dump   DumpConfig   `yaml:"dump"`
}

// ServerConfig defines inspection server settings.
type ServerConfig struct {
	ListenPort int    `yaml:"listen_port"` // Port for the HTTP/WebSocket inspection server
	LogLevel   string `yaml:"log_level"`   // debug, info, warn, or error
}

// DumpConfig defines decoding and rendering settings shared by the CLI
// and the inspection server.
type DumpConfig struct {
	ChunkSize      int `yaml:"chunk_size"`      // Bytes read from the source per fill
	PayloadPreview int `yaml:"payload_preview"` // Payload bytes shown per tag; -1 hides payloads
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads configuration from a YAML file.
// Returns an error if the file cannot be read or decoded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields

	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

// setDefaults applies explicit default values to unset fields.
func (c *Config) setDefaults() {
	if c.Server.ListenPort == 0 {
		c.Server.ListenPort = 8080
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Dump.ChunkSize == 0 {
		c.Dump.ChunkSize = 32 * 1024
	}
	if c.Dump.PayloadPreview == 0 {
		c.Dump.PayloadPreview = 16
	}
}
