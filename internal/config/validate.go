package config

import (
	"fmt"
)

// Validate checks that all configuration values are within acceptable ranges.
// Returns an error describing the first validation failure found.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Dump.Validate(); err != nil {
		return fmt.Errorf("dump config: %w", err)
	}
	return nil
}

// Validate checks server configuration values.
func (s *ServerConfig) Validate() error {
	if s.ListenPort <= 0 || s.ListenPort > 65535 {
		return fmt.Errorf("listen_port must be between 1 and 65535, got %d", s.ListenPort)
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn, or error, got %q", s.LogLevel)
	}
	return nil
}

// Validate checks dump configuration values.
func (d *DumpConfig) Validate() error {
	if d.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be positive, got %d", d.ChunkSize)
	}
	if d.PayloadPreview < -1 {
		return fmt.Errorf("payload_preview must be -1 or greater, got %d", d.PayloadPreview)
	}
	return nil
}
