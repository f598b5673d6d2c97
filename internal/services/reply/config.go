// File: internal/services/reply/config.go
package reply

import (
	"fmt"
	"time"
)

type Config struct {
	// Stub Configuration
	StubDelay time.Duration

	// Model Configuration
	APIKey  string
	BaseURL string
	Model   string

	// Performance Configuration
	Timeout     time.Duration
	Temperature float32
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("REPLY api key is required")
	}
	if c.Model == "" {
		return fmt.Errorf("REPLY model is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		StubDelay:   time.Second,
		Timeout:     60 * time.Second,
		Temperature: 0.7,
	}
}
