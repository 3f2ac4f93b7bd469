// Copyright (c) Microsoft. All rights reserved.

package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ToolServerConfig describes how to reach the MCP tool server. When
// Command is empty the pipeline uses in-process tools.
type ToolServerConfig struct {
	Command   string   `yaml:"command"`
	Arguments []string `yaml:"arguments"`
}

// Config holds pipeline settings loaded from YAML.
type Config struct {
	Model         string  `yaml:"model"`
	Temperature   float64 `yaml:"temperature"`
	MaxIterations int     `yaml:"max_iterations"`

	ToolServer ToolServerConfig `yaml:"tool_server"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// DefaultConfig returns the pipeline defaults.
func DefaultConfig() *Config {
	cfg := &Config{
		Model:         "gpt-4o",
		Temperature:   0.7,
		MaxIterations: 10,
	}
	cfg.Logging.Level = "info"
	return cfg
}

// LoadConfig reads a YAML config file, overlaying it onto the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("max_iterations must be at least 1, got %d", c.MaxIterations)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %g", c.Temperature)
	}
	return nil
}
