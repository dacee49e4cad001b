// Package config loads and saves the hanoi YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/gohanoi"
)

const (
	DefaultHeight    = 3
	DefaultAlgorithm = "iterative"
	DefaultStepDelay = 150 // milliseconds between auto-solve steps in the TUI
)

type Config struct {
	Height    int       `yaml:"height"`
	Algorithm string    `yaml:"algorithm"`
	LogFile   string    `yaml:"log_file"`
	Journal   string    `yaml:"journal_dir"`
	TUI       TUIConfig `yaml:"tui"`
}

type TUIConfig struct {
	StepDelayMs int    `yaml:"step_delay_ms"`
	DiskColor   string `yaml:"disk_color"`
	PegColor    string `yaml:"peg_color"`
	CursorColor string `yaml:"cursor_color"`
}

func DefaultConfig() *Config {
	return &Config{
		Height:    DefaultHeight,
		Algorithm: DefaultAlgorithm,
		TUI: TUIConfig{
			StepDelayMs: DefaultStepDelay,
			DiskColor:   "39",
			PegColor:    "241",
			CursorColor: "205",
		},
	}
}

// DefaultPath returns ~/.hanoi/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".hanoi", "config.yaml"), nil
}

// Load reads a config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, falling back to defaults when path is empty
// or the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	cfg, err := Load(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Height < 0 || c.Height > hanoi.MaxHeight {
		return fmt.Errorf("height %d: %w", c.Height, hanoi.ErrInvalidHeight)
	}
	if _, err := hanoi.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if c.TUI.StepDelayMs < 0 {
		return fmt.Errorf("tui.step_delay_ms must not be negative")
	}
	return nil
}

// AlgorithmValue returns the configured algorithm, already validated.
func (c *Config) AlgorithmValue() hanoi.Algorithm {
	a, err := hanoi.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return hanoi.AlgorithmIterative
	}
	return a
}
