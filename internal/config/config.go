// Package config provides YAML-based configuration loading and difficulty
// presets for the hangman game and its servers.
package config

import (
	"fmt"
	"time"
)

// Config contains all configuration for the game and its servers.
type Config struct {
	Chances    int         `yaml:"chances"`
	Difficulty string      `yaml:"difficulty"`
	Words      WordsConfig `yaml:"words"`
	SSH        SSHConfig   `yaml:"ssh"`
	Web        WebConfig   `yaml:"web"`
	Log        LogConfig   `yaml:"log"`
}

// WordsConfig selects the word source. The first non-empty of DB, File and
// Pack is used.
type WordsConfig struct {
	Pack     string `yaml:"pack"`
	File     string `yaml:"file"`
	DB       string `yaml:"db"`
	Category string `yaml:"category"` // Only used with DB
}

// SSHConfig configures the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key"` // Auto-generated under ~/.hangman when empty
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// WebConfig configures the HTTP/WebSocket server.
type WebConfig struct {
	Address string `yaml:"address"`
}

// LogConfig configures server logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate reports configuration that cannot produce a playable game.
func (c Config) Validate() error {
	if c.Chances <= 0 {
		return fmt.Errorf("config: chances must be positive, got %d", c.Chances)
	}
	if c.Difficulty != "" {
		if _, err := ParsePreset(c.Difficulty); err != nil {
			return err
		}
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("config: ssh idle_timeout must not be negative")
	}
	return nil
}
