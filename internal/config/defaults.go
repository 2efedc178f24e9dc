package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/hangman.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Chances:    8,
		Difficulty: string(PresetNormal),
		Words: WordsConfig{
			Pack: "classic",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Web: WebConfig{
			Address: ":8080",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
