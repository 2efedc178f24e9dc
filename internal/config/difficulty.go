package config

import (
	"fmt"
	"strings"
)

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset validates a preset name. Matching is case-insensitive.
func ParsePreset(name string) (Preset, error) {
	switch p := Preset(strings.ToLower(strings.TrimSpace(name))); p {
	case PresetEasy, PresetNormal, PresetHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ChancesForPreset returns the number of wrong guesses allowed by a preset.
func ChancesForPreset(p Preset) int {
	switch p {
	case PresetEasy:
		return 10
	case PresetHard:
		return 6
	default:
		return 8
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, p Preset) {
	cfg.Difficulty = string(p)
	cfg.Chances = ChancesForPreset(p)
}
