// Package words supplies the candidate word lists consumed by the engine:
// the embedded packs, plain text or YAML files, and a read-only SQLite table.
package words

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-hangman/internal/registry"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// Normalize trims entries and drops blanks and exact duplicates,
// keeping the first occurrence order.
func Normalize(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.TrimSpace(w)
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

// LoadFile reads a word list from disk. Files ending in .yaml or .yml hold a
// top-level "words" list; anything else is read as one entry per line with
// '#' starting a comment line.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("words: failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var f struct {
			Words []string `yaml:"words"`
		}
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("words: failed to parse %s: %w", path, err)
		}
		return Normalize(f.Words), nil
	default:
		return parseLines(data), nil
	}
}

// parseLines splits data on newlines. Lines have no length limit.
func parseLines(data []byte) []string {
	var list []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	return Normalize(list)
}

// Options selects a word source. The first non-empty of DBPath, File and
// Pack wins; with none set DefaultPack is used.
type Options struct {
	Pack     string
	File     string
	DBPath   string
	Category string // Only used with DBPath
}

// Resolve loads the list chosen by opts. It does not check that the list is
// non-empty; the engine owns that rule.
func Resolve(ctx context.Context, opts Options) ([]string, error) {
	switch {
	case opts.DBPath != "":
		store, err := storage.OpenReadOnly(opts.DBPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		list, err := store.Words(ctx, opts.Category)
		if err != nil {
			return nil, err
		}
		return Normalize(list), nil

	case opts.File != "":
		return LoadFile(opts.File)

	default:
		id := opts.Pack
		if id == "" {
			id = DefaultPack
		}
		return registry.Load(id)
	}
}

// Describe returns a short human-readable name for the source opts select.
func Describe(opts Options) string {
	switch {
	case opts.DBPath != "" && opts.Category != "":
		return fmt.Sprintf("%s (category %s)", opts.DBPath, opts.Category)
	case opts.DBPath != "":
		return opts.DBPath
	case opts.File != "":
		return opts.File
	case opts.Pack != "":
		return "pack " + opts.Pack
	default:
		return "pack " + DefaultPack
	}
}
