// Package registry provides a global registry of word packs.
// Packs register themselves in init() functions, allowing the CLI and the
// servers to discover word lists without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Factory returns the words of a pack.
type Factory func() ([]string, error)

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a word pack to the registry.
// Typically called from an init() function.
// Panics if a pack with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PackInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Load returns the words of a pack by its ID.
// Returns an error if the pack ID is not registered.
func Load(id string) ([]string, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown pack %q", id)
	}

	words, err := f()
	if err != nil {
		return nil, fmt.Errorf("registry: pack %q: %w", id, err)
	}
	return words, nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
