package words

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-hangman/internal/registry"
)

//go:embed packs/packs.yaml
var packsYAML []byte

// DefaultPack is the pack used when nothing else is configured.
const DefaultPack = "classic"

type packFile struct {
	Packs []pack `yaml:"packs"`
}

type pack struct {
	ID    string   `yaml:"id"`
	Title string   `yaml:"title"`
	Words []string `yaml:"words"`
}

func init() {
	packs, err := parsePacks(packsYAML)
	if err != nil {
		panic(err)
	}
	for _, p := range packs {
		words := Normalize(p.Words)
		registry.Register(p.ID, p.Title, func() ([]string, error) {
			return append([]string(nil), words...), nil
		})
	}
}

// parsePacks decodes the embedded pack file.
func parsePacks(data []byte) ([]pack, error) {
	var f packFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("words: cannot parse packs: %w", err)
	}
	return f.Packs, nil
}
