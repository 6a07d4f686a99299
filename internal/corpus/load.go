package corpus

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// corpusFile is the YAML shape of an external corpus file. Alias terms
// are matched case-insensitively, so they are lowered on load.
type corpusFile struct {
	Products []Product `yaml:"products"`
	Aliases  []Alias   `yaml:"aliases"`
}

// LoadFile reads a corpus from a YAML file, letting review teams supply
// their own approved-claim library instead of the built-in one.
func LoadFile(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML corpus data
func Parse(data []byte) (*Corpus, error) {
	var file corpusFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}

	if len(file.Products) == 0 {
		return nil, fmt.Errorf("corpus defines no products")
	}
	for i, p := range file.Products {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("corpus product %d has no name", i+1)
		}
	}

	aliases := make([]Alias, 0, len(file.Aliases))
	for _, a := range file.Aliases {
		aliases = append(aliases, Alias{
			Term:    strings.ToLower(a.Term),
			Product: a.Product,
		})
	}

	return New(file.Products, aliases), nil
}
