package phrases

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Fact is one piece of trivia with the page it was taken from.
type Fact struct {
	Text   string `yaml:"text"`
	Source string `yaml:"source"`
}

//go:embed facts.yaml
var factsYAML []byte

var facts = mustParseFacts(factsYAML)

// Facts returns the trivia table. Callers must not modify it.
func Facts() []Fact {
	return facts
}

// ParseFacts decodes a YAML list of facts.
func ParseFacts(data []byte) ([]Fact, error) {
	var out []Fact
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse facts: %w", err)
	}
	for i, f := range out {
		if f.Text == "" {
			return nil, fmt.Errorf("fact %d has no text", i)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no facts defined")
	}
	return out, nil
}

func mustParseFacts(data []byte) []Fact {
	out, err := ParseFacts(data)
	if err != nil {
		panic(err)
	}
	return out
}
