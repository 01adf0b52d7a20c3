// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/isopuzzle/internal/level"
)

// YAMLLevel represents the YAML structure for a level file. Map holds the
// level text in either dialect.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name,omitempty"`
	Map      string            `yaml:"map"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Doc      *level.Document
	Dialect  level.Dialect
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if strings.TrimSpace(yl.Map) == "" {
		return Level{}, fmt.Errorf("level %q has no map", yl.ID)
	}

	doc, dialect, err := level.ParseDialect(yl.Map)
	if err != nil {
		return Level{}, fmt.Errorf("level %q map: %w", yl.ID, err)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}
	return Level{
		ID:       yl.ID,
		Name:     name,
		Doc:      doc,
		Dialect:  dialect,
		Metadata: yl.Metadata,
	}, nil
}

// MarshalYAML encodes a level as a YAML container with a compact map.
func MarshalYAML(l Level) ([]byte, error) {
	yl := YAMLLevel{
		ID:       l.ID,
		Name:     l.Name,
		Map:      level.Serialize(l.Doc) + "\n",
		Metadata: l.Metadata,
	}
	data, err := yaml.Marshal(&yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt", ".lvl"}
}
