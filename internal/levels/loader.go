// Package levels provides level loading from a directory of level files.
// This package depends on level but level does not depend on levels.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/isopuzzle/internal/level"
	"github.com/vovakirdan/isopuzzle/internal/levels/formats"
	"github.com/vovakirdan/isopuzzle/internal/sim"
)

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Doc      *level.Document
	Dialect  level.Dialect
	Metadata map[string]string
	FilePath string
}

// NewState starts a play session on a copy of the level, so the loaded
// level can be replayed.
func (l *Level) NewState(motion sim.MotionConfig) *sim.State {
	return sim.NewState(l.Doc.Clone(), motion)
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			log.Warn("skipping level file", "path", path, "err", err)
			return nil
		}

		levels = append(levels, lvl)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext, IDFromPath(path))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Doc:      parsed.Doc,
		Dialect:  parsed.Dialect,
		Metadata: parsed.Metadata,
		FilePath: path,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// IDFromPath derives a level ID from a file name.
func IDFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), ext)
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext, id string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		lvl, err := formats.ParseYAML(data)
		if err != nil {
			return formats.Level{}, err
		}
		if lvl.ID == "" {
			lvl.ID = id
		}
		if lvl.Name == "" {
			lvl.Name = lvl.ID
		}
		return lvl, nil
	case ".txt", ".lvl":
		return formats.ParseText(data, id)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
