package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/isopuzzle/internal/levels"
	"github.com/vovakirdan/isopuzzle/internal/storage"
)

// exitf prints an error and exits.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// terminalSize returns the terminal size, or 80x24 when stdout is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// loadLevelFile reads one level file of any supported format.
func loadLevelFile(path string) (levels.Level, error) {
	return levels.NewLoader("").LoadFile(path)
}

// resolveLevel finds a level by file path, then by ID in the levels
// directory, then by ID in the level store.
func resolveLevel(arg string) (levels.Level, error) {
	if _, err := os.Stat(arg); err == nil {
		return loadLevelFile(arg)
	}

	if lvl, err := levels.NewLoader(cfg.Levels.Dir).LoadByID(arg); err == nil {
		return lvl, nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return levels.Level{}, err
	}
	defer store.Close()

	entry, err := store.Level(arg)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return levels.Level{}, fmt.Errorf("no level file or stored level named %q", arg)
		}
		return levels.Level{}, err
	}
	doc, err := entry.Document()
	if err != nil {
		return levels.Level{}, err
	}
	return levels.Level{ID: entry.ID, Name: entry.Name, Doc: doc}, nil
}

// catalogue lists the levels directory followed by stored levels whose IDs
// the directory does not already use.
func catalogue(dir string) ([]levels.Level, error) {
	var out []levels.Level
	seen := make(map[string]bool)

	if _, err := os.Stat(dir); err == nil {
		lvls, err := levels.NewLoader(dir).LoadAll()
		if err != nil {
			return nil, err
		}
		for _, l := range lvls {
			seen[l.ID] = true
		}
		out = append(out, lvls...)
	} else {
		log.Debug("no levels directory", "dir", dir)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	entries, err := store.ListLevels()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if seen[e.ID] {
			continue
		}
		doc, err := e.Document()
		if err != nil {
			log.Warn("skipping stored level", "id", e.ID, "err", err)
			continue
		}
		out = append(out, levels.Level{ID: e.ID, Name: e.Name, Doc: doc})
	}
	return out, nil
}

// parseInts converts command arguments to integers.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", a)
		}
		out[i] = n
	}
	return out, nil
}
