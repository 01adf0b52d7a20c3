package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/isopuzzle/internal/level"
	"github.com/vovakirdan/isopuzzle/internal/levels"
	"github.com/vovakirdan/isopuzzle/internal/storage"
)

func TestEncodeLevel(t *testing.T) {
	doc, err := level.Parse("P.D1\n...\nS1.#")
	if err != nil {
		t.Fatal(err)
	}
	lvl := levels.Level{ID: "first", Name: "First Steps", Doc: doc}

	text, err := encodeLevel("out.txt", lvl)
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "P.D1\n...\nS1.#\n" {
		t.Errorf("text = %q", text)
	}

	yml, err := encodeLevel("out.YML", lvl)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"id: first", "name: First Steps", "P.D1"} {
		if !strings.Contains(string(yml), want) {
			t.Errorf("yaml missing %q:\n%s", want, yml)
		}
	}
}

func TestParseInts(t *testing.T) {
	n, err := parseInts([]string{"0", "12", "-3"})
	if err != nil || len(n) != 3 || n[1] != 12 || n[2] != -3 {
		t.Errorf("parseInts = %v, %v", n, err)
	}
	if _, err := parseInts([]string{"1", "two"}); err == nil {
		t.Error("expected error for non-number")
	}
}

func TestCatalogueMergesDirectoryAndStore(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "levels")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "alpha.txt"), []byte("P..\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	flagDBPath = filepath.Join(tmp, "levels.db")
	t.Cleanup(func() { flagDBPath = "" })

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"alpha", "beta"} {
		doc, _ := level.Parse("P#.")
		if _, err := store.SaveLevel(id, "stored "+id, doc); err != nil {
			t.Fatal(err)
		}
	}
	store.Close()

	lvls, err := catalogue(dir)
	if err != nil {
		t.Fatalf("catalogue failed: %v", err)
	}
	if len(lvls) != 2 {
		t.Fatalf("got %d levels, want 2", len(lvls))
	}
	if lvls[0].ID != "alpha" || lvls[0].Name != "alpha" {
		t.Errorf("directory level should win, got %+v", lvls[0])
	}
	if lvls[1].ID != "beta" || lvls[1].Name != "stored beta" {
		t.Errorf("second level = %+v", lvls[1])
	}

	lvls, err = catalogue(filepath.Join(tmp, "missing"))
	if err != nil || len(lvls) != 2 {
		t.Errorf("missing directory should fall back to the store: %d, %v", len(lvls), err)
	}
}
