package levels_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/vovakirdan/isopuzzle/internal/core"
	"github.com/vovakirdan/isopuzzle/internal/level"
	"github.com/vovakirdan/isopuzzle/internal/levels"
	"github.com/vovakirdan/isopuzzle/internal/levels/formats"
	"github.com/vovakirdan/isopuzzle/internal/sim"
)

// getTestdataPath returns path to testdata/levels.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	return filepath.Join(dir, "testdata", "levels")
}

func TestLoaderLoadAll(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// broken.txt is too wide and notes.md is not a level.
	if len(lvls) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(lvls))
	}

	// Should be sorted by ID
	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}
}

func TestLoaderLoadYAML(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadByID("lvl01")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if lvl.Name != "First Steps" {
		t.Errorf("expected Name 'First Steps', got %q", lvl.Name)
	}
	if lvl.Doc.Width() != 3 || lvl.Doc.Height() != 3 {
		t.Errorf("expected 3x3, got %dx%d", lvl.Doc.Width(), lvl.Doc.Height())
	}
	if lvl.Metadata["author"] != "isopuzzle" {
		t.Errorf("metadata = %v", lvl.Metadata)
	}
	if filepath.Base(lvl.FilePath) != "lvl01.yaml" {
		t.Errorf("FilePath = %s", lvl.FilePath)
	}
}

func TestLoaderLoadText(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadByID("lvl02")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Doc.Width() != 7 || lvl.Doc.Height() != 4 {
		t.Errorf("expected 7x4, got %dx%d", lvl.Doc.Width(), lvl.Doc.Height())
	}
	if len(lvl.Doc.BridgeTiles()) != 3 || lvl.Doc.BridgeOn() {
		t.Error("expected three bridge tiles, off")
	}

	legacy, err := loader.LoadByID("lvl03")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if _, ok := legacy.Doc.DoorAt(core.C(2, 2)); !ok {
		t.Error("legacy level should have a door at (2,2)")
	}
	if legacy.Dialect != level.DialectLegacy || lvl.Dialect != level.DialectCompact {
		t.Errorf("dialects = %s/%s", legacy.Dialect, lvl.Dialect)
	}
}

func TestLoaderNotFound(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())
	if _, err := loader.LoadByID("nope"); err == nil {
		t.Error("expected error for unknown ID")
	}
}

func TestLoaderListIDs(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	want := []string{"lvl01", "lvl02", "lvl03"}
	if len(ids) != len(want) {
		t.Fatalf("ListIDs = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ListIDs[%d] = %s, want %s", i, ids[i], want[i])
		}
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	loader := levels.NewLoader(filepath.Join(t.TempDir(), "missing"))
	if _, err := loader.LoadAll(); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestLevelNewStateCopiesDocument(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())
	lvl, err := loader.LoadByID("lvl01")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	s := lvl.NewState(sim.DefaultMotion())
	s.ToggleSwitch(core.C(0, 2))
	if d, _ := lvl.Doc.DoorAt(core.C(2, 0)); d.Open {
		t.Error("playing should not mutate the loaded level")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	doc, err := level.Parse("P.D1\n...\nL1.#")
	if err != nil {
		t.Fatal(err)
	}
	data, err := formats.MarshalYAML(formats.Level{ID: "x1", Name: "X", Doc: doc})
	if err != nil {
		t.Fatalf("MarshalYAML failed: %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "x1.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	lvl, err := levels.NewLoader(dir).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if lvl.ID != "x1" || lvl.Name != "X" || !lvl.Doc.Equal(doc) {
		t.Errorf("round trip mismatch: %+v", lvl)
	}
}

func TestYAMLWithoutIDUsesFileName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anon.yml")
	if err := os.WriteFile(path, []byte("map: |\n  P..\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	lvl, err := levels.NewLoader(dir).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if lvl.ID != "anon" || lvl.Name != "anon" {
		t.Errorf("ID/Name = %q/%q", lvl.ID, lvl.Name)
	}
}

func TestYAMLErrors(t *testing.T) {
	tests := map[string]string{
		"no map":   "id: a\n",
		"bad yaml": "id: [\n",
		"too tall": "id: b\nmap: |\n" + repeatLine("  .\n", 21),
	}
	for name, data := range tests {
		if _, err := formats.ParseYAML([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func repeatLine(line string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += line
	}
	return out
}
