package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/isopuzzle/internal/editor"
	"github.com/vovakirdan/isopuzzle/internal/levels"
	"github.com/vovakirdan/isopuzzle/internal/platform/tui"
	"github.com/vovakirdan/isopuzzle/internal/storage"
)

var (
	flagEditWidth  int
	flagEditHeight int
	flagEditStore  bool
)

var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Edit a level",
	Long: `Open the level editor on a file. A missing file starts a new floor-filled
grid of --width x --height cells. Saving writes the compact dialect, or a
YAML container when the file ends in .yaml or .yml.

With --store every save is also written to the level store under the file's
ID.

Controls:
  Arrows          - Move the cursor
  Space/Enter     - Paint with the current brush
  X/Delete        - Erase back to floor
  P               - Toggle drag painting
  [ and ]         - Previous / next brush
  I               - Type a link ID for switches and doors
  < > - +         - Resize the grid
  Click/drag      - Paint (right click erases)
  Ctrl+S          - Save
  Q/Ctrl+C        - Quit

Examples:
  isopuzzle edit levels/new.txt
  isopuzzle edit levels/new.yaml --width 12 --height 8 --store`,
	Args: cobra.ExactArgs(1),
	Run:  runEdit,
}

func init() {
	editCmd.Flags().IntVar(&flagEditWidth, "width", 0, "Width of a new level (default from config)")
	editCmd.Flags().IntVar(&flagEditHeight, "height", 0, "Height of a new level (default from config)")
	editCmd.Flags().BoolVar(&flagEditStore, "store", false, "Also save into the level store")
}

func runEdit(_ *cobra.Command, args []string) {
	path := args[0]
	lvl := levels.Level{ID: levels.IDFromPath(path)}
	lvl.Name = lvl.ID

	var ed *editor.Editor
	if _, err := os.Stat(path); err == nil {
		loaded, err := loadLevelFile(path)
		if err != nil {
			exitf("%v", err)
		}
		lvl = loaded
		ed = editor.Open(lvl.Doc)
	} else {
		w, h := flagEditWidth, flagEditHeight
		if w == 0 {
			w = cfg.Grid.DefaultWidth
		}
		if h == 0 {
			h = cfg.Grid.DefaultHeight
		}
		ed = editor.New(w, h)
	}

	save := func(text string) error {
		lvl.Doc = ed.Doc
		data := []byte(text + "\n")
		if isYAMLPath(path) {
			var err error
			if data, err = marshalLevelYAML(lvl); err != nil {
				return err
			}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if flagEditStore {
			return storeLevel(lvl)
		}
		return nil
	}

	if err := tui.RunEditor(lvl.Name, ed, save); err != nil {
		exitf("%v", err)
	}
}

// storeLevel writes lvl into the level store.
func storeLevel(lvl levels.Level) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.SaveLevel(lvl.ID, lvl.Name, lvl.Doc)
	return err
}
