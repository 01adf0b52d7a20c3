package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/isopuzzle/internal/platform/tui"
)

var flagPlayLevelsDir string

var playCmd = &cobra.Command{
	Use:   "play [file|id]",
	Short: "Play a level",
	Long: `Play a level in the terminal. The argument may be a level file, or the ID
of a level in the levels directory or the level store. Without an argument
a menu lists every level from both.

Controls:
  Arrows/hjkl     - Move the cursor
  Enter/Space     - Walk to the cursor, or use what is there
  Click           - Walk to or use the clicked cell
  E               - Use whatever the player faces
  V               - Switch between top-down and isometric views
  R               - Restart the level
  Esc/B           - Back to the menu
  Q/Ctrl+C        - Quit

Examples:
  isopuzzle play
  isopuzzle play levels/first.txt
  isopuzzle play first`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayLevelsDir, "levels", "", "Levels directory (default from config)")
}

func runPlay(_ *cobra.Command, args []string) {
	motion := cfg.SimMotion()

	if len(args) == 1 {
		lvl, err := resolveLevel(args[0])
		if err != nil {
			exitf("%v", err)
		}
		if err := tui.Run(lvl.Name, lvl.Doc, motion); err != nil {
			exitf("%v", err)
		}
		return
	}

	dir := flagPlayLevelsDir
	if dir == "" {
		dir = cfg.Levels.Dir
	}
	lvls, err := catalogue(dir)
	if err != nil {
		exitf("loading levels: %v", err)
	}
	if len(lvls) == 0 {
		exitf("no levels in %s or the level store", dir)
	}

	width, height := terminalSize()
	if err := tui.RunSession(lvls, motion, width, height); err != nil {
		exitf("%v", err)
	}
}
