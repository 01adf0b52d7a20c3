package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/isopuzzle/internal/levels"
	"github.com/vovakirdan/isopuzzle/internal/sim"
)

var (
	colorHeading = color.Style{color.FgCyan, color.OpBold}
	colorLabel   = color.Style{color.FgGray}
	colorOK      = color.Style{color.FgGreen, color.OpBold}
	colorIssue   = color.Style{color.FgRed, color.OpBold}
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate level files",
	Long: `Parse each level file and report its dialect, size and contents,
followed by anything that would make it unfinishable: a missing player
start, switches or doors whose ID has no partner, and props the player can
never reach.

Exits non-zero if any file fails to parse or has issues.

Examples:
  isopuzzle check levels/first.txt
  isopuzzle check levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	failed := false
	for _, path := range args {
		if !checkFile(path) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// checkFile prints the report for one file and reports whether it passed.
func checkFile(path string) bool {
	fmt.Println(colorHeading.Sprint(path))

	lvl, err := loadLevelFile(path)
	if err != nil {
		fmt.Printf("  %s\n\n", colorIssue.Sprint(err))
		return false
	}

	printFacts(lvl)

	issues := sim.Audit(lvl.Doc)
	if len(issues) == 0 {
		fmt.Printf("  %s\n\n", colorOK.Sprint("ok"))
		return true
	}
	for _, is := range issues {
		fmt.Printf("  %s\n", colorIssue.Sprint(is))
	}
	fmt.Println()
	return false
}

func printFacts(lvl levels.Level) {
	doc := lvl.Doc
	start := "none"
	if c, ok := doc.PlayerStart(); ok {
		start = c.String()
	}

	row := func(label, value string) {
		fmt.Printf("  %s %s\n", colorLabel.Sprintf("%-8s", label), value)
	}
	row("name", lvl.Name)
	row("dialect", lvl.Dialect.String())
	row("size", fmt.Sprintf("%dx%d", doc.Width(), doc.Height()))
	row("start", start)
	row("props", fmt.Sprintf("%d switches, %d doors, %d items, %d walls",
		len(doc.Switches()), len(doc.Doors()), len(doc.Items()), len(doc.WallObjects())))
	bridge := "lowered"
	if doc.BridgeOn() {
		bridge = "raised"
	}
	row("bridge", fmt.Sprintf("%d tiles, %s", len(doc.BridgeTiles()), bridge))
}
