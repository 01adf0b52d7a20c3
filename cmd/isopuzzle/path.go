package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/isopuzzle/internal/core"
	"github.com/vovakirdan/isopuzzle/internal/sim"
)

var flagPathOpen bool

var pathCmd = &cobra.Command{
	Use:   "path <file> x1 y1 x2 y2",
	Short: "Print the shortest walk between two cells",
	Long: `Find the shortest 4-directional walk from (x1,y1) to (x2,y2) using the
same movement rules as play. The start cell itself is not printed.

With --open every door is treated as open and the bridge as raised.

Examples:
  isopuzzle path levels/first.txt 0 0 2 2
  isopuzzle path levels/first.txt 0 0 2 2 --open`,
	Args: cobra.ExactArgs(5),
	Run:  runPath,
}

func init() {
	pathCmd.Flags().BoolVar(&flagPathOpen, "open", false, "Open every door and raise the bridge first")
}

func runPath(_ *cobra.Command, args []string) {
	lvl, err := loadLevelFile(args[0])
	if err != nil {
		exitf("%v", err)
	}
	n, err := parseInts(args[1:])
	if err != nil {
		exitf("%v", err)
	}
	from, to := core.C(n[0], n[1]), core.C(n[2], n[3])

	doc := lvl.Doc
	if !doc.InBounds(from) || !doc.InBounds(to) {
		exitf("cells must lie within %dx%d", doc.Width(), doc.Height())
	}
	if flagPathOpen {
		for _, d := range doc.Doors() {
			doc.SetDoorOpen(d.Pos, true)
		}
		doc.SetBridgeOn(true)
	}

	path := sim.ShortestPath(doc, from, to)
	if path == nil {
		fmt.Fprintf(os.Stderr, "No path from %s to %s\n", from, to)
		os.Exit(1)
	}
	if len(path) == 0 {
		fmt.Println("Already there.")
		return
	}

	steps := make([]string, len(path))
	for i, c := range path {
		steps[i] = c.String()
	}
	fmt.Printf("%d steps: %s\n", len(path), strings.Join(steps, " "))
}
