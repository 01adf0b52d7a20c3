package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/isopuzzle/internal/iso"
	"github.com/vovakirdan/isopuzzle/internal/level"
)

var (
	flagPickViewW  float64
	flagPickTop    float64
	flagPickRaw    bool
	flagPickOffset float64
)

var pickCmd = &cobra.Command{
	Use:   "pick <file> x y",
	Short: "Resolve a pointer position to a grid cell",
	Long: `Map a pointer position in world units to the grid cell it selects, using
the configured tile size and pick offset. The level is centred in a view
--view-width wide with its top corner --top units down, as the graphical
front end lays it out.

--raw skips the pick offset and inverts the projection directly.

Examples:
  isopuzzle pick levels/first.txt 400 120
  isopuzzle pick levels/first.txt 400 120 --raw`,
	Args: cobra.ExactArgs(3),
	Run:  runPick,
}

func init() {
	pickCmd.Flags().Float64Var(&flagPickViewW, "view-width", 800, "View width in world units")
	pickCmd.Flags().Float64Var(&flagPickTop, "top", 80, "Distance from the view top to the map's top corner")
	pickCmd.Flags().BoolVar(&flagPickRaw, "raw", false, "Ignore the pick offset")
	pickCmd.Flags().Float64Var(&flagPickOffset, "offset", 0, "Override the configured pick offset")
}

func runPick(cmd *cobra.Command, args []string) {
	lvl, err := loadLevelFile(args[0])
	if err != nil {
		exitf("%v", err)
	}
	x, errX := strconv.ParseFloat(args[1], 64)
	y, errY := strconv.ParseFloat(args[2], 64)
	if errX != nil || errY != nil {
		exitf("pointer position must be two numbers, got %q %q", args[1], args[2])
	}

	mapper := cfg.Mapper()
	if cmd.Flags().Changed("offset") {
		mapper = mapper.WithPickOffset(flagPickOffset)
	}
	doc := lvl.Doc
	origin := mapper.CenteredOrigin(flagPickViewW, doc.Width(), doc.Height(), flagPickTop)

	c := mapper.Pick(x, y, origin)
	if flagPickRaw {
		c = mapper.WorldToGrid(x, y, origin)
	}

	fmt.Printf("cell %s\n", c)
	if !doc.InBounds(c) {
		fmt.Println("outside the level")
		return
	}
	fmt.Printf("kind %s\n", doc.CellAt(c))
	if p := doc.PropAt(c); p != level.PropNone {
		fmt.Printf("prop %s\n", p)
	}
	center := mapper.CellToWorld(c, origin)
	fmt.Printf("centre %s\n", formatPoint(center))
}

func formatPoint(p iso.Point) string {
	return fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y)
}
