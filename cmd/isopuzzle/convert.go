package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/isopuzzle/internal/level"
	"github.com/vovakirdan/isopuzzle/internal/levels"
)

var flagConvertOut string

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Rewrite a level in the compact dialect",
	Long: `Read a level in either dialect (plain text or YAML container) and write
it back in the compact dialect. Writes to stdout unless --out is given; an
output path ending in .yaml or .yml gets a YAML container.

Examples:
  isopuzzle convert old.lvl
  isopuzzle convert old.lvl -o new.txt
  isopuzzle convert old.lvl -o new.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&flagConvertOut, "out", "o", "", "Output file (default stdout)")
}

func runConvert(_ *cobra.Command, args []string) {
	lvl, err := loadLevelFile(args[0])
	if err != nil {
		exitf("%v", err)
	}

	if flagConvertOut == "" {
		fmt.Println(level.Serialize(lvl.Doc))
		return
	}

	data, err := encodeLevel(flagConvertOut, lvl)
	if err != nil {
		exitf("%v", err)
	}
	if err := os.WriteFile(flagConvertOut, data, 0o644); err != nil {
		exitf("writing %s: %v", flagConvertOut, err)
	}
}

// encodeLevel renders lvl for the file format implied by path.
func encodeLevel(path string, lvl levels.Level) ([]byte, error) {
	if isYAMLPath(path) {
		return marshalLevelYAML(lvl)
	}
	return []byte(level.Serialize(lvl.Doc) + "\n"), nil
}
