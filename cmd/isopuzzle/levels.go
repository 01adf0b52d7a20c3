package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/isopuzzle/internal/level"
	"github.com/vovakirdan/isopuzzle/internal/levels"
	"github.com/vovakirdan/isopuzzle/internal/levels/formats"
	"github.com/vovakirdan/isopuzzle/internal/storage"
)

var (
	flagImportNewID bool
	flagExportOut   string
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Manage the level store",
	Long: `Manage the SQLite level store. Stored levels keep only their compact
text encoding and can be played by ID like files in the levels directory.

Examples:
  isopuzzle levels list
  isopuzzle levels import levels/*.txt
  isopuzzle levels export first -o first.yaml
  isopuzzle levels rm first`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored levels",
	Args:  cobra.NoArgs,
	Run:   runLevelsList,
}

var levelsImportCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Copy level files into the store",
	Long: `Parse each file and store it under its ID, replacing any stored level
with the same ID. With --new-id each level gets a fresh random ID instead.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runLevelsImport,
}

var levelsExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Write a stored level to stdout or a file",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsExport,
}

var levelsRmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Delete stored levels",
	Args:  cobra.MinimumNArgs(1),
	Run:   runLevelsRm,
}

func init() {
	levelsImportCmd.Flags().BoolVar(&flagImportNewID, "new-id", false, "Store under a generated ID")
	levelsExportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default stdout)")

	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsImportCmd)
	levelsCmd.AddCommand(levelsExportCmd)
	levelsCmd.AddCommand(levelsRmCmd)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening level store: %v", err)
	}
	return store
}

func runLevelsList(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	entries, err := store.ListLevels()
	if err != nil {
		exitf("listing levels: %v", err)
	}
	if len(entries) == 0 {
		fmt.Println("No stored levels.")
		fmt.Println()
		fmt.Println("Run 'isopuzzle levels import <file>' to add one.")
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, e := range entries {
		maxIDLen = max(maxIDLen, len(e.ID))
	}

	fmt.Printf("  %-*s  %-6s  %-16s  %s\n", maxIDLen, "ID", "Size", "Updated", "Name")
	fmt.Printf("  %-*s  %-6s  %-16s  %s\n", maxIDLen, "--", "----", "-------", "----")
	for _, e := range entries {
		size := "?"
		if doc, err := e.Document(); err == nil {
			size = fmt.Sprintf("%dx%d", doc.Width(), doc.Height())
		}
		fmt.Printf("  %-*s  %-6s  %-16s  %s\n", maxIDLen, e.ID, size, e.UpdatedAt.Format("2006-01-02 15:04"), e.Name)
	}
}

func runLevelsImport(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	failed := false
	for _, path := range args {
		lvl, err := loadLevelFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
			continue
		}
		id := lvl.ID
		if flagImportNewID {
			id = ""
		}
		id, err = store.SaveLevel(id, lvl.Name, lvl.Doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: storing %s: %v\n", path, err)
			failed = true
			continue
		}
		fmt.Printf("imported %s as %s\n", filepath.Base(path), id)
	}
	if failed {
		os.Exit(1)
	}
}

func runLevelsExport(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	entry, err := store.Level(args[0])
	if err != nil {
		exitf("%v", err)
	}
	doc, err := entry.Document()
	if err != nil {
		exitf("%v", err)
	}

	if flagExportOut == "" {
		fmt.Println(level.Serialize(doc))
		return
	}
	data, err := encodeLevel(flagExportOut, levels.Level{ID: entry.ID, Name: entry.Name, Doc: doc})
	if err != nil {
		exitf("%v", err)
	}
	if err := os.WriteFile(flagExportOut, data, 0o644); err != nil {
		exitf("writing %s: %v", flagExportOut, err)
	}
}

func runLevelsRm(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	for _, id := range args {
		if err := store.DeleteLevel(id); err != nil {
			exitf("deleting %s: %v", id, err)
		}
		fmt.Printf("deleted %s\n", id)
	}
}

func isYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func marshalLevelYAML(lvl levels.Level) ([]byte, error) {
	return formats.MarshalYAML(formats.Level{
		ID:       lvl.ID,
		Name:     lvl.Name,
		Doc:      lvl.Doc,
		Metadata: lvl.Metadata,
	})
}
