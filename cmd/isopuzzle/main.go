// isopuzzle is a grid puzzle game with an isometric view, played and edited
// in the terminal.
//
// Usage:
//
//	isopuzzle check <file>               - Validate a level file
//	isopuzzle convert <file>             - Rewrite a level in the compact dialect
//	isopuzzle path <file> x1 y1 x2 y2    - Print the shortest walk between two cells
//	isopuzzle pick <file> x y            - Resolve a pointer position to a cell
//	isopuzzle play [file|id]             - Play a level, or pick one from the menu
//	isopuzzle edit <file>                - Open the level editor
//	isopuzzle serve                      - Start SSH server for remote play
//	isopuzzle levels list|import|export|rm - Manage the level store
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.isopuzzle, ./configs)
//	--log-level <level> - debug, info, warn or error (default: warn)
//	--db <path>         - Level store path (default: from config)
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/isopuzzle/internal/config"
)

var (
	// Global flags
	flagConfigPath string
	flagLogLevel   string
	flagDBPath     string

	// cfg is loaded before any command runs.
	cfg config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "isopuzzle",
	Short: "isopuzzle - isometric grid puzzles in your terminal",
	Long: `isopuzzle is a grid puzzle game drawn isometrically in the terminal.
Walk to switches, carry keys and open doors to get around each level.

Available commands:
  check    - Validate a level file
  convert  - Rewrite a level in the compact dialect
  path     - Print the shortest walk between two cells
  pick     - Resolve a pointer position to a grid cell
  play     - Play a level
  edit     - Edit a level
  serve    - Start SSH server for remote play
  levels   - Manage the level store

Environment:
  ISOPUZZLE_CONFIG, ISOPUZZLE_DB and ISOPUZZLE_LOG_LEVEL stand in for the
  matching flags. A .env file in the working directory is read first.

Examples:
  isopuzzle check levels/first.txt
  isopuzzle play first
  isopuzzle edit new.txt --width 8 --height 6
  isopuzzle serve --ssh :2222`,
	PersistentPreRun: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to level store (default from config)")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
}

// setup reads .env, applies environment fallbacks and loads the config.
func setup(cmd *cobra.Command, _ []string) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn("cannot read .env", "err", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("config") {
		if v := os.Getenv("ISOPUZZLE_CONFIG"); v != "" {
			flagConfigPath = v
		}
	}
	if !flags.Changed("db") {
		if v := os.Getenv("ISOPUZZLE_DB"); v != "" {
			flagDBPath = v
		}
	}
	if !flags.Changed("log-level") {
		if v := os.Getenv("ISOPUZZLE_LOG_LEVEL"); v != "" {
			flagLogLevel = v
		}
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.SetLevel(level)

	cfg, err = config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath == "" {
		flagDBPath = cfg.Storage.Path
	}
}
