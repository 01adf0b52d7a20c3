package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/isopuzzle/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeLevels string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the isopuzzle SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a level picker, and every
session plays on its own copy of the chosen level. Levels come from the
levels directory followed by the level store, read once at startup.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.isopuzzle/host_key

Examples:
  isopuzzle serve                           # Listen on :23235 with auto-generated key
  isopuzzle serve --ssh :2222               # Listen on port 2222
  isopuzzle serve --levels ./levels         # Serve a specific directory
  isopuzzle serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeLevels, "levels", "", "Levels directory (default from config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	dir := flagServeLevels
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

	srvCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Motion:      cfg.SimMotion(),
	}

	server, err := tui.NewSSHServer(srvCfg, lvls)
	if err != nil {
		exitf("creating server: %v", err)
	}

	fmt.Printf("Starting isopuzzle SSH server on %s with %d levels\n", srvCfg.Address, len(lvls))
	if _, port, err := net.SplitHostPort(srvCfg.Address); err == nil {
		fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	}
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		exitf("server: %v", err)
	}
}
