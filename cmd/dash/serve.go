package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play levels.

Each SSH connection gets its own session with the level menu.
Runs are stored per-server (all users share the same history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dash/host_key

Examples:
  dash serve                           # Listen on :23234 with auto-generated key
  dash serve --ssh :2222               # Listen on port 2222
  dash serve --host-key ./my_host_key  # Use specific host key
  dash serve --db ./dash.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("dash-ssh"))
	if err != nil {
		return fmt.Errorf("cannot create server: %w", err)
	}

	fmt.Printf("Starting dash SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
