package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/platform/tui"
	"github.com/vovakirdan/neon-snake/internal/spectate"
	"github.com/vovakirdan/neon-snake/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeHTTP   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Preferences and max scores are
stored per SSH user in the server's database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Examples:
  snake serve                           # Listen on :23234 with auto-generated key
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --http :8080              # Also serve the spectator API
  snake serve --db ./snake.db           # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeHTTP, "http", "", "Serve the spectator API on this address (host:port)")
}

func runServe(_ *cobra.Command, _ []string) {
	if err := serve(); err != nil {
		exitErr("%v", err)
	}
}

func serve() error {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("snake-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.FrameRate = flagFPS
	cfg.Settings = settings

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open preferences database, using memory", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var pub tui.Publisher
	if flagServeHTTP != "" {
		hub := spectate.NewHub()
		stop := startSpectator(flagServeHTTP, hub, logger)
		defer stop()
		pub = hub
	}

	server, err := tui.NewSSHServer(cfg, store, pub, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting snake SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := server.ListenAndServe(ctx); err != nil {
		logger.Error("server error", "error", err)
		return err
	}
	return nil
}
