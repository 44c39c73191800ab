package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/game"
	"github.com/vovakirdan/neon-snake/internal/logging"
	"github.com/vovakirdan/neon-snake/internal/spectate"
	"github.com/vovakirdan/neon-snake/internal/storage"
)

// exitErr prints an error the way every command does and exits.
func exitErr(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the command logger. fallback is used when no log file
// is set. The returned func closes the log file, if any.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}
	if flagLogFile == "" {
		return logging.New(fallback, prefix, level), func() {}, nil
	}
	f, err := logging.OpenFile(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(f, prefix, level), func() { f.Close() }, nil
}

// openPrefs opens the database. When it cannot be opened the game still
// works with in-memory preferences.
func openPrefs(profile string) (*storage.Store, game.Prefs) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open preferences database: %v\n", err)
		return nil, storage.NewMemory()
	}
	return store, store.Profile(profile)
}

// startSpectator serves hub on addr in the background. The returned func
// stops the server.
func startSpectator(addr string, hub *spectate.Hub, logger *log.Logger) func() {
	srv := spectate.NewServer(addr, hub, logger.WithPrefix("spectate"))
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			logger.Error("spectator API stopped", "error", err)
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}
}
