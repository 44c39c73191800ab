package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/platform/tui"
	"github.com/vovakirdan/neon-snake/internal/spectate"
)

// hudRows is the terminal height used around the board: title, score,
// border, options panel and help.
const hudRows = 9

var flagPlayHTTP string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  WASD/Arrows - Steer
  Tab         - Next options panel (speed, food, skin)
  1-5         - Choose an option in the focused panel
  P           - Pause
  Ctrl+S      - Save a text screenshot to ~/.snake/screenshots
  ?           - Show all keys
  Q/Ctrl+C    - Quit

Speed, food count, skin and max score are stored per profile.

Examples:
  snake play
  snake play --profile alice
  snake play --http :8080          # watch at /sessions/{id}/ws
  snake play --config ./big-board.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayHTTP, "http", "", "Serve the spectator API on this address (host:port)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		exitErr("%v", err)
	}
}

func play() error {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	needW := settings.Canvas.Width*2/settings.Canvas.CellSize + 2
	needH := settings.Canvas.Height/settings.Canvas.CellSize + hudRows
	if width < needW || height < needH {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", width, height, needW, needH)
	}

	// The TUI owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger("snake", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store, prefs := openPrefs(flagProfile)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Settings:  settings,
		Prefs:     prefs,
		SessionID: uuid.NewString(),
		Logger:    logger,
	}
	if flagPlayHTTP != "" {
		hub := spectate.NewHub()
		stop := startSpectator(flagPlayHTTP, hub, logger)
		defer stop()
		opts.Publisher = hub
		logger.Info("spectate this game", "url", fmt.Sprintf("ws://%s/sessions/%s/ws", flagPlayHTTP, opts.SessionID))
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: flagFPS,
		Seed:      flagSeed,
		Profile:   flagProfile,
	}

	if err := tui.Run(tui.NewModel(cfg, opts)); err != nil {
		logger.Error("game stopped", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
