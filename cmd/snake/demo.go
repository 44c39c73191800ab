package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/engine"
	"github.com/vovakirdan/neon-snake/internal/game"
	"github.com/vovakirdan/neon-snake/internal/spectate"
	"github.com/vovakirdan/neon-snake/internal/storage"
)

var (
	flagDemoDuration time.Duration
	flagDemoTicks    uint64
	flagDemoTurn     int
	flagDemoHTTP     string
	flagDemoJSON     bool
	flagDemoBoard    bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a headless game",
	Long: `Run a game without a terminal UI. The snake turns at random every
few ticks. Frames come from a ticker at --fps, so speed settings behave as
in a real game.

Preferences are kept in memory and never written to the database.

Examples:
  snake demo --duration 30s
  snake demo --ticks 500 --seed 7 --json
  snake demo --duration 0 --http :8080   # run until Ctrl+C, spectate live`,
	Args: cobra.NoArgs,
	Run:  runDemo,
}

func init() {
	demoCmd.Flags().DurationVar(&flagDemoDuration, "duration", 10*time.Second, "Stop after this long (0 = until interrupted)")
	demoCmd.Flags().Uint64Var(&flagDemoTicks, "ticks", 0, "Stop after this many ticks (0 = no limit)")
	demoCmd.Flags().IntVar(&flagDemoTurn, "turn-every", 6, "Ticks between random turns")
	demoCmd.Flags().StringVar(&flagDemoHTTP, "http", "", "Serve the spectator API on this address (host:port)")
	demoCmd.Flags().BoolVar(&flagDemoJSON, "json", false, "Print the final snapshot as JSON")
	demoCmd.Flags().BoolVar(&flagDemoBoard, "board", false, "Print the final board")
}

func runDemo(_ *cobra.Command, _ []string) {
	if err := demo(); err != nil {
		exitErr("%v", err)
	}
}

func demo() error {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger("snake-demo", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	id := uuid.NewString()

	var hub *spectate.Hub
	if flagDemoHTTP != "" {
		hub = spectate.NewHub()
		hub.Register(id, "demo")
		stop := startSpectator(flagDemoHTTP, hub, logger)
		defer stop()
		defer hub.Remove(id)
	}

	steer := rand.New(rand.NewSource(seed + 1))
	turns := []game.Direction{game.DirUp, game.DirDown, game.DirLeft, game.DirRight}
	turnEvery := uint64(max(flagDemoTurn, 1))

	c := settings.Canvas
	screen := core.NewCanvasScreen(c.Width, c.Height, c.CellSize)

	var g *game.Game
	g = game.New(screen, game.Options{
		Settings: settings,
		Seed:     seed,
		Prefs:    storage.NewMemory(),
		OnTick: func() {
			snap := g.Snapshot()
			if hub != nil {
				hub.Publish(id, snap)
			}
			if snap.Tick%turnEvery == 0 {
				g.SetDirection(turns[steer.Intn(len(turns))])
			}
			if flagDemoTicks > 0 && snap.Tick >= flagDemoTicks {
				g.Scheduler().Stop()
			}
		},
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if flagDemoDuration > 0 {
		ctx, cancel = context.WithTimeout(ctx, flagDemoDuration)
		defer cancel()
	}

	frames, release := engine.FrameSource(flagFPS)
	defer release()

	logger.Info("demo started", "session", id, "seed", seed, "speed", g.Preferences().Speed)
	err = g.Scheduler().Run(ctx, frames)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return err
	}

	snap := g.Snapshot()
	logger.Info("demo finished",
		"ticks", snap.Tick,
		"frames", g.Scheduler().Frames(),
		"score", snap.Score,
		"max_score", snap.MaxScore,
		"deaths", snap.Deaths,
	)

	if flagDemoBoard {
		fmt.Println(screen.String())
	}
	if flagDemoJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encoding snapshot: %w", err)
		}
	}
	return nil
}
