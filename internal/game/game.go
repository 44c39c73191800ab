package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/engine"
)

// Options configure a Game.
type Options struct {
	Settings       config.Settings
	Seed           int64            // 0 means time-based
	Prefs          Prefs            // nil disables persistence
	OnPersistError PersistErrorFunc // optional
	OnTick         func()           // optional, runs after every Draw
}

// Game is the composition root. It owns the snake, the berries, the score
// tracker and the scheduler, and translates option changes into component
// updates. All methods must be called from the host's frame/input goroutine.
type Game struct {
	settings config.Settings
	canvas   core.Canvas
	grid     *RandomGrid
	snake    *Snake
	berries  []*Berry
	score    *ScoreTracker
	loop     *engine.Scheduler
	prefs    Prefs
	onError  PersistErrorFunc
	onTick   func()

	speed   int
	skin    int
	foodNum int

	ticks        uint64
	deaths       int
	scoreLine    string
	maxScoreLine string
}

// New builds a game drawing into canvas. Preferences are read once from
// opts.Prefs, falling back to defaults for missing or out-of-range values,
// then applied and written back.
func New(canvas core.Canvas, opts Options) *Game {
	s := opts.Settings
	if s.Validate() != nil {
		s = config.DefaultSettings()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cell := s.Canvas.CellSize
	grid := NewRandomGrid(rand.New(rand.NewSource(seed)), s.Canvas.Width, s.Canvas.Height, cell)

	g := &Game{
		settings: s,
		canvas:   canvas,
		grid:     grid,
		snake:    NewSnake(grid, s.Canvas.Width, s.Canvas.Height, cell, s.Glow.SnakeBlur),
		score:    NewScoreTracker(opts.Prefs, opts.OnPersistError),
		prefs:    opts.Prefs,
		onError:  opts.OnPersistError,
		onTick:   opts.OnTick,
	}
	g.berries = make([]*Berry, s.Berries.Slots)
	for i := range g.berries {
		g.berries[i] = NewBerry(grid, cell, s.Berries.Inset, s.Glow.BerryBlur)
	}
	g.loop = engine.New(g.Update, g.render)

	defaults := config.DefaultPreferences()
	g.speed = g.load(KeySpeed, defaults.Speed, config.ValidSpeed)
	g.foodNum = g.load(KeyFoodNum, defaults.FoodNum, config.ValidFood)
	g.skin = g.load(KeySkin, defaults.Skin, config.ValidSkin)

	g.SetSpeed(g.speed)
	g.SetFood(g.foodNum)
	g.SetSkin(g.skin)

	g.scoreLine, g.maxScoreLine = g.score.Render()
	return g
}

// load reads a stored preference, keeping def when absent or invalid.
func (g *Game) load(key string, def int, valid func(int) bool) int {
	if g.prefs == nil {
		return def
	}
	v, err := g.prefs.Int(key, def)
	if err != nil {
		g.onError.report(key, err)
		return def
	}
	if !valid(v) {
		return def
	}
	return v
}

// Frame forwards one host frame to the scheduler. Returns true when a tick
// (Update then Draw) ran.
func (g *Game) Frame() bool {
	return g.loop.Frame()
}

// Scheduler exposes the game loop, for hosts that drive it with Run.
func (g *Game) Scheduler() *engine.Scheduler {
	return g.loop
}

// Update advances the simulation by one tick.
func (g *Game) Update() {
	g.ticks++
	g.snake.Advance()
	g.snake.CheckConsumption(g.ActiveBerries(), g.score)
	if g.snake.CheckSelfCollision() {
		g.die()
	}
}

// die resets the snake, clears the score and moves every berry, including
// inactive slots.
func (g *Game) die() {
	g.deaths++
	g.snake.Reset()
	g.score.Clear()
	for _, b := range g.berries {
		b.RandomPosition()
	}
}

// Draw clears the canvas and paints the snake and the active berries, then
// refreshes the score lines.
func (g *Game) Draw() {
	c := g.settings.Canvas
	g.canvas.ClearRect(0, 0, float64(c.Width), float64(c.Height))
	g.snake.Draw(g.canvas)
	for _, b := range g.ActiveBerries() {
		b.Draw(g.canvas)
	}
	g.scoreLine, g.maxScoreLine = g.score.Render()
}

func (g *Game) render() {
	g.Draw()
	if g.onTick != nil {
		g.onTick()
	}
}

// SetDirection steers the snake. Returns whether the turn was accepted.
func (g *Game) SetDirection(d Direction) bool {
	return g.snake.SetDirection(d)
}

// SetSpeed selects speed 1-5. Other values are ignored.
func (g *Game) SetSpeed(speed int) {
	if !config.ValidSpeed(speed) {
		return
	}
	g.speed = speed
	g.loop.SetMaxStep(config.MaxStepFor(speed, g.settings.Loop.SpeedFactor))
	g.save()
}

// SetFood selects how many berries are active, 1-3. Other values are ignored.
func (g *Game) SetFood(n int) {
	if !config.ValidFood(n) {
		return
	}
	g.foodNum = n
	g.save()
}

// SetSkin selects a color theme and broadcasts it to the snake and every
// berry. Unknown skins are ignored.
func (g *Game) SetSkin(skin int) {
	if !config.ValidSkin(skin) {
		return
	}
	g.skin = skin
	g.snake.SetSkin(skin)
	for _, b := range g.berries {
		b.SetSkin(skin)
	}
	g.save()
}

func (g *Game) save() {
	if g.prefs == nil {
		return
	}
	g.onError.report(KeySpeed, g.prefs.SetInt(KeySpeed, g.speed))
	g.onError.report(KeySkin, g.prefs.SetInt(KeySkin, g.skin))
	g.onError.report(KeyFoodNum, g.prefs.SetInt(KeyFoodNum, g.foodNum))
}

// ActiveBerries returns the berries eligible for collision and drawing.
func (g *Game) ActiveBerries() []*Berry {
	return g.berries[:g.foodNum]
}

// Preferences returns the current option selection.
func (g *Game) Preferences() config.Preferences {
	return config.Preferences{Speed: g.speed, Skin: g.skin, FoodNum: g.foodNum}
}

// Theme returns the active color theme.
func (g *Game) Theme() config.Theme {
	t, _ := config.ThemeFor(g.skin)
	return t
}

// ScoreLines returns the display strings produced by the last Draw.
func (g *Game) ScoreLines() (score, maxScore string) {
	return g.scoreLine, g.maxScoreLine
}

// Score returns the current and maximum score.
func (g *Game) Score() (score, maxScore int) {
	return g.score.Score(), g.score.Max()
}

// Snake returns the simulated snake.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Settings returns the settings the game was built with.
func (g *Game) Settings() config.Settings {
	return g.settings
}
