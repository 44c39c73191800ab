package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/game"
	"github.com/vovakirdan/neon-snake/internal/logging"
)

// Publisher receives a snapshot after every simulation tick.
type Publisher interface {
	Register(id, user string)
	Publish(id string, snap game.Snapshot)
	Remove(id string)
}

// Options configure a Model beyond the runtime config.
type Options struct {
	Settings      config.Settings
	Prefs         game.Prefs // nil disables persistence
	SessionID     string
	Publisher     Publisher   // optional
	Logger        *log.Logger // optional
	ScreenshotDir string      // default ~/.snake/screenshots
}

// Size of the notice drawn over the board while paused.
const (
	pausedBoxW = 17
	pausedBoxH = 4
)

// Model is the Bubble Tea model running one game.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig

	focus    Panel
	paused   bool
	gen      int
	quitting bool

	sessionID string
	pub       Publisher
	logger    *log.Logger
	shotDir   string
	lastShot  string
}

// NewModel builds the game, its screen and the model around them.
func NewModel(cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = 60
	}
	settings := opts.Settings
	if settings.Validate() != nil {
		settings = config.DefaultSettings()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	c := settings.Canvas
	screen := core.NewCanvasScreen(c.Width, c.Height, c.CellSize)
	g := game.New(screen, game.Options{
		Settings: settings,
		Seed:     cfg.Seed,
		Prefs:    opts.Prefs,
		OnPersistError: func(k string, err error) {
			logger.Warn("could not persist preference", "key", k, "profile", cfg.Profile, "error", err)
		},
	})

	return Model{
		game:      g,
		screen:    screen,
		renderer:  NewRenderer(),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		config:    cfg,
		sessionID: opts.SessionID,
		pub:       opts.Publisher,
		logger:    logger,
		shotDir:   opts.ScreenshotDir,
	}
}

// Init registers the session and starts the frame loop.
func (m Model) Init() tea.Cmd {
	if m.pub != nil {
		m.pub.Register(m.sessionID, m.config.Profile)
		m.pub.Publish(m.sessionID, m.game.Snapshot())
	}
	return frameCmd(m.config.FrameRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(msg)
	}

	return m, nil
}

// handleFrame forwards one frame to the scheduler and schedules the next.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if m.paused || msg.Gen != m.gen || m.quitting {
		return m, nil
	}
	if m.game.Frame() && m.pub != nil {
		m.pub.Publish(m.sessionID, m.game.Snapshot())
	}
	return m, frameCmd(m.config.FrameRate, m.gen)
}

// handleKey processes keyboard input. Input lands between ticks because
// Bubble Tea delivers key and frame messages on the same goroutine.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, option := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		if m.pub != nil {
			m.pub.Remove(m.sessionID)
		}
		return m, tea.Quit

	case core.ActionPause:
		m.paused = !m.paused
		m.gen++
		if m.paused {
			return m, nil
		}
		return m, frameCmd(m.config.FrameRate, m.gen)

	case core.ActionScreenshot:
		m.lastShot = m.saveScreenshot()
		return m, nil

	case core.ActionNextPanel:
		m.focus = m.focus.Next()

	case core.ActionOption:
		applyOption(m.game, m.focus, option)
	}

	if action.IsDirection() && !m.paused {
		m.game.SetDirection(directionFor(action))
	}
	return m, nil
}

func directionFor(a core.Action) game.Direction {
	switch a {
	case core.ActionUp:
		return game.DirUp
	case core.ActionDown:
		return game.DirDown
	case core.ActionLeft:
		return game.DirLeft
	default:
		return game.DirRight
	}
}

// saveScreenshot writes the HUD and the board as plain text. Returns the
// file path, or "" on failure.
func (m *Model) saveScreenshot() string {
	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			return ""
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return ""
	}

	score, maxScore := m.game.ScoreLines()
	var b strings.Builder
	b.WriteString(score + "\n" + maxScore + "\n")
	for y := 0; y < m.screen.Height(); y++ {
		b.WriteString(strings.TrimRight(m.screen.Row(y), " "))
		b.WriteString("\n")
	}
	content := b.String()

	name := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405.000"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return ""
	}
	m.logger.Info("screenshot saved", "path", path)
	return path
}

// View renders the HUD, the board, the options panel and the help bar.
// The board buffer is only repainted by the game's Draw on each tick.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	theme := m.game.Theme()
	accent := lipgloss.Color(string(theme.Highlight))

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	boardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	score, maxScore := m.game.ScoreLines()
	status := ""
	if m.paused {
		status = titleStyle.Render("  PAUSED")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("NEON SNAKE"))
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(score + "   " + maxScore)
	b.WriteString("\n")
	b.WriteString(boardStyle.Render(m.renderer.Render(m.board())))
	b.WriteString("\n")
	b.WriteString(renderPanel(m.game.Preferences(), m.focus, theme))
	b.WriteString("\n")
	if m.lastShot != "" {
		b.WriteString(mutedStyle.Render("saved " + m.lastShot))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// board returns the screen to display. While paused it is a copy of the
// last frame with a boxed notice in the middle.
func (m Model) board() *core.Screen {
	if !m.paused {
		return m.screen
	}
	b := m.screen.Clone()
	w, h := min(pausedBoxW, b.Width()), min(pausedBoxH, b.Height())
	x, y := (b.Width()-w)/2, (b.Height()-h)/2
	b.DrawBox(x, y, w, h)
	b.DrawTextCentered(y+1, "PAUSED")
	b.DrawTextCentered(y+2, "p to resume")
	return b
}

// Game returns the running game.
func (m Model) Game() *game.Game {
	return m.game
}

// Paused reports whether frame delivery is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// Focus returns the panel digit keys currently edit.
func (m Model) Focus() Panel {
	return m.focus
}

// Run starts the Bubble Tea program with the given model and blocks until
// the player quits.
func Run(m Model, opts ...tea.ProgramOption) error {
	if m.pub != nil {
		defer m.pub.Remove(m.sessionID)
	}
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(m, opts...)
	_, err := p.Run()
	return err
}
