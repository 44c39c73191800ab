package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/game"
	"github.com/vovakirdan/neon-snake/internal/storage"
)

type recordPublisher struct {
	registered map[string]string
	published  []game.Snapshot
	removed    []string
}

func newRecordPublisher() *recordPublisher {
	return &recordPublisher{registered: make(map[string]string)}
}

func (p *recordPublisher) Register(id, user string)              { p.registered[id] = user }
func (p *recordPublisher) Publish(id string, snap game.Snapshot) { p.published = append(p.published, snap) }
func (p *recordPublisher) Remove(id string)                      { p.removed = append(p.removed, id) }

func newTestModel(t *testing.T, pub Publisher) (Model, *storage.Memory) {
	t.Helper()
	prefs := storage.NewMemory()
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	m := NewModel(cfg, Options{
		Settings:      config.DefaultSettings(),
		Prefs:         prefs,
		SessionID:     "test-session",
		Publisher:     pub,
		ScreenshotDir: t.TempDir(),
	})
	return m, prefs
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelFramesDriveTicks(t *testing.T) {
	pub := newRecordPublisher()
	m, _ := newTestModel(t, pub)
	m.Init()

	if pub.registered["test-session"] != "local" {
		t.Errorf("session registered as %v", pub.registered)
	}
	initial := len(pub.published)

	// Default speed 3 ticks every 4 frames.
	var cmd tea.Cmd
	for range 8 {
		m, cmd = update(t, m, FrameMsg{Gen: m.gen})
		if cmd == nil {
			t.Fatal("every frame should schedule the next one")
		}
	}

	if got := len(pub.published) - initial; got != 2 {
		t.Errorf("published %d snapshots after 8 frames, expected 2", got)
	}
	if snap := m.Game().Snapshot(); snap.Tick != 2 {
		t.Errorf("Tick = %d, expected 2", snap.Tick)
	}
}

func TestModelPause(t *testing.T) {
	m, _ := newTestModel(t, nil)
	oldGen := m.gen

	m, cmd := update(t, m, runeKey('p'))
	if !m.Paused() || cmd != nil {
		t.Fatal("p should pause and stop scheduling frames")
	}

	m, cmd = update(t, m, FrameMsg{Gen: m.gen})
	if cmd != nil {
		t.Error("frames should not be processed while paused")
	}

	m, cmd = update(t, m, runeKey('p'))
	if m.Paused() || cmd == nil {
		t.Fatal("second p should resume and schedule a frame")
	}

	// A frame scheduled before the pause is dropped.
	_, cmd = update(t, m, FrameMsg{Gen: oldGen})
	if cmd != nil {
		t.Error("stale frame should be dropped")
	}
}

func TestModelOptions(t *testing.T) {
	m, prefs := newTestModel(t, nil)

	m, _ = update(t, m, runeKey('5'))
	if m.Game().Preferences().Speed != 5 {
		t.Errorf("speed = %d, expected 5", m.Game().Preferences().Speed)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Focus() != PanelFood {
		t.Fatalf("focus = %v, expected Food", m.Focus())
	}
	m, _ = update(t, m, runeKey('5'))
	if m.Game().Preferences().FoodNum != 1 {
		t.Error("out-of-range food should be ignored")
	}
	m, _ = update(t, m, runeKey('3'))
	if m.Game().Preferences().FoodNum != 3 {
		t.Errorf("foodNum = %d, expected 3", m.Game().Preferences().FoodNum)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, runeKey('2'))
	if m.Game().Preferences().Skin != 2 {
		t.Errorf("skin = %d, expected 2", m.Game().Preferences().Skin)
	}

	if v, _ := prefs.Int(game.KeySkin, 0); v != 2 {
		t.Errorf("stored skin = %d, expected 2", v)
	}
}

func TestModelSteering(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = update(t, m, runeKey('w'))
	if v := m.Game().Snake().Velocity(); v != (core.Point{X: 0, Y: -16}) {
		t.Errorf("velocity = %+v after w, expected (0, -16)", v)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if v := m.Game().Snake().Velocity(); v != (core.Point{X: 0, Y: -16}) {
		t.Errorf("reverse should be rejected, velocity = %+v", v)
	}
}

func TestModelQuitRemovesSession(t *testing.T) {
	pub := newRecordPublisher()
	m, _ := newTestModel(t, pub)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if len(pub.removed) != 1 || pub.removed[0] != "test-session" {
		t.Errorf("removed = %v", pub.removed)
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestModelScreenshot(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.lastShot == "" {
		t.Fatal("screenshot path should be recorded")
	}
	data, err := os.ReadFile(m.lastShot)
	if err != nil {
		t.Fatalf("screenshot not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "Score: 0\nMax Score: 0\n") {
		t.Errorf("screenshot starts with %q", string(data)[:min(len(data), 40)])
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 2+m.screen.Height() {
		t.Errorf("screenshot has %d lines, expected %d", len(lines), 2+m.screen.Height())
	}
	for i, line := range lines {
		if strings.HasSuffix(line, " ") {
			t.Errorf("line %d has trailing spaces: %q", i, line)
		}
	}
}

func TestModelPauseOverlay(t *testing.T) {
	m, _ := newTestModel(t, nil)
	for range 4 {
		m, _ = update(t, m, FrameMsg{Gen: m.gen})
	}
	before := m.screen.String()

	if m.board() != m.screen {
		t.Fatal("running game should display the live screen")
	}

	m, _ = update(t, m, runeKey('p'))
	board := m.board()
	if board == m.screen {
		t.Fatal("paused board should be a copy")
	}
	text := board.String()
	for _, want := range []string{"PAUSED", "p to resume", "┌", "┘"} {
		if !strings.Contains(text, want) {
			t.Errorf("paused board missing %q", want)
		}
	}
	if m.screen.String() != before {
		t.Error("overlay must not change the game screen")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, nil)
	for range 4 {
		m, _ = update(t, m, FrameMsg{Gen: m.gen})
	}

	view := m.View()
	for _, want := range []string{"NEON SNAKE", "Score: 0", "Max Score: 0", "Speed", "Food", "Skin", string(core.GlyphFull)} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m, _ = update(t, m, runeKey('p'))
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should say PAUSED")
	}
}
