package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/storage"
)

func TestRendererKeepsGlyphs(t *testing.T) {
	s := core.NewCanvasScreen(64, 32, 16)
	s.SetFillColor("#E10056")
	s.SetGlow("#E10056", 30)
	s.FillRect(0, 0, 16, 16)
	s.SetGlow(core.ColorNone, 0)
	s.FillRect(18, 2, 11, 11)

	out := NewRenderer().Render(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, expected 2", len(lines))
	}

	if !strings.Contains(lines[0], string(core.GlyphFull)+string(core.GlyphFull)) {
		t.Errorf("row 0 = %q, expected two full cells", lines[0])
	}
	if !strings.ContainsRune(lines[0], core.GlyphPartial) {
		t.Errorf("row 0 = %q, expected a partial cell", lines[0])
	}
	if lipgloss.Width(lines[1]) != s.Width() {
		t.Errorf("row 1 width = %d, expected %d", lipgloss.Width(lines[1]), s.Width())
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText() = %q", got)
	}
}

func TestRenderPanelShowsActive(t *testing.T) {
	out := renderPanel(config.Preferences{Speed: 2, Skin: 3, FoodNum: 1}, PanelFood, config.Themes[3])

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("panel has %d lines, expected 3", len(lines))
	}
	if !strings.HasPrefix(lines[1], "> ") {
		t.Errorf("focused line = %q, expected cursor", lines[1])
	}
	if !strings.Contains(lines[2], "3 red") {
		t.Errorf("skin line = %q", lines[2])
	}
}

func TestScoreboardLoads(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SetInt("alice", "maxScore", 9)
	store.SetInt("bob", "maxScore", 21)

	m := NewScoreboardModel(store, 80, 24)
	entries := m.Entries()
	if len(entries) != 2 || entries[0].Profile != "bob" {
		t.Fatalf("entries = %+v", entries)
	}
	if !strings.Contains(m.View(), "bob") {
		t.Error("View() should list bob")
	}

	empty := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(empty.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}
