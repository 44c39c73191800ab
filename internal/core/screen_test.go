package core

import (
	"strings"
	"testing"
)

func TestScreenStartsBlank(t *testing.T) {
	s := newScreen(80, 24, 1, 1)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestNewCanvasScreenDimensions(t *testing.T) {
	s := NewCanvasScreen(400, 400, 16)

	if s.Width() != 50 || s.Height() != 25 {
		t.Errorf("canvas screen = %dx%d, expected 50x25", s.Width(), s.Height())
	}
}

func TestScreenSetGetOutOfBounds(t *testing.T) {
	s := newScreen(10, 10, 1, 1)
	s.Set(5, 5, 'X')
	if s.GetCell(5, 5).Rune != 'X' {
		t.Errorf("GetCell(5, 5) = %q, expected 'X'", s.GetCell(5, 5).Rune)
	}

	// Must not panic
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	if s.GetCell(-1, 0).Rune != ' ' || s.GetCell(0, 10).Rune != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestFillRectFullCell(t *testing.T) {
	s := NewCanvasScreen(400, 400, 16)
	s.SetFillColor("#910033")
	s.SetGlow("#E10056", 30)
	s.FillRect(16, 32, 16, 16)

	for _, x := range []int{2, 3} {
		c := s.GetCell(x, 2)
		if c.Rune != GlyphFull {
			t.Errorf("cell (%d, 2) rune = %q, expected full block", x, c.Rune)
		}
		if c.Color != "#910033" {
			t.Errorf("cell (%d, 2) color = %q", x, c.Color)
		}
		if !c.Glow {
			t.Errorf("cell (%d, 2) should glow", x)
		}
	}

	// Neighbours untouched
	if s.GetCell(1, 2).Rune != ' ' || s.GetCell(4, 2).Rune != ' ' || s.GetCell(2, 1).Rune != ' ' || s.GetCell(2, 3).Rune != ' ' {
		t.Error("FillRect painted outside its rectangle")
	}
}

func TestFillRectPartialCell(t *testing.T) {
	s := NewCanvasScreen(400, 400, 16)
	s.SetFillColor("#E10056")
	s.FillRect(16+2.5, 2.5, 11, 11)

	for _, x := range []int{2, 3} {
		if s.GetCell(x, 0).Rune != GlyphPartial {
			t.Errorf("cell (%d, 0) = %q, expected partial glyph", x, s.GetCell(x, 0).Rune)
		}
	}
	if s.GetCell(2, 0).Glow {
		t.Error("no glow was set, cell should not glow")
	}
}

func TestClearRect(t *testing.T) {
	s := NewCanvasScreen(400, 400, 16)
	s.SetFillColor("#120286")
	s.FillRect(0, 0, 400, 400)
	s.ClearRect(0, 0, 400, 400)

	for y := 0; y < s.Height(); y++ {
		if strings.TrimSpace(s.Row(y)) != "" {
			t.Fatalf("row %d not cleared: %q", y, s.Row(y))
		}
	}
	if s.GetCell(0, 0).Color != ColorNone {
		t.Error("ClearRect should reset color")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := newScreen(11, 1, 1, 1)
	s.DrawTextCentered(0, "abc")

	if s.Row(0) != "    abc    " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := newScreen(10, 10, 1, 1)
	s.Set(3, 2, 'Z')
	s.DrawBox(1, 1, 5, 4)

	if s.GetCell(1, 1).Rune != '┌' || s.GetCell(5, 1).Rune != '┐' || s.GetCell(1, 4).Rune != '└' || s.GetCell(5, 4).Rune != '┘' {
		t.Error("box corners are wrong")
	}
	if s.GetCell(3, 1).Rune != '─' || s.GetCell(1, 2).Rune != '│' {
		t.Error("box edges are wrong")
	}
	if s.GetCell(3, 2).Rune != ' ' {
		t.Error("box interior should be blanked")
	}
}

func TestScreenClone(t *testing.T) {
	s := NewCanvasScreen(400, 400, 16)
	s.SetFillColor("#910033")
	s.FillRect(0, 0, 16, 16)

	c := s.Clone()
	c.DrawBox(0, 0, 4, 3)

	if s.GetCell(0, 0).Rune != GlyphFull {
		t.Errorf("original cell = %q, clone drawing leaked", s.GetCell(0, 0).Rune)
	}
	if c.GetCell(0, 0).Rune != '┌' {
		t.Errorf("clone cell = %q, expected box corner", c.GetCell(0, 0).Rune)
	}
	if c.Width() != s.Width() || c.Height() != s.Height() {
		t.Errorf("clone = %dx%d", c.Width(), c.Height())
	}
}

func TestScreenString(t *testing.T) {
	s := newScreen(5, 3, 1, 1)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	expected := "AAAAA\nBBBBB\nCCCCC"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenRow(t *testing.T) {
	s := newScreen(10, 5, 1, 1)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}

	if s.Row(-1) != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirection() {
			t.Errorf("%s should be a direction", a)
		}
	}
	if ActionPause.IsDirection() {
		t.Error("Pause is not a direction")
	}
}
