// Package tui hosts the snake game in a terminal through Bubble Tea, locally
// or over SSH. It maps keys to game input and feeds frames to the scheduler.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is one host frame. Gen ties it to the frame chain that produced
// it, so frames scheduled before a pause are dropped after it.
type FrameMsg struct {
	Time time.Time
	Gen  int
}

// frameCmd returns a command that delivers the next frame at the given rate.
func frameCmd(fps, gen int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t, Gen: gen}
	})
}
