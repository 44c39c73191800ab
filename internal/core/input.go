package core

// Action represents a semantic input, abstracted from physical key presses.
// The platform maps keys to actions and the game reacts to actions only.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow
	ActionDown              // S, Down arrow
	ActionLeft              // A, Left arrow
	ActionRight             // D, Right arrow
	ActionNextPanel         // Tab - cycle the options panel
	ActionOption            // Digit - set option in the focused panel
	ActionPause             // P - suspend frame delivery
	ActionScreenshot        // Ctrl+S
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionNextPanel:
		return "NextPanel"
	case ActionOption:
		return "Option"
	case ActionPause:
		return "Pause"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action steers the snake.
func (a Action) IsDirection() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}
