package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move the net up
	ActionDown           // S, Down arrow - move the net down
	ActionLeft           // A, Left arrow - move the net left
	ActionRight          // D, Right arrow - move the net right
	ActionCatch          // Space - swing the net
	ActionConfirm        // Enter - start the game or continue after a level
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - reset the session
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionFaster         // + - raise the speed factor
	ActionSlower         // - - lower the speed factor
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
	case ActionCatch:
		return "Catch"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	default:
		return "Unknown"
	}
}

// Pointer is the mouse state in screen cells as last reported by the terminal.
type Pointer struct {
	X, Y  int
	Valid bool // A position has been reported at least once
	Down  bool // Primary button is held
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame plus the
// pointer, which persists across frames.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// MovePointer records a pointer position.
func (f *InputFrame) MovePointer(x, y int) {
	f.Pointer.X = x
	f.Pointer.Y = y
	f.Pointer.Valid = true
}

// Clear resets all actions for the next frame.
// The pointer is kept: a held button stays held until released.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
