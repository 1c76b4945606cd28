package core

// Action represents a semantic game action, abstracted from physical
// key presses. Games work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow, k - move cursor up
	ActionDown              // S, Down arrow, j - move cursor down
	ActionLeft              // A, Left arrow, h - move cursor left
	ActionRight             // D, Right arrow, l - move cursor right
	ActionConfirm           // Enter, Space - place a mark / confirm selection
	ActionBack              // B, Escape - go back to menu
	ActionReset             // R key - restart the game
	ActionToggleMode        // M key - switch between 2-player and vs-computer
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P - pause/unpause game
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionReset:
		return "Reset"
	case ActionToggleMode:
		return "ToggleMode"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// NoCell marks an input frame that carries no direct cell selection.
const NoCell = -1

// InputFrame represents the input state for a single simulation tick.
// Besides the triggered actions it can carry a direct cell selection
// from the digit keys, so the platform never closes over grid indices.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Cell is the board index selected directly this frame, or NoCell.
	Cell int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Cell:    NoCell,
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetCell records a direct cell selection for this frame.
func (f *InputFrame) SetCell(index int) {
	f.Cell = index
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the cell selection for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Cell = NoCell
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Cell = f.Cell
	return clone
}
