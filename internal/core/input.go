package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionQuit         // Q, Esc, Ctrl+C - exit the session
	ActionPause        // P - pause/unpause while playing
	ActionOther        // any other key; restarts from the game over screen
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick:
// the actions triggered during the frame and the latest pointer position.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is the cursor position in world units. Valid only when HasPointer is set.
	Pointer    Vec
	HasPointer bool
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

// AnyKey returns true if any key action was triggered this frame.
func (f InputFrame) AnyKey() bool {
	for a, on := range f.Actions {
		if on && a != ActionNone {
			return true
		}
	}
	return false
}

// SetPointer records the pointer position for this frame.
func (f *InputFrame) SetPointer(p Vec) {
	f.Pointer = p
	f.HasPointer = true
}

// Clear resets all actions for the next frame. The pointer is kept:
// a pointer that did not move this frame is still where it was.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
