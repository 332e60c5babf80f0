package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone           Action = iota
	ActionSelectClassic         // 1 - start classic mode from the menu
	ActionSelectShooting        // 2 - start shooting mode from the menu
	ActionOpenRules             // R on the menu - show the rules page
	ActionCloseRules            // B, Esc - leave the rules page
	ActionJump                  // Space - flap (first flap also starts the run)
	ActionShoot                 // S - fire a bullet in shooting mode
	ActionToggleAI              // A - hand control to the policy and back
	ActionRestart               // R after game over - replay the same mode
	ActionMenu                  // M after game over - back to the menu
	ActionClick                 // Mouse button press at a world position
	ActionQuit                  // Q, Ctrl+C, window close
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSelectClassic:
		return "SelectClassic"
	case ActionSelectShooting:
		return "SelectShooting"
	case ActionOpenRules:
		return "OpenRules"
	case ActionCloseRules:
		return "CloseRules"
	case ActionJump:
		return "Jump"
	case ActionShoot:
		return "Shoot"
	case ActionToggleAI:
		return "ToggleAI"
	case ActionRestart:
		return "Restart"
	case ActionMenu:
		return "Menu"
	case ActionClick:
		return "Click"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is a single input occurrence. Pos is only meaningful for ActionClick
// and is expressed in world units.
type Event struct {
	Action Action
	Pos    Point
}

// InputFrame collects the input events received during one simulation tick.
// Order is preserved: events are dispatched in the order they arrived.
type InputFrame struct {
	Events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Events: make([]Event, 0, 4)}
}

// Set appends an action without a position.
func (f *InputFrame) Set(a Action) {
	f.Events = append(f.Events, Event{Action: a})
}

// Click appends a mouse press at the given world position.
func (f *InputFrame) Click(x, y float64) {
	f.Events = append(f.Events, Event{Action: ActionClick, Pos: Point{X: x, Y: y}})
}

// Clear resets all events for the next frame, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
