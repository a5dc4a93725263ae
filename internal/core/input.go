package core

// Action represents a semantic action, abstracted from physical key presses
// and pointer events.
type Action int

const (
	ActionNone      Action = iota
	ActionActivate         // Space, Up, Enter, mouse press, touch - flap
	ActionUp               // menu navigation
	ActionDown             // menu navigation
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - back to language menu
	ActionRestart          // R - play again after game over
	ActionSaveNames        // S - open the name form after game over
	ActionScoreboard       // Tab - open scoreboard
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionSaveNames:
		return "SaveNames"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
