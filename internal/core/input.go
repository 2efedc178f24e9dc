package core

import "strings"

// Action represents a semantic player intent, abstracted from key presses,
// clicks or WebSocket messages. Presentation layers translate raw input
// into a Command and the engine only ever sees Commands.
type Action int

const (
	ActionNone    Action = iota
	ActionGuess          // Enter - submit the typed letter
	ActionRestart        // Ctrl+R, Backspace on empty input - start a new round
	ActionQuit           // Ctrl+C, Esc - leave the game
	ActionHelp           // Tab - toggle key help
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionGuess:
		return "Guess"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// ParseAction maps a wire name ("guess", "restart", ...) to an Action.
// Unknown names map to ActionNone.
func ParseAction(name string) Action {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "guess":
		return ActionGuess
	case "restart":
		return ActionRestart
	case "quit":
		return ActionQuit
	case "help":
		return ActionHelp
	default:
		return ActionNone
	}
}

// Command is a single player request. Text carries the raw guess input
// for ActionGuess and is ignored otherwise.
type Command struct {
	Action Action
	Text   string
}

// Guess builds a guess command from raw, unnormalized input.
func Guess(text string) Command {
	return Command{Action: ActionGuess, Text: text}
}

// Restart builds a restart command.
func Restart() Command {
	return Command{Action: ActionRestart}
}

// Quit builds a quit command.
func Quit() Command {
	return Command{Action: ActionQuit}
}

// IsNone reports whether the command carries no action.
func (c Command) IsNone() bool {
	return c.Action == ActionNone
}
