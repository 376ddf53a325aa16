package command

import (
	"github.com/cory-johannsen/dragons-escape/internal/game/world"
)

// Kind classifies a line of player input.
type Kind int

// Every line classifies as exactly one Kind.
const (
	NoOp Kind = iota
	Quit
	Look
	Help
	ShowMap
	Move
	Unknown
)

// String returns the lowercase name of the kind, used as a log field.
func (k Kind) String() string {
	switch k {
	case NoOp:
		return "noop"
	case Quit:
		return "quit"
	case Look:
		return "look"
	case Help:
		return "help"
	case ShowMap:
		return "map"
	case Move:
		return "move"
	case Unknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Action is the classified form of one line of input.
type Action struct {
	Kind Kind
	// Direction is set for Move.
	Direction world.Direction
	// Text is the normalized input. Set for Unknown.
	Text string
	// Err explains an Unknown action: *UnrecognizedCommandError or
	// *InvalidDirectionError.
	Err error
}

// Interpreter classifies input lines against a command registry.
type Interpreter struct {
	registry *Registry
}

// NewInterpreter creates an Interpreter backed by registry.
//
// Precondition: registry must be non-nil.
func NewInterpreter(registry *Registry) *Interpreter {
	return &Interpreter{registry: registry}
}

var defaultInterpreter = NewInterpreter(DefaultRegistry())

// Interpret classifies line with the built-in commands.
func Interpret(line string) Action {
	return defaultInterpreter.Interpret(line)
}

// Registry returns the registry the interpreter resolves against.
func (i *Interpreter) Registry() *Registry {
	return i.registry
}

// Interpret classifies one line of input. It has no side effects.
//
// Postcondition: Returns exactly one Action. Surrounding whitespace and letter
// case never change the result. Commands other than movement must match the
// whole line; movement must be "go " followed by one full direction word.
func (i *Interpreter) Interpret(line string) Action {
	res := Parse(line)
	if res.Command == "" {
		return Action{Kind: NoOp}
	}

	cmd, ok := i.registry.Resolve(res.Command)
	if !ok {
		return unrecognized(res.Line)
	}

	if cmd.Handler == HandlerMove {
		if res.RawArgs == "" {
			return unrecognized(res.Line)
		}
		dir, ok := world.ParseDirection(res.RawArgs)
		if !ok {
			return Action{
				Kind: Unknown,
				Text: res.Line,
				Err:  &InvalidDirectionError{Token: res.RawArgs},
			}
		}
		return Action{Kind: Move, Direction: dir}
	}

	if res.RawArgs != "" {
		return unrecognized(res.Line)
	}

	switch cmd.Handler {
	case HandlerQuit:
		return Action{Kind: Quit}
	case HandlerLook:
		return Action{Kind: Look}
	case HandlerHelp:
		return Action{Kind: Help}
	case HandlerMap:
		return Action{Kind: ShowMap}
	default:
		return unrecognized(res.Line)
	}
}

func unrecognized(line string) Action {
	return Action{
		Kind: Unknown,
		Text: line,
		Err:  &UnrecognizedCommandError{Input: line},
	}
}
