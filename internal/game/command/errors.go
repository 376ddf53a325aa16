package command

import (
	"errors"
	"fmt"
)

// UnrecognizedCommandError reports input that is not in the command grammar.
type UnrecognizedCommandError struct {
	// Input is the normalized line the player typed.
	Input string
}

func (e *UnrecognizedCommandError) Error() string {
	return fmt.Sprintf("Unknown command: '%s'", e.Input)
}

// InvalidDirectionError reports a movement that cannot happen: either the word
// after "go " is not a direction, or the current room has no exit that way.
type InvalidDirectionError struct {
	// Token is the text that followed "go ".
	Token string
	// Blocked is set when Token is a valid direction without an exit.
	Blocked bool
}

func (e *InvalidDirectionError) Error() string {
	if e.Blocked {
		return "You can't go that way!"
	}
	return fmt.Sprintf("Unknown direction: '%s'", e.Token)
}

// IsUserError reports whether err is one of the informational errors shown to
// the player rather than a failure of the program.
func IsUserError(err error) bool {
	var unrecognized *UnrecognizedCommandError
	var invalid *InvalidDirectionError
	return errors.As(err, &unrecognized) || errors.As(err, &invalid)
}
