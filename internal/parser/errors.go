package parser

import "fmt"

// InvalidInputError reports a recognized command keyword with malformed or
// missing arguments. The cause is deliberately not distinguished further; the
// message names only the command.
type InvalidInputError struct {
	Command string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("Invalid input for %s!", e.Command)
}

// UnrecognizedError reports input that matches no known command shape.
type UnrecognizedError struct {
	Input string
}

func (e *UnrecognizedError) Error() string {
	return fmt.Sprintf("%s doesn't exist as a command", e.Input)
}
