package models

import "fmt"

// UnrecognizedCommandError reports input that matches no known command.
type UnrecognizedCommandError struct {
	Input string
}

func (e *UnrecognizedCommandError) Error() string {
	return "Sorry, I don't know what that means. Try todo, deadline, event, list, find, done, delete or bye."
}

// MissingDescriptionError reports an add-command given without a description.
type MissingDescriptionError struct {
	Command string
}

func (e *MissingDescriptionError) Error() string {
	if e == nil || e.Command == "" {
		return "The description of a task cannot be empty."
	}
	return fmt.Sprintf("The description of a %s cannot be empty.", e.Command)
}

// InvalidParamError reports a malformed parameter. Hint names the expected
// format and gives an example.
type InvalidParamError struct {
	Hint string
}

func (e *InvalidParamError) Error() string {
	if e == nil || e.Hint == "" {
		return "Invalid parameter."
	}
	return e.Hint
}

// OutOfRangeError reports a task number outside the list. Number is 1-based.
type OutOfRangeError struct {
	Number int
	Count  int
}

func (e *OutOfRangeError) Error() string {
	if e == nil {
		return "That task number is not in your list."
	}
	if e.Count == 0 {
		return "That task number is not in your list, which is empty."
	}
	return fmt.Sprintf("That task number is not in your list. Pick a number from 1 to %d.", e.Count)
}
