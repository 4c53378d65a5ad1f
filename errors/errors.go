package errors

import "fmt"

// InvalidArgumentError indicates a value that could not be coerced to its
// declared parameter type, or a malformed program-name token sequence.
// It is intended for user-facing messages.
type InvalidArgumentError struct{ Msg string }

func (e InvalidArgumentError) Error() string { return e.Msg }

// MissingArgError indicates a required positional argument was not provided.
type MissingArgError struct{ Name string }

func (e MissingArgError) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.Name)
}

// ReservedNameError indicates a declared parameter collides with a name the
// CLI binder reserves for itself.
type ReservedNameError struct{ Name string }

func (e ReservedNameError) Error() string {
	return fmt.Sprintf("parameter name %q is reserved", e.Name)
}

// ParseError represents a generic parsing error produced by the CLI binder.
type ParseError struct{ Msg string }

func (e ParseError) Error() string { return e.Msg }

// Helper constructors
func NewInvalidArgument(msg string) error { return InvalidArgumentError{Msg: msg} }
func NewMissingArg(name string) error     { return MissingArgError{Name: name} }
func NewReservedName(name string) error   { return ReservedNameError{Name: name} }
func NewParseError(msg string) error      { return ParseError{Msg: msg} }
