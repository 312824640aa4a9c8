package argen

import (
	"errors"
	"fmt"
)

// ErrHelp is the outcome of a parse which saw the built-in help option. It is
// not a parse failure: hosts typically render the usage text and exit, on a
// different stream or with a different code than for a genuine error. Test
// for it with errors.Is.
var ErrHelp = errors.New("help requested")

// ErrorKind classifies parse errors.
type ErrorKind int

const (
	// UnknownOption: an option-shaped token matched no defined option.
	UnknownOption ErrorKind = iota
	// MissingOptionValue: a value-taking option was last on the line.
	MissingOptionValue
	// InvalidOptionValue: a value could not be converted to the declared
	// kind, or a flag option was given an attached value.
	InvalidOptionValue
	// MissingRequiredOption: a required option was not supplied.
	MissingRequiredOption
	// MissingPositionalArgument: too few tokens for the required slots.
	MissingPositionalArgument
	// UnexpectedPositionalArgument: tokens were left over and the schema has
	// no variadic slot (and does not allow extras).
	UnexpectedPositionalArgument
)

// String returns a stable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case UnknownOption:
		return "unknown option"
	case MissingOptionValue:
		return "missing option value"
	case InvalidOptionValue:
		return "invalid option value"
	case MissingRequiredOption:
		return "missing required option"
	case MissingPositionalArgument:
		return "missing positional argument"
	case UnexpectedPositionalArgument:
		return "unexpected positional argument"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is the single error produced by a failed parse. Option or Slot
// names the offending definition when one is known, Token is the offending
// input token, and Index its position in the argument vector (-1 when the
// error is not tied to a single token, as for missing options and slots).
type ParseError struct {
	Kind   ErrorKind
	Option string
	Slot   string
	Token  string
	Index  int
}

// Error formats the error for human consumption. The engine itself never
// prints; the host decides where this text goes.
func (e *ParseError) Error() string {
	switch e.Kind {
	case UnknownOption:
		return fmt.Sprintf(`unknown option "%s"`, e.Token)
	case MissingOptionValue:
		return fmt.Sprintf(`option "%s" requires a value`, e.Option)
	case InvalidOptionValue:
		return fmt.Sprintf(`invalid value "%s" for option "%s"`, e.Token, e.Option)
	case MissingRequiredOption:
		return fmt.Sprintf(`mandatory option not set: "%s"`, e.Option)
	case MissingPositionalArgument:
		return fmt.Sprintf(`missing argument "%s"`, e.Slot)
	case UnexpectedPositionalArgument:
		return fmt.Sprintf(`unexpected argument "%s"`, e.Token)
	}
	return "parse error"
}
