package optparse

import (
	"errors"
	"fmt"
)

// Status is the outcome of parsing the most recent argument
type Status int

const (
	// StatusDone means parsing is complete, there are no more arguments
	StatusDone Status = iota

	// StatusOK means the argument was parsed and the target has been written
	StatusOK

	// StatusUnknownOption means the argument looks like an option but doesn't match any spec
	StatusUnknownOption

	// StatusMissingValue means a KindValue spec was matched but no value was provided
	StatusMissingValue

	// StatusMissingArgument means a required spec was not provided
	StatusMissingArgument

	// StatusInvalidValue means a FlagValue target rejected the value
	StatusInvalidValue
)

func (s Status) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusOK:
		return "ok"
	case StatusUnknownOption:
		return "unknown option"
	case StatusMissingValue:
		return "missing value"
	case StatusMissingArgument:
		return "missing argument"
	case StatusInvalidValue:
		return "invalid value"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

var ErrUnknownOption = errors.New("unrecognized option")
var ErrMissingValue = errors.New("option requires a value")
var ErrMissingArgument = errors.New("missing required argument")
var ErrInvalidValue = errors.New("invalid value")

// Token describes the argument parsed by the most recent Parser.Next call
type Token struct {
	Status Status
	// Spec that matched the argument, nil if none did
	Spec *Spec
	// Arg is the argument as it was given including dashes, e.g. "-f" or "--foo"
	Arg string
	// Value is the value of KindValue, KindArg and KindArgs specs if HasValue is true
	Value    string
	HasValue bool
	// Remaining is the number of arguments left including the current one for KindArgs
	// matches. On the StatusDone token it's the length of the collected list.
	Remaining int
	// Choices are the alternatives of the required Spec for StatusMissingArgument
	Choices []*Spec
	// Cause is the error returned by the target for StatusInvalidValue
	Cause error
}

// Err converts a failed token to *ParseError. Returns nil for StatusOK and StatusDone
func (t Token) Err() error {
	var sentinel error
	switch t.Status {
	case StatusUnknownOption:
		sentinel = ErrUnknownOption
	case StatusMissingValue:
		sentinel = ErrMissingValue
	case StatusMissingArgument:
		sentinel = ErrMissingArgument
	case StatusInvalidValue:
		sentinel = ErrInvalidValue
	default:
		return nil
	}
	return &ParseError{
		sentinel: sentinel,
		Token:    t,
	}
}

// ParseError is a failed Token wrapped as error. Use errors.Is with
// ErrUnknownOption, ErrMissingValue, ErrMissingArgument, ErrInvalidValue to check the reason
type ParseError struct {
	sentinel error
	Token    Token
}

func (e *ParseError) Error() string {
	return statusMessage(e.Token)
}

func (e *ParseError) Unwrap() []error {
	if e.Token.Cause != nil {
		return []error{e.sentinel, e.Token.Cause}
	}
	return []error{e.sentinel}
}
