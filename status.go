package optparse

import (
	"fmt"
	"io"
	"strings"
)

// FprintStatus prints a one-line description of a failed token to w, prefixed with
// "command: " if command is not empty. Nothing is printed for StatusOK and StatusDone.
// The returned error is the error of writing to w.
func FprintStatus(w io.Writer, command string, token Token) error {
	msg := statusMessage(token)
	if msg == "" {
		return nil
	}
	if command != "" {
		msg = command + ": " + msg
	}
	_, err := fmt.Fprintln(w, msg)
	return err
}

func statusMessage(token Token) string {
	switch token.Status {
	case StatusUnknownOption:
		return fmt.Sprintf("unrecognized option '%s'", token.Arg)
	case StatusMissingValue:
		return fmt.Sprintf("option '%s' requires a value", token.Arg)
	case StatusMissingArgument:
		names := make([]string, 0, len(token.Choices)+1)
		for _, spec := range append([]*Spec{token.Spec}, token.Choices...) {
			names = append(names, displayName(spec))
		}
		return fmt.Sprintf("missing required argument '%s'", strings.Join(names, "' or '"))
	case StatusInvalidValue:
		name := token.Arg
		if token.Spec != nil && token.Spec.Kind.isPositional() {
			name = displayName(token.Spec)
		}
		if token.HasValue {
			return fmt.Sprintf("invalid value '%s' for '%s': %v", token.Value, name, token.Cause)
		}
		return fmt.Sprintf("invalid value for '%s': %v", name, token.Cause)
	default:
		return ""
	}
}

// displayName is "--name" or "-n" for options and the value name for positional args
func displayName(spec *Spec) string {
	switch {
	case spec == nil:
		return ""
	case spec.Kind.isPositional():
		if spec.ValueName != "" {
			return spec.ValueName
		}
		return spec.Name
	case spec.Name != "":
		return "--" + spec.Name
	case spec.Alias != 0:
		return "-" + string(spec.Alias)
	default:
		return spec.ValueName
	}
}
