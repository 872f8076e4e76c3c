package optparse

// Kind is the type of argument described by a Spec
type Kind int

const (
	// KindNone terminates a Specs table, following elements are ignored
	KindNone Kind = iota

	// KindBool sets its target to true when specified. An implicit negation
	// with "no-" prefix ("--no-debug") sets it to false.
	KindBool

	// KindSwitch sets its int target to SwitchValue when specified. Useful for
	// booleans without the implicit negation or for modes like "--read" / "--write"
	// sharing one target.
	KindSwitch

	// KindAccumulator increments its int target by SwitchValue (or by 1 if
	// SwitchValue is 0) every time it's specified, e.g. "-vvv".
	KindAccumulator

	// KindValue takes a value: "-n value", "-nvalue", "--name value" or "--name=value"
	KindValue

	// KindLiteral describes the bare "--" after which all arguments are literal
	KindLiteral

	// KindArg is a single positional argument. Positional specs are matched in
	// the order they are declared.
	KindArg

	// KindArgs collects all the remaining positional arguments
	KindArgs
)

// String returns the lowercase kind name, also used by the "optKind" tag
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindSwitch:
		return "switch"
	case KindAccumulator:
		return "accumulator"
	case KindValue:
		return "value"
	case KindLiteral:
		return "literal"
	case KindArg:
		return "arg"
	case KindArgs:
		return "args"
	default:
		return "unknown"
	}
}

func (k Kind) isPositional() bool {
	return k == KindArg || k == KindArgs
}

// isOption reports whether the kind is matched by "--name" or "-n"
func (k Kind) isOption() bool {
	switch k {
	case KindBool, KindSwitch, KindAccumulator, KindValue:
		return true
	}
	return false
}

// Usage contains additional parsing restrictions and presentation hints
type Usage uint32

// Has reports whether any of the usage bits is set
func (u Usage) Has(usage Usage) bool {
	return u&usage != 0
}

const (
	UsageDefault Usage = 0

	// UsageRequired means the argument (or one of its choice group) has to be given
	UsageRequired Usage = 1 << (iota - 1)

	// UsageChoice combines the spec with the previous one: one of them may be given.
	// Together with the UsageRequired spec it follows, it forms a required group.
	UsageChoice

	// UsageStopParsing short-circuits parsing of the remaining arguments. Useful for "--help"
	UsageStopParsing

	// UsageValueOptional makes the value of a KindValue spec optional ("-n" or "-n foo")
	UsageValueOptional

	// UsageHidden hides the argument in usage
	UsageHidden

	// UsageShowLong shows the long name instead of the short one in usage
	UsageShowLong
)

// Spec describes one recognized option or positional argument
type Spec struct {
	Kind Kind
	// Name is the long name ("--name") of an option or the name of a positional argument
	Name string
	// Alias is the short one-character name ("-n"), 0 if none
	Alias rune
	// Target receives the parsed value, its expected shape depends on Kind. Can be nil
	Target Target
	// SwitchValue is assigned by KindSwitch and added by KindAccumulator
	SwitchValue int
	Usage       Usage
	// ValueName names the value in usage and diagnostics
	ValueName string
	Help      string
}

func (s *Spec) accumulatorStep() int {
	if s.SwitchValue == 0 {
		return 1
	}
	return s.SwitchValue
}

// Specs is an ordered table of specs. A KindNone element terminates it.
type Specs []Spec

// active returns the part of the table before the KindNone sentinel
func (specs Specs) active() Specs {
	for i := range specs {
		if specs[i].Kind == KindNone {
			return specs[:i]
		}
	}
	return specs
}
