package cmdargs

import (
	"strings"
	"unicode/utf8"
)

type Role int

func (r Role) Has(role Role) bool {
	return r&role != 0
}

const (
	RoleLong       Role = 1 << iota // "--name" or "--name=value"
	RoleShort                       // "-x" or a cluster like "-xyz"
	RoleInline                      // modifies RoleLong, contains Value
	RoleUnnamed                     // bare argument, "-" included
	RoleTerminator                  // "--"
)

const Terminator = "--"

type Token struct {
	Arg string
	// Name is the long option name without dashes and without "=value" for RoleLong,
	// and the whole cluster without the leading dash for RoleShort
	Name  string
	Value string
	// Role is sum of Role constants. Possible values:
	// RoleLong               // "--name"
	// RoleLong | RoleInline  // "--name=value", "--name="
	// RoleShort              // "-x", "-xyz", "-nvalue"
	// RoleUnnamed
	// RoleTerminator
	Role Role
}

// IsOption reports whether the token looks like an option (long or short)
func (t Token) IsOption() bool {
	return t.Role.Has(RoleLong | RoleShort)
}

// Classify determines the lexical role of a single raw argument.
// It doesn't know anything about the recognized options.
func Classify(arg string) Token {
	token := Token{
		Arg: arg,
	}
	switch {
	case len(arg) < 2 || arg[0] != '-':
		token.Role = RoleUnnamed
	case arg == Terminator:
		token.Role = RoleTerminator
	case arg[1] == '-':
		token.Role = RoleLong
		name, value, hasValue := strings.Cut(arg[2:], "=")
		token.Name = name
		if hasValue {
			token.Value = value
			token.Role |= RoleInline
		}
	default:
		token.Role = RoleShort
		token.Name = arg[1:]
	}
	return token
}

// IsOption reports whether arg looks like an option. "-" and "--" are not options
func IsOption(arg string) bool {
	return Classify(arg).IsOption()
}

// ShortAt decodes the short option character starting at byte `offset` of a short
// cluster arg (offset 1 is the first character after the dash).
// `rest` is the remainder of the cluster after the character.
func ShortAt(arg string, offset int) (char rune, rest string) {
	if offset >= len(arg) {
		return utf8.RuneError, ""
	}
	char, size := utf8.DecodeRuneInString(arg[offset:])
	return char, arg[offset+size:]
}
