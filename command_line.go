package optparse

import (
	"os"
	"path/filepath"
)

// ParseCommandLine parses the command-line arguments os.Args[1:]. See Parse.
// With GNU behavior os.Args can be reordered.
func ParseCommandLine(specs Specs, flags Flags) Token {
	var args []string
	if len(os.Args) > 1 {
		args = os.Args[1:]
	}
	return Parse(specs, args, flags)
}

// PrintStatus prints the failed token to stderr using the program name as a command.
// See FprintStatus
func PrintStatus(token Token) error {
	return FprintStatus(os.Stderr, commandName(), token)
}

func commandName() string {
	if len(os.Args) == 0 {
		return ""
	}
	return filepath.Base(os.Args[0])
}
