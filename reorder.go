package optparse

import (
	"slices"

	"github.com/cardinalby/go-optparse/cmdargs"
)

// Reorder returns a copy of args with options (and their separate values) moved before
// positional arguments, keeping the relative order of both. A "--" is moved before the
// positional arguments preceding it, everything after it is left as is.
// It is what parsing with FlagsForceGNU does to args in place.
// Parsed without GNU behavior, the result can differ if an option with an optional
// or a missing value ends up followed by a positional argument.
func Reorder(specs Specs, args []string) []string {
	specs = specs.active()
	res := slices.Clone(args)
	for i := 0; i < len(res); {
		token := cmdargs.Classify(res[i])
		switch {
		case token.Role.Has(cmdargs.RoleTerminator):
			return res
		case token.IsOption():
			i++
			if specs.takesSeparateValue(res, i-1) {
				i++
			}
		default:
			moved := specs.promoteNextOption(res, i)
			if moved == 0 || res[i] == cmdargs.Terminator {
				return res
			}
			// the moved block is complete, the arg following it is a positional
			i += moved
		}
	}
	return res
}

// promoteNextOption moves the next option following the positional args[at] to index `at`
// together with its separate value. If "--" is met first, it's moved instead.
// Returns the number of moved args, 0 if there is nothing to move.
func (specs Specs) promoteNextOption(args []string, at int) int {
	i, found := cmdargs.NextOption(args, at+1)
	if !found {
		return 0
	}
	count := 1
	if args[i] != cmdargs.Terminator && specs.takesSeparateValue(args, i) {
		count++
	}
	cmdargs.Promote(args, i, at, count)
	return count
}
