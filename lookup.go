package optparse

import (
	"strings"

	"github.com/cardinalby/go-optparse/cmdargs"
)

const negationPrefix = "no-"

// specByName finds an option by its long name. If there is no exact match, a "no-" prefixed
// name matches KindBool spec without the prefix and isNegated is true.
func (specs Specs) specByName(name string) (spec *Spec, isNegated bool) {
	if name == "" {
		return nil, false
	}
	for i := range specs {
		if specs[i].Kind.isOption() && specs[i].Name == name {
			return &specs[i], false
		}
	}
	if negated, isPrefixed := strings.CutPrefix(name, negationPrefix); isPrefixed {
		for i := range specs {
			if specs[i].Kind == KindBool && specs[i].Name != "" && specs[i].Name == negated {
				return &specs[i], true
			}
		}
	}
	return nil, false
}

// specByAlias finds an option by its short name
func (specs Specs) specByAlias(alias rune) *Spec {
	if alias == 0 {
		return nil
	}
	for i := range specs {
		if specs[i].Kind.isOption() && specs[i].Alias == alias {
			return &specs[i]
		}
	}
	return nil
}

// positional returns the spec that receives a bare argument after `filled` positional
// specs have been satisfied. KindArgs spec is returned without being counted as filled.
func (specs Specs) positional(filled int) *Spec {
	n := 0
	for i := range specs {
		switch specs[i].Kind {
		case KindArgs:
			if n == filled {
				return &specs[i]
			}
		case KindArg:
			if n == filled {
				return &specs[i]
			}
			n++
		}
	}
	return nil
}

func (specs Specs) indexOf(spec *Spec) int {
	for i := range specs {
		if &specs[i] == spec {
			return i
		}
	}
	return -1
}

// takesSeparateValue reports whether the option at args[i] would consume args[i+1] as its value.
// Short clusters are examined up to the char that takes the rest of the cluster as a value.
func (specs Specs) takesSeparateValue(args []string, i int) bool {
	token := cmdargs.Classify(args[i])
	var spec *Spec
	switch {
	case token.Role.Has(cmdargs.RoleInline):
		return false
	case token.Role.Has(cmdargs.RoleLong):
		spec, _ = specs.specByName(token.Name)
	case token.Role.Has(cmdargs.RoleShort):
		for offset := 1; offset < len(token.Arg); {
			char, rest := cmdargs.ShortAt(token.Arg, offset)
			// unknown chars are reported and skipped by the parser
			if spec = specs.specByAlias(char); spec != nil && spec.Kind == KindValue {
				if rest != "" {
					return false
				}
				break
			}
			offset = len(token.Arg) - len(rest)
		}
	}
	if spec == nil || spec.Kind != KindValue || i+1 >= len(args) {
		return false
	}
	if spec.Usage.Has(UsageValueOptional) {
		return acceptsOptionalValue(args[i+1])
	}
	return true
}

// acceptsOptionalValue reports whether the arg following an option with optional value
// should be taken as the value
func acceptsOptionalValue(arg string) bool {
	return cmdargs.Classify(arg).Role.Has(cmdargs.RoleUnnamed)
}
