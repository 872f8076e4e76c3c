package optparse

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSpec = errors.New("invalid spec")

// Validate checks the table for the mistakes the parser doesn't detect: duplicated names
// and aliases, targets not fitting the kind, positional specs following KindArgs.
// Parser never calls it, the behavior of parsing with an invalid table is unspecified.
func (specs Specs) Validate() error {
	var errs []error
	addErr := func(i int, format string, a ...any) {
		errs = append(errs, fmt.Errorf("%w: spec %d %s: %s", ErrInvalidSpec, i, specs[i].describe(), fmt.Sprintf(format, a...)))
	}
	names := make(map[string]int)
	aliases := make(map[rune]int)
	argsIndex := -1

	for i, spec := range specs.active() {
		if !fitsKind(spec.Target, spec.Kind) {
			addErr(i, "%s target can't receive %s values", targetName(spec.Target), spec.Kind)
		}
		switch {
		case spec.Kind.isOption():
			if spec.Name == "" && spec.Alias == 0 {
				addErr(i, "option has neither name nor alias")
			}
			if strings.HasPrefix(spec.Name, "-") || strings.Contains(spec.Name, "=") {
				addErr(i, `name can't start with "-" or contain "="`)
			}
			if spec.Alias == '-' {
				addErr(i, `alias can't be "-"`)
			}
			if prev, has := names[spec.Name]; has && spec.Name != "" {
				addErr(i, "name is already used by spec %d", prev)
			} else if spec.Name != "" {
				names[spec.Name] = i
			}
			if prev, has := aliases[spec.Alias]; has && spec.Alias != 0 {
				addErr(i, "alias is already used by spec %d", prev)
			} else if spec.Alias != 0 {
				aliases[spec.Alias] = i
			}
		case spec.Kind.isPositional():
			if argsIndex >= 0 {
				addErr(i, "positional spec follows args spec %d", argsIndex)
			}
			if spec.Kind == KindArgs {
				argsIndex = i
			}
		case spec.Kind == KindLiteral:
		default:
			addErr(i, "unknown kind %d", int(spec.Kind))
		}
	}
	return errors.Join(errs...)
}

func (s *Spec) describe() string {
	if name := displayName(s); name != "" {
		return fmt.Sprintf(`"%s" (%s)`, name, s.Kind)
	}
	return fmt.Sprintf("(%s)", s.Kind)
}

func targetName(t Target) string {
	switch t.(type) {
	case nil:
		return "nil"
	case boolTarget:
		return "bool"
	case intTarget:
		return "int"
	case stringTarget:
		return "string"
	case stringsTarget:
		return "strings"
	case flagValueTarget:
		return "flag.Value"
	}
	return fmt.Sprintf("%T", t)
}
