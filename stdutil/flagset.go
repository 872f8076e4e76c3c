package stdutil

import (
	"flag"
	"unicode/utf8"

	"github.com/cardinalby/go-optparse"
)

type boolFlag interface {
	IsBoolFlag() bool
}

// Specs converts flags defined in flagSet to specs in lexicographical order.
// One-character flag names become aliases ("-v"), others are long names ("--verbose").
// Bool flags become KindBool specs (supporting "--no-" negation), others are KindValue.
// Values are set through flagSet.Set, so flagSet.Visit reports the parsed flags.
func Specs(flagSet *flag.FlagSet) optparse.Specs {
	var specs optparse.Specs
	flagSet.VisitAll(func(f *flag.Flag) {
		valueName, usage := flag.UnquoteUsage(f)
		spec := optparse.Spec{
			Kind:      optparse.KindValue,
			Target:    optparse.FlagValue(flagSetValue{flagSet: flagSet, f: f}),
			ValueName: valueName,
			Help:      usage,
		}
		if isBoolFlag(f) {
			spec.Kind = optparse.KindBool
			spec.ValueName = ""
		}
		if utf8.RuneCountInString(f.Name) == 1 {
			spec.Alias, _ = utf8.DecodeRuneInString(f.Name)
		} else {
			spec.Name = f.Name
		}
		specs = append(specs, spec)
	})
	return specs
}

// flagSetValue sets the flag through its FlagSet to mark it as actually set
type flagSetValue struct {
	flagSet *flag.FlagSet
	f       *flag.Flag
}

func (v flagSetValue) String() string {
	return v.f.Value.String()
}

func (v flagSetValue) Set(value string) error {
	return v.flagSet.Set(v.f.Name, value)
}

func (v flagSetValue) IsBoolFlag() bool {
	return isBoolFlag(v.f)
}

func isBoolFlag(f *flag.Flag) bool {
	if bf, ok := f.Value.(boolFlag); ok {
		return bf.IsBoolFlag()
	}
	return false
}
