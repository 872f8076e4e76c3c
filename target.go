package optparse

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Target is a destination for a parsed value. It's one of:
//   - BoolVar: for KindBool
//   - IntVar: for KindSwitch, KindAccumulator
//   - StringVar: for KindValue, KindArg
//   - StringsVar: for KindArgs
//   - FlagValue: for any kind, the value is passed to flag.Value.Set
type Target interface {
	target()
}

type boolTarget struct{ p *bool }

type intTarget struct{ p *int }

type stringTarget struct{ p *string }

type stringsTarget struct{ p *[]string }

type flagValueTarget struct{ v flag.Value }

func (boolTarget) target()      {}
func (intTarget) target()       {}
func (stringTarget) target()    {}
func (stringsTarget) target()   {}
func (flagValueTarget) target() {}

// BoolVar makes a target for KindBool
func BoolVar(p *bool) Target {
	return boolTarget{p: p}
}

// IntVar makes a target for KindSwitch and KindAccumulator
func IntVar(p *int) Target {
	return intTarget{p: p}
}

// StringVar makes a target for KindValue and KindArg
func StringVar(p *string) Target {
	return stringTarget{p: p}
}

// StringsVar makes a target for KindArgs that receives a copy of the remaining args
func StringsVar(p *[]string) Target {
	return stringsTarget{p: p}
}

// FlagValue makes a target from std flag.Value (or pflag-like Value implementing the same methods)
func FlagValue(v flag.Value) Target {
	return flagValueTarget{v: v}
}

// fitsKind reports whether the target shape is able to receive values of the kind
func fitsKind(t Target, kind Kind) bool {
	switch t.(type) {
	case nil, flagValueTarget:
		return true
	case boolTarget:
		return kind == KindBool
	case intTarget:
		return kind == KindSwitch || kind == KindAccumulator
	case stringTarget:
		return kind == KindValue || kind == KindArg
	case stringsTarget:
		return kind == KindArgs
	}
	return false
}

func writeBool(t Target, value bool) error {
	switch t := t.(type) {
	case boolTarget:
		if t.p != nil {
			*t.p = value
		}
	case flagValueTarget:
		return t.v.Set(strconv.FormatBool(value))
	}
	return nil
}

func writeSwitch(t Target, value int) error {
	switch t := t.(type) {
	case intTarget:
		if t.p != nil {
			*t.p = value
		}
	case flagValueTarget:
		return t.v.Set(strconv.Itoa(value))
	}
	return nil
}

func writeAccumulate(t Target, step int) error {
	switch t := t.(type) {
	case intTarget:
		if t.p != nil {
			*t.p += step
		}
	case flagValueTarget:
		current := 0
		if str := strings.TrimSpace(t.v.String()); str != "" {
			var err error
			if current, err = strconv.Atoi(str); err != nil {
				return fmt.Errorf("current value is not an int: %w", err)
			}
		}
		return t.v.Set(strconv.Itoa(current + step))
	}
	return nil
}

func writeString(t Target, value string) error {
	switch t := t.(type) {
	case stringTarget:
		if t.p != nil {
			*t.p = value
		}
	case flagValueTarget:
		return t.v.Set(value)
	}
	return nil
}

// writeStrings assigns the list of positional args. flag.Value receives the first one,
// the following ones are passed by appendString as they are parsed.
func writeStrings(t Target, values []string) error {
	switch t := t.(type) {
	case stringsTarget:
		if t.p != nil {
			*t.p = values
		}
	case flagValueTarget:
		if len(values) > 0 {
			return t.v.Set(values[0])
		}
	}
	return nil
}

func appendString(t Target, value string) error {
	if t, ok := t.(flagValueTarget); ok {
		return t.v.Set(value)
	}
	return nil
}
