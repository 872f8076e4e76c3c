package optparse

import (
	"os"
	"slices"

	"github.com/cardinalby/go-optparse/cmdargs"
)

// Flags change the parsing behavior
type Flags uint32

// Has reports whether any of the flag bits is set
func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

const (
	// FlagsDefault is POSIX behavior: the first positional argument ends options parsing
	FlagsDefault Flags = 0

	// FlagsGNU allows options to be intermixed with positional arguments ("file1 --help file2")
	// like GNU getopt_long does. The args slice is permuted in place: options are moved before
	// positional arguments. Ignored if POSIXLY_CORRECT environment variable is set.
	FlagsGNU Flags = 1 << (iota - 1)

	// FlagsForceGNU is FlagsGNU that ignores POSIXLY_CORRECT environment variable
	FlagsForceGNU
)

const posixlyCorrectEnv = "POSIXLY_CORRECT"

// Parser parses args one by one according to specs. It's not safe for concurrent use.
// Specs are never modified and can be shared between parsers.
type Parser struct {
	specs Specs
	args  []string

	// idx is the index of the next unconsumed arg
	idx int
	// inShort is the byte offset of the next char in the short options cluster args[idx],
	// 0 if not in a cluster
	inShort int
	// argIdx is the number of satisfied KindArg specs
	argIdx int
	// inArgs is the KindArgs spec collecting the remaining args
	inArgs  *Spec
	argsLen int
	// valueStop is the index of the positional arg that follows the last promoted
	// option in GNU mode. It can't be taken as a value of the option.
	valueStop int

	inLiteral   bool
	optionsDone bool
	needsSort   bool
	stopped     bool

	// given and reported are indexed as specs
	given    []bool
	reported []bool
}

// NewParser creates a parser of args. With FlagsGNU or FlagsForceGNU args can be permuted
// in place during parsing, the caller must not access args until parsing is finished.
func NewParser(specs Specs, args []string, flags Flags) *Parser {
	specs = specs.active()
	p := &Parser{
		specs:    specs,
		args:     args,
		given:    make([]bool, len(specs)),
		reported: make([]bool, len(specs)),
	}
	switch {
	case flags.Has(FlagsForceGNU):
		p.needsSort = true
	case flags.Has(FlagsGNU):
		_, isPosixlyCorrect := os.LookupEnv(posixlyCorrectEnv)
		p.needsSort = !isPosixlyCorrect
	}
	return p
}

// Args returns the args being parsed. With GNU behavior they can be reordered.
func (p *Parser) Args() []string {
	return p.args
}

// Next parses the next argument, writes the target of the matched spec and returns the result.
// After StatusDone is returned, all following calls return StatusDone.
func (p *Parser) Next() Token {
	if p.stopped {
		return p.done()
	}
	if p.inShort > 0 {
		return p.parseShort()
	}
	if p.idx >= len(p.args) {
		return p.finish()
	}
	if p.inLiteral || p.optionsDone || p.inArgs != nil {
		return p.parseArg()
	}

	token := cmdargs.Classify(p.args[p.idx])
	switch {
	case token.Role.Has(cmdargs.RoleTerminator):
		p.inLiteral = true
		p.idx++
		return p.Next()
	case token.Role.Has(cmdargs.RoleLong):
		return p.parseLong(token)
	case token.Role.Has(cmdargs.RoleShort):
		p.inShort = 1
		return p.parseShort()
	}

	if p.needsSort {
		if moved := p.specs.promoteNextOption(p.args, p.idx); moved > 0 {
			p.valueStop = p.idx + moved
			return p.Next()
		}
	}
	p.optionsDone = true
	return p.parseArg()
}

// Tokens iterates over parsed arguments until StatusDone. Failed tokens are
// yielded too, iteration can be continued after them.
func (p *Parser) Tokens(yield func(token Token) bool) {
	for {
		token := p.Next()
		if token.Status == StatusDone || !yield(token) {
			return
		}
	}
}

func (p *Parser) parseLong(arg cmdargs.Token) Token {
	p.idx++
	spec, isNegated := p.specs.specByName(arg.Name)
	if spec == nil {
		return Token{
			Status: StatusUnknownOption,
			Arg:    arg.Arg,
		}
	}
	res := Token{
		Status: StatusOK,
		Spec:   spec,
		Arg:    "--" + arg.Name,
	}
	if spec.Kind == KindValue {
		switch {
		case arg.Role.Has(cmdargs.RoleInline):
			res.Value, res.HasValue = arg.Value, true
		case !p.takeValue(&res):
			return res
		}
	}
	// "=value" of other kinds is ignored
	return p.apply(res, isNegated)
}

func (p *Parser) parseShort() Token {
	arg := p.args[p.idx]
	char, rest := cmdargs.ShortAt(arg, p.inShort)
	if rest == "" {
		p.inShort = 0
		p.idx++
	} else {
		p.inShort = len(arg) - len(rest)
	}

	spec := p.specs.specByAlias(char)
	res := Token{
		Status: StatusOK,
		Spec:   spec,
		Arg:    "-" + string(char),
	}
	if spec == nil {
		res.Status = StatusUnknownOption
		return res
	}
	if spec.Kind == KindValue {
		if rest != "" {
			res.Value, res.HasValue = rest, true
			p.inShort = 0
			p.idx++
		} else if !p.takeValue(&res) {
			return res
		}
	}
	return p.apply(res, false)
}

// takeValue consumes the next arg as a value of the matched KindValue spec.
// Returns false if the value is missing and res is failed.
func (p *Parser) takeValue(res *Token) bool {
	hasNext := p.idx < len(p.args) && p.idx != p.valueStop
	if res.Spec.Usage.Has(UsageValueOptional) {
		if hasNext && acceptsOptionalValue(p.args[p.idx]) {
			res.Value, res.HasValue = p.args[p.idx], true
			p.idx++
		}
		return true
	}
	if !hasNext {
		res.Status = StatusMissingValue
		return false
	}
	res.Value, res.HasValue = p.args[p.idx], true
	p.idx++
	return true
}

func (p *Parser) parseArg() Token {
	arg := p.args[p.idx]
	p.idx++
	res := Token{
		Status:   StatusOK,
		Arg:      arg,
		Value:    arg,
		HasValue: true,
	}

	if p.inArgs != nil {
		res.Spec = p.inArgs
		res.Remaining = len(p.args) - p.idx + 1
		return p.complete(res, appendString(res.Spec.Target, arg))
	}

	spec := p.specs.positional(p.argIdx)
	if spec == nil {
		// not expected by specs, the caller decides
		res.Value, res.HasValue = "", false
		return res
	}
	res.Spec = spec
	if spec.Kind == KindArgs {
		p.inArgs = spec
		p.argsLen = len(p.args) - p.idx + 1
		res.Remaining = p.argsLen
		return p.complete(res, writeStrings(spec.Target, slices.Clone(p.args[p.idx-1:])))
	}
	p.argIdx++
	return p.apply(res, false)
}

// apply writes the matched spec target
func (p *Parser) apply(res Token, isNegated bool) Token {
	spec := res.Spec
	var err error
	switch spec.Kind {
	case KindBool:
		err = writeBool(spec.Target, !isNegated)
	case KindSwitch:
		err = writeSwitch(spec.Target, spec.SwitchValue)
	case KindAccumulator:
		err = writeAccumulate(spec.Target, spec.accumulatorStep())
	case KindValue, KindArg:
		if res.HasValue {
			err = writeString(spec.Target, res.Value)
		}
	}
	return p.complete(res, err)
}

func (p *Parser) complete(res Token, writeErr error) Token {
	if writeErr != nil {
		res.Status = StatusInvalidValue
		res.Cause = writeErr
		return res
	}
	if i := p.specs.indexOf(res.Spec); i >= 0 {
		p.given[i] = true
	}
	if res.Spec.Usage.Has(UsageStopParsing) {
		p.stopped = true
	}
	return res
}

// finish reports not given required specs one by one and then StatusDone
func (p *Parser) finish() Token {
	for i := range p.specs {
		if !p.specs[i].Usage.Has(UsageRequired) || p.reported[i] {
			continue
		}
		p.reported[i] = true
		choices, isGiven := p.requiredGroup(i)
		if !isGiven {
			return Token{
				Status:  StatusMissingArgument,
				Spec:    &p.specs[i],
				Choices: choices,
			}
		}
	}
	return p.done()
}

// requiredGroup returns the UsageChoice specs following the required spec `i`
// and whether any spec of the group was given
func (p *Parser) requiredGroup(i int) (choices []*Spec, isGiven bool) {
	isGiven = p.given[i]
	for j := i + 1; j < len(p.specs) && p.specs[j].Usage.Has(UsageChoice); j++ {
		choices = append(choices, &p.specs[j])
		isGiven = isGiven || p.given[j]
	}
	return choices, isGiven
}

func (p *Parser) done() Token {
	return Token{
		Status:    StatusDone,
		Remaining: p.argsLen,
	}
}
