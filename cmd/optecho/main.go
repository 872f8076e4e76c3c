// Command optecho prints how its arguments are parsed, one line per argument.
//
//	optecho [-v]... [-o file] [--[no-]color] [-h] file [rest...]
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cardinalby/go-optparse"
	"github.com/fatih/color"
	"golang.org/x/term"
)

type options struct {
	verbose  int
	output   string
	colorize bool
	help     bool
	file     string
	rest     []string
}

func (o *options) specs() optparse.Specs {
	return optparse.Specs{
		{Kind: optparse.KindAccumulator, Name: "verbose", Alias: 'v', Target: optparse.IntVar(&o.verbose), Help: "increase verbosity"},
		{Kind: optparse.KindValue, Name: "output", Alias: 'o', Target: optparse.StringVar(&o.output), ValueName: "file", Help: "output file"},
		{Kind: optparse.KindBool, Name: "color", Target: optparse.BoolVar(&o.colorize), Help: "colorize errors, default if stderr is a terminal"},
		{Kind: optparse.KindBool, Name: "help", Alias: 'h', Target: optparse.BoolVar(&o.help), Usage: optparse.UsageStopParsing, Help: "show help"},
		{Kind: optparse.KindLiteral},
		{Kind: optparse.KindArg, Name: "file", Target: optparse.StringVar(&o.file), Usage: optparse.UsageRequired},
		{Kind: optparse.KindArgs, Name: "rest", Target: optparse.StringsVar(&o.rest)},
	}
}

func main() {
	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout, color.Error))
}

// run returns the exit code: 1 if parsing failed, 2 if diagnostics can't be written
func run(command string, args []string, stdout, stderr io.Writer) int {
	opts := options{colorize: isTerminal(stderr)}
	parser := optparse.NewParser(opts.specs(), args, optparse.FlagsGNU)

	var tokens []optparse.Token
	parser.Tokens(func(token optparse.Token) bool {
		tokens = append(tokens, token)
		return true
	})
	color.NoColor = !opts.colorize

	name := color.New(color.FgCyan).SprintFunc()
	failed := color.New(color.FgRed)
	exitCode := 0
	for _, token := range tokens {
		if token.Status != optparse.StatusOK {
			if _, err := failed.Fprintf(stderr, "%s: %v\n", command, token.Err()); err != nil {
				return 2
			}
			exitCode = 1
			continue
		}
		var line string
		switch {
		case token.Spec == nil:
			line = "unexpected " + name(token.Arg)
		case token.Spec.Kind == optparse.KindArg || token.Spec.Kind == optparse.KindArgs:
			line = fmt.Sprintf("%s %s", token.Spec.Kind, name(token.Spec.Name))
		default:
			line = fmt.Sprintf("%s %s", token.Spec.Kind, name(token.Arg))
		}
		if token.HasValue {
			line += fmt.Sprintf(" = %q", token.Value)
		}
		_, _ = fmt.Fprintln(stdout, line)
	}
	if exitCode == 0 && !opts.help {
		_, _ = fmt.Fprintf(stdout, "verbose=%d output=%q file=%q rest=%q\n", opts.verbose, opts.output, opts.file, opts.rest)
	}
	return exitCode
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
