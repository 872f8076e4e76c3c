package optparse_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/cardinalby/go-optparse"
	"github.com/stretchr/testify/require"
)

type MyOptions struct {
	Verbose   int      `opt:"verbose,v" optUsage:"verbose mode: 1,2,3"`
	Login     string   `opt:"login" optValue:"user" optUsage:"user login"`
	DryRun    bool     `opt:"dry-run,n"`
	FileNames []string `optArgs:"files"`
}

func TestMyOptionsExample1(t *testing.T) {
	myOptions := MyOptions{}
	specs, err := optparse.SpecsFromStruct(&myOptions)
	require.NoError(t, err)
	require.NoError(t, specs.Validate())

	token := optparse.Parse(specs, []string{"-vvn", "--login", "user1", "file1", "file2"}, optparse.FlagsDefault)
	require.Equal(t, optparse.StatusDone, token.Status)
	require.Equal(t, 2, myOptions.Verbose)
	require.Equal(t, "user1", myOptions.Login)
	require.True(t, myOptions.DryRun)
	require.Equal(t, []string{"file1", "file2"}, myOptions.FileNames)
}

func TestMyOptionsExample2(t *testing.T) {
	myOptions := MyOptions{Verbose: 1, Login: "admin", DryRun: true}
	specs, err := optparse.SpecsFromStruct(&myOptions)
	require.NoError(t, err)

	token := optparse.Parse(specs, []string{"--no-dry-run", "--verbose"}, optparse.FlagsDefault)
	require.Equal(t, optparse.StatusDone, token.Status)
	require.Equal(t, 2, myOptions.Verbose)
	require.Equal(t, "admin", myOptions.Login)
	require.False(t, myOptions.DryRun)
	require.Empty(t, myOptions.FileNames)
}

func TestMyOptionsExample3(t *testing.T) {
	myOptions := MyOptions{}
	specs, err := optparse.SpecsFromStruct(&myOptions)
	require.NoError(t, err)

	token := optparse.Parse(specs, []string{"file1", "--login"}, optparse.FlagsForceGNU)
	require.Equal(t, optparse.StatusMissingValue, token.Status)
	require.ErrorIs(t, token.Err(), optparse.ErrMissingValue)
	require.EqualError(t, token.Err(), "option '--login' requires a value")
}

func ExampleParser_Tokens() {
	var verbose int
	var output string
	specs := optparse.Specs{
		{Kind: optparse.KindAccumulator, Name: "verbose", Alias: 'v', Target: optparse.IntVar(&verbose)},
		{Kind: optparse.KindValue, Name: "output", Alias: 'o', Target: optparse.StringVar(&output)},
		{Kind: optparse.KindArg, Name: "file", Usage: optparse.UsageRequired},
	}
	parser := optparse.NewParser(specs, []string{"-vvo", "out.txt", "--bad"}, optparse.FlagsDefault)
	parser.Tokens(func(token optparse.Token) bool {
		switch err := token.Err(); {
		case err != nil:
			fmt.Println("error:", err)
		case token.HasValue:
			fmt.Println("parsed:", token.Arg, token.Value)
		default:
			fmt.Println("parsed:", token.Arg)
		}
		return true
	})
	fmt.Println(verbose, output)

	// Output:
	// parsed: -v
	// parsed: -v
	// parsed: -o out.txt
	// error: unrecognized option '--bad'
	// error: missing required argument 'file'
	// 2 out.txt
}

func ExampleReorder() {
	specs := optparse.Specs{
		{Kind: optparse.KindBool, Alias: 'f'},
		{Kind: optparse.KindValue, Name: "name"},
	}
	fmt.Println(optparse.Reorder(specs, []string{"a", "-f", "b", "--name", "c", "--", "-d"}))

	// Output:
	// [-f --name c -- a b -d]
}

func ExampleFprintStatus() {
	specs := optparse.Specs{
		{Kind: optparse.KindSwitch, Name: "read", SwitchValue: 1, Usage: optparse.UsageRequired},
		{Kind: optparse.KindSwitch, Name: "write", SwitchValue: 2, Usage: optparse.UsageChoice},
	}
	token := optparse.Parse(specs, nil, optparse.FlagsDefault)
	_ = optparse.FprintStatus(os.Stdout, "app", token)

	// Output:
	// app: missing required argument '--read' or '--write'
}
