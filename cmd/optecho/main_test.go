package main

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func testRun(args []string, expCode int, expStdout, expStderr string) func(t *testing.T) {
	return func(t *testing.T) {
		t.Helper()
		color.NoColor = true
		var stdout, stderr bytes.Buffer
		code := run("optecho", args, &stdout, &stderr)
		require.Equal(t, expCode, code)
		require.Equal(t, expStdout, stdout.String())
		require.Equal(t, expStderr, stderr.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestRun(t *testing.T) {
	t.Setenv("POSIXLY_CORRECT", "")
	// POSIXLY_CORRECT is set (even empty), disables GNU ordering
	t.Run("posix", testRun(
		[]string{"-vv", "in.txt", "-o", "out"},
		0,
		"accumulator -v\n"+
			"accumulator -v\n"+
			"arg file = \"in.txt\"\n"+
			"args rest = \"-o\"\n"+
			"args rest = \"out\"\n"+
			"verbose=2 output=\"\" file=\"in.txt\" rest=[\"-o\" \"out\"]\n",
		"",
	))
}

func TestRunGNU(t *testing.T) {
	t.Setenv("POSIXLY_CORRECT", "")
	require.NoError(t, os.Unsetenv("POSIXLY_CORRECT"))

	t.Run("intermixed", testRun(
		[]string{"in.txt", "--output=out", "a", "-v", "--no-color", "b"},
		0,
		"value --output = \"out\"\n"+
			"accumulator -v\n"+
			"bool --no-color\n"+
			"arg file = \"in.txt\"\n"+
			"args rest = \"a\"\n"+
			"args rest = \"b\"\n"+
			"verbose=1 output=\"out\" file=\"in.txt\" rest=[\"a\" \"b\"]\n",
		"",
	))

	t.Run("help", testRun(
		[]string{"--help", "--unknown"},
		0,
		"bool --help\n",
		"",
	))

	t.Run("failures", testRun(
		[]string{"--unknown", "-o"},
		1,
		"",
		"optecho: unrecognized option '--unknown'\n"+
			"optecho: option '-o' requires a value\n"+
			"optecho: missing required argument 'file'\n",
	))

	t.Run("color", func(t *testing.T) {
		defer func() { color.NoColor = true }()
		var stdout, stderr bytes.Buffer
		code := run("optecho", []string{"--color", "x"}, &stdout, &stderr)
		require.Equal(t, 0, code)
		require.Equal(t,
			"bool \x1b[36m--color\x1b[0m\n"+
				"arg \x1b[36mfile\x1b[0m = \"x\"\n"+
				"verbose=0 output=\"\" file=\"x\" rest=[]\n",
			stdout.String(),
		)
	})
}

func TestRunStderrClosed(t *testing.T) {
	color.NoColor = true
	var stdout bytes.Buffer
	require.Equal(t, 2, run("optecho", []string{"--unknown"}, &stdout, failingWriter{}))
	require.Empty(t, stdout.String())
}
