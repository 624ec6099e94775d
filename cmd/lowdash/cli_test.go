package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-lowdash/catalog"
	"github.com/hasbyte1/go-lowdash/regex"
	"github.com/hasbyte1/go-lowdash/validate"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	rootCommand := newRootCommand()
	var commandOutput bytes.Buffer
	rootCommand.SetOut(&commandOutput)
	rootCommand.SetErr(io.Discard)
	rootCommand.SetArgs(args)
	executeError := rootCommand.Execute()
	return commandOutput.String(), executeError
}

func TestListPrintsSignatures(t *testing.T) {
	output, err := executeCommand(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Contains(t, lines, "take(array sequence, [n int])")
	require.Contains(t, lines, "difference(array sequence, values ...any)")
	require.Contains(t, lines, "find_index(array sequence, fn predicate)")
	require.Len(t, lines, len(catalog.New().Names()))
}

func TestCallDecodesJSONArguments(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"difference", []string{"call", "difference", "[1,2,3,4,5]", "[2,3,4]"}, "[1,5]\n"},
		{"chunks", []string{"call", "chunks", "[1,2,3]", "2"}, "[[1,2],[3]]\n"},
		{"bare word", []string{"call", "upper", "hello"}, "\"HELLO\"\n"},
		{"float", []string{"call", "uniq", "[1, 1.0, 1.5]"}, "[1,1.5]\n"},
		{"nested", []string{"call", "flatten", `[[1,[2]],{"a":1}]`}, "[1,2,{\"a\":1}]\n"},
		{"from_pairs", []string{"call", "from_pairs", `[["a",1],["b",2],["a",3]]`}, "{\"a\":3,\"b\":2}\n"},
		{"keywords", []string{"call", "shorten", `"hello world"`, "--kw", "length=5", "--kw", "sep=~"}, "\"hello~\"\n"},
		{"head of empty", []string{"call", "head", "[]"}, "null\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			output, err := executeCommand(t, c.args...)
			require.NoError(t, err)
			require.Equal(t, c.want, output)
		})
	}
}

func TestCallBindsRegexLiterals(t *testing.T) {
	output, err := executeCommand(t, "call", "filter", `["apple","kiwi","Avocado"]`, "/^a/i")
	require.NoError(t, err)
	require.Equal(t, "[\"apple\",\"Avocado\"]\n", output)

	output, err = executeCommand(t, "call", "find_last_index", "[10, 21, 30]", "/0$/")
	require.NoError(t, err)
	require.Equal(t, "2\n", output)

	output, err = executeCommand(t, "call", "map", `["a-b-c"]`, "--kw", "fn=/-/g", "--repl", "+")
	require.NoError(t, err)
	require.Equal(t, "[\"a+b+c\"]\n", output)

	_, err = executeCommand(t, "call", "filter", "[1]", "/x/q")
	require.ErrorIs(t, err, regex.ErrInvalidLiteral)
}

func TestCallReportsCatalogErrors(t *testing.T) {
	_, err := executeCommand(t, "call", "chunks", `"abc"`, "2")
	require.ErrorIs(t, err, validate.ErrTypeMismatch)

	_, err = executeCommand(t, "call", "drop", "[1]")
	require.ErrorIs(t, err, validate.ErrMissingArgument)

	_, err = executeCommand(t, "call", "nope")
	require.ErrorIs(t, err, catalog.ErrFunctionNotFound)

	_, err = executeCommand(t, "call", "take", "[1]", "--kw", "n")
	require.ErrorIs(t, err, validate.ErrInvalidArgument)
}

func TestCallYAMLOutput(t *testing.T) {
	output, err := executeCommand(t, "--format", "yaml", "call", "from_pairs", `[["b",2],["a",1]]`)
	require.NoError(t, err)
	require.Equal(t, "a: 1\nb: 2\n", output)

	_, err = executeCommand(t, "--format", "xml", "list")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSeedMakesShuffleReproducible(t *testing.T) {
	args := []string{"--seed", "lowdash", "call", "shuffle", "[1,2,3,4,5,6,7,8,9,10]"}
	first, err := executeCommand(t, args...)
	require.NoError(t, err)
	second, err := executeCommand(t, args...)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestConfigDefaultsAndFormat(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "lowdash.yml")
	configData := "format: yaml\nlog: [error]\ndefaults:\n  take:\n    n: 2\n"
	require.NoError(t, os.WriteFile(configPath, []byte(configData), 0o644))

	output, err := executeCommand(t, "--config", configPath, "call", "take", "[1,2,3]")
	require.NoError(t, err)
	require.Equal(t, "- 1\n- 2\n", output)

	output, err = executeCommand(t, "--config", configPath, "--format", "json", "call", "take", "[1,2,3]", "3")
	require.NoError(t, err)
	require.Equal(t, "[1,2,3]\n", output)
}

func TestMissingExplicitConfigFails(t *testing.T) {
	_, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "absent.yml"), "list")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRegexCommands(t *testing.T) {
	output, err := executeCommand(t, "regex", "find", "/o/g", "foo boo")
	require.NoError(t, err)
	require.Equal(t, "[\"o\",\"o\",\"o\",\"o\"]\n", output)

	output, err = executeCommand(t, "regex", "replace", "/(o+)/", "foo boo", "[$1]")
	require.NoError(t, err)
	require.Equal(t, "\"f[oo] boo\"\n", output)

	output, err = executeCommand(t, "regex", "find", "b.", "abc")
	require.NoError(t, err)
	require.Equal(t, "[\"bc\"]\n", output)
}

func TestCallRejectsKeysCollidingAsText(t *testing.T) {
	for range 20 {
		_, err := executeCommand(t, "call", "from_pairs", `[[1,"a"],["1","b"]]`)
		require.ErrorIs(t, err, ErrKeyCollision)
	}

	output, err := executeCommand(t, "call", "from_pairs", `[[1,"a"],[1.0,"b"]]`)
	require.NoError(t, err)
	require.Equal(t, "{\"1\":\"b\"}\n", output)
}

func TestCallAcceptsIntegralFloats(t *testing.T) {
	output, err := executeCommand(t, "call", "nth", "[10,20,30]", "1e0")
	require.NoError(t, err)
	require.Equal(t, "20\n", output)

	output, err = executeCommand(t, "call", "take", "[1,2,3]", "--kw", "n=2.0")
	require.NoError(t, err)
	require.Equal(t, "[1,2]\n", output)

	_, err = executeCommand(t, "call", "nth", "[10,20,30]", "1.5")
	require.ErrorIs(t, err, validate.ErrTypeMismatch)
}
