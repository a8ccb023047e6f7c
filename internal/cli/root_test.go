package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abba-01/nu-algebra/internal/cli"
)

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return buf.String(), err
}

// TestRoot_Help verifies the command tree registers both subcommands.
func TestRoot_Help(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "generate")
	assert.Contains(t, out, "demo")
}

// TestRoot_UnknownCommand verifies unknown subcommands fail.
func TestRoot_UnknownCommand(t *testing.T) {
	_, err := execute(t, "frobnicate")
	assert.Error(t, err)
}
