package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickconvert/quickconvert/internal/cli"
)

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := cli.NewRootCmd("test")

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"tui", "convert", "calc", "rates", "config", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestVersionCmd(t *testing.T) {
	isolate(t)

	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "test\n", out)

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestTUICmd_Validation(t *testing.T) {
	isolate(t)

	_, err := execute(t, "tui", "weather")
	require.Error(t, err)

	// go test never runs with a terminal on stdin and stdout.
	_, err = execute(t, "tui", "speed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
