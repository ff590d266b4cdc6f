package commands

import (
	"io"
	"testing"

	"github.com/leapstack-labs/enginegen/internal/cli/config"
	"github.com/leapstack-labs/enginegen/internal/cli/output"
	clitestutil "github.com/leapstack-labs/enginegen/internal/cli/testutil"
	"github.com/leapstack-labs/enginegen/internal/testutil"
	"github.com/stretchr/testify/assert"
)

// newTestContext returns a CommandContext on default configuration whose
// renderer writes to buffers.
func newTestContext(t *testing.T, mode output.OutputMode) (*CommandContext, *clitestutil.TestRenderer) {
	t.Helper()
	tr := clitestutil.NewTestRenderer(mode, false)
	return &CommandContext{
		Cfg:      config.Default(),
		Logger:   testutil.NewTestLogger(t),
		Renderer: tr.Renderer,
	}, tr
}

func TestNewGenerateCommand(t *testing.T) {
	cmd := NewGenerateCommand()

	assert.Equal(t, "generate", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.Equal(t, []string{"gen"}, cmd.Aliases)

	flags := []string{"preset", "file", "cylinders", "style", "bank-angle", "name", "set", "fuel", "out"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
	assert.Equal(t, "O", cmd.Flags().Lookup("out").Shorthand)
}

func TestNewFiringOrderCommand(t *testing.T) {
	cmd := NewFiringOrderCommand()

	assert.Equal(t, "firing-order", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("cylinders"))
	assert.Equal(t, "inline", cmd.Flags().Lookup("style").DefValue)
}

func TestNewTimingCommand(t *testing.T) {
	cmd := NewTimingCommand()

	assert.Equal(t, "timing", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	for _, flag := range []string{"preset", "file", "cylinders", "style", "set"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewPresetsCommand(t *testing.T) {
	cmd := NewPresetsCommand()

	assert.Equal(t, "presets", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.Contains(t, cmd.Aliases, "list")
}

func TestNewFuelsCommand(t *testing.T) {
	cmd := NewFuelsCommand()

	assert.Equal(t, "fuels", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewPromptCommand(t *testing.T) {
	cmd := NewPromptCommand()

	assert.Equal(t, "prompt", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("out"))
}

func TestNewWatchCommand(t *testing.T) {
	cmd := NewWatchCommand()

	assert.Equal(t, "watch", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	for _, flag := range []string{"file", "preset", "fuel", "out"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewInitCommand(t *testing.T) {
	cmd := NewInitCommand()

	assert.Equal(t, "init [directory]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("force"))
	assert.NotNil(t, cmd.Flags().Lookup("example"))
}

func TestSourceFlagsMutuallyExclusive(t *testing.T) {
	config.ResetConfig()
	cmd := NewGenerateCommand()
	cmd.SetArgs([]string{"--preset", "i4", "--cylinders", "4"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	assert.Error(t, err)
}

func TestNewExportCommand(t *testing.T) {
	cmd := NewExportCommand()

	assert.Equal(t, "export [preset...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	for _, flag := range []string{"dir", "fuel", "jobs"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}
