package commands

import (
	"encoding/json"
	"testing"

	"github.com/leapstack-labs/enginegen/internal/cli/output"
	clitestutil "github.com/leapstack-labs/enginegen/internal/cli/testutil"
	"github.com/leapstack-labs/enginegen/pkg/fuel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPresetsMarkdown(t *testing.T) {
	_, tr := newTestContext(t, output.ModeMarkdown)

	require.NoError(t, runPresets(tr.Renderer))

	out := tr.Output()
	assert.Contains(t, out, "# Presets")
	assert.Contains(t, out, "| Name | Cylinders | Banks | Description |")
	for _, name := range []string{"I4", "I6", "V8", "V24", "V69"} {
		assert.Contains(t, out, "| "+name+" |")
	}
}

func TestRunPresetsJSON(t *testing.T) {
	_, tr := newTestContext(t, output.ModeJSON)

	require.NoError(t, runPresets(tr.Renderer))
	clitestutil.AssertOutputMode(t, tr, output.ModeJSON)

	var got []presetInfo
	require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &got))
	require.Len(t, got, 5)
	assert.Equal(t, "I4", got[0].Name)
	assert.Equal(t, 4, got[0].Cylinders)
	assert.Equal(t, []int{1, 3, 4, 2}, got[0].FiringOrder)
	assert.Equal(t, []float64{-45, 45}, got[2].BankAngles)
}

func TestRunFuels(t *testing.T) {
	_, tr := newTestContext(t, output.ModeMarkdown)
	require.NoError(t, runFuels(tr.Renderer))
	for _, name := range fuel.Names() {
		assert.Contains(t, tr.Output(), "| "+name+" |")
	}

	_, tr = newTestContext(t, output.ModeJSON)
	require.NoError(t, runFuels(tr.Renderer))
	clitestutil.AssertOutputMode(t, tr, output.ModeJSON)

	var got []fuel.Fuel
	require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &got))
	require.Len(t, got, len(fuel.Names()))
	assert.Equal(t, "gasoline", got[0].Name)
	assert.InDelta(t, 48.1, got[0].EnergyDensity, 1e-9)
}

func TestTruncateOneLine(t *testing.T) {
	assert.Equal(t, "short", truncateOneLine("short", 10))
	assert.Equal(t, "a b", truncateOneLine("a\nb", 10))
	assert.Equal(t, "abcdefg...", truncateOneLine("abcdefghijklmnop", 10))
}
