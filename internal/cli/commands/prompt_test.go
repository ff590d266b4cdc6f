package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/enginegen/internal/cli/output"
	"github.com/leapstack-labs/enginegen/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers prompts from a fixed list. An empty answer
// takes the default, as a bare Enter does.
type scriptedPrompter struct {
	answers []string
	labels  []string
	closed  bool
}

func (p *scriptedPrompter) Prompt(label, def string) (string, error) {
	p.labels = append(p.labels, label)
	if len(p.answers) == 0 {
		return "", errPromptAborted
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	if a == "" {
		return def, nil
	}
	return a, nil
}

func (p *scriptedPrompter) Close() error {
	p.closed = true
	return nil
}

func TestAskEngineDefaults(t *testing.T) {
	cc, _ := newTestContext(t, output.ModeMarkdown)
	// Name, six floats, two ints, idle throttle, style, cylinders, fuel.
	p := &scriptedPrompter{answers: make([]string, 13)}

	ans, err := askEngine(cc, p)
	require.NoError(t, err)

	def := core.DefaultParams()
	assert.Equal(t, def.Name, ans.Params.Name)
	assert.InDelta(t, def.StarterTorque, ans.Params.StarterTorque, 1e-9)
	assert.InDelta(t, def.CrankMass, ans.Params.CrankMass, 1e-9)
	assert.InDelta(t, def.Bore, ans.Params.Bore, 1e-9)
	assert.Equal(t, def.SimulationFrequency, ans.Params.SimulationFrequency)
	assert.Equal(t, core.StyleInline, ans.Style)
	assert.Equal(t, 4, ans.Cylinders)
	assert.Equal(t, "gasoline", ans.Fuel)
	assert.Len(t, p.labels, 13)
}

func TestAskEngineRetriesInvalidAnswers(t *testing.T) {
	cc, tr := newTestContext(t, output.ModeMarkdown)
	p := &scriptedPrompter{answers: []string{
		"Hemi",
		"-5", "350", // starter torque: negative is rejected
		"", "99.5", "", "", "",
		"fast", "9000", // simulation frequency: not a number
		"", "",
		"w", "v", // style
		"3", "8", // cylinders: a V needs four
		"kerosene", "nitro", // fuel
	}}

	ans, err := askEngine(cc, p)
	require.NoError(t, err)

	assert.Equal(t, "Hemi", ans.Params.Name)
	assert.InDelta(t, 350, ans.Params.StarterTorque, 1e-9)
	assert.InDelta(t, 99.5, ans.Params.Bore, 1e-9)
	assert.Equal(t, 9000, ans.Params.SimulationFrequency)
	assert.Equal(t, core.StyleV, ans.Style)
	assert.Equal(t, 8, ans.Cylinders)
	assert.Equal(t, "nitro", ans.Fuel)

	errOut := tr.ErrorOutput()
	assert.Contains(t, errOut, `"-5" is not a non-negative number`)
	assert.Contains(t, errOut, `"fast" is not a whole number`)
	assert.Contains(t, errOut, "invalid layout style")
	assert.Contains(t, errOut, "unknown fuel type")
}

func TestAskEngineAborted(t *testing.T) {
	cc, _ := newTestContext(t, output.ModeMarkdown)
	p := &scriptedPrompter{answers: []string{"Half"}}

	_, err := askEngine(cc, p)
	assert.ErrorIs(t, err, errPromptAborted)
}

func TestRunPromptWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.mr")
	cc, tr := newTestContext(t, output.ModeMarkdown)
	p := &scriptedPrompter{answers: []string{
		"Prompted V6", "", "", "92", "", "", "", "", "", "", "v", "6", "e85",
	}}

	require.NoError(t, runPrompt(cc, p, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `name: "Prompted V6"`)
	assert.Contains(t, out, "label bore(92 * units.mm)")
	assert.Contains(t, out, `name: "e85"`)
	assert.Contains(t, tr.Output(), "Prompted V6: 6 cylinders in 2 bank(s)")
}

func TestRunPromptClosedIdleThrottle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed.mr")
	cc, _ := newTestContext(t, output.ModeMarkdown)
	p := &scriptedPrompter{answers: []string{
		"", "", "", "", "", "", "", "", "", "0", "", "", "",
	}}

	require.NoError(t, runPrompt(cc, p, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "idle_throttle_plate_position: 0,")
}
