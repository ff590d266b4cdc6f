package commands

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/enginegen/internal/cli/output"
	clitestutil "github.com/leapstack-labs/enginegen/internal/cli/testutil"
	"github.com/leapstack-labs/enginegen/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGenerateStdout(t *testing.T) {
	cc, tr := newTestContext(t, output.ModeMarkdown)
	opts := &GenerateOptions{source: sourceFlags{preset: "i4"}}

	require.NoError(t, runGenerate(context.Background(), nil, cc, opts))

	out := tr.Output()
	assert.True(t, strings.HasPrefix(out, `import "engine_sim.mr"`), "got: %.80s", out)
	assert.Contains(t, out, `name: "I4"`)
	assert.Contains(t, out, "public node main")
	assert.Empty(t, tr.ErrorOutput())
}

func TestRunGenerateOverrides(t *testing.T) {
	cc, tr := newTestContext(t, output.ModeMarkdown)
	cc.Cfg.Engine.Bore = 90
	cc.Cfg.Engine.Stroke = 80
	opts := &GenerateOptions{source: sourceFlags{
		preset: "i4",
		name:   "Track Car",
		set:    []string{"bore=92", "chamber-volume=55"},
	}}

	require.NoError(t, runGenerate(context.Background(), nil, cc, opts))

	out := tr.Output()
	assert.Contains(t, out, `name: "Track Car"`)
	// --set wins over the project config, config wins over the preset.
	assert.Contains(t, out, "label bore(92 * units.mm)")
	assert.Contains(t, out, "label stroke(80 * units.mm)")
	assert.Contains(t, out, "55 * units.cc")
}

func TestRunGenerateClosedIdleThrottle(t *testing.T) {
	cc, tr := newTestContext(t, output.ModeMarkdown)
	opts := &GenerateOptions{source: sourceFlags{
		preset: "i4",
		set:    []string{"idle_throttle_plate_position=0"},
	}}

	require.NoError(t, runGenerate(context.Background(), nil, cc, opts))
	assert.Contains(t, tr.Output(), "idle_throttle_plate_position: 0,")
}

func TestRunGenerateGeneratedLayout(t *testing.T) {
	cc, tr := newTestContext(t, output.ModeMarkdown)
	opts := &GenerateOptions{source: sourceFlags{cylinders: 6, style: "v"}}

	require.NoError(t, runGenerate(context.Background(), nil, cc, opts))
	assert.Contains(t, tr.Output(), `name: "`+core.DefaultEngineName+`"`)
}

func TestRunGenerateFromFile(t *testing.T) {
	dir := clitestutil.SetupTestProject(t)
	cc, tr := newTestContext(t, output.ModeMarkdown)
	opts := &GenerateOptions{source: sourceFlags{file: filepath.Join(dir, "presets", "twin.yaml")}}

	require.NoError(t, runGenerate(context.Background(), nil, cc, opts))

	out := tr.Output()
	assert.Contains(t, out, `name: "Flat Twin"`)
	assert.Contains(t, out, "label bore(101 * units.mm)")
}

func TestRunGenerateConfigPreset(t *testing.T) {
	cc, tr := newTestContext(t, output.ModeMarkdown)
	cc.Cfg.Preset = "v8"

	require.NoError(t, runGenerate(context.Background(), nil, cc, &GenerateOptions{}))
	assert.Contains(t, tr.Output(), `name: "V8"`)
}

func TestRunGenerateSeedIsReproducible(t *testing.T) {
	render := func() string {
		cc, tr := newTestContext(t, output.ModeMarkdown)
		cc.Cfg.Seed = 7
		require.NoError(t, runGenerate(context.Background(), nil, cc, &GenerateOptions{source: sourceFlags{preset: "v8"}}))
		return tr.Output()
	}
	assert.Equal(t, render(), render())
}

func TestRunGenerateOutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.mr")
	cc, tr := newTestContext(t, output.ModeMarkdown)
	opts := &GenerateOptions{source: sourceFlags{preset: "i6"}, Fuel: "e85", Out: path}

	require.NoError(t, runGenerate(context.Background(), nil, cc, opts))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `name: "e85"`)
	assert.Contains(t, tr.Output(), "Wrote "+path)
	assert.Contains(t, tr.Output(), "I6: 6 cylinders in 1 bank(s)")
}

func TestRunGenerateOutFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.mr")
	cc, tr := newTestContext(t, output.ModeJSON)
	opts := &GenerateOptions{source: sourceFlags{preset: "v8"}, Out: path}

	require.NoError(t, runGenerate(context.Background(), nil, cc, opts))

	var got struct {
		Path      string `json:"path"`
		Name      string `json:"name"`
		Cylinders int    `json:"cylinders"`
		Banks     int    `json:"banks"`
	}
	require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &got))
	assert.Equal(t, path, got.Path)
	assert.Equal(t, "V8", got.Name)
	assert.Equal(t, 8, got.Cylinders)
	assert.Equal(t, 2, got.Banks)
}

func TestRunGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		opts    GenerateOptions
		wantErr error
		wantMsg string
	}{
		{
			name:    "invalid style",
			opts:    GenerateOptions{source: sourceFlags{cylinders: 4, style: "w"}},
			wantErr: core.ErrInvalidLayoutStyle,
		},
		{
			name:    "too few cylinders for a V",
			opts:    GenerateOptions{source: sourceFlags{cylinders: 3, style: "v"}},
			wantErr: core.ErrInvalidCylinderCount,
		},
		{
			name:    "unknown fuel",
			opts:    GenerateOptions{source: sourceFlags{preset: "i4"}, Fuel: "kerosene"},
			wantErr: core.ErrUnknownFuelType,
		},
		{
			name:    "set without value",
			opts:    GenerateOptions{source: sourceFlags{preset: "i4", set: []string{"bore"}}},
			wantErr: core.ErrInvalidParams,
		},
		{
			name:    "set with bad number",
			opts:    GenerateOptions{source: sourceFlags{preset: "i4", set: []string{"bore=wide"}}},
			wantErr: core.ErrInvalidParams,
		},
		{
			name:    "unknown preset",
			opts:    GenerateOptions{source: sourceFlags{preset: "w16"}},
			wantMsg: `unknown preset "w16"`,
		},
		{
			name:    "no source",
			opts:    GenerateOptions{},
			wantMsg: "no engine selected",
		},
		{
			name:    "unwritable output",
			opts:    GenerateOptions{source: sourceFlags{preset: "i4"}, Out: filepath.Join("missing-dir", "x", "engine.mr")},
			wantErr: core.ErrOutputWrite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc, tr := newTestContext(t, output.ModeMarkdown)
			opts := tt.opts
			err := runGenerate(context.Background(), nil, cc, &opts)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			assert.Empty(t, tr.Output(), "nothing should be written on error")
		})
	}
}

func TestParseSet(t *testing.T) {
	p, err := parseSet([]string{"bore=92.5", " stroke = 84 ", "simulation-frequency=12000", "name=Shop Motor"})
	require.NoError(t, err)
	assert.InDelta(t, 92.5, p.Bore, 1e-9)
	assert.InDelta(t, 84, p.Stroke, 1e-9)
	assert.Equal(t, 12000, p.SimulationFrequency)
	assert.Equal(t, "Shop Motor", p.Name)

	p, err = parseSet(nil)
	require.NoError(t, err)
	assert.Equal(t, core.Params{}, p)
}

func TestBankAngles(t *testing.T) {
	assert.Equal(t, []float64{15}, bankAngles(core.StyleInline, 15))
	assert.Equal(t, []float64{-30, 30}, bankAngles(core.StyleV, 60))
}
