package preset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/enginegen/internal/testutil"
	"github.com/leapstack-labs/enginegen/pkg/core"
	"github.com/leapstack-labs/enginegen/pkg/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"i4", "i6", "v24", "v69", "v8"}, Names())
}

func TestBuiltins(t *testing.T) {
	tests := []struct {
		name      string
		cylinders int
		banks     int
	}{
		{"i4", 4, 1},
		{"i6", 6, 1},
		{"v8", 8, 2},
		{"v24", 24, 2},
		{"v69", 69, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Get(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.cylinders, p.CylinderCount())

			e, err := p.Engine()
			require.NoError(t, err)
			assert.Equal(t, tt.banks, e.BankCount())
			assert.Equal(t, p.Name, e.Params().Name)

			tm, err := timing.Solve(e)
			require.NoError(t, err)
			assert.Len(t, tm.RodJournals, tt.cylinders)
		})
	}

	_, ok := Get("w16")
	assert.False(t, ok)

	v8, ok := Get("V8")
	require.True(t, ok)
	assert.Equal(t, "V8", v8.Name)
}

func TestBuiltins_Details(t *testing.T) {
	i4, _ := Get("i4")
	assert.Equal(t, core.FiringOrder{0, 2, 3, 1}, i4.FiringOrder)
	assert.Equal(t, 400.0, i4.Params.StarterTorque)

	v24, _ := Get("v24")
	assert.Equal(t, -45.0, v24.Banks[0].Angle)
	assert.Len(t, v24.Banks[0].Cylinders, 12)
	assert.Equal(t, 200.0, v24.Params.CrankMass)

	v69, _ := Get("v69")
	assert.Len(t, v69.Banks[0].Cylinders, 35)
	assert.Len(t, v69.Banks[1].Cylinders, 34)
	assert.True(t, v69.Banks[1].Flip)
	assert.Equal(t, 68, v69.FiringOrder[68])
	assert.InDelta(t, 197.9*1.75, v69.Params.RodLength, 1e-9)

	i6, _ := Get("i6")
	assert.Equal(t, []int{1, 3, 5, 6, 4, 2}, i6.FiringOrder.OneBased())
}

func TestGet_ReturnsCopy(t *testing.T) {
	a, _ := Get("i4")
	a.Banks[0].Cylinders[0] = 99
	b, _ := Get("i4")
	assert.Equal(t, 0, b.Banks[0].Cylinders[0])
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, len(Names()))
	assert.Equal(t, "I4", all[0].Name)
}

func TestLoad_YAML(t *testing.T) {
	p, err := Load(context.Background(), filepath.Join("testdata", "flat_twin.yaml"), nil)
	require.NoError(t, err)

	assert.Equal(t, "Flat Twin", p.Name)
	assert.Equal(t, core.FiringOrder{0, 1}, p.FiringOrder)
	assert.Equal(t, []int{0}, p.Banks[0].Cylinders)
	assert.Equal(t, []int{1}, p.Banks[1].Cylinders)
	assert.True(t, p.Banks[1].Flip)
	assert.Equal(t, 94.0, p.Params.Bore)
	assert.Equal(t, 12000, p.Params.SimulationFrequency)
}

func TestLoad_Script(t *testing.T) {
	p, err := Load(context.Background(), filepath.Join("testdata", "v6.star"), testutil.NewTestLogger(t))
	require.NoError(t, err)

	assert.Equal(t, "V6", p.Name)
	assert.Equal(t, "60 degree V6", p.Description)
	assert.Equal(t, []int{0, 2, 4}, p.Banks[0].Cylinders)
	assert.Equal(t, []int{1, 3, 5}, p.Banks[1].Cylinders)
	assert.Equal(t, core.FiringOrder{0, 1, 2, 3, 4, 5}, p.FiringOrder)
	assert.Equal(t, 79.5, p.Params.Stroke)
	assert.Equal(t, 140.0, p.Params.RodLength)

	_, err = p.Engine()
	require.NoError(t, err)
}

func TestLoadYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
		wantIs  error
	}{
		{
			name:    "empty",
			data:    "",
			wantErr: "empty preset file",
		},
		{
			name:    "unknown field",
			data:    "name: x\ncylinders: 4\n",
			wantErr: "field cylinders not found",
		},
		{
			name: "unknown param",
			data: `name: x
banks: [{cylinders: [0, 1]}]
firing_order: [0, 1]
params: {boer: 86}
`,
			wantErr: "invalid params",
		},
		{
			name: "duplicate cylinder",
			data: `banks: [{cylinders: [0, 1]}, {cylinders: [1]}]
firing_order: [0, 1, 2]
`,
			wantIs: core.ErrDuplicateCylinder,
		},
		{
			name: "bad firing order",
			data: `banks: [{cylinders: [0, 1, 2]}]
firing_order: [0, 0, 1]
`,
			wantIs: core.ErrMalformedFiringOrder,
		},
		{
			name: "invalid params",
			data: `banks: [{cylinders: [0, 1]}]
firing_order: [0, 1]
params: {bore: -1}
`,
			wantIs: core.ErrInvalidParams,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML("bad.yaml", []byte(tt.data))
			require.Error(t, err)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, "bad.yaml", loadErr.File)
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

func TestLoadYAML_DefaultName(t *testing.T) {
	p, err := LoadYAML("configs/twin.yaml", []byte("banks: [{cylinders: [0, 1]}]\nfiring_order: [1, 0]\n"))
	require.NoError(t, err)
	assert.Equal(t, "twin", p.Name)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(context.Background(), filepath.Join(dir, "missing.yaml"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	txt := filepath.Join(dir, "engine.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o644))
	_, err = Load(context.Background(), txt, nil)
	assert.ErrorContains(t, err, "unsupported preset extension")

	star := filepath.Join(dir, "bad.star")
	require.NoError(t, os.WriteFile(star, []byte(`engine(name = "x", banks = [bank([0])], firing_order = [0], params = {"nope": 1})`), 0o644))
	_, err = Load(context.Background(), star, nil)
	assert.ErrorContains(t, err, "invalid params")
}

func TestDecodeParams(t *testing.T) {
	p, err := DecodeParams(map[string]any{
		"name":                 "Custom",
		"bore":                 int64(90),
		"simulation_frequency": "8000",
		"sim_version":          "0.1.12",
	})
	require.NoError(t, err)
	assert.Equal(t, "Custom", p.Name)
	assert.Equal(t, 90.0, p.Bore)
	assert.Equal(t, 8000, p.SimulationFrequency)
	assert.Equal(t, "0.1.12", p.SimVersion)

	_, err = DecodeParams(map[string]any{"unknown": 1})
	assert.Error(t, err)
}
