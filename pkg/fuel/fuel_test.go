package fuel

import (
	"testing"

	"github.com/leapstack-labs/enginegen/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"gasoline", Gasoline},
		{"Gasoline", Gasoline},
		{"  PETROL ", Gasoline},
		{"gas", Gasoline},
		{"ethanol", Ethanol},
		{"E100", Ethanol},
		{"methanol", Methanol},
		{"E85", E85},
		{"diesel", Diesel},
		{"Nitro", Nitromethane},
		{"nitromethane", Nitromethane},
		{"H2", Hydrogen},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := Lookup(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, f.Kind)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("kerosene")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnknownFuelType)
	assert.Contains(t, err.Error(), "gasoline", "error should list known fuels")
}

func TestTableConsistency(t *testing.T) {
	for i, f := range All() {
		assert.Equal(t, Kind(i), f.Kind, "table order must match Kind values")
		assert.Positive(t, f.MolecularMass, f.Name)
		assert.Positive(t, f.EnergyDensity, f.Name)
		assert.Positive(t, f.Density, f.Name)
		assert.Positive(t, f.MolecularAFR, f.Name)
		assert.LessOrEqual(t, f.MaxBurningEfficiency, 1.0, f.Name)
		assert.Equal(t, f.Name, f.Kind.String())
	}
}

func TestDefault(t *testing.T) {
	f := Default()
	assert.Equal(t, Gasoline, f.Kind)
	assert.InDelta(t, 10.0, f.MaxTurbulenceEffect, 0)
	assert.InDelta(t, 5.0, f.MaxDilutionEffect, 0)
	assert.InDelta(t, 0.1, f.BurningEfficiencyRandomness, 0)
	assert.InDelta(t, 1.0, f.MaxBurningEfficiency, 0)
}

func TestGet_OutOfRange(t *testing.T) {
	_, ok := Get(Kind(99))
	assert.False(t, ok)
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "changed"
	assert.Equal(t, "gasoline", Default().Name)
}
