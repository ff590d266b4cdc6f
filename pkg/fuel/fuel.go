// Package fuel provides the closed set of fuel kinds the generator can emit
// and their combustion property records.
package fuel

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/enginegen/pkg/core"
	"golang.org/x/text/cases"
)

// Kind identifies a fuel.
type Kind int

// Fuel kinds, in listing order.
const (
	Gasoline Kind = iota
	Ethanol
	Methanol
	E85
	Diesel
	Nitromethane
	Hydrogen
)

// Fuel is the property record emitted into the engine's fuel block.
type Fuel struct {
	Kind Kind   `json:"-"`
	Name string `json:"name"`

	// MolecularMass in grams per mole.
	MolecularMass float64 `json:"molecular_mass"`
	// EnergyDensity in kJ per gram.
	EnergyDensity float64 `json:"energy_density"`
	// Density in kg per litre.
	Density float64 `json:"density"`
	// MolecularAFR is moles of O2 needed per mole of fuel.
	MolecularAFR float64 `json:"molecular_afr"`

	MaxBurningEfficiency        float64 `json:"max_burning_efficiency"`
	BurningEfficiencyRandomness float64 `json:"burning_efficiency_randomness"`
	LowEfficiencyAttenuation    float64 `json:"low_efficiency_attenuation"`
	MaxTurbulenceEffect         float64 `json:"max_turbulence_effect"`
	MaxDilutionEffect           float64 `json:"max_dilution_effect"`
}

var table = []Fuel{
	{
		Kind: Gasoline, Name: "gasoline",
		MolecularMass: 100, EnergyDensity: 48.1, Density: 0.755, MolecularAFR: 12.5,
		MaxBurningEfficiency: 1.0, BurningEfficiencyRandomness: 0.1, LowEfficiencyAttenuation: 0.6,
		MaxTurbulenceEffect: 10.0, MaxDilutionEffect: 5.0,
	},
	{
		Kind: Ethanol, Name: "ethanol",
		MolecularMass: 46.07, EnergyDensity: 26.8, Density: 0.789, MolecularAFR: 3,
		MaxBurningEfficiency: 1.0, BurningEfficiencyRandomness: 0.1, LowEfficiencyAttenuation: 0.7,
		MaxTurbulenceEffect: 8.0, MaxDilutionEffect: 6.0,
	},
	{
		Kind: Methanol, Name: "methanol",
		MolecularMass: 32.04, EnergyDensity: 19.9, Density: 0.792, MolecularAFR: 1.5,
		MaxBurningEfficiency: 1.0, BurningEfficiencyRandomness: 0.1, LowEfficiencyAttenuation: 0.7,
		MaxTurbulenceEffect: 8.0, MaxDilutionEffect: 7.0,
	},
	{
		Kind: E85, Name: "e85",
		MolecularMass: 54.2, EnergyDensity: 29.2, Density: 0.781, MolecularAFR: 4.4,
		MaxBurningEfficiency: 1.0, BurningEfficiencyRandomness: 0.1, LowEfficiencyAttenuation: 0.65,
		MaxTurbulenceEffect: 9.0, MaxDilutionEffect: 5.5,
	},
	{
		Kind: Diesel, Name: "diesel",
		MolecularMass: 167.31, EnergyDensity: 45.5, Density: 0.832, MolecularAFR: 17.75,
		MaxBurningEfficiency: 0.9, BurningEfficiencyRandomness: 0.2, LowEfficiencyAttenuation: 0.5,
		MaxTurbulenceEffect: 4.0, MaxDilutionEffect: 2.0,
	},
	{
		Kind: Nitromethane, Name: "nitromethane",
		MolecularMass: 61.04, EnergyDensity: 11.3, Density: 1.137, MolecularAFR: 0.75,
		MaxBurningEfficiency: 1.0, BurningEfficiencyRandomness: 0.3, LowEfficiencyAttenuation: 0.8,
		MaxTurbulenceEffect: 12.0, MaxDilutionEffect: 3.0,
	},
	{
		Kind: Hydrogen, Name: "hydrogen",
		MolecularMass: 2.016, EnergyDensity: 120, Density: 0.0000899, MolecularAFR: 0.5,
		MaxBurningEfficiency: 1.0, BurningEfficiencyRandomness: 0.05, LowEfficiencyAttenuation: 0.9,
		MaxTurbulenceEffect: 15.0, MaxDilutionEffect: 10.0,
	},
}

var aliases = map[string]Kind{
	"gas":    Gasoline,
	"petrol": Gasoline,
	"e100":   Ethanol,
	"nitro":  Nitromethane,
	"h2":     Hydrogen,
	"d2":     Diesel,
}

// Default returns the gasoline record.
func Default() Fuel {
	return table[Gasoline]
}

// Get returns the record for k.
func Get(k Kind) (Fuel, bool) {
	if k < 0 || int(k) >= len(table) {
		return Fuel{}, false
	}
	return table[k], true
}

// String returns the fuel's canonical name.
func (k Kind) String() string {
	if f, ok := Get(k); ok {
		return f.Name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Lookup resolves a fuel by name or alias, ignoring case.
func Lookup(name string) (Fuel, error) {
	key := cases.Fold().String(strings.TrimSpace(name))
	for _, f := range table {
		if f.Name == key {
			return f, nil
		}
	}
	if k, ok := aliases[key]; ok {
		return table[k], nil
	}
	return Fuel{}, fmt.Errorf("%w: %q (known: %s)", core.ErrUnknownFuelType, name, strings.Join(Names(), ", "))
}

// All returns every fuel record in listing order.
func All() []Fuel {
	return slices.Clone(table)
}

// Names returns the canonical fuel names in listing order.
func Names() []string {
	names := make([]string, len(table))
	for i, f := range table {
		names[i] = f.Name
	}
	return names
}
