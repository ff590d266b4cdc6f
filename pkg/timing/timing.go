// Package timing derives crank rod-journal angles and camshaft lobe phases
// from an engine's bank geometry and firing order.
package timing

import (
	"fmt"

	"github.com/leapstack-labs/enginegen/pkg/core"
)

// CycleDegrees is the length of one four-stroke cycle.
const CycleDegrees = 720.0

// Gap returns the firing interval for n cylinders.
func Gap(n int) float64 {
	return CycleDegrees / float64(n)
}

// IgnitionOffset is the crank angle at which the cylinder in the given
// firing position receives its spark, relative to the first one.
func IgnitionOffset(position, n int) float64 {
	return CycleDegrees * float64(position) / float64(n)
}

// Solve computes the rod-journal angles and camshaft lobe phases for e.
//
// Angles are in degrees and are not reduced modulo 360: the journal of the
// k-th cylinder to fire sits k*gap past the reference, adjusted by its
// bank's offset from the first bank. Solve is pure; calling it twice on the
// same engine returns equal results.
func Solve(e *core.Engine) (*core.Timing, error) {
	n := e.CylinderCount()
	order := e.FiringOrder()
	banks := e.Banks()

	t := &core.Timing{
		TDC:         e.TDC(),
		Gap:         Gap(n),
		RodJournals: make([]float64, n),
		Camshafts:   make([]core.Camshaft, len(banks)),
	}
	for i, b := range banks {
		t.Camshafts[i] = core.NewCamshaft(len(b.Cylinders))
	}

	crank := 0.0
	for position, cyl := range order {
		bi, err := e.BankOf(cyl)
		if err != nil {
			return nil, err
		}
		bank := banks[bi]

		t.RodJournals[cyl] = normalizeZero(-crank + (bank.Angle + 90) - t.TDC)
		crank -= t.Gap

		lobe := bank.IndexOf(cyl)
		if lobe < 0 {
			return nil, fmt.Errorf("%w: cylinder %d missing from bank %d", core.ErrOrphanCylinder, cyl, bi)
		}
		t.Camshafts[bi].Lobes[lobe] = float64(position) * t.Gap
	}

	return t, nil
}

// normalizeZero folds -0 to 0 so it prints as "0".
func normalizeZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
