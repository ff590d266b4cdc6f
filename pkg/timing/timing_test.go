package timing

import (
	"testing"

	"github.com/leapstack-labs/enginegen/pkg/core"
	"github.com/leapstack-labs/enginegen/pkg/firing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, banks []core.Bank, order core.FiringOrder) *core.Engine {
	t.Helper()
	e, err := core.NewEngine(core.EngineConfig{Banks: banks, FiringOrder: order})
	require.NoError(t, err)
	return e
}

func vTwentyFour(t *testing.T) *core.Engine {
	t.Helper()
	var left, right []int
	var order core.FiringOrder
	for i := 0; i < 12; i++ {
		left = append(left, i*2)
		right = append(right, i*2+1)
		order = append(order, i*2, i*2+1)
	}
	return newEngine(t, []core.Bank{
		{Cylinders: left, Angle: -45},
		{Cylinders: right, Angle: 45},
	}, order)
}

func TestSolve_InlineFour(t *testing.T) {
	e := newEngine(t, []core.Bank{{Cylinders: []int{0, 1, 2, 3}, Angle: 0}}, core.FiringOrder{0, 2, 3, 1})

	got, err := Solve(e)
	require.NoError(t, err)

	assert.InDelta(t, 180.0, got.Gap, 0)
	assert.InDelta(t, 90.0, got.TDC, 0)

	// Indexed by cylinder: 0 fires first, 1 fires last.
	assert.Equal(t, []float64{0, 540, 180, 360}, got.RodJournals)

	require.Len(t, got.Camshafts, 1)
	assert.Equal(t, []float64{0, 540, 180, 360}, got.Camshafts[0].Lobes)
}

func TestSolve_NoNormalization(t *testing.T) {
	e := newEngine(t, []core.Bank{{Cylinders: []int{0, 1, 2, 3, 4, 5}}}, core.FiringOrder{0, 4, 2, 5, 1, 3})

	got, err := Solve(e)
	require.NoError(t, err)

	// The last cylinder to fire sits 600° past the reference, not 240°.
	assert.InDelta(t, 600.0, got.RodJournals[3], 1e-9)
}

func TestSolve_VTwentyFour(t *testing.T) {
	e := vTwentyFour(t)

	got, err := Solve(e)
	require.NoError(t, err)

	assert.InDelta(t, 30.0, got.Gap, 0)
	assert.InDelta(t, 45.0, got.TDC, 0)
	require.Len(t, got.RodJournals, 24)
	require.Len(t, got.Camshafts, 2)

	for bi, cam := range got.Camshafts {
		require.Len(t, cam.Lobes, 12, "bank %d", bi)
		for i, lobe := range cam.Lobes {
			// Bank 0 holds even cylinders which fire at positions 0, 2, 4...
			assert.InDelta(t, float64(2*i+bi)*30, lobe, 1e-9, "bank %d lobe %d", bi, i)
		}
	}

	// Left bank cylinders carry no bank offset.
	assert.InDelta(t, 0.0, got.RodJournals[0], 0)
	assert.InDelta(t, 60.0, got.RodJournals[2], 1e-9)
	// Right bank cylinders sit 90° (bank included angle) later.
	assert.InDelta(t, 30.0+90.0, got.RodJournals[1], 1e-9)
}

func TestSolve_Idempotent(t *testing.T) {
	e := vTwentyFour(t)

	first, err := Solve(e)
	require.NoError(t, err)
	second, err := Solve(e)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSolve_LobeCountMatchesBanks(t *testing.T) {
	for _, style := range []core.Style{core.StyleInline, core.StyleV} {
		for n := style.MinCylinders(); n <= 33; n++ {
			plan, err := firing.Generate(n, style)
			require.NoError(t, err)
			e := newEngine(t, plan.CoreBanks(firing.DefaultBankAngles(style)...), plan.Order)

			got, err := Solve(e)
			require.NoError(t, err)

			require.Len(t, got.RodJournals, n)
			for bi, b := range e.Banks() {
				assert.Len(t, got.Camshafts[bi].Lobes, len(b.Cylinders), "style=%s n=%d bank=%d", style, n, bi)
			}
		}
	}
}

func TestSolve_NegativeZeroFolded(t *testing.T) {
	e := newEngine(t, []core.Bank{{Cylinders: []int{0, 1}, Angle: -30}}, core.FiringOrder{0, 1})

	got, err := Solve(e)
	require.NoError(t, err)
	assert.Equal(t, "0", formatFloat(got.RodJournals[0]))
}

func TestIgnitionOffset(t *testing.T) {
	assert.InDelta(t, 0.0, IgnitionOffset(0, 4), 0)
	assert.InDelta(t, 180.0, IgnitionOffset(1, 4), 0)
	assert.InDelta(t, 540.0, IgnitionOffset(3, 4), 0)
	assert.InDelta(t, 240.0, IgnitionOffset(1, 3), 1e-9)
	// 360 * (2 * position / N) is the same quantity.
	assert.InDelta(t, 360*(2*5.0/24), IgnitionOffset(5, 24), 1e-9)
}
