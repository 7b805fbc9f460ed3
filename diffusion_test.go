package lem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maseology/lem"
	"github.com/maseology/lem/grid"
)

// ridgeGrid is a symmetric one-dimensional ridge: base level north and
// south, no-flow east and west, half-width (nr-1)·cw/2.
func ridgeGrid(t *testing.T, nr, nc int, cw float64) *grid.Definition {
	t.Helper()
	gd, err := grid.NewDefinition(nr, nc, cw)
	require.NoError(t, err)
	gd.SetFixedEdges(true, false, true, false)
	return gd
}

func TestDiffusion_StableStep(t *testing.T) {
	gd := ridgeGrid(t, 21, 5, 10.)
	dif := &lem.Diffusion{D: .01}
	assert.InDelta(t, 5000., dif.StableStep(gd), 1e-9) // 0.5·10²/0.01
}

func TestDiffusion_BaseLevelHolds(t *testing.T) {
	gd := ridgeGrid(t, 11, 4, 10.)
	dif := &lem.Diffusion{D: .01}
	st, err := lem.NewState(gd, .2*dif.StableStep(gd))
	require.NoError(t, err)

	require.NoError(t, lem.Run(st, lem.UniformUplift(gd, 1e-4), []lem.Processer{dif}, 200))
	for cid := 0; cid < gd.Ncells(); cid++ {
		if gd.IsFixed(cid) {
			assert.Zero(t, st.Z[cid])
		} else {
			assert.Greater(t, st.Z[cid], 0.)
		}
	}
}

// the flat-start scenario: U=1e-4, D=0.01, half-width H=100; the simulated
// profile must approach z(y)=(U/2D)(H²−(y−y0)²) with a non-increasing
// max-norm deviation, and flag steady state within 1% of the 50 m peak.
func TestDiffusion_ConvergesToAnalytical(t *testing.T) {
	const (
		u, d = 1e-4, .01
		tol  = .01
	)
	gd := ridgeGrid(t, 21, 5, 10.) // H = (21-1)·10/2 = 100
	dif := &lem.Diffusion{D: d}
	st, err := lem.NewState(gd, .2*dif.StableStep(gd))
	require.NoError(t, err)

	target := lem.RidgeTarget(gd, u, d)
	up := lem.UniformUplift(gd, u)

	// deviation from the analytical profile never grows
	dev := lem.MaxDev(st.Z, target)
	for i := 0; i < 500; i++ {
		require.NoError(t, lem.Run(st, up, []lem.Processer{dif}, 10))
		dnew := lem.MaxDev(st.Z, target)
		assert.LessOrEqual(t, dnew, dev+1e-12, "deviation grew at block %d", i)
		dev = dnew
	}

	st.Reset()
	reached, steps, err := lem.SteadyDiffusion(st, u, dif, tol, 50000)
	require.NoError(t, err)
	assert.True(t, reached, "steady state not flagged after %d steps", steps)
	assert.Less(t, lem.MaxDev(st.Z, target), tol*50.+1e-9)
	assert.InDelta(t, float64(steps)*st.Dt, st.T, 1e-6)
}

func TestSteadyDiffusion_BreakGuard(t *testing.T) {
	gd := ridgeGrid(t, 21, 5, 10.)
	dif := &lem.Diffusion{D: .01}
	st, err := lem.NewState(gd, .2*dif.StableStep(gd))
	require.NoError(t, err)

	reached, steps, err := lem.SteadyDiffusion(st, 1e-4, dif, .01, 10)
	require.NoError(t, err)
	assert.False(t, reached)
	assert.Equal(t, 10, steps)
}
