package lem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maseology/lem"
)

func TestRidgeProfile(t *testing.T) {
	const u, d, h, y0 = 1e-4, .01, 100., 100.

	assert.InDelta(t, 50., lem.RidgeProfile(u, d, h, y0, y0), 1e-12) // peak U·H²/2D
	assert.InDelta(t, 0., lem.RidgeProfile(u, d, h, y0, 0.), 1e-12)
	assert.InDelta(t, 0., lem.RidgeProfile(u, d, h, y0, 2.*h), 1e-12)

	// symmetric about the divide
	for _, dy := range []float64{10., 35., 80.} {
		assert.InDelta(t, lem.RidgeProfile(u, d, h, y0, y0-dy), lem.RidgeProfile(u, d, h, y0, y0+dy), 1e-12)
	}
}

func TestRidgeTarget(t *testing.T) {
	gd := ridgeGrid(t, 21, 5, 10.)
	target := lem.RidgeTarget(gd, 1e-4, .01)

	// base-level rows pinned to zero, divide row at the peak
	for c := 0; c < gd.Nc; c++ {
		assert.Zero(t, target[gd.CellID(0, c)])
		assert.Zero(t, target[gd.CellID(20, c)])
		assert.InDelta(t, 50., target[gd.CellID(10, c)], 1e-12)
	}

	// uniform across columns
	for r := 0; r < gd.Nr; r++ {
		for c := 1; c < gd.Nc; c++ {
			assert.Equal(t, target[gd.CellID(r, 0)], target[gd.CellID(r, c)])
		}
	}
}

func TestMaxDev(t *testing.T) {
	a := []float64{0., 1., -3.}
	b := []float64{0., -1., -2.}
	assert.Equal(t, 2., lem.MaxDev(a, b))
	require.Equal(t, 0., lem.MaxDev(a, a))
}
