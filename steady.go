package lem

import (
	"math"

	"github.com/maseology/lem/grid"
)

// RidgeProfile is the closed-form steady-state elevation of a uniformly
// uplifting, linearly diffusing one-dimensional ridge:
//
//	z(y) = (U/2D)·(H² − (y−y0)²)
//
// where U is the uplift rate, D the diffusivity, H the domain half-width
// and y0 the divide location.
func RidgeProfile(u, d, h, y0, y float64) float64 {
	return u / (2. * d) * (h*h - (y-y0)*(y-y0))
}

// RidgeTarget samples RidgeProfile at every cell of a grid whose north and
// south edges are held at base level, by row position.
func RidgeTarget(gd *grid.Definition, u, d float64) []float64 {
	h := float64(gd.Nr-1) * gd.Cw / 2.
	o := make([]float64, gd.Ncells())
	for cid := range o {
		r, _ := gd.RowCol(cid)
		y := float64(gd.Nr-1-r) * gd.Cw // y=0 at the south edge
		o[cid] = RidgeProfile(u, d, h, h, y)
	}
	return o
}

// MaxDev returns the max-norm deviation between two fields.
func MaxDev(a, b []float64) float64 {
	mx := 0.
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > mx {
			mx = d
		}
	}
	return mx
}

// SteadyDiffusion runs uniform uplift against linear diffusion until the
// simulated surface falls within tol of the analytical ridge profile
// (relative to its peak), or breaksteps elapse. Reports whether steady
// state was reached and the steps taken.
func SteadyDiffusion(st *State, u float64, dif *Diffusion, tol float64, breaksteps int) (bool, int, error) {
	up := UniformUplift(st.GD, u)
	target := RidgeTarget(st.GD, u, dif.D)
	h := float64(st.GD.Nr-1) * st.GD.Cw / 2.
	zpeak := RidgeProfile(u, dif.D, h, h, h)
	procs := []Processer{dif}

	j := 0
	for {
		if err := Run(st, up, procs, 1); err != nil {
			return false, j, err
		}
		j++
		if MaxDev(st.Z, target) < tol*zpeak {
			return true, j, nil // steady state reached
		}
		if j >= breaksteps {
			return false, j, nil
		}
	}
}
