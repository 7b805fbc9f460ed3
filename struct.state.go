package lem

import (
	"fmt"

	"github.com/maseology/lem/grid"
)

// State carries the evolving model state: the elevation field, the
// accumulated simulation time and the (fixed) step size. It is exclusively
// owned by the caller; every run mutates it in place.
type State struct {
	GD   *grid.Definition
	Z    []float64 // elevation
	T    float64   // accumulated simulation time
	Dt   float64   // step size
	flds *grid.Real
}

// NewState builds a flat (zero-elevation) state over a grid definition.
func NewState(gd *grid.Definition, dt float64) (*State, error) {
	if dt <= 0. {
		return nil, fmt.Errorf("lem: step size must be positive (got %g)", dt)
	}
	return &State{
		GD: gd,
		Z:  make([]float64, gd.Ncells()),
		Dt: dt,
	}, nil
}

// SetElevation replaces the elevation field (copied).
func (st *State) SetElevation(z []float64) error {
	if len(z) != st.GD.Ncells() {
		return grid.ErrFieldSize
	}
	copy(st.Z, z)
	return nil
}

// Reset re-zeroes elevation and the time counter. Continuing without Reset
// resumes from the current state.
func (st *State) Reset() {
	for i := range st.Z {
		st.Z[i] = 0.
	}
	st.T = 0.
	st.flds = nil
}

// Copy returns a deep copy of the state.
func (st *State) Copy() *State {
	z := make([]float64, len(st.Z))
	copy(z, st.Z)
	return &State{GD: st.GD, Z: z, T: st.T, Dt: st.Dt}
}

// Fields returns the state's named auxiliary field store (snapshots, etc.).
func (st *State) Fields() *grid.Real {
	if st.flds == nil {
		st.flds = grid.NewReal(st.GD)
	}
	return st.flds
}
