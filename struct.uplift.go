package lem

import "github.com/maseology/lem/grid"

// Uplift is an externally imposed rate of vertical land-surface rise,
// uniform or spatially varying. Rates are read-only during a run; base-level
// (fixed) cells are never uplifted.
type Uplift struct {
	rate []float64
}

// UniformUplift applies a single rate to every active cell.
func UniformUplift(gd *grid.Definition, u float64) *Uplift {
	r := make([]float64, gd.Ncells())
	for _, c := range gd.Sactives() {
		r[c] = u
	}
	return &Uplift{rate: r}
}

// ArrayUplift applies a per-cell rate; rates given for fixed cells are ignored.
func ArrayUplift(gd *grid.Definition, rates []float64) (*Uplift, error) {
	if len(rates) != gd.Ncells() {
		return nil, grid.ErrFieldSize
	}
	r := make([]float64, gd.Ncells())
	for _, c := range gd.Sactives() {
		r[c] = rates[c]
	}
	return &Uplift{rate: r}, nil
}

// Rate returns the rate applied at a cell.
func (u *Uplift) Rate(cid int) float64 { return u.rate[cid] }

func (u *Uplift) add(st *State, dt float64) {
	for c, r := range u.rate {
		st.Z[c] += r * dt
	}
}
