package lem

import (
	"math"

	"github.com/maseology/lem/tem"
)

// StreamPower is a detachment-limited incision operator: cells are lowered
// at the rate K·A^M·S^N in excess of the threshold Hc, where A is drainage
// area and S the steepest downslope gradient. Flow topology is rebuilt from
// the current elevation field on every step, so call order can never stale
// the routing.
type StreamPower struct {
	K  float64 // incision (erodibility) coefficient
	M  float64 // area exponent
	N  float64 // slope exponent
	Hc float64 // erosion threshold
}

// Process incises one step of size dt.
func (sp *StreamPower) Process(st *State, dt float64) error {
	t, err := tem.New(st.GD, st.Z)
	if err != nil {
		return err
	}
	ca := t.ContributingArea(st.GD.CellArea())
	ord := t.Ordered()

	// walk downstream-first so receivers carry current elevations when
	// limiting incision
	for i := len(ord) - 1; i >= 0; i-- {
		c := ord[i]
		tc := t.TECs[c]
		if tc.Ds < 0 {
			continue // base level or pit
		}
		pow := sp.K * math.Pow(ca[c], sp.M) * math.Pow(tc.S, sp.N)
		if pow <= sp.Hc {
			continue
		}
		z := st.Z[c] - dt*(pow-sp.Hc)
		if zds := st.Z[tc.Ds]; z < zds {
			z = zds // never incise below the receiver
		}
		if math.IsNaN(z) {
			panic("streampower: NaN elevation")
		}
		st.Z[c] = z
	}
	return nil
}
