package lem

import (
	"fmt"
	"math"

	"github.com/maseology/mmio"

	"github.com/maseology/lem/grid"
)

// gmonitor accumulates per-cell elevation change, split into its uplift and
// process (erosion/diffusion) components, for end-of-run gridded output.
type gmonitor struct {
	zlast, gup, gdz []float64
	up              *Uplift
	dir             string
}

func newGmonitor(st *State, up *Uplift, dir string) *gmonitor {
	zlast := make([]float64, len(st.Z))
	copy(zlast, st.Z)
	return &gmonitor{
		zlast: zlast,
		gup:   make([]float64, len(st.Z)),
		gdz:   make([]float64, len(st.Z)),
		up:    up,
		dir:   dir,
	}
}

func (g *gmonitor) snap(_ int, st *State) {
	for c := range st.Z {
		g.gup[c] += g.up.Rate(c) * st.Dt
		g.gdz[c] += st.Z[c] - g.zlast[c]
	}
	copy(g.zlast, st.Z)
}

func (g *gmonitor) print(gd *grid.Definition) {
	n := gd.Ncells()
	mup, mdz, mero := make(map[int]float64, n), make(map[int]float64, n), make(map[int]float64, n)
	for c := 0; c < n; c++ {
		mup[c] = g.gup[c]
		mdz[c] = g.gdz[c]
		mero[c] = g.gdz[c] - g.gup[c] // net lowering by the operators
		if math.IsNaN(g.gdz[c]) {
			fmt.Printf("cell id %d monitor error: NaN elevation change\n", c)
		}
	}
	// NOTE: dz = uplift + erosion (erosion <= 0)
	mmio.WriteRMAP(g.dir+"g.uplift.rmap", mup, true)
	mmio.WriteRMAP(g.dir+"g.dz.rmap", mdz, true)
	mmio.WriteRMAP(g.dir+"g.erosion.rmap", mero, true)
}
