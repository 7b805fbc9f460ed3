// Package tem maintains a topologic elevation model: the single-receiver
// (tree-graph) flow topology of an elevation field over a raster grid.
package tem

import (
	"github.com/maseology/mmaths"

	"github.com/maseology/lem/grid"
)

// TEM topologic elevation model
type TEM struct {
	TECs map[int]*TEC
	us   map[int][]int
	ord  []int // upstream-to-downstream cell ordering
	c    int
}

// NumCells number of cells that make up the TEM
func (t *TEM) NumCells() int {
	return len(t.TECs)
}

// Ordered returns cell ids ordered topologically, every cell appearing
// before its receiver.
func (t *TEM) Ordered() []int {
	o := make([]int, len(t.ord))
	copy(o, t.ord)
	return o
}

// UpCnt returns the number of cells (inclusive) draining through every cell.
func (t *TEM) UpCnt() map[int]int {
	cnt := make(map[int]int, len(t.TECs))
	for _, c := range t.ord {
		cnt[c]++ // self
		if ds := t.TECs[c].Ds; ds > -1 {
			cnt[ds] += cnt[c]
		}
	}
	return cnt
}

// ContributingArea returns per-cell drainage area, the upstream cell count
// scaled by the unit cell area.
func (t *TEM) ContributingArea(carea float64) map[int]float64 {
	cnt := t.UpCnt()
	o := make(map[int]float64, len(cnt))
	for c, n := range cnt {
		o[c] = float64(n) * carea
	}
	return o
}

// UnitContributingArea computes the (unit) contributing area from a given cell id
func (t *TEM) UnitContributingArea(cid int) float64 {
	t.c = 0
	t.climb(cid)
	return float64(t.c)
}

func (t *TEM) climb(cid int) {
	t.c++
	for _, i := range t.us[cid] {
		t.climb(i)
	}
}

func (t *TEM) buildUpslopes() {
	t.us = make(map[int][]int)
	ds := make(map[int]int, len(t.TECs))
	for i, v := range t.TECs {
		ds[i] = v.Ds
		if v.Ds >= 0 {
			t.us[v.Ds] = append(t.us[v.Ds], i)
		}
	}
	t.ord = mmaths.OrderFromToTree(ds, -1)
}

// New builds the D8 steepest-descent topology of an elevation field.
// Base-level cells and pits receive no downslope id.
func New(gd *grid.Definition, z []float64) (*TEM, error) {
	if len(z) != gd.Ncells() {
		return nil, grid.ErrFieldSize
	}
	t := TEM{TECs: make(map[int]*TEC, gd.Ncells())}
	for cid := 0; cid < gd.Ncells(); cid++ {
		if gd.IsFixed(cid) {
			t.TECs[cid] = &TEC{Z: z[cid], Ds: -1}
			continue
		}
		ds, s := gd.SteepestDescent8(z, cid)
		t.TECs[cid] = &TEC{Z: z[cid], S: s, Ds: ds}
	}
	t.buildUpslopes()
	return &t, nil
}
