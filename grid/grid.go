package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid operations.
var (
	ErrDims      = errors.New("grid: definitions require at least 3 rows and 3 columns")
	ErrCellWidth = errors.New("grid: cell width must be positive")
	ErrFieldSize = errors.New("grid: field length does not match cell count")
)

// edge indices, clockwise from north
const (
	north = iota
	east
	south
	west
)

// Definition defines a uniform raster grid: an origin (upper-left corner),
// row/column counts and a single cell width. Cells are indexed row-major
// from the upper-left.
type Definition struct {
	Oe, On float64 // upper-left origin easting/northing
	Cw     float64 // uniform cell width
	Nr, Nc int
	fixed  [4]bool // base-level (fixed elevation) edges: N E S W
}

// NewDefinition builds a uniform grid with all four edges held as base level.
func NewDefinition(nr, nc int, cw float64) (*Definition, error) {
	if nr < 3 || nc < 3 {
		return nil, ErrDims
	}
	if cw <= 0. {
		return nil, ErrCellWidth
	}
	return &Definition{
		Cw:    cw,
		Nr:    nr,
		Nc:    nc,
		fixed: [4]bool{true, true, true, true},
	}, nil
}

// SetFixedEdges selects which grid edges are held at fixed (base-level)
// elevation. An unfixed edge behaves as a no-flow (mirrored) boundary.
func (gd *Definition) SetFixedEdges(n, e, s, w bool) {
	gd.fixed = [4]bool{n, e, s, w}
}

// Ncells total cell count
func (gd *Definition) Ncells() int { return gd.Nr * gd.Nc }

// CellArea area of a single (uniform) cell
func (gd *Definition) CellArea() float64 { return gd.Cw * gd.Cw }

// CellID returns the cell id at (row, col); -1 if out of bounds.
func (gd *Definition) CellID(r, c int) int {
	if !gd.InBounds(r, c) {
		return -1
	}
	return r*gd.Nc + c
}

// RowCol returns the (row, col) of a cell id.
func (gd *Definition) RowCol(cid int) (int, int) {
	if cid < 0 || cid >= gd.Ncells() {
		return -1, -1
	}
	return cid / gd.Nc, cid % gd.Nc
}

// InBounds reports whether (row, col) lies on the grid.
func (gd *Definition) InBounds(r, c int) bool {
	return r >= 0 && r < gd.Nr && c >= 0 && c < gd.Nc
}

// Coord returns the cell's centroid coordinates.
func (gd *Definition) Coord(cid int) (x, y float64) {
	r, c := gd.RowCol(cid)
	x = gd.Oe + (float64(c)+.5)*gd.Cw
	y = gd.On - (float64(r)+.5)*gd.Cw
	return
}

// IsFixed reports whether a cell sits on a base-level edge. Fixed cells are
// never uplifted or eroded; they hold their elevation.
func (gd *Definition) IsFixed(cid int) bool {
	r, c := gd.RowCol(cid)
	if r < 0 {
		return false
	}
	switch {
	case r == 0 && gd.fixed[north]:
		return true
	case r == gd.Nr-1 && gd.fixed[south]:
		return true
	case c == 0 && gd.fixed[west]:
		return true
	case c == gd.Nc-1 && gd.fixed[east]:
		return true
	}
	return false
}

// Sactives returns the ids of all active (non-fixed) cells, ordered.
func (gd *Definition) Sactives() []int {
	o := make([]int, 0, gd.Ncells())
	for cid := 0; cid < gd.Ncells(); cid++ {
		if !gd.IsFixed(cid) {
			o = append(o, cid)
		}
	}
	return o
}

// Nactives count of active (non-fixed) cells
func (gd *Definition) Nactives() int { return len(gd.Sactives()) }

var d4 = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
var d8 = [8][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}

// Neighbors4 returns the in-bounds orthogonal neighbors of a cell.
func (gd *Definition) Neighbors4(cid int) []int {
	r, c := gd.RowCol(cid)
	o := make([]int, 0, 4)
	for _, d := range d4 {
		if n := gd.CellID(r+d[0], c+d[1]); n >= 0 {
			o = append(o, n)
		}
	}
	return o
}

// Neighbors8 returns the in-bounds orthogonal and diagonal neighbors of a cell.
func (gd *Definition) Neighbors8(cid int) []int {
	r, c := gd.RowCol(cid)
	o := make([]int, 0, 8)
	for _, d := range d8 {
		if n := gd.CellID(r+d[0], c+d[1]); n >= 0 {
			o = append(o, n)
		}
	}
	return o
}

// NullArray returns a full-grid field initialized to the given value.
func (gd *Definition) NullArray(v float64) []float64 {
	o := make([]float64, gd.Ncells())
	if v != 0. {
		for i := range o {
			o[i] = v
		}
	}
	return o
}

// Laplacian4 computes the discrete 5-point Laplacian of a field at a cell.
// Out-of-bounds directions mirror the central value (no-flow).
func (gd *Definition) Laplacian4(z []float64, cid int) float64 {
	r, c := gd.RowCol(cid)
	s := 0.
	for _, d := range d4 {
		if n := gd.CellID(r+d[0], c+d[1]); n >= 0 {
			s += z[n] - z[cid]
		} // else mirrored: zero gradient
	}
	return s / gd.CellArea()
}

// SteepestDescent8 returns the D8 receiver of a cell and the (positive)
// gradient toward it; receiver -1 where no lower neighbor exists (a pit or
// a base-level cell).
func (gd *Definition) SteepestDescent8(z []float64, cid int) (int, float64) {
	r, c := gd.RowCol(cid)
	ds, smax := -1, 0.
	for i, d := range d8 {
		n := gd.CellID(r+d[0], c+d[1])
		if n < 0 {
			continue
		}
		dist := gd.Cw
		if i%2 == 1 { // diagonal
			dist *= math.Sqrt2
		}
		if s := (z[cid] - z[n]) / dist; s > smax {
			ds, smax = n, s
		}
	}
	return ds, smax
}

func (gd *Definition) String() string {
	return fmt.Sprintf("%d x %d grid, cell width %g", gd.Nr, gd.Nc, gd.Cw)
}
