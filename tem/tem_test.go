package tem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maseology/lem/grid"
	"github.com/maseology/lem/tem"
)

// rampGrid builds a plane tilted down to the south with only the south edge
// at base level; every column drains straight down it.
func rampGrid(t *testing.T, nr, nc int) (*grid.Definition, []float64) {
	t.Helper()
	gd, err := grid.NewDefinition(nr, nc, 10.)
	require.NoError(t, err)
	gd.SetFixedEdges(false, false, true, false)
	z := make([]float64, gd.Ncells())
	for cid := range z {
		r, _ := gd.RowCol(cid)
		z[cid] = float64(nr - 1 - r)
	}
	return gd, z
}

func TestNew_Receivers(t *testing.T) {
	gd, z := rampGrid(t, 5, 4)
	tm, err := tem.New(gd, z)
	require.NoError(t, err)
	assert.Equal(t, gd.Ncells(), tm.NumCells())

	for cid, tc := range tm.TECs {
		r, c := gd.RowCol(cid)
		if gd.IsFixed(cid) {
			assert.Equal(t, -1, tc.Ds)
			continue
		}
		assert.Equal(t, gd.CellID(r+1, c), tc.Ds, "cell %d should drain due south", cid)
		assert.InDelta(t, .1, tc.S, 1e-12)
	}
}

func TestNew_FieldSize(t *testing.T) {
	gd, _ := rampGrid(t, 5, 4)
	_, err := tem.New(gd, make([]float64, 3))
	assert.ErrorIs(t, err, grid.ErrFieldSize)
}

func TestOrdered_UpstreamFirst(t *testing.T) {
	gd, z := rampGrid(t, 6, 3)
	tm, err := tem.New(gd, z)
	require.NoError(t, err)

	ord := tm.Ordered()
	assert.Len(t, ord, gd.Ncells())
	pos := make(map[int]int, len(ord))
	for i, c := range ord {
		pos[c] = i
	}
	for cid, tc := range tm.TECs {
		if tc.Ds < 0 {
			continue
		}
		assert.Less(t, pos[cid], pos[tc.Ds], "cell %d must precede its receiver %d", cid, tc.Ds)
	}
}

func TestUpCnt(t *testing.T) {
	gd, z := rampGrid(t, 5, 4)
	tm, err := tem.New(gd, z)
	require.NoError(t, err)

	cnt := tm.UpCnt()
	for cid := range tm.TECs {
		r, _ := gd.RowCol(cid)
		assert.Equal(t, r+1, cnt[cid], "cell %d drains its column above", cid)
	}

	ca := tm.ContributingArea(gd.CellArea())
	outlet := gd.CellID(4, 1)
	assert.InDelta(t, 5.*gd.CellArea(), ca[outlet], 1e-9)
}

func TestUnitContributingArea(t *testing.T) {
	gd, z := rampGrid(t, 5, 4)
	tm, err := tem.New(gd, z)
	require.NoError(t, err)

	assert.Equal(t, 5., tm.UnitContributingArea(gd.CellID(4, 2)))
	assert.Equal(t, 1., tm.UnitContributingArea(gd.CellID(0, 2)))
}
