package grid

import (
	"fmt"
	"strconv"

	"github.com/maseology/mmio"
)

// SaveAs writes the grid definition to a text file:
// origin easting, origin northing, rotation, row count, column count and
// 'U'-prefixed uniform cell width, one per line.
func (gd *Definition) SaveAs(fp string) error {
	lns := []string{
		fmt.Sprintf("%f", gd.Oe),
		fmt.Sprintf("%f", gd.On),
		"0.0", // rotation unsupported
		fmt.Sprintf("%d", gd.Nr),
		fmt.Sprintf("%d", gd.Nc),
		fmt.Sprintf("U%f", gd.Cw),
	}
	mmio.WriteLines(fp, lns)
	return nil
}

// ReadGDEF imports a grid definition file written by SaveAs.
func ReadGDEF(fp string) (*Definition, error) {
	a := mmio.ReadTextLines(fp)
	if len(a) < 6 {
		return nil, fmt.Errorf("grid: %s is not a grid definition file", fp)
	}
	oe, err := strconv.ParseFloat(a[0], 64)
	if err != nil {
		return nil, fmt.Errorf("grid: failed to read OE: %v", err)
	}
	on, err := strconv.ParseFloat(a[1], 64)
	if err != nil {
		return nil, fmt.Errorf("grid: failed to read ON: %v", err)
	}
	if rot, err := strconv.ParseFloat(a[2], 64); err != nil || rot != 0. {
		return nil, fmt.Errorf("grid: rotated grids not supported")
	}
	nr, err := strconv.ParseInt(a[3], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("grid: failed to read NR: %v", err)
	}
	nc, err := strconv.ParseInt(a[4], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("grid: failed to read NC: %v", err)
	}
	if a[5][0] != 'U' {
		return nil, fmt.Errorf("grid: non-uniform grids not supported")
	}
	cw, err := strconv.ParseFloat(a[5][1:], 64)
	if err != nil {
		return nil, fmt.Errorf("grid: failed to read CS: %v", err)
	}
	gd, err := NewDefinition(int(nr), int(nc), cw)
	if err != nil {
		return nil, err
	}
	gd.Oe, gd.On = oe, on
	return gd, nil
}

// ToASC exports a full-grid field to an ESRI ASCII raster.
func (gd *Definition) ToASC(fp string, z []float64) error {
	if len(z) != gd.Ncells() {
		return ErrFieldSize
	}
	lns := make([]string, 0, gd.Nr+6)
	lns = append(lns,
		fmt.Sprintf("ncols %d", gd.Nc),
		fmt.Sprintf("nrows %d", gd.Nr),
		fmt.Sprintf("xllcorner %f", gd.Oe),
		fmt.Sprintf("yllcorner %f", gd.On-float64(gd.Nr)*gd.Cw),
		fmt.Sprintf("cellsize %f", gd.Cw),
		"NODATA_value -9999")
	for r := 0; r < gd.Nr; r++ {
		ln := ""
		for c := 0; c < gd.Nc; c++ {
			if c > 0 {
				ln += " "
			}
			ln += strconv.FormatFloat(z[gd.CellID(r, c)], 'g', -1, 64)
		}
		lns = append(lns, ln)
	}
	mmio.WriteLines(fp, lns)
	return nil
}
