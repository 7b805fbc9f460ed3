package lem

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/maseology/mmio"

	"github.com/maseology/lem/grid"
)

func writeFloats(fp string, f []float64) error {
	f32 := func() []float32 {
		o := make([]float32, len(f))
		for i, v := range f {
			o[i] = float32(v)
		}
		return o
	}()
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf("writeFloats failed: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writeFloats failed: %v", err)
	}
	return nil
}

// columnProfile extracts the elevations of one grid column, north to south,
// with their y positions.
func columnProfile(gd *grid.Definition, z []float64, col int) (y, prof []float64) {
	y, prof = make([]float64, gd.Nr), make([]float64, gd.Nr)
	for r := 0; r < gd.Nr; r++ {
		y[r] = float64(gd.Nr-1-r) * gd.Cw
		prof[r] = z[gd.CellID(r, col)]
	}
	return
}

// plotProfile renders the center-column elevation profile to png.
func plotProfile(fp string, gd *grid.Definition, z []float64) {
	y, prof := columnProfile(gd, z, gd.Nc/2)
	mmio.Line(fp, y, map[string][]float64{"z": prof}, 12.)
}
