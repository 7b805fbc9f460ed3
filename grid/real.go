package grid

import (
	"fmt"
	"sort"
)

// Real holds named per-cell scalar fields over a grid definition.
type Real struct {
	GD  *Definition
	fld map[string][]float64
}

// NewReal builds an empty field store over a definition.
func NewReal(gd *Definition) *Real {
	return &Real{GD: gd, fld: make(map[string][]float64)}
}

// Put registers (or replaces) a named field. The slice is copied.
func (r *Real) Put(name string, v []float64) error {
	if len(v) != r.GD.Ncells() {
		return ErrFieldSize
	}
	a := make([]float64, len(v))
	copy(a, v)
	r.fld[name] = a
	return nil
}

// Get returns a copy of a named field.
func (r *Real) Get(name string) ([]float64, error) {
	v, ok := r.fld[name]
	if !ok {
		return nil, fmt.Errorf("grid: no field named %q", name)
	}
	a := make([]float64, len(v))
	copy(a, v)
	return a, nil
}

// Value reads a single cell of a named field.
func (r *Real) Value(name string, cid int) (float64, error) {
	v, ok := r.fld[name]
	if !ok {
		return 0., fmt.Errorf("grid: no field named %q", name)
	}
	if cid < 0 || cid >= len(v) {
		return 0., fmt.Errorf("grid: cell id %d out of range", cid)
	}
	return v[cid], nil
}

// Names lists registered fields, sorted.
func (r *Real) Names() []string {
	o := make([]string, 0, len(r.fld))
	for n := range r.fld {
		o = append(o, n)
	}
	sort.Strings(o)
	return o
}
