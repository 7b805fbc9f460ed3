// Package lem simulates landscape evolution over a raster grid: an imposed
// uplift field worked against by stream-power channel incision and/or linear
// hillslope diffusion, stepped explicitly through time.
package lem

// Processer advances an elevation field by one step of size dt.
type Processer interface {
	Process(st *State, dt float64) error
}
