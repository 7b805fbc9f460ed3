package lem

import "github.com/maseology/lem/grid"

// Diffusion is a linear hillslope transport operator: sediment flux is
// proportional to local slope, advanced with an explicit 5-point scheme.
// Fixed cells hold their elevation (base level); unfixed grid edges are
// treated as no-flow.
type Diffusion struct {
	D float64 // transport (diffusivity) coefficient
}

// StableStep returns the stability-limited step size 0.5·cw²/D for a ridge
// profile. Derive once and hold constant; there is no adaptive stepping.
func (d *Diffusion) StableStep(gd *grid.Definition) float64 {
	return .5 * gd.Cw * gd.Cw / d.D
}

// Process diffuses one step of size dt. Not in-place: a swap buffer keeps
// the stencil reading pre-step values.
func (d *Diffusion) Process(st *State, dt float64) error {
	out := make([]float64, len(st.Z))
	copy(out, st.Z)
	for _, c := range st.GD.Sactives() {
		out[c] = st.Z[c] + dt*d.D*st.GD.Laplacian4(st.Z, c)
	}
	copy(st.Z, out)
	return nil
}
