package lem

import (
	"fmt"
	"math"
)

// Run advances the state nsteps steps. Each step: (a) uplift is added to
// every active cell, (b) the process operators act in order, (c) the time
// counter advances by dt. Re-entrant: call repeatedly to continue a run.
// Zero steps leaves the state untouched.
func Run(st *State, up *Uplift, procs []Processer, nsteps int) error {
	return RunSnap(st, up, procs, nsteps, nil)
}

// RunSnap is Run with a per-step snapshot callback (may be nil), invoked
// after each completed step with the 1-based step number.
func RunSnap(st *State, up *Uplift, procs []Processer, nsteps int, snap func(step int, st *State)) error {
	if st.Dt <= 0. {
		return fmt.Errorf("lem: step size must be positive (got %g)", st.Dt)
	}
	for i := 0; i < nsteps; i++ {
		up.add(st, st.Dt) // uplift first; operator order matters
		for _, p := range procs {
			if err := p.Process(st, st.Dt); err != nil {
				return err
			}
		}
		st.T += st.Dt
		if snap != nil {
			snap(i+1, st)
		}
	}
	return nil
}

// RunDuration advances the state floor(duration/dt) steps, returning the
// step count taken.
func RunDuration(st *State, up *Uplift, procs []Processer, duration float64) (int, error) {
	if st.Dt <= 0. {
		return 0, fmt.Errorf("lem: step size must be positive (got %g)", st.Dt)
	}
	nsteps := int(math.Floor(duration / st.Dt))
	return nsteps, Run(st, up, procs, nsteps)
}
