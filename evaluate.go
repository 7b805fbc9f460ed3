package lem

import (
	"fmt"

	"github.com/gosuri/uiprogress"
)

// EvaluateSerial runs a single simulation, no concurrency: nsteps of uplift
// followed by the process operators, with a progress bar, a midpoint
// elevation snapshot, and gridded outputs written under outdirprfx.
func EvaluateSerial(st *State, up *Uplift, procs []Processer, nsteps int, outdirprfx string) error {
	g := newGmonitor(st, up, outdirprfx)
	mid := nsteps / 2

	uiprogress.Start()
	bar := uiprogress.AddBar(nsteps).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return fmt.Sprintf("t=%12.0f", st.T)
	})

	err := RunSnap(st, up, procs, nsteps, func(step int, s *State) {
		g.snap(step, s)
		if step == mid && mid > 0 {
			s.Fields().Put("z.mid", s.Z)
		}
		bar.Incr()
	})
	uiprogress.Stop()
	if err != nil {
		return err
	}

	g.print(st.GD)
	if err := writeFloats(outdirprfx+"z.bin", st.Z); err != nil {
		return err
	}
	if err := st.GD.ToASC(outdirprfx+"z.asc", st.Z); err != nil {
		return err
	}
	if zmid, err := st.Fields().Get("z.mid"); err == nil {
		writeFloats(outdirprfx+"zmid.bin", zmid)
	}
	plotProfile(outdirprfx+"profile.png", st.GD, st.Z)
	return nil
}
