package lem

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
	"github.com/maseology/objfunc"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"

	"github.com/maseology/lem/grid"
)

// GenerateSamples draws a Latin hypercube plan over ndim unit-interval
// parameters, evaluates gen once per sample, and writes the sample space
// with objective values to a csv.
func GenerateSamples(gen func(u []float64) float64, nsmpl, ndim int, outdirprfx string) {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	sp := smpln.NewLHC(rng, nsmpl, ndim, false)

	lns := make([]string, nsmpl)
	for k := 0; k < nsmpl; k++ {
		ut := make([]float64, ndim)
		for j := 0; j < ndim; j++ {
			ut[j] = sp.U[j][k]
		}
		of := gen(ut)
		lns[k] = fmt.Sprint(k)
		for j := 0; j < ndim; j++ {
			lns[k] += fmt.Sprintf(",%f", ut[j])
		}
		lns[k] += fmt.Sprintf(",%f", of)
		fmt.Print(".")
	}
	fmt.Println()
	mmio.WriteLines(outdirprfx+"samplespace.csv", lns)
}

// ridge-sweep parameter transforms
func par2(u []float64) (uplift, diffusivity float64) {
	uplift = mmaths.LogLinearTransform(1e-5, 1e-3, u[0])
	diffusivity = mmaths.LogLinearTransform(1e-3, 1e-1, u[1])
	return
}

// SampleRidge sweeps (uplift, diffusivity) pairs over a ridge grid, running
// each to its analytical steady state (or breaksteps) and scoring the final
// surface against the closed-form profile.
func SampleRidge(gd *grid.Definition, nsmpl, breaksteps int, outdirprfx string) {
	tt := mmio.NewTimer()

	tw, err := mmio.NewTXTwriter(outdirprfx + "params.txt")
	if err != nil {
		log.Fatalf("SampleRidge params save error: %v", err)
	}
	defer tw.Close()
	tw.WriteLine(fmt.Sprintf("%v", time.Now()))
	tw.WriteLine(fmt.Sprintf("uplift\t%e..%e (log)", 1e-5, 1e-3))
	tw.WriteLine(fmt.Sprintf("diffusivity\t%e..%e (log)", 1e-3, 1e-1))
	tw.WriteLine(fmt.Sprintf("nsmpl\t%d", nsmpl))

	gen := func(ut []float64) float64 {
		u, d := par2(ut)
		dif := &Diffusion{D: d}
		st, err := NewState(gd, .2*dif.StableStep(gd))
		if err != nil {
			log.Fatalf("SampleRidge: %v", err)
		}
		if _, _, err := SteadyDiffusion(st, u, dif, .01, breaksteps); err != nil {
			log.Fatalf("SampleRidge: %v", err)
		}
		return objfunc.RMSE(RidgeTarget(gd, u, d), st.Z)
	}
	GenerateSamples(gen, nsmpl, 2, outdirprfx)
	tt.Lap("ridge sampling complete")
}
