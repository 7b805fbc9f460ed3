package lem

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
	"github.com/maseology/objfunc"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"

	"github.com/maseology/lem/grid"
)

// CalibrateDiffusivity fits the hillslope transport coefficient to an
// observed elevation field, given the uplift rate and run duration that
// produced it. Returns the fitted diffusivity and its NSE skill.
func CalibrateDiffusivity(gd *grid.Definition, zobs []float64, u, duration float64) (float64, float64) {
	smple := func(ut []float64) float64 {
		return mmaths.LogLinearTransform(1e-4, 1., ut[0])
	}
	gen := func(ut []float64) float64 {
		d := smple(ut)
		dif := &Diffusion{D: d}
		st, err := NewState(gd, .2*dif.StableStep(gd))
		if err != nil {
			return -9999.
		}
		if _, err := RunDuration(st, UniformUplift(st.GD, u), []Processer{dif}, duration); err != nil {
			return -9999.
		}
		return objfunc.NSE(zobs, st.Z)
	}

	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	fmt.Println(" optimizing..")
	uFinal, _ := glbopt.SCE(runtime.GOMAXPROCS(0), 1, rng, gen, false)

	d := smple(uFinal)
	nse := gen(uFinal)
	fmt.Printf("\nfinal parameters:\n\tD:\t%v\n\tNSE:\t%v\n", d, nse)
	return d, nse
}

// streampower calibration transforms
func par3(ut []float64) (k, m, n float64) {
	k = mmaths.LogLinearTransform(1e-8, 1e-3, ut[0])
	m = mmaths.LinearTransform(.3, .7, ut[1])
	n = mmaths.LinearTransform(.7, 2., ut[2])
	return
}

// CalibrateStreamPower fits the stream-power incision parameters (K, m, n)
// to an observed elevation field. Writes an obs-sim scatter of the best fit.
func CalibrateStreamPower(gd *grid.Definition, zobs []float64, u, dt, duration float64, outdirprfx string) ([]float64, float64) {
	gen := func(ut []float64) float64 {
		k, m, n := par3(ut)
		st, err := NewState(gd, dt)
		if err != nil {
			return -9999.
		}
		sp := &StreamPower{K: k, M: m, N: n}
		if _, err := RunDuration(st, UniformUplift(st.GD, u), []Processer{sp}, duration); err != nil {
			return -9999.
		}
		return objfunc.NSE(zobs, st.Z)
	}

	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	fmt.Println(" optimizing..")
	uFinal, _ := glbopt.SCE(runtime.GOMAXPROCS(0), 3, rng, gen, false)

	k, m, n := par3(uFinal)
	nse := gen(uFinal)
	fmt.Printf("\nfinal parameters:\n\tK:\t%v\n\tm:\t%v\n\tn:\t%v\n\tNSE:\t%v\n", k, m, n, nse)

	// best-fit surface check plot
	st, _ := NewState(gd, dt)
	sp := &StreamPower{K: k, M: m, N: n}
	RunDuration(st, UniformUplift(gd, u), []Processer{sp}, duration)
	mmio.Scatter11(outdirprfx+"obssim.png", zobs, st.Z)

	return []float64{k, m, n}, nse
}
