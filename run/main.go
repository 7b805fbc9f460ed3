package main

import (
	"fmt"
	"log"

	"github.com/maseology/mmio"

	"github.com/maseology/lem"
	"github.com/maseology/lem/grid"
)

func main() {

	const (
		outdir = "out/"

		// fluvial run
		nr, nc = 128, 128
		cw     = 100.   // cell width [m]
		uplift = 1e-4   // [m/yr]
		kf     = 2e-5   // erodibility
		mexp   = .5     // area exponent
		nexp   = 1.     // slope exponent
		dt     = 100.   // [yr]
		dur    = 500e3  // [yr]

		// hillslope (ridge) run
		rnr, rnc = 21, 5
		rcw      = 10.   // ridge half-width H = (rnr-1)*rcw/2 = 100 m
		diffu    = .01   // diffusivity [m²/yr]
		tol      = .01   // steady-state tolerance, fraction of peak
	)

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap("\nrun complete")
	mmio.MakeDir(outdir)

	// fluvial incision to a mountain block
	gd, err := grid.NewDefinition(nr, nc, cw)
	if err != nil {
		log.Fatalln(err)
	}
	st, err := lem.NewState(gd, dt)
	if err != nil {
		log.Fatalln(err)
	}
	nsteps := int(dur / dt)
	fmt.Printf(" fluvial run: %s cells, %s steps\n", mmio.Thousands(int64(gd.Ncells())), mmio.Thousands(int64(nsteps)))
	sp := &lem.StreamPower{K: kf, M: mexp, N: nexp}
	up := lem.UniformUplift(gd, uplift)
	if err := lem.EvaluateSerial(st, up, []lem.Processer{sp}, nsteps, outdir+"fluvial."); err != nil {
		log.Fatalln(err)
	}
	tt.Print("fluvial run complete")

	// diffusive ridge to analytical steady state
	rgd, err := grid.NewDefinition(rnr, rnc, rcw)
	if err != nil {
		log.Fatalln(err)
	}
	rgd.SetFixedEdges(true, false, true, false)
	dif := &lem.Diffusion{D: diffu}
	rst, err := lem.NewState(rgd, .2*dif.StableStep(rgd))
	if err != nil {
		log.Fatalln(err)
	}
	reached, steps, err := lem.SteadyDiffusion(rst, uplift, dif, tol, 100000)
	if err != nil {
		log.Fatalln(err)
	}
	if reached {
		fmt.Printf(" ridge steady state reached after %s steps (t = %.0f)\n", mmio.Thousands(int64(steps)), rst.T)
	} else {
		fmt.Printf(" ridge steady state NOT reached after %s steps\n", mmio.Thousands(int64(steps)))
	}
	mmio.ObsSim(outdir+"ridge.png", lem.RidgeTarget(rgd, uplift, diffu), rst.Z)
	if err := rgd.ToASC(outdir+"ridge.z.asc", rst.Z); err != nil {
		log.Fatalln(err)
	}
	tt.Print("ridge run complete")

	// sweep the (uplift, diffusivity) plane
	lem.SampleRidge(rgd, 50, 100000, outdir+"sweep.")
}
