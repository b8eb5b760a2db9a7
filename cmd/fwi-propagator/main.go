// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/eshnil2000/FWI/alloc"
	"github.com/eshnil2000/FWI/config"
	"github.com/eshnil2000/FWI/flog"
	"github.com/eshnil2000/FWI/monitor"
	"github.com/eshnil2000/FWI/phase"
	"github.com/eshnil2000/FWI/propagator"
)

func main() {

	verbose := true
	log := flog.New(verbose)

	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				log.Error("%v", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	if mpi.Rank() == 0 {
		log.Banner("FWI forward propagator")
	}

	flag.Parse()
	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		chk.Panic("Please, provide a shot filename. Ex.: shot.json")
	}
	if io.FnExt(fnamepath) == "" {
		fnamepath += ".json"
	}

	shot := config.ReadShot(fnamepath)

	bundle, err := alloc.Allocate(shot.Extent(), shot.Align)
	if err != nil {
		chk.Panic("%v", err)
	}
	defer bundle.Free()

	d := bundle.Dim
	zlo, zhi := d.InteriorZ()
	xlo, xhi := d.InteriorX()
	ylo, yhi := d.InteriorY()
	b := propagator.Bounds{Nz0: zlo, Nzf: zhi, Nx0: xlo, Nxf: xhi, Ny0: ylo, Nyf: yhi}

	dt, dzi, dxi, dyi := float32(shot.Dt), float32(shot.Dzi), float32(shot.Dxi), float32(shot.Dyi)

	for n := 0; n < shot.Nsteps; n++ {
		log.Step(n, float64(n)*shot.Dt)

		ph := phase.New()
		propagator.VelocityPropagator(&bundle.V, &bundle.S, &bundle.C, bundle.Rho, dt, dzi, dxi, dyi, b, d, ph)

		ph2 := phase.New()
		propagator.StressPropagator(&bundle.S, &bundle.V, &bundle.C, bundle.Rho, dt, dzi, dxi, dyi, b, d, ph2)

		if verbose {
			if r := monitor.ScanBundle(bundle); r.Dirty {
				log.Warn("non-finite value in %s at step %d", r.Field, n)
			}
		}
	}

	log.Done(shot.Nsteps)
}
