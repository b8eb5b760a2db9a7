// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config loads and binds the parameters of one shot run: grid
// extent, time step, inverse spacings, step count and the allocator/texture
// switches.
package config

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/eshnil2000/FWI/grid"
)

// Shot holds everything a single propagation run needs beyond the field
// arrays themselves.
type Shot struct {
	Zsize  uint // grid extent, Z
	Xsize  uint // grid extent, X
	Ysize  uint // grid extent, Y
	Align  uint // Z-pitch alignment passed to grid.NewDim
	Nsteps int  // number of velocity/stress half-step pairs to run

	Dt  float64 // time step
	Dzi float64 // 1/dz
	Dxi float64 // 1/dx
	Dyi float64 // 1/dy

	Texture bool // request the trilinear BR density path; ReadShot only prints a notice, the path itself is chosen by the vceltexture build tag
}

// Extent returns the grid.Extent this shot allocates.
func (s *Shot) Extent() grid.Extent {
	return grid.Extent{Zsize: s.Zsize, Xsize: s.Xsize, Ysize: s.Ysize}
}

// Init binds prms onto the shot's numeric fields, following the
// fun.Prms/Connect pattern the material models use.
func (s *Shot) Init(prms fun.Prms) (err error) {
	var zsize, xsize, ysize, align, nsteps float64
	prms.Connect(&zsize, "zsize", "shot")
	prms.Connect(&xsize, "xsize", "shot")
	prms.Connect(&ysize, "ysize", "shot")
	prms.Connect(&align, "align", "shot")
	prms.Connect(&nsteps, "nsteps", "shot")
	prms.Connect(&s.Dt, "dt", "shot")
	prms.Connect(&s.Dzi, "dzi", "shot")
	prms.Connect(&s.Dxi, "dxi", "shot")
	prms.Connect(&s.Dyi, "dyi", "shot")
	s.Zsize, s.Xsize, s.Ysize = uint(zsize), uint(xsize), uint(ysize)
	s.Align = uint(align)
	s.Nsteps = int(nsteps)
	return
}

// GetPrms returns an example parameter set, mirroring the material models'
// GetPrms convention.
func (s Shot) GetPrms() fun.Prms {
	return []*fun.Prm{
		{N: "zsize", V: 64},
		{N: "xsize", V: 32},
		{N: "ysize", V: 32},
		{N: "align", V: 16},
		{N: "nsteps", V: 100},
		{N: "dt", V: 1.0e-4},
		{N: "dzi", V: 100.0},
		{N: "dxi", V: 100.0},
		{N: "dyi", V: 100.0},
	}
}

// ReadShot reads a shot's parameters from a .json file, following the
// read-then-unmarshal shape of inp.ReadSim.
func ReadShot(fnamepath string) *Shot {
	b, err := io.ReadFile(fnamepath)
	if err != nil {
		chk.Panic("ReadShot: cannot read shot file %q", fnamepath)
	}
	var s Shot
	err = json.Unmarshal(b, &s)
	if err != nil {
		chk.Panic("ReadShot: cannot unmarshal shot file %q", fnamepath)
	}
	if s.Texture {
		io.Pfyel("ReadShot: texture density path requested; build with -tags vceltexture\n")
	}
	return &s
}
