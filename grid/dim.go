// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the staggered-lattice addressing law shared by
// every velocity and stress subgrid of the propagator.
package grid

import "github.com/cpmech/gosl/chk"

// HALO is the number of boundary cells required on each side of the interior
// to supply a full fourth-order stencil neighbourhood.
const HALO = 4

// Extent is the requested (zsize,xsize,ysize) of a shot's field arrays,
// before the allocator rounds zsize up to a pitch.
type Extent struct {
	Zsize uint
	Xsize uint
	Ysize uint
}

// Dim is the dimension descriptor threaded through every kernel call: the
// logical extent of a grid plus the padded Z-stride ("pitch") chosen by the
// allocator to satisfy vector/cache-line alignment.
type Dim struct {
	Zsize uint // logical extent along Z
	Xsize uint // logical extent along X
	Ysize uint // logical extent along Y
	Pitch uint // padded Z-stride; Pitch >= Zsize
}

// NewDim rounds Zsize up to a multiple of align (align==0 or 1 disables
// rounding) and returns the resulting dimension descriptor. align is
// typically the SIMD/cache-line width of the target (e.g. 16 float32s).
func NewDim(ext Extent, align uint) (d Dim) {
	if ext.Zsize == 0 || ext.Xsize == 0 || ext.Ysize == 0 {
		chk.Panic("grid: extent dimensions must be non-zero (got %+v)", ext)
	}
	pitch := ext.Zsize
	if align > 1 {
		if rem := pitch % align; rem != 0 {
			pitch += align - rem
		}
	}
	return Dim{Zsize: ext.Zsize, Xsize: ext.Xsize, Ysize: ext.Ysize, Pitch: pitch}
}

// Nelems returns the number of elements in every field array sharing this
// geometry: Pitch * Xsize * Ysize.
func (d Dim) Nelems() int {
	return int(d.Pitch) * int(d.Xsize) * int(d.Ysize)
}

// IDX returns the linear address of grid point (z,x,y) under d, per the
// layout  y*(xsize*pitch) + x*pitch + z.
func IDX(z, x, y int, d Dim) int {
	return y*(int(d.Xsize)*int(d.Pitch)) + x*int(d.Pitch) + z
}

// InteriorZ returns the half-open [lo,hi) range of Z indices that a
// fourth-order stencil may safely touch.
func (d Dim) InteriorZ() (lo, hi int) { return HALO, int(d.Zsize) - HALO }

// InteriorX returns the half-open [lo,hi) range of X indices that a
// fourth-order stencil may safely touch.
func (d Dim) InteriorX() (lo, hi int) { return HALO, int(d.Xsize) - HALO }

// InteriorY returns the half-open [lo,hi) range of Y indices that a
// fourth-order stencil may safely touch.
func (d Dim) InteriorY() (lo, hi int) { return HALO, int(d.Ysize) - HALO }
