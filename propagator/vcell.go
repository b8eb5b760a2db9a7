// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package propagator

import (
	"github.com/eshnil2000/FWI/grid"
	"github.com/eshnil2000/FWI/kernel"
	"github.com/eshnil2000/FWI/stencil"
)

// rhoFunc is the shape shared by the four density averagers of package
// kernel; the four vcell composites differ only in which one they use.
type rhoFunc func(rho []float32, z, x, y int, d grid.Dim) float32

// computeVcell is the shared triple loop behind every
// compute_component_vcell_Q (spec.md §4.5). For every interior point it
// combines three directional stencils of three stress fields with a
// locally-averaged density to accumulate one velocity component.
func computeVcell(vout, sz, sx, sy, rho []float32, dt, dzi, dxi, dyi float32,
	b Bounds, SZ, SX, SY stencil.Bias, d grid.Dim, rho_ rhoFunc) {

	for y := b.Ny0; y < b.Nyf; y++ {
		for x := b.Nx0; x < b.Nxf; x++ {
			for z := b.Nz0; z < b.Nzf; z++ {
				lrho := rho_(rho, z, x, y, d)

				stx := stencil.X(SX, sx, dxi, z, x, y, d)
				sty := stencil.Y(SY, sy, dyi, z, x, y, d)
				stz := stencil.Z(SZ, sz, dzi, z, x, y, d)

				idx := grid.IDX(z, x, y, d)
				vout[idx] += (stx + sty + stz) * dt * lrho
			}
		}
	}
}

// ComputeVcellTL updates one velocity component on the TL subgrid.
func ComputeVcellTL(vout, sz, sx, sy, rho []float32, dt, dzi, dxi, dyi float32,
	b Bounds, SZ, SX, SY stencil.Bias, d grid.Dim) {
	computeVcell(vout, sz, sx, sy, rho, dt, dzi, dxi, dyi, b, SZ, SX, SY, d, kernel.RhoTL)
}

// ComputeVcellTR updates one velocity component on the TR subgrid.
func ComputeVcellTR(vout, sz, sx, sy, rho []float32, dt, dzi, dxi, dyi float32,
	b Bounds, SZ, SX, SY stencil.Bias, d grid.Dim) {
	computeVcell(vout, sz, sx, sy, rho, dt, dzi, dxi, dyi, b, SZ, SX, SY, d, kernel.RhoTR)
}

// ComputeVcellBL updates one velocity component on the BL subgrid.
func ComputeVcellBL(vout, sz, sx, sy, rho []float32, dt, dzi, dxi, dyi float32,
	b Bounds, SZ, SX, SY stencil.Bias, d grid.Dim) {
	computeVcell(vout, sz, sx, sy, rho, dt, dzi, dxi, dyi, b, SZ, SX, SY, d, kernel.RhoBL)
}

// ComputeVcellBR updates one velocity component on the BR subgrid. The
// density average used is brRho, which is either kernel.RhoBR or, when
// built with the vceltexture build tag, kernel.TrilinearRhoBR (spec.md
// §4.5's optional texture-interpolated density path).
func ComputeVcellBR(vout, sz, sx, sy, rho []float32, dt, dzi, dxi, dyi float32,
	b Bounds, SZ, SX, SY stencil.Bias, d grid.Dim) {
	computeVcell(vout, sz, sx, sy, rho, dt, dzi, dxi, dyi, b, SZ, SX, SY, d, brRho)
}
