// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package propagator

import (
	"github.com/eshnil2000/FWI/alloc"
	"github.com/eshnil2000/FWI/grid"
	"github.com/eshnil2000/FWI/kernel"
	"github.com/eshnil2000/FWI/stencil"
)

// coeffFunc is the shape shared by the harmonic and arithmetic-of-
// reciprocals coefficient averagers of package kernel.
type coeffFunc func(c []float32, z, x, y int, d grid.Dim) float32

// computeScell is the shared triple loop behind every
// compute_component_scell_Q (spec.md §4.6). vz, vx, vy are the velocity
// subgrids feeding the Z-, X- and Y-gradient respectively (the routing of
// which physical subgrid plays each role is the orchestrator's job, per the
// fixed table of spec.md §4.7); harmonic/artm select the Q-specific
// coefficient averagers.
func computeScell(out *alloc.Cell6, vz, vx, vy *alloc.Cell3, c *alloc.Coeffs,
	dt, dzi, dxi, dyi float32, b Bounds, SZ, SX, SY stencil.Bias, d grid.Dim,
	harmonic, artm coeffFunc) {

	for y := b.Ny0; y < b.Nyf; y++ {
		for x := b.Nx0; x < b.Nxf; x++ {
			for z := b.Nz0; z < b.Nzf; z++ {

				c11 := harmonic(c.C11, z, x, y, d)
				c12 := harmonic(c.C12, z, x, y, d)
				c13 := harmonic(c.C13, z, x, y, d)
				c14 := artm(c.C14, z, x, y, d)
				c15 := artm(c.C15, z, x, y, d)
				c16 := artm(c.C16, z, x, y, d)
				c22 := harmonic(c.C22, z, x, y, d)
				c23 := harmonic(c.C23, z, x, y, d)
				c24 := artm(c.C24, z, x, y, d)
				c25 := artm(c.C25, z, x, y, d)
				c26 := artm(c.C26, z, x, y, d)
				c33 := harmonic(c.C33, z, x, y, d)
				c34 := artm(c.C34, z, x, y, d)
				c35 := artm(c.C35, z, x, y, d)
				c36 := artm(c.C36, z, x, y, d)
				c44 := harmonic(c.C44, z, x, y, d)
				c45 := artm(c.C45, z, x, y, d)
				c46 := artm(c.C46, z, x, y, d)
				c55 := harmonic(c.C55, z, x, y, d)
				c56 := artm(c.C56, z, x, y, d)
				c66 := harmonic(c.C66, z, x, y, d)

				ux := stencil.X(SX, vx.U, dxi, z, x, y, d)
				vx_ := stencil.X(SX, vx.V, dxi, z, x, y, d)
				wx := stencil.X(SX, vx.W, dxi, z, x, y, d)

				uy := stencil.Y(SY, vy.U, dyi, z, x, y, d)
				vy_ := stencil.Y(SY, vy.V, dyi, z, x, y, d)
				wy := stencil.Y(SY, vy.W, dyi, z, x, y, d)

				uz := stencil.Z(SZ, vz.U, dzi, z, x, y, d)
				vz_ := stencil.Z(SZ, vz.V, dzi, z, x, y, d)
				wz := stencil.Z(SZ, vz.W, dzi, z, x, y, d)

				kernel.StressUpdate(out.Xx, c11, c12, c13, c14, c15, c16, z, x, y, dt, ux, uy, uz, vx_, vy_, vz_, wx, wy, wz, d)
				kernel.StressUpdate(out.Yy, c12, c22, c23, c24, c25, c26, z, x, y, dt, ux, uy, uz, vx_, vy_, vz_, wx, wy, wz, d)
				kernel.StressUpdate(out.Zz, c13, c23, c33, c34, c35, c36, z, x, y, dt, ux, uy, uz, vx_, vy_, vz_, wx, wy, wz, d)
				kernel.StressUpdate(out.Yz, c14, c24, c34, c44, c45, c46, z, x, y, dt, ux, uy, uz, vx_, vy_, vz_, wx, wy, wz, d)
				kernel.StressUpdate(out.Xz, c15, c25, c35, c45, c55, c56, z, x, y, dt, ux, uy, uz, vx_, vy_, vz_, wx, wy, wz, d)
				kernel.StressUpdate(out.Xy, c16, c26, c36, c46, c56, c66, z, x, y, dt, ux, uy, uz, vx_, vy_, vz_, wx, wy, wz, d)
			}
		}
	}
}

// ComputeScellTL updates the six TL stress components.
func ComputeScellTL(sOut *alloc.Stress, vz, vx, vy *alloc.Cell3, c *alloc.Coeffs,
	dt, dzi, dxi, dyi float32, b Bounds, SZ, SX, SY stencil.Bias, d grid.Dim) {
	computeScell(&sOut.TL, vz, vx, vy, c, dt, dzi, dxi, dyi, b, SZ, SX, SY, d, kernel.CellCoeffTL, kernel.CellCoeffARTM_TL)
}

// ComputeScellTR updates the six TR stress components.
func ComputeScellTR(sOut *alloc.Stress, vz, vx, vy *alloc.Cell3, c *alloc.Coeffs,
	dt, dzi, dxi, dyi float32, b Bounds, SZ, SX, SY stencil.Bias, d grid.Dim) {
	computeScell(&sOut.TR, vz, vx, vy, c, dt, dzi, dxi, dyi, b, SZ, SX, SY, d, kernel.CellCoeffTR, kernel.CellCoeffARTM_TR)
}

// ComputeScellBL updates the six BL stress components.
func ComputeScellBL(sOut *alloc.Stress, vz, vx, vy *alloc.Cell3, c *alloc.Coeffs,
	dt, dzi, dxi, dyi float32, b Bounds, SZ, SX, SY stencil.Bias, d grid.Dim) {
	computeScell(&sOut.BL, vz, vx, vy, c, dt, dzi, dxi, dyi, b, SZ, SX, SY, d, kernel.CellCoeffBL, kernel.CellCoeffARTM_BL)
}

// ComputeScellBR updates the six BR stress components.
func ComputeScellBR(sOut *alloc.Stress, vz, vx, vy *alloc.Cell3, c *alloc.Coeffs,
	dt, dzi, dxi, dyi float32, b Bounds, SZ, SX, SY stencil.Bias, d grid.Dim) {
	computeScell(&sOut.BR, vz, vx, vy, c, dt, dzi, dxi, dyi, b, SZ, SX, SY, d, kernel.CellCoeffBR, kernel.CellCoeffARTM_BR)
}
