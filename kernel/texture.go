// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "github.com/eshnil2000/FWI/grid"

// TrilinearRhoBR emulates the hardware-texture trilinear-interpolation path
// of the BR density average (spec.md §4.5, build switch VCELL_BR_TEXTURE).
//
// Interpolation weights are quantized to 9-bit fixed point (8 fractional
// bits), matching the reference emulation exactly:
//
//	increment = 0.5; zb = z - 0.5 + increment  (reduces to zb == z)
//
// so a, b, c collapse to 0 and the interpolation degenerates to the
// (z,x,y) corner. This is preserved verbatim per spec.md §9's Open
// Question rather than "fixed" to a true sub-cell interpolation.
func TrilinearRhoBR(rho []float32, z, x, y int, d grid.Dim) float32 {
	const increment = float32(0.5)

	zb := float32(z) - 0.5 + increment
	xb := float32(x) - 0.5 + increment
	yb := float32(y) - 0.5 + increment

	a := zb - float32(int(zb))
	b := xb - float32(int(xb))
	c := yb - float32(int(yb))

	a = float32(int(a*256.0+0.5)) / 256.0
	b = float32(int(b*256.0+0.5)) / 256.0
	c = float32(int(c*256.0+0.5)) / 256.0

	i := int(zb)
	j := int(xb)
	k := int(yb)

	return 1.0 / ((1-a)*(1-b)*(1-c)*rho[grid.IDX(i, j, k, d)] +
		a*(1-b)*(1-c)*rho[grid.IDX(i+1, j, k, d)] +
		(1-a)*b*(1-c)*rho[grid.IDX(i, j+1, k, d)] +
		a*b*(1-c)*rho[grid.IDX(i+1, j+1, k, d)] +
		(1-a)*(1-b)*c*rho[grid.IDX(i, j, k+1, d)] +
		a*(1-b)*c*rho[grid.IDX(i+1, j, k+1, d)] +
		(1-a)*b*c*rho[grid.IDX(i, j+1, k+1, d)] +
		a*b*c*rho[grid.IDX(i+1, j+1, k+1, d)])
}
