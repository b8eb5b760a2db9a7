// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stencil implements the fourth-order directional finite-difference
// operators the propagator composites build on (spec.md §4.1).
package stencil

import "github.com/eshnil2000/FWI/grid"

// Bias selects the forward- or backward-biased fourth-order stencil.
type Bias int

// The two stencil biases (spec.md §4.1). Forward/Backward also double as
// the "forw_offset"/"back_offset" values of spec.md §4.7 (1 and 0).
const (
	Backward Bias = 0
	Forward  Bias = 1
)

// fourth-order staggered-grid coefficients.
const (
	c1 = 9.0 / 8.0
	c2 = -1.0 / 24.0
)

// Z computes the fourth-order derivative along Z at (z,x,y), scaled by the
// reciprocal grid spacing d.
func Z(bias Bias, f []float32, d float32, z, x, y int, dim grid.Dim) float32 {
	if bias == Forward {
		return (c1*(f[grid.IDX(z+1, x, y, dim)]-f[grid.IDX(z, x, y, dim)]) +
			c2*(f[grid.IDX(z+2, x, y, dim)]-f[grid.IDX(z-1, x, y, dim)])) * d
	}
	return (c1*(f[grid.IDX(z, x, y, dim)]-f[grid.IDX(z-1, x, y, dim)]) +
		c2*(f[grid.IDX(z+1, x, y, dim)]-f[grid.IDX(z-2, x, y, dim)])) * d
}

// X computes the fourth-order derivative along X at (z,x,y), scaled by the
// reciprocal grid spacing d.
func X(bias Bias, f []float32, d float32, z, x, y int, dim grid.Dim) float32 {
	if bias == Forward {
		return (c1*(f[grid.IDX(z, x+1, y, dim)]-f[grid.IDX(z, x, y, dim)]) +
			c2*(f[grid.IDX(z, x+2, y, dim)]-f[grid.IDX(z, x-1, y, dim)])) * d
	}
	return (c1*(f[grid.IDX(z, x, y, dim)]-f[grid.IDX(z, x-1, y, dim)]) +
		c2*(f[grid.IDX(z, x+1, y, dim)]-f[grid.IDX(z, x-2, y, dim)])) * d
}

// Y computes the fourth-order derivative along Y at (z,x,y), scaled by the
// reciprocal grid spacing d.
func Y(bias Bias, f []float32, d float32, z, x, y int, dim grid.Dim) float32 {
	if bias == Forward {
		return (c1*(f[grid.IDX(z, x, y+1, dim)]-f[grid.IDX(z, x, y, dim)]) +
			c2*(f[grid.IDX(z, x, y+2, dim)]-f[grid.IDX(z, x, y-1, dim)])) * d
	}
	return (c1*(f[grid.IDX(z, x, y, dim)]-f[grid.IDX(z, x, y-1, dim)]) +
		c2*(f[grid.IDX(z, x, y+1, dim)]-f[grid.IDX(z, x, y-2, dim)])) * d
}
