// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kernel implements the point operators that the velocity/stress
// composites build on: density averaging (spec.md §4.2), elastic-coefficient
// averaging (spec.md §4.3), and the stress-update primitive (spec.md §4.4).
package kernel

import "github.com/eshnil2000/FWI/grid"

// RhoTL returns the harmonic mean of rho over the 2-point Y-neighbourhood
// appropriate to the TL staggered position.
func RhoTL(rho []float32, z, x, y int, d grid.Dim) float32 {
	return 2.0 / (rho[grid.IDX(z, x, y, d)] + rho[grid.IDX(z, x, y+1, d)])
}

// RhoTR returns the harmonic mean of rho over the 2-point X-neighbourhood
// appropriate to the TR staggered position.
func RhoTR(rho []float32, z, x, y int, d grid.Dim) float32 {
	return 2.0 / (rho[grid.IDX(z, x, y, d)] + rho[grid.IDX(z, x+1, y, d)])
}

// RhoBL returns the harmonic mean of rho over the 2-point Z-neighbourhood
// appropriate to the BL staggered position.
func RhoBL(rho []float32, z, x, y int, d grid.Dim) float32 {
	return 2.0 / (rho[grid.IDX(z, x, y, d)] + rho[grid.IDX(z+1, x, y, d)])
}

// RhoBR returns the harmonic mean of rho over the 8 corners of the unit
// cube rooted at (z,x,y), appropriate to the BR staggered position.
func RhoBR(rho []float32, z, x, y int, d grid.Dim) float32 {
	return 8.0 / (rho[grid.IDX(z, x, y, d)] +
		rho[grid.IDX(z+1, x, y, d)] +
		rho[grid.IDX(z, x+1, y, d)] +
		rho[grid.IDX(z, x, y+1, d)] +
		rho[grid.IDX(z, x+1, y+1, d)] +
		rho[grid.IDX(z+1, x+1, y, d)] +
		rho[grid.IDX(z+1, x, y+1, d)] +
		rho[grid.IDX(z+1, x+1, y+1, d)])
}

// CellCoeffTL is the harmonic (1-sample) coefficient average at TL.
func CellCoeffTL(c []float32, z, x, y int, d grid.Dim) float32 {
	return 1.0 / c[grid.IDX(z, x, y, d)]
}

// CellCoeffTR is the harmonic (4-sample, X-Y plane) coefficient average at TR.
//
// The 2.5 factor (rather than the 4.0 an arithmetic mean of 4 samples would
// use) is reproduced verbatim from the reference implementation; see
// DESIGN.md's Open Question entry.
func CellCoeffTR(c []float32, z, x, y int, d grid.Dim) float32 {
	return 1.0 / (2.5 * (c[grid.IDX(z, x, y, d)] + c[grid.IDX(z, x+1, y, d)] +
		c[grid.IDX(z, x, y+1, d)] + c[grid.IDX(z, x+1, y+1, d)]))
}

// CellCoeffBL is the harmonic (4-sample, Y-Z plane) coefficient average at BL.
func CellCoeffBL(c []float32, z, x, y int, d grid.Dim) float32 {
	return 1.0 / (2.5 * (c[grid.IDX(z, x, y, d)] + c[grid.IDX(z, x, y+1, d)] +
		c[grid.IDX(z+1, x, y, d)] + c[grid.IDX(z+1, x, y+1, d)]))
}

// CellCoeffBR is the harmonic (4-sample, X-Z plane) coefficient average at BR.
func CellCoeffBR(c []float32, z, x, y int, d grid.Dim) float32 {
	return 1.0 / (2.5 * (c[grid.IDX(z, x, y, d)] + c[grid.IDX(z, x+1, y, d)] +
		c[grid.IDX(z+1, x, y, d)] + c[grid.IDX(z+1, x+1, y, d)]))
}

// CellCoeffARTM_TL is the arithmetic-of-reciprocals (1-sample) average at TL.
func CellCoeffARTM_TL(c []float32, z, x, y int, d grid.Dim) float32 {
	return 1.0 / c[grid.IDX(z, x, y, d)]
}

// CellCoeffARTM_TR is the arithmetic-of-reciprocals (4-sample, X-Y plane)
// average at TR.
func CellCoeffARTM_TR(c []float32, z, x, y int, d grid.Dim) float32 {
	return 0.25 * (1.0/c[grid.IDX(z, x, y, d)] + 1.0/c[grid.IDX(z, x+1, y, d)] +
		1.0/c[grid.IDX(z, x, y+1, d)] + 1.0/c[grid.IDX(z, x+1, y+1, d)])
}

// CellCoeffARTM_BL is the arithmetic-of-reciprocals (4-sample, Y-Z plane)
// average at BL.
func CellCoeffARTM_BL(c []float32, z, x, y int, d grid.Dim) float32 {
	return 0.25 * (1.0/c[grid.IDX(z, x, y, d)] + 1.0/c[grid.IDX(z, x, y+1, d)] +
		1.0/c[grid.IDX(z+1, x, y, d)] + 1.0/c[grid.IDX(z+1, x, y+1, d)])
}

// CellCoeffARTM_BR is the arithmetic-of-reciprocals (4-sample, X-Z plane)
// average at BR.
func CellCoeffARTM_BR(c []float32, z, x, y int, d grid.Dim) float32 {
	return 0.25 * (1.0/c[grid.IDX(z, x, y, d)] + 1.0/c[grid.IDX(z, x+1, y, d)] +
		1.0/c[grid.IDX(z+1, x, y, d)] + 1.0/c[grid.IDX(z+1, x+1, y, d)])
}
