// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stencil

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/eshnil2000/FWI/grid"
)

func randomField(n int, rng *rand.Rand) []float32 {
	f := make([]float32, n)
	for i := range f {
		f[i] = rng.Float32()
	}
	return f
}

// TestShiftDuality verifies spec.md §8's required identity:
// stencil(FORWARD, f, d, p) == stencil(BACKWARD, f, d, p+1) along the axis.
func TestShiftDuality(tst *testing.T) {

	chk.PrintTitle("shift duality")

	dim := grid.Dim{Zsize: 32, Xsize: 16, Ysize: 16, Pitch: 32}
	rng := rand.New(rand.NewSource(1))
	f := randomField(dim.Nelems(), rng)
	const d = float32(1.0)

	zlo, zhi := dim.InteriorZ()
	for y := 0; y < int(dim.Ysize); y++ {
		for x := 0; x < int(dim.Xsize); x++ {
			for z := zlo; z < zhi; z++ {
				got := Z(Forward, f, d, z, x, y, dim)
				want := Z(Backward, f, d, z+1, x, y, dim)
				if got != want {
					tst.Fatalf("stencil_Z shift duality broken at z=%d x=%d y=%d: %v != %v", z, x, y, got, want)
				}
			}
		}
	}

	xlo, xhi := dim.InteriorX()
	for y := 0; y < int(dim.Ysize); y++ {
		for x := xlo; x < xhi; x++ {
			for z := 0; z < int(dim.Zsize); z++ {
				got := X(Forward, f, d, z, x, y, dim)
				want := X(Backward, f, d, z, x+1, y, dim)
				if got != want {
					tst.Fatalf("stencil_X shift duality broken at z=%d x=%d y=%d: %v != %v", z, x, y, got, want)
				}
			}
		}
	}

	ylo, yhi := dim.InteriorY()
	for y := ylo; y < yhi; y++ {
		for x := 0; x < int(dim.Xsize); x++ {
			for z := 0; z < int(dim.Zsize); z++ {
				got := Y(Forward, f, d, z, x, y, dim)
				want := Y(Backward, f, d, z, x, y+1, dim)
				if got != want {
					tst.Fatalf("stencil_Y shift duality broken at z=%d x=%d y=%d: %v != %v", z, x, y, got, want)
				}
			}
		}
	}
}

// TestConstantFieldIsZero covers spec.md §8 scenario 4: a spatially
// constant field differentiates to zero under stencil Z, for both biases,
// over the interior Z range of the column x=5, y=5.
func TestConstantFieldIsZero(tst *testing.T) {

	chk.PrintTitle("constant field stencils are zero")

	dim := grid.Dim{Zsize: 32, Xsize: 16, Ysize: 16, Pitch: 32}
	f := make([]float32, dim.Nelems())
	for i := range f {
		f[i] = 3.5
	}
	const d = float32(1.0)

	zlo, zhi := dim.InteriorZ()
	for _, bias := range []Bias{Forward, Backward} {
		for z := zlo; z < zhi; z++ {
			chk.Scalar(tst, "stencil_Z(const)", 1e-15, float64(Z(bias, f, d, z, 5, 5, dim)), 0)
		}
	}
}
