// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestIDX(tst *testing.T) {

	chk.PrintTitle("IDX")

	d := Dim{Zsize: 4, Xsize: 4, Ysize: 4, Pitch: 8}

	chk.Scalar(tst, "IDX(0,0,0)", 1e-15, float64(IDX(0, 0, 0, d)), 0)
	chk.Scalar(tst, "IDX(0,0,1)", 1e-15, float64(IDX(0, 0, 1, d)), float64(1*4*8))
	chk.Scalar(tst, "IDX(0,1,0)", 1e-15, float64(IDX(0, 1, 0, d)), float64(1*8))
	chk.Scalar(tst, "IDX(0,1,1)", 1e-15, float64(IDX(0, 1, 1, d)), float64(1*4*8+1*8))
	chk.Scalar(tst, "IDX(1,0,0)", 1e-15, float64(IDX(1, 0, 0, d)), 1)
	chk.Scalar(tst, "IDX(1,0,1)", 1e-15, float64(IDX(1, 0, 1, d)), float64(1*4*8+1))
	chk.Scalar(tst, "IDX(1,1,0)", 1e-15, float64(IDX(1, 1, 0, d)), float64(1*8+1))
	chk.Scalar(tst, "IDX(1,1,1)", 1e-15, float64(IDX(1, 1, 1, d)), float64(1*4*8+1*8+1))

	// sample from spec.md §8: pitch=8, xsize=4, ysize=4 => IDX(1,1,1) = 41
	chk.Scalar(tst, "IDX(1,1,1) sample", 1e-15, float64(IDX(1, 1, 1, d)), 41)
}

func TestNewDim(tst *testing.T) {

	chk.PrintTitle("NewDim")

	d := NewDim(Extent{Zsize: 32, Xsize: 16, Ysize: 16}, 16)
	chk.Scalar(tst, "pitch rounds up to alignment", 1e-15, float64(d.Pitch), 32)
	chk.Scalar(tst, "nelems", 1e-15, float64(d.Nelems()), float64(32*16*16))

	d2 := NewDim(Extent{Zsize: 20, Xsize: 8, Ysize: 8}, 16)
	chk.Scalar(tst, "pitch rounds up (non-multiple)", 1e-15, float64(d2.Pitch), 32)

	d3 := NewDim(Extent{Zsize: 20, Xsize: 8, Ysize: 8}, 0)
	chk.Scalar(tst, "pitch unchanged without alignment", 1e-15, float64(d3.Pitch), 20)
}

func TestInterior(tst *testing.T) {

	chk.PrintTitle("Interior")

	d := Dim{Zsize: 32, Xsize: 16, Ysize: 16, Pitch: 32}
	zlo, zhi := d.InteriorZ()
	chk.Scalar(tst, "zlo", 1e-15, float64(zlo), HALO)
	chk.Scalar(tst, "zhi", 1e-15, float64(zhi), float64(32-HALO))
}
