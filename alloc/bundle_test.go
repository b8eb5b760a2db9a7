// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alloc

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/eshnil2000/FWI/grid"
)

func TestAllocate(tst *testing.T) {

	chk.PrintTitle("Allocate")

	b, err := Allocate(grid.Extent{Zsize: 32, Xsize: 16, Ysize: 16}, 16)
	if err != nil {
		tst.Fatalf("Allocate failed: %v", err)
	}

	n := b.Dim.Nelems()
	chk.Scalar(tst, "nelems", 1e-15, float64(n), float64(32*16*16))
	chk.Scalar(tst, "len(v.tl.u)", 1e-15, float64(len(b.V.TL.U)), float64(n))
	chk.Scalar(tst, "len(s.br.xy)", 1e-15, float64(len(b.S.BR.Xy)), float64(n))
	chk.Scalar(tst, "len(c.c45)", 1e-15, float64(len(b.C.C45)), float64(n))
	chk.Scalar(tst, "len(rho)", 1e-15, float64(len(b.Rho)), float64(n))

	b.Free()
	chk.Scalar(tst, "rho freed", 1e-15, float64(len(b.Rho)), 0)
}

func TestAllocateTooSmall(tst *testing.T) {

	chk.PrintTitle("Allocate too small")

	_, err := Allocate(grid.Extent{Zsize: 4, Xsize: 16, Ysize: 16}, 16)
	if err == nil {
		tst.Fatalf("expected an error for an extent smaller than 2*HALO")
	}
}

func TestCellAccessors(tst *testing.T) {

	chk.PrintTitle("cell accessors")

	b, err := Allocate(grid.Extent{Zsize: 32, Xsize: 16, Ysize: 16}, 16)
	if err != nil {
		tst.Fatalf("Allocate failed: %v", err)
	}

	VelCell(&b.V, TR).U[0] = 7
	chk.Scalar(tst, "VelCell(TR).U[0]", 1e-15, float64(b.V.TR.U[0]), 7)

	StressCell(&b.S, BL).Xz[0] = 9
	chk.Scalar(tst, "StressCell(BL).Xz[0]", 1e-15, float64(b.S.BL.Xz[0]), 9)
}
