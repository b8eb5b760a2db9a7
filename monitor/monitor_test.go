// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package monitor

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/eshnil2000/FWI/alloc"
	"github.com/eshnil2000/FWI/grid"
)

func freshBundle(tst *testing.T) *alloc.Bundle {
	b, err := alloc.Allocate(grid.Extent{Zsize: 16, Xsize: 16, Ysize: 16}, 0)
	if err != nil {
		tst.Fatalf("Allocate failed: %v", err)
	}
	return b
}

func TestScanBundleClean(tst *testing.T) {
	chk.PrintTitle("scan clean bundle")
	b := freshBundle(tst)
	r := ScanBundle(b)
	if r.Dirty {
		tst.Fatalf("expected clean bundle, got dirty field %q", r.Field)
	}
}

func TestScanBundleFindsNaN(tst *testing.T) {
	chk.PrintTitle("scan catches injected NaN")
	b := freshBundle(tst)
	b.V.BR.W[7] = float32(math.NaN())
	r := ScanBundle(b)
	if !r.Dirty || r.Field != "v.br.w" {
		tst.Fatalf("expected dirty v.br.w, got %+v", r)
	}
}

func TestScanBundleFindsInf(tst *testing.T) {
	chk.PrintTitle("scan catches injected Inf")
	b := freshBundle(tst)
	b.S.TL.Xx[3] = float32(math.Inf(1))
	r := ScanBundle(b)
	if !r.Dirty || r.Field != "s.tl.xx" {
		tst.Fatalf("expected dirty s.tl.xx, got %+v", r)
	}
}
