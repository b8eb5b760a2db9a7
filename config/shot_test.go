// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/eshnil2000/FWI/grid"
)

func TestShotInitBindsPrms(tst *testing.T) {
	chk.PrintTitle("shot init binds example prms")
	var s Shot
	if err := s.Init(s.GetPrms()); err != nil {
		tst.Fatalf("Init failed: %v", err)
	}
	chk.Scalar(tst, "zsize", 1e-15, float64(s.Zsize), 64)
	chk.Scalar(tst, "xsize", 1e-15, float64(s.Xsize), 32)
	chk.Scalar(tst, "ysize", 1e-15, float64(s.Ysize), 32)
	chk.Scalar(tst, "nsteps", 1e-15, float64(s.Nsteps), 100)
	chk.Scalar(tst, "dt", 1e-15, s.Dt, 1.0e-4)
	chk.Scalar(tst, "dzi", 1e-15, s.Dzi, 100.0)
	chk.Scalar(tst, "dxi", 1e-15, s.Dxi, 100.0)
	chk.Scalar(tst, "dyi", 1e-15, s.Dyi, 100.0)
	want := grid.Extent{Zsize: 64, Xsize: 32, Ysize: 32}
	if got := s.Extent(); got != want {
		tst.Fatalf("Extent() = %+v, want %+v", got, want)
	}
}
