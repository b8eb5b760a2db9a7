// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package monitor scans a shot's working set for divergence after a
// propagator step, independent of the hot-path kernels themselves.
package monitor

import (
	"gonum.org/v1/gonum/floats"

	"github.com/eshnil2000/FWI/alloc"
)

// Report names the first non-finite array the scan found, or is the zero
// value if none was found.
type Report struct {
	Dirty bool
	Field string
}

// ScanBundle checks every velocity and stress array in b for NaN/Inf and
// returns the first offender. It does not touch the coefficient or density
// arrays, which are static for the life of a shot and never accumulate.
func ScanBundle(b *alloc.Bundle) Report {
	for _, f := range []struct {
		name string
		data []float32
	}{
		{"v.tl.u", b.V.TL.U}, {"v.tl.v", b.V.TL.V}, {"v.tl.w", b.V.TL.W},
		{"v.tr.u", b.V.TR.U}, {"v.tr.v", b.V.TR.V}, {"v.tr.w", b.V.TR.W},
		{"v.bl.u", b.V.BL.U}, {"v.bl.v", b.V.BL.V}, {"v.bl.w", b.V.BL.W},
		{"v.br.u", b.V.BR.U}, {"v.br.v", b.V.BR.V}, {"v.br.w", b.V.BR.W},
		{"s.tl.xx", b.S.TL.Xx}, {"s.tl.yy", b.S.TL.Yy}, {"s.tl.zz", b.S.TL.Zz},
		{"s.tl.xy", b.S.TL.Xy}, {"s.tl.xz", b.S.TL.Xz}, {"s.tl.yz", b.S.TL.Yz},
		{"s.tr.xx", b.S.TR.Xx}, {"s.tr.yy", b.S.TR.Yy}, {"s.tr.zz", b.S.TR.Zz},
		{"s.tr.xy", b.S.TR.Xy}, {"s.tr.xz", b.S.TR.Xz}, {"s.tr.yz", b.S.TR.Yz},
		{"s.bl.xx", b.S.BL.Xx}, {"s.bl.yy", b.S.BL.Yy}, {"s.bl.zz", b.S.BL.Zz},
		{"s.bl.xy", b.S.BL.Xy}, {"s.bl.xz", b.S.BL.Xz}, {"s.bl.yz", b.S.BL.Yz},
		{"s.br.xx", b.S.BR.Xx}, {"s.br.yy", b.S.BR.Yy}, {"s.br.zz", b.S.BR.Zz},
		{"s.br.xy", b.S.BR.Xy}, {"s.br.xz", b.S.BR.Xz}, {"s.br.yz", b.S.BR.Yz},
	} {
		if hasNaNOrInf(f.data) {
			return Report{Dirty: true, Field: f.name}
		}
	}
	return Report{}
}

func hasNaNOrInf(f []float32) bool {
	f64 := make([]float64, len(f))
	for i, v := range f {
		f64[i] = float64(v)
	}
	if floats.HasNaN(f64) {
		return true
	}
	for _, v := range f64 {
		if v > maxFinite || v < -maxFinite {
			return true
		}
	}
	return false
}

// maxFinite bounds what counts as "finite" for monitoring purposes; beyond
// this magnitude the run is considered to have diverged even without an
// actual Inf bit pattern.
const maxFinite = 1e30
