// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package propagator

import (
	"github.com/eshnil2000/FWI/alloc"
	"github.com/eshnil2000/FWI/grid"
	"github.com/eshnil2000/FWI/phase"
	"github.com/eshnil2000/FWI/stencil"
)

// Named offsets for stencil bias (spec.md §4.7): forw_offset/back_offset.
const (
	ForwOffset = stencil.Forward
	BackOffset = stencil.Backward
)

// VelocityPropagator fires the 12 vcell composites (4 subgrids x 3
// components) in the fixed routing table of spec.md §4.7. Every call writes
// a disjoint velocity array and reads a consistent stress/density snapshot,
// so all 12 are launched concurrently under one phase.Tag and joined before
// returning.
func VelocityPropagator(v *alloc.Velocity, s *alloc.Stress, c *alloc.Coeffs, rho []float32,
	dt, dzi, dxi, dyi float32, b Bounds, d grid.Dim, ph phase.Tag) {

	ph.Go(func() {
		ComputeVcellTL(v.TL.W, s.BL.Zz, s.TR.Xz, s.TL.Yz, rho, dt, dzi, dxi, dyi, b, BackOffset, BackOffset, ForwOffset, d)
	})
	ph.Go(func() {
		ComputeVcellTR(v.TR.W, s.BR.Zz, s.TL.Xz, s.TR.Yz, rho, dt, dzi, dxi, dyi, b, BackOffset, ForwOffset, BackOffset, d)
	})
	ph.Go(func() {
		ComputeVcellBL(v.BL.W, s.TL.Zz, s.BR.Xz, s.BL.Yz, rho, dt, dzi, dxi, dyi, b, ForwOffset, BackOffset, BackOffset, d)
	})
	ph.Go(func() {
		ComputeVcellBR(v.BR.W, s.TR.Zz, s.BL.Xz, s.BR.Yz, rho, dt, dzi, dxi, dyi, b, ForwOffset, ForwOffset, ForwOffset, d)
	})

	ph.Go(func() {
		ComputeVcellTL(v.TL.U, s.BL.Xz, s.TR.Xx, s.TL.Xy, rho, dt, dzi, dxi, dyi, b, BackOffset, BackOffset, ForwOffset, d)
	})
	ph.Go(func() {
		ComputeVcellTR(v.TR.U, s.BR.Xz, s.TL.Xx, s.TR.Xy, rho, dt, dzi, dxi, dyi, b, BackOffset, ForwOffset, BackOffset, d)
	})
	ph.Go(func() {
		ComputeVcellBL(v.BL.U, s.TL.Xz, s.BR.Xx, s.BL.Xy, rho, dt, dzi, dxi, dyi, b, ForwOffset, BackOffset, BackOffset, d)
	})
	ph.Go(func() {
		ComputeVcellBR(v.BR.U, s.TR.Xz, s.BL.Xx, s.BR.Xy, rho, dt, dzi, dxi, dyi, b, ForwOffset, ForwOffset, ForwOffset, d)
	})

	ph.Go(func() {
		ComputeVcellTL(v.TL.V, s.BL.Yz, s.TR.Xy, s.TL.Yy, rho, dt, dzi, dxi, dyi, b, BackOffset, BackOffset, ForwOffset, d)
	})
	ph.Go(func() {
		ComputeVcellTR(v.TR.V, s.BR.Yz, s.TL.Xy, s.TR.Yy, rho, dt, dzi, dxi, dyi, b, BackOffset, ForwOffset, BackOffset, d)
	})
	ph.Go(func() {
		ComputeVcellBL(v.BL.V, s.TL.Yz, s.BR.Xy, s.BL.Yy, rho, dt, dzi, dxi, dyi, b, ForwOffset, BackOffset, BackOffset, d)
	})
	ph.Go(func() {
		ComputeVcellBR(v.BR.V, s.TR.Yz, s.BL.Xy, s.BR.Yy, rho, dt, dzi, dxi, dyi, b, ForwOffset, ForwOffset, ForwOffset, d)
	})

	ph.Wait()
}

// StressPropagator fires the 4 scell composites (one per subgrid, each
// updating 6 stresses) in the fixed routing table of spec.md §4.7. All 4
// write disjoint stress subgrids, so they are launched concurrently under
// one phase.Tag and joined before returning.
func StressPropagator(s *alloc.Stress, v *alloc.Velocity, c *alloc.Coeffs, rho []float32,
	dt, dzi, dxi, dyi float32, b Bounds, d grid.Dim, ph phase.Tag) {

	ph.Go(func() {
		ComputeScellBR(s, &v.TR, &v.BL, &v.BR, c, dt, dzi, dxi, dyi, b, ForwOffset, BackOffset, BackOffset, d)
	})
	ph.Go(func() {
		ComputeScellBL(s, &v.TL, &v.BR, &v.BL, c, dt, dzi, dxi, dyi, b, ForwOffset, BackOffset, ForwOffset, d)
	})
	ph.Go(func() {
		ComputeScellTR(s, &v.BR, &v.TL, &v.TR, c, dt, dzi, dxi, dyi, b, BackOffset, ForwOffset, ForwOffset, d)
	})
	ph.Go(func() {
		ComputeScellTL(s, &v.BL, &v.TR, &v.TL, c, dt, dzi, dxi, dyi, b, BackOffset, BackOffset, BackOffset, d)
	})

	ph.Wait()
}
