// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "github.com/eshnil2000/FWI/grid"

// StressUpdate accumulates one row of the anisotropic constitutive update
// σ̇ = C : ε̇ into s[z,x,y] (spec.md §4.4):
//
//	s[z,x,y] += dt * (c1*ux + c2*vy + c3*wz + c4*(wy+vz) + c5*(wx+uz) + c6*(vx+uy))
func StressUpdate(s []float32, c1, c2, c3, c4, c5, c6 float32, z, x, y int, dt,
	ux, uy, uz, vx, vy, vz, wx, wy, wz float32, d grid.Dim) {
	idx := grid.IDX(z, x, y, d)
	s[idx] += dt * (c1*ux + c2*vy + c3*wz + c4*(wy+vz) + c5*(wx+uz) + c6*(vx+uy))
}
