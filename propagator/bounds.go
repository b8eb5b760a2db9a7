// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package propagator implements the velocity/stress composites and the
// orchestrators that fire them in the fixed routing order of spec.md §4.7.
package propagator

// Bounds describes the interior sub-volume a composite call updates.
// Callers must honor Nz0,Nx0,Ny0 >= grid.HALO and Nzf <= zsize-grid.HALO
// (and analogously for X,Y).
type Bounds struct {
	Nz0, Nzf int
	Nx0, Nxf int
	Ny0, Nyf int
}
