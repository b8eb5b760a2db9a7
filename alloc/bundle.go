// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package alloc implements the external allocator contract of spec.md §6:
// given a requested extent it returns the 58 field arrays (12 velocity, 24
// stress, 21 coefficient, 1 density) that make up one shot's working set,
// all sharing the same (pitch,xsize,ysize) geometry.
package alloc

import (
	"github.com/cpmech/gosl/chk"

	"github.com/eshnil2000/FWI/grid"
)

// Subgrid tags one of the four half-cell-offset lattices a velocity or
// stress field is split across.
type Subgrid int

// The four staggered subgrid positions (spec.md §3).
const (
	TL Subgrid = iota
	TR
	BL
	BR
)

func (s Subgrid) String() string {
	switch s {
	case TL:
		return "TL"
	case TR:
		return "TR"
	case BL:
		return "BL"
	case BR:
		return "BR"
	default:
		return "?"
	}
}

// Cell3 holds the three particle-velocity components of one subgrid.
type Cell3 struct {
	U []float32 // velocity along X
	V []float32 // velocity along Y
	W []float32 // velocity along Z
}

// Cell6 holds the six stress components of one subgrid.
type Cell6 struct {
	Xx []float32
	Yy []float32
	Zz []float32
	Xy []float32
	Xz []float32
	Yz []float32
}

// Velocity is the 4-subgrid, 12-array velocity bundle v_t.
type Velocity struct {
	TL, TR, BL, BR Cell3
}

// Stress is the 4-subgrid, 24-array stress bundle s_t.
type Stress struct {
	TL, TR, BL, BR Cell6
}

// Coeffs holds the 21-array upper-triangular Voigt stiffness bundle c_t.
type Coeffs struct {
	C11, C12, C13, C14, C15, C16 []float32
	C22, C23, C24, C25, C26      []float32
	C33, C34, C35, C36           []float32
	C44, C45, C46                []float32
	C55, C56                     []float32
	C66                          []float32
}

// Bundle is everything one shot needs: geometry plus the 58 field arrays.
type Bundle struct {
	Dim grid.Dim
	V   Velocity
	S   Stress
	C   Coeffs
	Rho []float32
}

func mkSlice(n int) []float32 { return make([]float32, n) }

func mkCell3(n int) Cell3 { return Cell3{U: mkSlice(n), V: mkSlice(n), W: mkSlice(n)} }

func mkCell6(n int) Cell6 {
	return Cell6{Xx: mkSlice(n), Yy: mkSlice(n), Zz: mkSlice(n), Xy: mkSlice(n), Xz: mkSlice(n), Yz: mkSlice(n)}
}

// Allocate builds a Bundle for the given extent, choosing pitch via
// grid.NewDim(extent, align). Every array has length d.Nelems().
func Allocate(ext grid.Extent, align uint) (*Bundle, error) {
	if ext.Zsize <= 2*grid.HALO || ext.Xsize <= 2*grid.HALO || ext.Ysize <= 2*grid.HALO {
		return nil, chk.Err("alloc: extent %+v too small to hold a HALO=%d interior", ext, grid.HALO)
	}
	d := grid.NewDim(ext, align)
	n := d.Nelems()
	b := &Bundle{
		Dim: d,
		V: Velocity{TL: mkCell3(n), TR: mkCell3(n), BL: mkCell3(n), BR: mkCell3(n)},
		S: Stress{TL: mkCell6(n), TR: mkCell6(n), BL: mkCell6(n), BR: mkCell6(n)},
		C: Coeffs{
			C11: mkSlice(n), C12: mkSlice(n), C13: mkSlice(n), C14: mkSlice(n), C15: mkSlice(n), C16: mkSlice(n),
			C22: mkSlice(n), C23: mkSlice(n), C24: mkSlice(n), C25: mkSlice(n), C26: mkSlice(n),
			C33: mkSlice(n), C34: mkSlice(n), C35: mkSlice(n), C36: mkSlice(n),
			C44: mkSlice(n), C45: mkSlice(n), C46: mkSlice(n),
			C55: mkSlice(n), C56: mkSlice(n),
			C66: mkSlice(n),
		},
		Rho: mkSlice(n),
	}
	return b, nil
}

// Free releases the bundle's arrays. Deallocation is symmetric with
// Allocate: every slice is dropped so the backing storage becomes eligible
// for collection.
func (b *Bundle) Free() {
	b.V = Velocity{}
	b.S = Stress{}
	b.C = Coeffs{}
	b.Rho = nil
}

// VelCell returns the Cell3 of v for the given subgrid tag.
func VelCell(v *Velocity, q Subgrid) *Cell3 {
	switch q {
	case TL:
		return &v.TL
	case TR:
		return &v.TR
	case BL:
		return &v.BL
	case BR:
		return &v.BR
	default:
		chk.Panic("alloc: invalid subgrid tag %v", q)
		return nil
	}
}

// StressCell returns the Cell6 of s for the given subgrid tag.
func StressCell(s *Stress, q Subgrid) *Cell6 {
	switch q {
	case TL:
		return &s.TL
	case TR:
		return &s.TR
	case BL:
		return &s.BL
	case BR:
		return &s.BR
	default:
		chk.Panic("alloc: invalid subgrid tag %v", q)
		return nil
	}
}
