// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !vceltexture

package propagator

import "github.com/eshnil2000/FWI/kernel"

// brRho is the density average ComputeVcellBR uses. Without the
// vceltexture build tag this is the plain 8-point harmonic mean of
// spec.md §4.2.
var brRho rhoFunc = kernel.RhoBR
