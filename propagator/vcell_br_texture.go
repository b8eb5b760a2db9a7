// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build vceltexture

package propagator

import "github.com/eshnil2000/FWI/kernel"

// brRho is the density average ComputeVcellBR uses. Built with the
// vceltexture tag (the Go equivalent of the reference's VCELL_BR_TEXTURE
// switch), this selects the 9-bit fixed-point trilinear emulation of
// spec.md §4.5.
var brRho rhoFunc = kernel.TrilinearRhoBR
