// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package testutil implements comparison helpers shared by the propagator's
// test files. gosl/chk's Vector/Array helpers compare float64 slices within
// a tolerance; the staggered-grid kernels promise bit-exact reproducibility
// of the reference arithmetic, so equality here is exact, not tolerance-based.
package testutil

import "testing"

// EqualFloat32 fails tst if got and want differ in length or in any element,
// reporting the first mismatching index.
func EqualFloat32(tst *testing.T, name string, got, want []float32) {
	if len(got) != len(want) {
		tst.Fatalf("%s: length mismatch: got %d, want %d", name, len(got), len(want))
		return
	}
	for i := range want {
		if got[i] != want[i] {
			tst.Fatalf("%s: mismatch at index %d: got %v, want %v", name, i, got[i], want[i])
			return
		}
	}
}

// AllZero fails tst if any element of f is non-zero.
func AllZero(tst *testing.T, name string, f []float32) {
	for i, v := range f {
		if v != 0 {
			tst.Fatalf("%s: expected zero at index %d, got %v", name, i, v)
		}
	}
}
