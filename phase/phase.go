// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phase implements the opaque asynchronous-task tag the propagator
// orchestrators forward without interpreting (spec.md §4.7, §9): a
// value-typed handle a scheduler can register work under and later block on.
package phase

import "sync"

// Tag is an opaque handle identifying a group of concurrently-scheduled
// composite calls. The caller creates one per orchestrator call; the
// orchestrator launches each composite under it with Go and blocks on it
// with Wait, without inspecting its contents.
type Tag struct {
	wg *sync.WaitGroup
}

// New returns a fresh Tag with no outstanding work registered.
func New() Tag {
	return Tag{wg: &sync.WaitGroup{}}
}

// Go registers fn as one unit of work under this tag and runs it in its own
// goroutine. Composites launched under the same Tag may run concurrently
// provided they satisfy spec.md §5's disjoint-write guarantee.
func (t Tag) Go(fn func()) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		fn()
	}()
}

// Wait blocks until every unit of work registered under this tag with Go
// has completed. Callers must synchronize on the tag before consuming the
// outputs of the composites it was passed to (spec.md §5).
func (t Tag) Wait() {
	t.wg.Wait()
}
