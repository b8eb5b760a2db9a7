// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flog wraps the colourized console output the command-line driver
// prints around a shot run, gated by a single verbosity flag.
package flog

import "github.com/cpmech/gosl/io"

// Logger prints status lines for one shot run. Verbose controls whether
// Step/Done emit anything; Banner and Error always print.
type Logger struct {
	Verbose bool
}

// New returns a Logger with the given verbosity.
func New(verbose bool) *Logger {
	return &Logger{Verbose: verbose}
}

// Banner prints the startup banner, mirroring the teacher's main.go header.
func (l *Logger) Banner(name string) {
	io.PfWhite("\n%s\n\n", name)
	io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")
}

// Step prints a progress line for one time-step, only when Verbose is set.
func (l *Logger) Step(n int, t float64) {
	if !l.Verbose {
		return
	}
	io.Pfgreen("step %6d  t=%.6e\n", n, t)
}

// Done prints a completion line, only when Verbose is set.
func (l *Logger) Done(nsteps int) {
	if !l.Verbose {
		return
	}
	io.PfGreen("\nfinished: %d steps\n", nsteps)
}

// Warn prints a yellow warning line, used by the driver when the monitor
// finds a non-finite sample but the run continues.
func (l *Logger) Warn(msg string, args ...interface{}) {
	io.Pfyel("WARNING: "+msg+"\n", args...)
}

// Error prints a red error line, always, regardless of Verbose.
func (l *Logger) Error(msg string, args ...interface{}) {
	io.PfRed("ERROR: "+msg+"\n", args...)
}
