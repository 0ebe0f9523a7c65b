/*
 * options.go, part of gochem.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package minimize

import "log"

//Default values for the Options.
const (
	DefaultMaxIterations     = 500
	DefaultGradientTolerance = 1e-4
	DefaultMemory            = 8
	DefaultC1                = 1e-4
	DefaultMinStep           = 1e-16
	DefaultMaxHalvings       = 40
	DefaultMaxDisplacement   = 0.3
)

//Observer is called with every accepted state of a minimization, starting
//with the initial one (iteration 0). pos must not be modified or kept,
//as the minimizer reuses it.
type Observer func(iteration int, energy float64, pos []float64)

//Options contains the settings for an L-BFGS minimization.
type Options struct {
	maxIter  int
	tol      float64
	memory   int
	c1       float64
	minStep  float64
	halvings int
	maxDispl float64
	logger   *log.Logger
	observer Observer
}

//DefaultOptions returns the default settings: 500 iterations, an RMS gradient
//tolerance of 1e-4 kcal/(mol A), 8 history pairs, and first steps that
//move no atom more than 0.3 A.
func DefaultOptions() *Options {
	return &Options{
		maxIter:  DefaultMaxIterations,
		tol:      DefaultGradientTolerance,
		memory:   DefaultMemory,
		c1:       DefaultC1,
		minStep:  DefaultMinStep,
		halvings: DefaultMaxHalvings,
		maxDispl: DefaultMaxDisplacement,
	}
}

//Copy returns a copy of O.
func (O *Options) Copy() *Options {
	r := *O
	return &r
}

//MaxIterations returns the maximum number of iterations,
//and sets it to a new value, if a non-negative one is given.
func (O *Options) MaxIterations(n ...int) int {
	if len(n) > 0 && n[0] >= 0 {
		O.maxIter = n[0]
	}
	return O.maxIter
}

//GradientTolerance returns the RMS gradient below which the minimization has converged,
//and sets it to a new value, if given.
func (O *Options) GradientTolerance(t ...float64) float64 {
	if len(t) > 0 {
		O.tol = t[0]
	}
	return O.tol
}

//Memory returns the number of displacement/gradient-change pairs kept,
//and sets it to a new value, if a non-negative one is given. With 0 the
//minimizer is a steepest descent.
func (O *Options) Memory(n ...int) int {
	if len(n) > 0 && n[0] >= 0 {
		O.memory = n[0]
	}
	return O.memory
}

//LineSearchC1 returns the sufficient decrease constant of the line search,
//and sets it to a new value, if given.
func (O *Options) LineSearchC1(c ...float64) float64 {
	if len(c) > 0 {
		O.c1 = c[0]
	}
	return O.c1
}

//LineSearchMinStep returns the step length under which the line search gives up,
//and sets it to a new value, if given.
func (O *Options) LineSearchMinStep(s ...float64) float64 {
	if len(s) > 0 {
		O.minStep = s[0]
	}
	return O.minStep
}

//LineSearchMaxIter returns the maximum number of step halvings in a line search,
//and sets it to a new value, if a positive one is given.
func (O *Options) LineSearchMaxIter(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.halvings = n[0]
	}
	return O.halvings
}

//MaxDisplacement returns the largest displacement, in A, that any atom
//can get from the first trial step of a line search, and sets it to a new
//value, if given. 0 or less means no limit.
func (O *Options) MaxDisplacement(d ...float64) float64 {
	if len(d) > 0 {
		O.maxDispl = d[0]
	}
	return O.maxDispl
}

//Logger returns the logger that gets one line per iteration, and sets it, if given.
//A nil logger (the default) means no logging.
func (O *Options) Logger(l ...*log.Logger) *log.Logger {
	if len(l) > 0 {
		O.logger = l[0]
	}
	return O.logger
}

//Observer returns the function called with each accepted state, and sets it, if given.
func (O *Options) Observer(f ...Observer) Observer {
	if len(f) > 0 {
		O.observer = f[0]
	}
	return O.observer
}

func (O *Options) logf(format string, v ...interface{}) {
	if O.logger != nil {
		O.logger.Printf(format, v...)
	}
}
