/*
 * lbfgs.go, part of gochem.
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

import (
	"fmt"
	"math"

	chem "github.com/atomCAD/atomCAD-sub000"
	"gonum.org/v1/gonum/floats"
)

//Pairs with a smaller s.y are not stored, so the inverse Hessian
//approximation stays positive definite.
const minCurvature = 1e-10

//Objective is a function of a flat coordinate buffer (x0,y0,z0,x1,...)
//that can be minimized. EnergyAndGradients must overwrite every element of
//grad with the gradient at pos, and return the value at pos.
type Objective interface {
	EnergyAndGradients(pos, grad []float64) float64
}

//ObjectiveFunc allows the use of an ordinary function as an Objective.
type ObjectiveFunc func(pos, grad []float64) float64

//EnergyAndGradients calls f(pos, grad).
func (f ObjectiveFunc) EnergyAndGradients(pos, grad []float64) float64 {
	return f(pos, grad)
}

//Result is the outcome of a minimization.
type Result struct {
	Positions        []float64 //the buffer given to LBFGS, now with the final positions
	InitialEnergy    float64
	Energy           float64
	Iterations       int
	Converged        bool
	LineSearchFailed bool //the run stopped because no step lowered the energy
	Status           string
}

//Err returns nil if the minimization converged, and an error wrapping
//chem.ErrNonConvergence otherwise.
func (R *Result) Err() error {
	if R.Converged {
		return nil
	}
	return chem.NewError(chem.ErrNonConvergence, "minimize.Result.Err", "%s", R.Status)
}

//LBFGS minimizes obj with respect to pos, using the limited-memory BFGS
//method with a backtracking (Armijo) line search. pos is modified in place.
//The atoms in frozen (each atom is 3 consecutive values of pos) never move.
//The energy of accepted steps never increases. Running out of iterations
//is not an error, it is reported with Result.Converged set to false.
//The only error is a frozen index out of range, which is detected before
//obj is evaluated. A nil O means DefaultOptions().
func LBFGS(obj Objective, pos []float64, frozen []int, O *Options) (*Result, error) {
	if O == nil {
		O = DefaultOptions()
	}
	free, nfree, err := freeMask(len(pos), frozen)
	if err != nil {
		return nil, chem.ErrDecorate(err, "minimize.LBFGS")
	}
	m := newMinimizer(obj, pos, free, O)
	res := &Result{Positions: pos, InitialEnergy: m.energy}
	m.notify(0)
	for {
		rms := rmsGradient(m.grad, nfree)
		if rms < O.tol || rms == 0 {
			res.Converged = true
			break
		}
		if res.Iterations >= O.maxIter {
			break
		}
		step, ok := m.iterate()
		if !ok {
			res.LineSearchFailed = true
			break
		}
		res.Iterations++
		O.logf("minimize: iteration %d energy %.6f rms gradient %.4g step %.4g", res.Iterations, m.energy, rms, step)
		m.notify(res.Iterations)
	}
	res.Energy = m.energy
	res.Status = status(res)
	O.logf("minimize: %s", res.Status)
	return res, nil
}

func status(R *Result) string {
	state := "stopped"
	if R.Converged {
		state = "converged"
	}
	s := fmt.Sprintf("Minimization %s after %d iterations (energy: %.4f kcal/mol)", state, R.Iterations, R.Energy)
	if R.LineSearchFailed {
		s += ": line search failed"
	}
	return s
}

//freeMask returns a mask with false for the coordinates of the frozen atoms, and
//the number of free coordinates.
func freeMask(n int, frozen []int) ([]bool, int, error) {
	atoms := (n + 2) / 3
	free := make([]bool, n)
	for i := range free {
		free[i] = true
	}
	nfree := n
	for _, a := range frozen {
		if a < 0 || a >= atoms {
			return nil, 0, chem.NewError(chem.ErrInvalidFrozenSet, "minimize.freeMask", "Frozen atom %d out of range [0,%d)", a, atoms)
		}
		for j := 3 * a; j < 3*a+3 && j < n; j++ {
			if free[j] {
				free[j] = false
				nfree--
			}
		}
	}
	return free, nfree, nil
}

func rmsGradient(grad []float64, nfree int) float64 {
	if nfree == 0 {
		return 0
	}
	return floats.Norm(grad, 2) / math.Sqrt(float64(nfree))
}

//minimizer holds the state of one run. Nothing in it is shared.
type minimizer struct {
	obj    Objective
	O      *Options
	free   []bool
	pos    []float64
	grad   []float64
	energy float64
	hist   *history

	//scratch
	d, trial, tgrad, s, y []float64
}

func newMinimizer(obj Objective, pos []float64, free []bool, O *Options) *minimizer {
	n := len(pos)
	m := &minimizer{
		obj:   obj,
		O:     O,
		free:  free,
		pos:   pos,
		grad:  make([]float64, n),
		hist:  newHistory(O.memory),
		d:     make([]float64, n),
		trial: make([]float64, n),
		tgrad: make([]float64, n),
		s:     make([]float64, n),
		y:     make([]float64, n),
	}
	m.energy = obj.EnergyAndGradients(pos, m.grad)
	m.zeroFrozen(m.grad)
	return m
}

func (m *minimizer) zeroFrozen(v []float64) {
	for i, f := range m.free {
		if !f {
			v[i] = 0
		}
	}
}

//keepFrozen copies the frozen coordinates of m.pos into v, so they keep
//their exact bits (a -0 plus a zero step would become +0).
func (m *minimizer) keepFrozen(v []float64) {
	for i, f := range m.free {
		if !f {
			v[i] = m.pos[i]
		}
	}
}

func (m *minimizer) notify(iteration int) {
	if m.O.observer != nil {
		m.O.observer(iteration, m.energy, m.pos)
	}
}

//iterate performs one L-BFGS step. If the quasi-Newton direction does not
//lead to a lower energy, the history is dropped and a steepest descent step
//is attempted. If that fails too, nothing moves and false is returned.
func (m *minimizer) iterate() (float64, bool) {
	m.hist.direction(m.d, m.grad)
	m.zeroFrozen(m.d)
	if floats.Dot(m.d, m.grad) >= 0 {
		m.O.logf("minimize: not a descent direction, resetting history")
		m.steepest()
	}
	step, e, ok := m.lineSearch()
	if !ok && m.hist.len() > 0 {
		m.O.logf("minimize: line search failed, retrying with steepest descent")
		m.steepest()
		step, e, ok = m.lineSearch()
	}
	if !ok {
		return 0, false
	}
	floats.SubTo(m.s, m.trial, m.pos)
	floats.SubTo(m.y, m.tgrad, m.grad)
	copy(m.pos, m.trial)
	copy(m.grad, m.tgrad)
	m.energy = e
	m.hist.push(m.s, m.y)
	return step, true
}

func (m *minimizer) steepest() {
	m.hist.clear()
	copy(m.d, m.grad)
	floats.Scale(-1, m.d)
}

//lineSearch halves the step along m.d until the Armijo condition holds. The
//first step is shortened so no atom moves more than the maximum displacement.
//On success, the new positions and gradient are in m.trial and m.tgrad.
func (m *minimizer) lineSearch() (step, energy float64, ok bool) {
	dg := floats.Dot(m.d, m.grad)
	if !(dg < 0) {
		return 0, 0, false
	}
	step = 1.0
	if m.O.maxDispl > 0 {
		if md := maxAtomDisplacement(m.d); md > m.O.maxDispl {
			step = m.O.maxDispl / md
		}
	}
	for i := 0; i < m.O.halvings; i++ {
		floats.AddScaledTo(m.trial, m.pos, step, m.d)
		m.keepFrozen(m.trial)
		e := m.obj.EnergyAndGradients(m.trial, m.tgrad)
		if e <= m.energy+m.O.c1*step*dg {
			m.zeroFrozen(m.tgrad)
			return step, e, true
		}
		step *= 0.5
		if step < m.O.minStep {
			break
		}
	}
	return 0, 0, false
}

//maxAtomDisplacement returns the largest norm among the 3-value blocks of d.
func maxAtomDisplacement(d []float64) float64 {
	var md float64
	for i := 0; i < len(d); i += 3 {
		md = math.Max(md, floats.Norm(d[i:min(i+3, len(d))], 2))
	}
	return md
}

//history is the rolling window of displacement (s) and
//gradient-change (y) pairs, oldest first.
type history struct {
	max   int
	s, y  [][]float64
	rho   []float64
	alpha []float64
}

func newHistory(size int) *history {
	return &history{max: size, alpha: make([]float64, size)}
}

func (h *history) len() int { return len(h.s) }

func (h *history) clear() {
	h.s, h.y, h.rho = h.s[:0], h.y[:0], h.rho[:0]
}

//push stores copies of s and y if they satisfy the curvature condition,
//dropping the oldest pair when the window is full.
func (h *history) push(s, y []float64) bool {
	sy := floats.Dot(s, y)
	if h.max == 0 || !(sy > minCurvature) {
		return false
	}
	var ns, ny []float64
	if len(h.s) == h.max {
		ns, ny = h.s[0], h.y[0]
		copy(h.s, h.s[1:])
		copy(h.y, h.y[1:])
		copy(h.rho, h.rho[1:])
		h.s, h.y, h.rho = h.s[:h.max-1], h.y[:h.max-1], h.rho[:h.max-1]
	} else {
		ns, ny = make([]float64, len(s)), make([]float64, len(y))
	}
	copy(ns, s)
	copy(ny, y)
	h.s = append(h.s, ns)
	h.y = append(h.y, ny)
	h.rho = append(h.rho, 1/sy)
	return true
}

//direction puts in d the product of the inverse Hessian approximation and
//-g, obtained with the two-loop recursion. The initial approximation is
//gamma*I with gamma = s.y/y.y for the newest pair.
func (h *history) direction(d, g []float64) {
	copy(d, g)
	k := len(h.s)
	for i := k - 1; i >= 0; i-- {
		h.alpha[i] = h.rho[i] * floats.Dot(h.s[i], d)
		floats.AddScaled(d, -h.alpha[i], h.y[i])
	}
	if k > 0 {
		if yy := floats.Dot(h.y[k-1], h.y[k-1]); yy > 0 {
			floats.Scale(1/(h.rho[k-1]*yy), d)
		}
	}
	for i := 0; i < k; i++ {
		beta := h.rho[i] * floats.Dot(h.y[i], d)
		floats.AddScaled(d, h.alpha[i]-beta, h.s[i])
	}
	floats.Scale(-1, d)
}
