/*
 * session.go, part of gochem.
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

package relax

import (
	chem "github.com/atomCAD/atomCAD-sub000"
	"github.com/atomCAD/atomCAD-sub000/minimize"
	"github.com/atomCAD/atomCAD-sub000/uff"
	v3 "github.com/atomCAD/atomCAD-sub000/v3"
)

//DefaultStepIterations is the iteration budget of a Session step when none is given.
const DefaultStepIterations = 8

//Session relaxes one structure many times with a small budget, for
//instance once per frame while the user drags some atoms. The force field
//is built once, only the coordinates change between steps.
type Session struct {
	base   *uff.ForceField
	ff     *uff.ForceField //base, skipping the vdW pairs of frozen atoms in cutoff mode
	frozen []int
	opts   *minimize.Options
	steps  int
	iters  int
}

//NewSession builds a session for mol, with the atoms given by sel and mode frozen.
//Nil options mean the defaults. opts is copied, the iteration budget is given to each Step.
func NewSession(mol *chem.Molecule, sel []int, mode FreezeMode, ffopts *uff.Options, opts *minimize.Options) (*Session, error) {
	F, err := ForceField(mol, ffopts)
	if err != nil {
		return nil, chem.ErrDecorate(err, "relax.NewSession")
	}
	if opts == nil {
		opts = minimize.DefaultOptions()
	}
	S := &Session{base: F, ff: F, opts: opts.Copy()}
	if err := S.SetFrozen(sel, mode); err != nil {
		return nil, chem.ErrDecorate(err, "relax.NewSession")
	}
	return S, nil
}

//SetFrozen changes the frozen atoms, e.g. when the user starts dragging other atoms.
//On error, the frozen atoms are not changed.
func (S *Session) SetFrozen(sel []int, mode FreezeMode) error {
	frozen, err := Frozen(S.base.Len(), sel, mode)
	if err != nil {
		return chem.ErrDecorate(err, "relax.Session.SetFrozen")
	}
	F, err := S.base.WithFrozen(frozen)
	if err != nil {
		return chem.ErrDecorate(err, "relax.Session.SetFrozen")
	}
	S.ff = F
	S.frozen = frozen
	return nil
}

//Frozen returns a copy of the indexes of the frozen atoms.
func (S *Session) Frozen() []int {
	return append([]int(nil), S.frozen...)
}

//ForceField returns the force field of the session, for the current frozen atoms.
func (S *Session) ForceField() *uff.ForceField {
	return S.ff
}

//Step relaxes coords in place for at most iterations iterations (DefaultStepIterations
//if iterations is 0 or less) and returns the result. The energy of coords never goes up.
func (S *Session) Step(coords *v3.Matrix, iterations int) (*minimize.Result, error) {
	if coords == nil || coords.NVecs() != S.ff.Len() {
		return nil, chem.NewError(chem.ErrInvalidMolecule, "relax.Session.Step", "Coordinates don't match the %d atoms of the session", S.ff.Len())
	}
	if iterations <= 0 {
		iterations = DefaultStepIterations
	}
	O := S.opts.Copy()
	O.MaxIterations(iterations)
	pos := coords.Flat()
	res, err := minimize.LBFGS(S.ff, pos, S.frozen, O)
	if err != nil {
		return nil, chem.ErrDecorate(err, "relax.Session.Step")
	}
	coords.SetFlat(pos)
	S.steps++
	S.iters += res.Iterations
	return res, nil
}

//Energy returns the energy of coords, in kcal/mol. In cutoff mode it leaves out
//the vdW pairs of frozen atoms.
func (S *Session) Energy(coords *v3.Matrix) float64 {
	return S.ff.Energy(coords.Flat())
}

//Stats returns the number of steps taken, and the total number of iterations in them.
func (S *Session) Stats() (steps, iterations int) {
	return S.steps, S.iters
}
