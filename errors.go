/*
 * errors.go, part of gochem.
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

package chem

import (
	"errors"
	"fmt"
)

//Kinds of failure. Every *CError wraps one of these.
var (
	//An atom that can't be typed, or a type with no parameters.
	ErrUnsupportedElement = errors.New("unsupported element")
	//A frozen index outside [0, number of atoms).
	ErrInvalidFrozenSet = errors.New("invalid frozen set")
	//Bonds or coordinates inconsistent with the atoms.
	ErrInvalidMolecule = errors.New("invalid molecule")
	//Coincident atoms, collinear angles and such. The force field clamps these,
	//so it is only used by callers that want to report them.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	//Iteration budget exhausted. The minimizer reports this through its result,
	//never as a returned error.
	ErrNonConvergence = errors.New("did not converge")
)

//CError is the error type of this module. It keeps a message, the kind of failure,
//and the names of the functions the error went through.
type CError struct {
	msg  string
	kind error
	deco []string
}

//NewError returns a *CError of the given kind, decorated with caller.
func NewError(kind error, caller string, format string, args ...interface{}) *CError {
	err := &CError{msg: fmt.Sprintf(format, args...), kind: kind}
	err.Decorate(caller)
	return err
}

//Error returns a string with an error message.
func (err *CError) Error() string {
	if err.kind == nil {
		return err.msg
	}
	return fmt.Sprintf("%s: %s", err.kind, err.msg)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Unwrap returns the kind of the error.
func (err *CError) Unwrap() error { return err.kind }

//Trace returns the functions the error went through, innermost first.
func (err *CError) Trace() []string {
	ret := make([]string, len(err.deco))
	copy(ret, err.deco)
	return ret
}

//ErrDecorate adds caller to the decorations of err if it is a *CError,
//and returns err. Other errors are returned untouched.
func ErrDecorate(err error, caller string) error {
	var cerr *CError
	if errors.As(err, &cerr) {
		cerr.Decorate(caller)
	}
	return err
}

func errDecorate(err error, caller string) error {
	return ErrDecorate(err, caller)
}
