/*
 * record.go, part of gochem.
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
	"github.com/atomCAD/atomCAD-sub000/chemplot"
	"github.com/atomCAD/atomCAD-sub000/minimize"
	"github.com/atomCAD/atomCAD-sub000/traj/stf"
)

//Recorder keeps the energy of every accepted state of a minimization and,
//optionally, writes the states to an stf trajectory. Use its Observe method
//as the minimize.Observer of the run.
type Recorder struct {
	Trace chemplot.EnergyTrace
	traj  *stf.Writer
	err   error
}

//NewRecorder returns a Recorder for a structure of natoms atoms. If trajname
//is not empty, the states are written to that stf file, with header in its header.
func NewRecorder(natoms int, trajname string, header map[string]string) (*Recorder, error) {
	R := new(Recorder)
	if trajname == "" {
		return R, nil
	}
	var err error
	R.traj, err = stf.Create(trajname, natoms, header)
	if err != nil {
		return nil, chem.NewError(nil, "relax.NewRecorder", "Can't create trajectory: %s", err.Error())
	}
	return R, nil
}

//Observe records one state. After the first trajectory error, nothing else is written.
func (R *Recorder) Observe(iteration int, energy float64, pos []float64) {
	R.Trace.Observe(iteration, energy, pos)
	if R.traj == nil || R.err != nil {
		return
	}
	R.err = R.traj.WriteFrame(pos, stf.FrameInfo{Iteration: iteration, Energy: energy})
}

//Observer returns R.Observe, chained after prev, if prev is not nil.
func (R *Recorder) Observer(prev minimize.Observer) minimize.Observer {
	if prev == nil {
		return R.Observe
	}
	return func(iteration int, energy float64, pos []float64) {
		prev(iteration, energy, pos)
		R.Observe(iteration, energy, pos)
	}
}

//Close finishes the trajectory, if any. It returns the first error found
//while writing it.
func (R *Recorder) Close() error {
	if R.traj == nil {
		return R.err
	}
	cerr := R.traj.Close()
	R.traj = nil
	if R.err == nil {
		R.err = cerr
	}
	if R.err != nil {
		return chem.NewError(nil, "relax.Recorder.Close", "Trajectory error: %s", R.err.Error())
	}
	return nil
}

//Plot saves the energy profile of the recorded run to plotname. See chemplot.EnergyProfile.
func (R *Recorder) Plot(title, plotname string, relative bool) error {
	return chemplot.EnergyProfile(&R.Trace, title, plotname, relative)
}
