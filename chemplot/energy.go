/*
 * energy.go, part of gochem.
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

package chemplot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//EnergyTrace keeps the energy of each accepted state of a minimization.
//Its Observe method has the signature of a minimize.Observer.
type EnergyTrace struct {
	Iterations []int
	Energies   []float64
}

//Observe adds the energy of one iteration to the trace. The positions are ignored.
func (T *EnergyTrace) Observe(iteration int, energy float64, pos []float64) {
	T.Iterations = append(T.Iterations, iteration)
	T.Energies = append(T.Energies, energy)
}

//Len returns the number of points in the trace.
func (T *EnergyTrace) Len() int {
	return len(T.Energies)
}

//xys returns the points to plot. If relative is true, the lowest energy
//is subtracted from each one, and points that become zero are dropped so
//they can be shown in a logarithmic scale.
func (T *EnergyTrace) xys(relative bool) plotter.XYs {
	emin := math.Inf(1)
	for _, e := range T.Energies {
		emin = math.Min(emin, e)
	}
	pts := make(plotter.XYs, 0, T.Len())
	for i, e := range T.Energies {
		if relative {
			e -= emin
			if e <= 0 {
				continue
			}
		}
		pts = append(pts, plotter.XY{X: float64(T.Iterations[i]), Y: e})
	}
	return pts
}

func energyPlot(T *EnergyTrace, title string, relative bool) (*plot.Plot, error) {
	if T == nil || T.Len() == 0 {
		return nil, fmt.Errorf("chemplot: no energies to plot")
	}
	if len(T.Iterations) != len(T.Energies) {
		return nil, fmt.Errorf("chemplot: %d iterations but %d energies", len(T.Iterations), len(T.Energies))
	}
	pts := T.xys(relative)
	if len(pts) == 0 {
		return nil, fmt.Errorf("chemplot: all energies are equal, nothing to plot in relative mode")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Energy (kcal/mol)"
	if relative {
		p.Y.Label.Text = "E - Emin (kcal/mol)"
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())
	l, s, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	l.Color = color.RGBA{B: 200, A: 255}
	s.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	s.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(l, s)
	return p, nil
}

//EnergyProfile plots the energy against the iteration number for the trace T
//and saves it to plotname. The format is taken from the extension of plotname
//(png, svg, pdf, eps, jpg or tif). With relative set, the energy above the lowest
//one is plotted in a logarithmic scale, which shows the convergence better.
func EnergyProfile(T *EnergyTrace, title, plotname string, relative bool) error {
	p, err := energyPlot(T, title, relative)
	if err != nil {
		return err
	}
	return p.Save(5*vg.Inch, 4*vg.Inch, plotname)
}

//WriteEnergyProfile is like EnergyProfile, but writes the plot in the given
//format ("png", "svg" and so on) to w.
func WriteEnergyProfile(w io.Writer, T *EnergyTrace, title, format string, relative bool) error {
	p, err := energyPlot(T, title, relative)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(5*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
