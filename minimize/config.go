/*
 * config.go, part of gochem.
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
	"errors"
	"io"
	"os"

	chem "github.com/atomCAD/atomCAD-sub000"
	"gopkg.in/yaml.v3"
)

//fileOptions is the YAML form of Options.
type fileOptions struct {
	MaxIterations        int     `yaml:"max_iterations"`
	GradientRMSTolerance float64 `yaml:"gradient_rms_tolerance"`
	MemorySize           int     `yaml:"memory_size"`
	LineSearchC1         float64 `yaml:"line_search_c1"`
	LineSearchMinStep    float64 `yaml:"line_search_min_step"`
	LineSearchMaxIter    int     `yaml:"line_search_max_iter"`
	MaxDisplacement      float64 `yaml:"max_displacement"`
}

//ReadOptions decodes a YAML document from r over the default options.
//Keys not given keep their default values, unknown keys are an error.
//An empty document gives the defaults.
func ReadOptions(r io.Reader) (*Options, error) {
	O := DefaultOptions()
	f := fileOptions{
		MaxIterations:        O.maxIter,
		GradientRMSTolerance: O.tol,
		MemorySize:           O.memory,
		LineSearchC1:         O.c1,
		LineSearchMinStep:    O.minStep,
		LineSearchMaxIter:    O.halvings,
		MaxDisplacement:      O.maxDispl,
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, chem.NewError(nil, "minimize.ReadOptions", "Can't decode options: %s", err.Error())
	}
	switch {
	case f.MaxIterations < 0:
		return nil, chem.NewError(nil, "minimize.ReadOptions", "max_iterations must not be negative, got %d", f.MaxIterations)
	case f.GradientRMSTolerance < 0:
		return nil, chem.NewError(nil, "minimize.ReadOptions", "gradient_rms_tolerance must not be negative, got %g", f.GradientRMSTolerance)
	case f.MemorySize < 0:
		return nil, chem.NewError(nil, "minimize.ReadOptions", "memory_size must not be negative, got %d", f.MemorySize)
	case f.LineSearchC1 <= 0 || f.LineSearchC1 >= 1:
		return nil, chem.NewError(nil, "minimize.ReadOptions", "line_search_c1 must be in (0,1), got %g", f.LineSearchC1)
	case f.LineSearchMinStep <= 0:
		return nil, chem.NewError(nil, "minimize.ReadOptions", "line_search_min_step must be positive, got %g", f.LineSearchMinStep)
	case f.LineSearchMaxIter <= 0:
		return nil, chem.NewError(nil, "minimize.ReadOptions", "line_search_max_iter must be positive, got %d", f.LineSearchMaxIter)
	}
	O.maxIter = f.MaxIterations
	O.tol = f.GradientRMSTolerance
	O.memory = f.MemorySize
	O.c1 = f.LineSearchC1
	O.minStep = f.LineSearchMinStep
	O.halvings = f.LineSearchMaxIter
	O.maxDispl = f.MaxDisplacement
	return O, nil
}

//LoadOptions reads options from the YAML file at path. See ReadOptions.
func LoadOptions(path string) (*Options, error) {
	fin, err := os.Open(path)
	if err != nil {
		return nil, chem.NewError(nil, "minimize.LoadOptions", "Can't open options file: %s", err.Error())
	}
	defer fin.Close()
	O, err := ReadOptions(fin)
	if err != nil {
		return nil, chem.ErrDecorate(err, "minimize.LoadOptions")
	}
	return O, nil
}
