/*
 * config_test.go, part of gochem.
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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(Te *testing.T) {
	O := DefaultOptions()
	assert.Equal(Te, 500, O.MaxIterations())
	assert.InDelta(Te, 1e-4, O.GradientTolerance(), 1e-10)
	assert.Equal(Te, 8, O.Memory())
	assert.True(Te, O.LineSearchC1() > 0 && O.LineSearchC1() < 1)
	assert.Greater(Te, O.LineSearchMinStep(), 0.0)
	assert.Greater(Te, O.LineSearchMaxIter(), 0)
	assert.Equal(Te, 0.3, O.MaxDisplacement())
	assert.Nil(Te, O.Logger())
	assert.Nil(Te, O.Observer())
	//negative values are ignored
	assert.Equal(Te, 500, O.MaxIterations(-3))
	c := O.Copy()
	c.MaxIterations(10)
	assert.Equal(Te, 500, O.MaxIterations())
}

func TestReadOptions(Te *testing.T) {
	doc := `
max_iterations: 20
gradient_rms_tolerance: 1.0e-6
memory_size: 4
max_displacement: 0.5
`
	O, err := ReadOptions(strings.NewReader(doc))
	require.NoError(Te, err)
	assert.Equal(Te, 20, O.MaxIterations())
	assert.Equal(Te, 1e-6, O.GradientTolerance())
	assert.Equal(Te, 4, O.Memory())
	assert.Equal(Te, 0.5, O.MaxDisplacement())
	//not in the document
	assert.Equal(Te, DefaultC1, O.LineSearchC1())
	assert.Equal(Te, DefaultMaxHalvings, O.LineSearchMaxIter())
}

func TestReadOptionsEmpty(Te *testing.T) {
	O, err := ReadOptions(strings.NewReader(""))
	require.NoError(Te, err)
	assert.Equal(Te, DefaultOptions(), O)
}

func TestReadOptionsErrors(Te *testing.T) {
	for _, doc := range []string{
		"max_iteration: 20\n",
		"max_iterations: -1\n",
		"line_search_c1: 1.5\n",
		"line_search_min_step: 0\n",
		"line_search_max_iter: 0\n",
		"memory_size: [1, 2]\n",
	} {
		_, err := ReadOptions(strings.NewReader(doc))
		assert.Error(Te, err, doc)
	}
}

func TestLoadOptions(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "relax.yaml")
	require.NoError(Te, os.WriteFile(path, []byte("line_search_max_iter: 10\n"), 0644))
	O, err := LoadOptions(path)
	require.NoError(Te, err)
	assert.Equal(Te, 10, O.LineSearchMaxIter())
	_, err = LoadOptions(filepath.Join(Te.TempDir(), "missing.yaml"))
	assert.Error(Te, err)
}
