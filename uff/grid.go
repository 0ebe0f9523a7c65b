/*
 * grid.go, part of gochem.
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

package uff

import (
	"math"
	"sort"
)

//Grid is a uniform spatial grid over a set of positions, used to find
//atoms closer than a given radius without testing every pair.
type Grid struct {
	cell  float64
	cells map[[3]int][]int
}

//NewGrid bins the atoms in the flat position buffer pos into cubic cells of side cell.
//cell must be positive.
func NewGrid(pos []float64, cell float64) *Grid {
	if cell <= 0 {
		panic("uff.NewGrid: cell size must be positive")
	}
	G := &Grid{cell: cell, cells: make(map[[3]int][]int)}
	for i := 0; i < len(pos)/3; i++ {
		c := G.cellOf(pos, i)
		G.cells[c] = append(G.cells[c], i)
	}
	return G
}

//CellSize returns the side of the cells.
func (G *Grid) CellSize() float64 {
	return G.cell
}

func (G *Grid) cellOf(pos []float64, i int) [3]int {
	var c [3]int
	for k := 0; k < 3; k++ {
		c[k] = int(math.Floor(pos[3*i+k] / G.cell))
	}
	return c
}

//Neighbors calls fn for every atom j != i closer than radius to atom i.
//The comparison is strict. The order of the calls is not defined.
func (G *Grid) Neighbors(pos []float64, i int, radius float64, fn func(j int)) {
	reach := int(math.Ceil(radius / G.cell))
	c := G.cellOf(pos, i)
	r2 := radius * radius
	for x := c[0] - reach; x <= c[0]+reach; x++ {
		for y := c[1] - reach; y <= c[1]+reach; y++ {
			for z := c[2] - reach; z <= c[2]+reach; z++ {
				for _, j := range G.cells[[3]int{x, y, z}] {
					if j == i {
						continue
					}
					if dist2(pos, i, j) < r2 {
						fn(j)
					}
				}
			}
		}
	}
}

//Pairs calls fn once for every pair i<j of atoms closer than radius.
//Pairs are visited in increasing order of i, and then of j.
func (G *Grid) Pairs(pos []float64, radius float64, fn func(i, j int)) {
	var nb []int
	for i := 0; i < len(pos)/3; i++ {
		nb = nb[:0]
		G.Neighbors(pos, i, radius, func(j int) {
			if j > i {
				nb = append(nb, j)
			}
		})
		sort.Ints(nb)
		for _, j := range nb {
			fn(i, j)
		}
	}
}

func dist2(pos []float64, i, j int) float64 {
	dx := pos[3*i] - pos[3*j]
	dy := pos[3*i+1] - pos[3*j+1]
	dz := pos[3*i+2] - pos[3*j+2]
	return dx*dx + dy*dy + dz*dz
}
