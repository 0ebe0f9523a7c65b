/*
 * params.go, part of gochem.
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

import "math"

//Params holds the UFF parameters of one atom type.
//Values from Table 1 of Rappé et al., JACS 114, 10024 (1992), as distributed with RDKit.
type Params struct {
	Label       string
	R1          float64 //valence bond radius (A)
	Theta0      float64 //natural valence angle (degrees)
	X1          float64 //vdW characteristic length (A)
	D1          float64 //vdW well depth (kcal/mol)
	Zeta        float64 //vdW scaling
	Z1          float64 //effective charge
	V1          float64 //sp3 torsional barrier (kcal/mol)
	U1          float64 //sp2 torsional contribution (kcal/mol)
	GMPXi       float64 //GMP electronegativity
	GMPHardness float64
	GMPRadius   float64
}

//Constants of the force field.
const (
	Lambda         = 0.1332 //bond order correction scaling
	G              = 332.06 //bond force constant prefactor (kcal/mol A)
	AmideBondOrder = 1.41   //bond order used for amide C-N bonds
)

//cos(30 degrees). Below that angle, the angle term adds a penalty.
const angleCorrectionThreshold = 0.8660

//Lookup returns the parameters for an atom type label, and false if
//the label is not in the table. There is no fallback.
func Lookup(label string) (*Params, bool) {
	i, ok := labelIndex[label]
	if !ok {
		return nil, false
	}
	return &paramTable[i], true
}

//Labels returns all the atom type labels in the table, in table order.
func Labels() []string {
	ret := make([]string, len(paramTable))
	for i, p := range paramTable {
		ret[i] = p.Label
	}
	return ret
}

var labelIndex = func() map[string]int {
	m := make(map[string]int, len(paramTable))
	for i, p := range paramTable {
		m[p.Label] = i
	}
	return m
}()

//RestLengthFunc returns the rest length of a bond of order bo between atoms with
//parameters pi and pj. Published variants of the correction differ slightly, so the
//force field takes one of these as an option.
type RestLengthFunc func(bo float64, pi, pj *Params) float64

//RestLength is the UFF rest length: the sum of the radii with the Pauling bond order
//correction and the O'Keeffe-Brese electronegativity correction.
func RestLength(bo float64, pi, pj *Params) float64 {
	ri, rj := pi.R1, pj.R1
	rBO := -Lambda * (ri + rj) * math.Log(bo)
	xi, xj := pi.GMPXi, pj.GMPXi
	sd := math.Sqrt(xi) - math.Sqrt(xj)
	rEN := ri * rj * sd * sd / (xi*ri + xj*rj)
	return ri + rj + rBO - rEN
}

//BondForceConstant returns k = 2 G Zi Zj / r0^3.
func BondForceConstant(r0 float64, pi, pj *Params) float64 {
	return 2 * G * pi.Z1 * pj.Z1 / (r0 * r0 * r0)
}

//AngleForceConstant returns the force constant of the angle 1-2-3 (2 is the vertex)
//with natural angle theta0 (radians). The 1-3 distance comes from the rest lengths and
//the law of cosines.
func AngleForceConstant(theta0, bo12, bo23 float64, p1, p2, p3 *Params, rest RestLengthFunc) float64 {
	if rest == nil {
		rest = RestLength
	}
	cosT0 := math.Cos(theta0)
	r12 := rest(bo12, p1, p2)
	r23 := rest(bo23, p2, p3)
	r13 := math.Sqrt(r12*r12 + r23*r23 - 2*r12*r23*cosT0)
	beta := 2 * G / (r12 * r23)
	pre := beta * p1.Z1 * p3.Z1 / math.Pow(r13, 5)
	rTerm := r12 * r23
	inner := 3*rTerm*(1-cosT0*cosT0) - r13*r13*cosT0
	return pre * rTerm * inner
}

//VdwDistance returns the geometric mean of the characteristic vdW lengths.
func VdwDistance(pi, pj *Params) float64 {
	return math.Sqrt(pi.X1 * pj.X1)
}

//VdwWellDepth returns the geometric mean of the vdW well depths.
func VdwWellDepth(pi, pj *Params) float64 {
	return math.Sqrt(pi.D1 * pj.D1)
}

//O, S, Se, Te, Po
func inGroup6(z int) bool {
	switch z {
	case 8, 16, 34, 52, 84:
		return true
	}
	return false
}

//equation 17 of the UFF paper.
func equation17(bo float64, p2, p3 *Params) float64 {
	return 5 * math.Sqrt(p2.U1*p3.U1) * (1 + 4.18*math.Log(bo))
}

//torsionParams returns the barrier, periodicity and cos(n phi0) for a torsion around
//the bond 2-3, given the bond order, atomic numbers and hybridizations (2 or 3) of the
//central atoms, and whether one of the end atoms is sp2.
func torsionParams(bo float64, z2, z3, hyb2, hyb3 int, p2, p3 *Params, endSP2 bool) (v float64, n int, cosTerm float64) {
	switch {
	case hyb2 == 3 && hyb3 == 3:
		v, n, cosTerm = math.Sqrt(p2.V1*p3.V1), 3, -1 //phi0 = 60
		if bo == 1 && inGroup6(z2) && inGroup6(z3) {
			v2, v3 := 6.8, 6.8
			if z2 == 8 {
				v2 = 2
			}
			if z3 == 8 {
				v3 = 2
			}
			v, n, cosTerm = math.Sqrt(v2*v3), 2, -1 //phi0 = 90
		}
	case hyb2 == 2 && hyb3 == 2:
		v, n, cosTerm = equation17(bo, p2, p3), 2, 1 //phi0 = 180
	default:
		v, n, cosTerm = 1, 6, 1 //phi0 = 0
		if bo != 1 {
			break
		}
		g6sp3 := (hyb2 == 3 && inGroup6(z2) && !inGroup6(z3)) || (hyb3 == 3 && inGroup6(z3) && !inGroup6(z2))
		if g6sp3 {
			v, n, cosTerm = equation17(bo, p2, p3), 2, -1
		} else if endSP2 {
			v, n, cosTerm = 2, 3, -1 //propene-like
		}
	}
	return v, n, cosTerm
}

//inversionParams returns the force constant (already divided by 3, for the 3
//permutations of each center) and coefficients of the inversion term for a center
//with atomic number z. cBoundToO is true for a carbon bonded to an sp2 oxygen.
func inversionParams(z int, cBoundToO bool) (k, c0, c1, c2 float64) {
	if z >= 6 && z <= 8 {
		c0, c1, c2 = 1, -1, 0
		k = 6
		if cBoundToO {
			k = 50
		}
		return k / 3, c0, c1, c2
	}
	var w0 float64
	switch z {
	case 15:
		w0 = 84.4339
	case 33:
		w0 = 86.9735
	case 51:
		w0 = 87.7047
	case 83:
		w0 = 90.0
	}
	w0 *= math.Pi / 180
	c2 = 1
	c1 = -4 * math.Cos(w0)
	c0 = -(c1*math.Cos(w0) + c2*math.Cos(2*w0))
	k = 22 / (c0 + c1 + c2)
	return k / 3, c0, c1, c2
}

//The parameter table. Columns follow the Params struct.
var paramTable = []Params{
	//Row 1: H, He
	{"H_", 0.354, 180.0, 2.886, 0.044, 12.0, 0.712, 0.0, 0.0, 4.528, 6.9452, 0.371},
	{"H_b", 0.46, 83.5, 2.886, 0.044, 12.0, 0.712, 0.0, 0.0, 4.528, 6.9452, 0.371},
	{"He4+4", 0.849, 90.0, 2.362, 0.056, 15.24, 0.098, 0.0, 0.0, 9.66, 14.92, 1.3},
	//Row 2: Li - Ne
	{"Li", 1.336, 180.0, 2.451, 0.025, 12.0, 1.026, 0.0, 2.0, 3.006, 2.386, 1.557},
	{"Be3+2", 1.074, 109.47, 2.745, 0.085, 12.0, 1.565, 0.0, 2.0, 4.877, 4.443, 1.24},
	{"B_3", 0.838, 109.47, 4.083, 0.18, 12.052, 1.755, 0.0, 2.0, 5.11, 4.75, 0.822},
	{"B_2", 0.828, 120.0, 4.083, 0.18, 12.052, 1.755, 0.0, 2.0, 5.11, 4.75, 0.822},
	{"C_3", 0.757, 109.47, 3.851, 0.105, 12.73, 1.912, 2.119, 2.0, 5.343, 5.063, 0.759},
	{"C_R", 0.729, 120.0, 3.851, 0.105, 12.73, 1.912, 0.0, 2.0, 5.343, 5.063, 0.759},
	{"C_2", 0.732, 120.0, 3.851, 0.105, 12.73, 1.912, 0.0, 2.0, 5.343, 5.063, 0.759},
	{"C_1", 0.706, 180.0, 3.851, 0.105, 12.73, 1.912, 0.0, 2.0, 5.343, 5.063, 0.759},
	{"N_3", 0.7, 106.7, 3.66, 0.069, 13.407, 2.544, 0.45, 2.0, 6.899, 5.88, 0.715},
	{"N_R", 0.699, 120.0, 3.66, 0.069, 13.407, 2.544, 0.0, 2.0, 6.899, 5.88, 0.715},
	{"N_2", 0.685, 111.2, 3.66, 0.069, 13.407, 2.544, 0.0, 2.0, 6.899, 5.88, 0.715},
	{"N_1", 0.656, 180.0, 3.66, 0.069, 13.407, 2.544, 0.0, 2.0, 6.899, 5.88, 0.715},
	{"O_3", 0.658, 104.51, 3.5, 0.06, 14.085, 2.3, 0.018, 2.0, 8.741, 6.682, 0.669},
	{"O_3_z", 0.528, 146.0, 3.5, 0.06, 14.085, 2.3, 0.018, 2.0, 8.741, 6.682, 0.669},
	{"O_R", 0.68, 110.0, 3.5, 0.06, 14.085, 2.3, 0.0, 2.0, 8.741, 6.682, 0.669},
	{"O_2", 0.634, 120.0, 3.5, 0.06, 14.085, 2.3, 0.0, 2.0, 8.741, 6.682, 0.669},
	{"O_1", 0.639, 180.0, 3.5, 0.06, 14.085, 2.3, 0.0, 2.0, 8.741, 6.682, 0.669},
	{"F_", 0.668, 180.0, 3.364, 0.05, 14.762, 1.735, 0.0, 2.0, 10.874, 7.474, 0.706},
	{"Ne4+4", 0.92, 90.0, 3.243, 0.042, 15.44, 0.194, 0.0, 2.0, 11.04, 10.55, 1.768},
	//Row 3: Na - Ar
	{"Na", 1.539, 180.0, 2.983, 0.03, 12.0, 1.081, 0.0, 1.25, 2.843, 2.296, 2.085},
	{"Mg3+2", 1.421, 109.47, 3.021, 0.111, 12.0, 1.787, 0.0, 1.25, 3.951, 3.693, 1.5},
	{"Al3", 1.244, 109.47, 4.499, 0.505, 11.278, 1.792, 0.0, 1.25, 4.06, 3.59, 1.201},
	{"Si3", 1.117, 109.47, 4.295, 0.402, 12.175, 2.323, 1.225, 1.25, 4.168, 3.487, 1.176},
	{"P_3+3", 1.101, 93.8, 4.147, 0.305, 13.072, 2.863, 2.4, 1.25, 5.463, 4.0, 1.102},
	{"P_3+5", 1.056, 109.47, 4.147, 0.305, 13.072, 2.863, 2.4, 1.25, 5.463, 4.0, 1.102},
	{"P_3+q", 1.056, 109.47, 4.147, 0.305, 13.072, 2.863, 2.4, 1.25, 5.463, 4.0, 1.102},
	{"S_3+2", 1.064, 92.1, 4.035, 0.274, 13.969, 2.703, 0.484, 1.25, 6.928, 4.486, 1.047},
	{"S_3+4", 1.049, 103.2, 4.035, 0.274, 13.969, 2.703, 0.484, 1.25, 6.928, 4.486, 1.047},
	{"S_3+6", 1.027, 109.47, 4.035, 0.274, 13.969, 2.703, 0.484, 1.25, 6.928, 4.486, 1.047},
	{"S_R", 1.077, 92.2, 4.035, 0.274, 13.969, 2.703, 0.0, 1.25, 6.928, 4.486, 1.047},
	{"S_2", 0.854, 120.0, 4.035, 0.274, 13.969, 2.703, 0.0, 1.25, 6.928, 4.486, 1.047},
	{"Cl", 1.044, 180.0, 3.947, 0.227, 14.866, 2.348, 0.0, 1.25, 8.564, 4.946, 0.994},
	{"Ar4+4", 1.032, 90.0, 3.868, 0.185, 15.763, 0.3, 0.0, 1.25, 9.465, 6.355, 2.108},
	//Row 4: K - Kr
	{"K_", 1.953, 180.0, 3.812, 0.035, 12.0, 1.165, 0.0, 0.7, 2.421, 1.92, 2.586},
	{"Ca6+2", 1.761, 90.0, 3.399, 0.238, 12.0, 2.141, 0.0, 0.7, 3.231, 2.88, 2.0},
	{"Sc3+3", 1.513, 109.47, 3.295, 0.019, 12.0, 2.592, 0.0, 0.7, 3.395, 3.08, 1.75},
	{"Ti3+4", 1.412, 109.47, 3.175, 0.017, 12.0, 2.659, 0.0, 0.7, 3.47, 3.38, 1.607},
	{"Ti6+4", 1.412, 90.0, 3.175, 0.017, 12.0, 2.659, 0.0, 0.7, 3.47, 3.38, 1.607},
	{"V_3+5", 1.402, 109.47, 3.144, 0.016, 12.0, 2.679, 0.0, 0.7, 3.65, 3.41, 1.47},
	{"Cr6+3", 1.345, 90.0, 3.023, 0.015, 12.0, 2.463, 0.0, 0.7, 3.415, 3.865, 1.402},
	{"Mn6+2", 1.382, 90.0, 2.961, 0.013, 12.0, 2.43, 0.0, 0.7, 3.325, 4.105, 1.533},
	{"Fe3+2", 1.27, 109.47, 2.912, 0.013, 12.0, 2.43, 0.0, 0.7, 3.76, 4.14, 1.393},
	{"Fe6+2", 1.335, 90.0, 2.912, 0.013, 12.0, 2.43, 0.0, 0.7, 3.76, 4.14, 1.393},
	{"Co6+3", 1.241, 90.0, 2.872, 0.014, 12.0, 2.43, 0.0, 0.7, 4.105, 4.175, 1.406},
	{"Ni4+2", 1.164, 90.0, 2.834, 0.015, 12.0, 2.43, 0.0, 0.7, 4.465, 4.205, 1.398},
	{"Cu3+1", 1.302, 109.47, 3.495, 0.005, 12.0, 1.756, 0.0, 0.7, 4.2, 4.22, 1.434},
	{"Zn3+2", 1.193, 109.47, 2.763, 0.124, 12.0, 1.308, 0.0, 0.7, 5.106, 4.285, 1.4},
	{"Ga3+3", 1.26, 109.47, 4.383, 0.415, 11.0, 1.821, 0.0, 0.7, 3.641, 3.16, 1.211},
	{"Ge3", 1.197, 109.47, 4.28, 0.379, 12.0, 2.789, 0.701, 0.7, 4.051, 3.438, 1.189},
	{"As3+3", 1.211, 92.1, 4.23, 0.309, 13.0, 2.864, 1.5, 0.7, 5.188, 3.809, 1.204},
	{"Se3+2", 1.19, 90.6, 4.205, 0.291, 14.0, 2.764, 0.335, 0.7, 6.428, 4.131, 1.224},
	{"Br", 1.192, 180.0, 4.189, 0.251, 15.0, 2.519, 0.0, 0.7, 7.79, 4.425, 1.141},
	{"Kr4+4", 1.147, 90.0, 4.141, 0.22, 16.0, 0.452, 0.0, 0.7, 8.505, 5.715, 2.27},
	//Row 5: Rb - Xe
	{"Rb", 2.26, 180.0, 4.114, 0.04, 12.0, 1.592, 0.0, 0.2, 2.331, 1.846, 2.77},
	{"Sr6+2", 2.052, 90.0, 3.641, 0.235, 12.0, 2.449, 0.0, 0.2, 3.024, 2.44, 2.415},
	{"Y_3+3", 1.698, 109.47, 3.345, 0.072, 12.0, 3.257, 0.0, 0.2, 3.83, 2.81, 1.998},
	{"Zr3+4", 1.564, 109.47, 3.124, 0.069, 12.0, 3.667, 0.0, 0.2, 3.4, 3.55, 1.758},
	{"Nb3+5", 1.473, 109.47, 3.165, 0.059, 12.0, 3.618, 0.0, 0.2, 3.55, 3.38, 1.603},
	{"Mo6+6", 1.467, 90.0, 3.052, 0.056, 12.0, 3.4, 0.0, 0.2, 3.465, 3.755, 1.53},
	{"Mo3+6", 1.484, 109.47, 3.052, 0.056, 12.0, 3.4, 0.0, 0.2, 3.465, 3.755, 1.53},
	{"Tc6+5", 1.322, 90.0, 2.998, 0.048, 12.0, 3.4, 0.0, 0.2, 3.29, 3.99, 1.5},
	{"Ru6+2", 1.478, 90.0, 2.963, 0.056, 12.0, 3.4, 0.0, 0.2, 3.575, 4.015, 1.5},
	{"Rh6+3", 1.332, 90.0, 2.929, 0.053, 12.0, 3.5, 0.0, 0.2, 3.975, 4.005, 1.509},
	{"Pd4+2", 1.338, 90.0, 2.899, 0.048, 12.0, 3.21, 0.0, 0.2, 4.32, 4.0, 1.544},
	{"Ag1+1", 1.386, 180.0, 3.148, 0.036, 12.0, 1.956, 0.0, 0.2, 4.436, 3.134, 1.622},
	{"Cd3+2", 1.403, 109.47, 2.848, 0.228, 12.0, 1.65, 0.0, 0.2, 5.034, 3.957, 1.6},
	{"In3+3", 1.459, 109.47, 4.463, 0.599, 11.0, 2.07, 0.0, 0.2, 3.506, 2.896, 1.404},
	{"Sn3", 1.398, 109.47, 4.392, 0.567, 12.0, 2.961, 0.199, 0.2, 3.987, 3.124, 1.354},
	{"Sb3+3", 1.407, 91.6, 4.42, 0.449, 13.0, 2.704, 1.1, 0.2, 4.899, 3.342, 1.404},
	{"Te3+2", 1.386, 90.25, 4.47, 0.398, 14.0, 2.882, 0.3, 0.2, 5.816, 3.526, 1.38},
	{"I_", 1.382, 180.0, 4.5, 0.339, 15.0, 2.65, 0.0, 0.2, 6.822, 3.762, 1.333},
	{"Xe4+4", 1.267, 90.0, 4.404, 0.332, 12.0, 0.556, 0.0, 0.2, 7.595, 4.975, 2.459},
	//Row 6: Cs - Rn
	{"Cs", 2.57, 180.0, 4.517, 0.045, 12.0, 1.573, 0.0, 0.1, 2.183, 1.711, 2.984},
	{"Ba6+2", 2.277, 90.0, 3.703, 0.364, 12.0, 2.727, 0.0, 0.1, 2.814, 2.396, 2.442},
	{"La3+3", 1.943, 109.47, 3.522, 0.017, 12.0, 3.3, 0.0, 0.1, 2.8355, 2.7415, 2.071},
	{"Ce6+3", 1.841, 90.0, 3.556, 0.013, 12.0, 3.3, 0.0, 0.1, 2.774, 2.692, 1.925},
	{"Pr6+3", 1.823, 90.0, 3.606, 0.01, 12.0, 3.3, 0.0, 0.1, 2.858, 2.564, 2.007},
	{"Nd6+3", 1.816, 90.0, 3.575, 0.01, 12.0, 3.3, 0.0, 0.1, 2.8685, 2.6205, 2.007},
	{"Pm6+3", 1.801, 90.0, 3.547, 0.009, 12.0, 3.3, 0.0, 0.1, 2.881, 2.673, 2.0},
	{"Sm6+3", 1.78, 90.0, 3.52, 0.008, 12.0, 3.3, 0.0, 0.1, 2.9115, 2.7195, 1.978},
	{"Eu6+3", 1.771, 90.0, 3.493, 0.008, 12.0, 3.3, 0.0, 0.1, 2.8785, 2.7875, 2.227},
	{"Gd6+3", 1.735, 90.0, 3.368, 0.009, 12.0, 3.3, 0.0, 0.1, 3.1665, 2.9745, 1.968},
	{"Tb6+3", 1.732, 90.0, 3.451, 0.007, 12.0, 3.3, 0.0, 0.1, 3.018, 2.834, 1.954},
	{"Dy6+3", 1.71, 90.0, 3.428, 0.007, 12.0, 3.3, 0.0, 0.1, 3.0555, 2.8715, 1.934},
	{"Ho6+3", 1.696, 90.0, 3.409, 0.007, 12.0, 3.416, 0.0, 0.1, 3.127, 2.891, 1.925},
	{"Er6+3", 1.673, 90.0, 3.391, 0.007, 12.0, 3.3, 0.0, 0.1, 3.1865, 2.9145, 1.915},
	{"Tm6+3", 1.66, 90.0, 3.374, 0.006, 12.0, 3.3, 0.0, 0.1, 3.2514, 2.9329, 2.0},
	{"Yb6+3", 1.637, 90.0, 3.355, 0.228, 12.0, 2.618, 0.0, 0.1, 3.2889, 2.965, 2.158},
	{"Lu6+3", 1.671, 90.0, 3.64, 0.041, 12.0, 3.271, 0.0, 0.1, 2.9629, 2.4629, 1.896},
	{"Hf3+4", 1.611, 109.47, 3.141, 0.072, 12.0, 3.921, 0.0, 0.1, 3.7, 3.4, 1.759},
	{"Ta3+5", 1.511, 109.47, 3.17, 0.081, 12.0, 4.075, 0.0, 0.1, 5.1, 2.85, 1.605},
	{"W_6+6", 1.392, 90.0, 3.069, 0.067, 12.0, 3.7, 0.0, 0.1, 4.63, 3.31, 1.538},
	{"W_3+4", 1.526, 109.47, 3.069, 0.067, 12.0, 3.7, 0.0, 0.1, 4.63, 3.31, 1.538},
	{"W_3+6", 1.38, 109.47, 3.069, 0.067, 12.0, 3.7, 0.0, 0.1, 4.63, 3.31, 1.538},
	{"Re6+5", 1.372, 90.0, 2.954, 0.066, 12.0, 3.7, 0.0, 0.1, 3.96, 3.92, 1.6},
	{"Re3+7", 1.314, 109.47, 2.954, 0.066, 12.0, 3.7, 0.0, 0.1, 3.96, 3.92, 1.6},
	{"Os6+6", 1.372, 90.0, 3.12, 0.037, 12.0, 3.7, 0.0, 0.1, 5.14, 3.63, 1.7},
	{"Ir6+3", 1.371, 90.0, 2.84, 0.073, 12.0, 3.731, 0.0, 0.1, 5.0, 4.0, 1.866},
	{"Pt4+2", 1.364, 90.0, 2.754, 0.08, 12.0, 3.382, 0.0, 0.1, 4.79, 4.43, 1.557},
	{"Au4+3", 1.262, 90.0, 3.293, 0.039, 12.0, 2.625, 0.0, 0.1, 4.894, 2.586, 1.618},
	{"Hg1+2", 1.34, 180.0, 2.705, 0.385, 12.0, 1.75, 0.0, 0.1, 6.27, 4.16, 1.6},
	{"Tl3+3", 1.518, 120.0, 4.347, 0.68, 11.0, 2.068, 0.0, 0.1, 3.2, 2.9, 1.53},
	{"Pb3", 1.459, 109.47, 4.297, 0.663, 12.0, 2.846, 0.1, 0.1, 3.9, 3.53, 1.444},
	{"Bi3+3", 1.512, 90.0, 4.37, 0.518, 13.0, 2.47, 1.0, 0.1, 4.69, 3.74, 1.514},
	{"Po3+2", 1.5, 90.0, 4.709, 0.325, 14.0, 2.33, 0.3, 0.1, 4.21, 4.21, 1.48},
	{"At", 1.545, 180.0, 4.75, 0.284, 15.0, 2.24, 0.0, 0.1, 4.75, 4.75, 1.47},
	{"Rn4+4", 1.42, 90.0, 4.765, 0.248, 16.0, 0.583, 0.0, 0.1, 5.37, 5.37, 2.2},
	//Row 7: Fr - Lw (actinides)
	{"Fr", 2.88, 180.0, 4.9, 0.05, 12.0, 1.847, 0.0, 0.0, 2.0, 2.0, 2.3},
	{"Ra6+2", 2.512, 90.0, 3.677, 0.404, 12.0, 2.92, 0.0, 0.0, 2.843, 2.434, 2.2},
	{"Ac6+3", 1.983, 90.0, 3.478, 0.033, 12.0, 3.9, 0.0, 0.0, 2.835, 2.835, 2.108},
	{"Th6+4", 1.721, 90.0, 3.396, 0.026, 12.0, 4.202, 0.0, 0.0, 3.175, 2.905, 2.018},
	{"Pa6+4", 1.711, 90.0, 3.424, 0.022, 12.0, 3.9, 0.0, 0.0, 2.985, 2.905, 1.8},
	{"U_6+4", 1.684, 90.0, 3.395, 0.022, 12.0, 3.9, 0.0, 0.0, 3.341, 2.853, 1.713},
	{"Np6+4", 1.666, 90.0, 3.424, 0.019, 12.0, 3.9, 0.0, 0.0, 3.549, 2.717, 1.8},
	{"Pu6+4", 1.657, 90.0, 3.424, 0.016, 12.0, 3.9, 0.0, 0.0, 3.243, 2.819, 1.84},
	{"Am6+4", 1.66, 90.0, 3.381, 0.014, 12.0, 3.9, 0.0, 0.0, 2.9895, 3.0035, 1.942},
	{"Cm6+3", 1.801, 90.0, 3.326, 0.013, 12.0, 3.9, 0.0, 0.0, 2.8315, 3.1895, 1.9},
	{"Bk6+3", 1.761, 90.0, 3.339, 0.013, 12.0, 3.9, 0.0, 0.0, 3.1935, 3.0355, 1.9},
	{"Cf6+3", 1.75, 90.0, 3.313, 0.013, 12.0, 3.9, 0.0, 0.0, 3.197, 3.101, 1.9},
	{"Es6+3", 1.724, 90.0, 3.299, 0.012, 12.0, 3.9, 0.0, 0.0, 3.333, 3.089, 1.9},
	{"Fm6+3", 1.712, 90.0, 3.286, 0.012, 12.0, 3.9, 0.0, 0.0, 3.4, 3.1, 1.9},
	{"Md6+3", 1.689, 90.0, 3.274, 0.011, 12.0, 3.9, 0.0, 0.0, 3.47, 3.11, 1.9},
	{"No6+3", 1.679, 90.0, 3.248, 0.011, 12.0, 3.9, 0.0, 0.0, 3.475, 3.175, 1.9},
	{"Lw6+3", 1.698, 90.0, 3.236, 0.011, 12.0, 3.9, 0.0, 0.0, 3.5, 3.2, 1.9},
}
