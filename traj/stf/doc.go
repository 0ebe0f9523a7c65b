/*
 * doc.go, part of gochem.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

//Package stf implements the simple trajectory format for relaxation runs.
//Each frame keeps the coordinates of one accepted state of a minimization,
//with its iteration number and energy. Files are small and easy to read and
//write from other programs.
//
//Format:
//
//An stf file is compressed with z-standard (zstd) and only contains ASCII symbols.
//
//The file starts with a header of key=value lines, ending with a line that starts
//with "**" followed by one or more spaces and the number of atoms per frame. The
//header always contains the precision, an integer p >= 0, with the key "prec":
//
//	prec=3
//
//After the header, the file has one line per atom, per frame. Each line contains the
//x, y and z coordinates, in A, multiplied by 10^p and rounded to an integer, and nothing more.
//
//Each frame ends with a line starting with the character "*", followed by a space,
//the iteration number, a space and the energy in kcal/mol:
//
//	* 12 -3.0417
//
//The "**" sequence can only be used as the header termination.
package stf
