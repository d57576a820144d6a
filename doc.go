/*
 * doc.go, part of gomdft.
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
 * goChem is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

/*Package mdft is the root package of gomdft, a small library to prepare input
for Molecular-DFT (MDFT) calculations from goChem-style data.

    The params package reads and writes the fixed-column parameter files
	(charges, Lennard-Jones sigma and epsilon, coordinates) read by MDFT,
	including the assignment of unique parameter groups.

    The cube package reads and writes Gaussian cube files and builds the
	cartesian grid they describe.

    The reduce package decimates cube grids, dropping points at regular
	intervals along each axis.

    The cubeplot package plots planes of a cube grid and histograms of grid values.

    The histo package compares the value distributions of a grid before and
	after reduction.

This package holds what the others share: the error types, the periodic table
lookup and a few numeric helpers.
*/
package mdft
