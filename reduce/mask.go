/*
 * mask.go, part of gomdft.
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

package reduce

import (
	"fmt"

	mdft "github.com/rmera/gomdft"
)

//MeshOrder is the order, from outermost to innermost, in which the three
//axis masks are expanded into the flat grid mask: second axis (Y), first
//axis (X), third axis (Z). The flat mask is then applied as-is to the cube
//points and values. Reduced grids already used as MDFT input were built
//this way, and going to X, Y, Z changes which points are kept whenever the
//first two axes differ in size or factor. Keep it.
var MeshOrder = [3]int{1, 0, 2}

//AxisMask returns the mask for an axis with n points from which r points
//are to be removed. All points are kept except those at 0, n/r, 2n/r...
//r must divide n.
func AxisMask(n, r int) ([]bool, error) {
	if r < 1 {
		return nil, mdft.NewError(mdft.ErrValidation, "", "AxisMask", "can't remove %d points", r)
	}
	if r > n+1 {
		return nil, mdft.NewError(mdft.ErrValidation, "", "AxisMask", "%d points to remove but the axis has only %d", r, n)
	}
	if n%r != 0 {
		return nil, mdft.NewError(mdft.ErrValidation, "", "AxisMask", "please use a divisor of the total number of points (%d is not a divisor of %d)", r, n)
	}
	div := n / r
	m := make([]bool, n)
	for i := range m {
		m[i] = i%div != 0
	}
	return m, nil
}

//Mask returns the flat mask for a grid of the given shape, removing
//factors[i] points along axis i. The points are in MeshOrder.
func Mask(shape, factors [3]int) ([]bool, error) {
	var axes [3][]bool
	for i := range axes {
		var err error
		axes[i], err = AxisMask(shape[i], factors[i])
		if err != nil {
			return nil, mdft.ErrDecorate(err, fmt.Sprintf("Mask: axis %d", i))
		}
	}
	o := MeshOrder
	mask := make([]bool, 0, shape[0]*shape[1]*shape[2])
	var idx [3]int
	for a := 0; a < shape[o[0]]; a++ {
		idx[o[0]] = a
		for b := 0; b < shape[o[1]]; b++ {
			idx[o[1]] = b
			for c := 0; c < shape[o[2]]; c++ {
				idx[o[2]] = c
				mask = append(mask, axes[0][idx[0]] && axes[1][idx[1]] && axes[2][idx[2]])
			}
		}
	}
	return mask, nil
}

//Kept returns the indexes of the true elements of mask.
func Kept(mask []bool) []int {
	ret := make([]int, 0, len(mask))
	for i, v := range mask {
		if v {
			ret = append(ret, i)
		}
	}
	return ret
}
