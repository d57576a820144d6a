/*
 * handy.go, part of gomdft.
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

package mdft

import "math"

//CheckLength verifies that all the given lengths are equal. It needs at least
//two lengths. The error reports the position (0-based, in the argument list)
//of the first length that differs from the first one.
func CheckLength(lengths ...int) error {
	if len(lengths) < 2 {
		return NewError(ErrValidation, "", "CheckLength", "at least two arrays need to be given")
	}
	ref := lengths[0]
	for i, l := range lengths[1:] {
		if l != ref {
			return NewError(ErrValidation, "", "CheckLength", "array in position %d has different length (%d vs %d)", i+1, l, ref)
		}
	}
	return nil
}

//GCD returns the greatest common divisor of x and y, by Euclid's algorithm.
//The result is never negative: GCD(4, -6) is 2, not -2 as the plain loop
//would give.
func GCD(x, y int) int {
	for y != 0 {
		x, y = y, x%y
	}
	if x < 0 {
		return -x
	}
	return x
}

//SmallestDivisor returns the smallest integer d>=2 that divides x.
//Only values up to the square root of |x| are tried, so for primes, 0 and ±1
//an Error wrapping ErrValidation is returned.
func SmallestDivisor(x int) (int, error) {
	ax := x
	if ax < 0 {
		ax = -ax
	}
	if ax < 4 {
		return 0, NewError(ErrValidation, "", "SmallestDivisor", "%d has no divisor other than itself and 1", x)
	}
	limit := int(math.Sqrt(float64(ax)))
	for d := 2; d <= limit; d++ {
		if ax%d == 0 {
			return d, nil
		}
	}
	return 0, NewError(ErrValidation, "", "SmallestDivisor", "%d is prime", x)
}
