/*
 * groups.go, part of gomdft.
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

package params

//AssignGroups returns, for each atom, the 1-based number of its parameter
//group, and the number of unique groups. Two atoms are in the same group
//when both their charges and sigmas are exactly equal. Epsilon is not
//compared.
//
//The numbering is the one MDFT input has always used: atoms are visited in
//order, and each duplicate pair found shifts the numbers of later atoms down
//by one. The result depends on the order of the atoms, and with several
//duplicates of one atom the numbers can run below the first occurrence's.
//
//A slot holding 0 counts as unassigned and can be overwritten in the loop,
//so 0 and negative numbers can be returned. An atom that matches every atom
//after it is never given a number in the loop; it takes the number of its
//first duplicate.
func AssignGroups(charge, sigma []float64) ([]int, int) {
	natoms := len(charge)
	if natoms == 0 {
		return nil, 0
	}
	uniques := make([]int, natoms)
	assigned := make([]bool, natoms) //set by the loop, even if to 0
	repeated := make([]bool, natoms)
	partner := make([]int, natoms) //first later duplicate of each atom, or 0
	count := 0
	for i := 0; i < natoms; i++ {
		for j := i + 1; j < natoms; j++ {
			if charge[i] == charge[j] && sigma[i] == sigma[j] {
				repeated[i] = true
				repeated[j] = true
				if partner[i] == 0 {
					partner[i] = j
				}
				if uniques[j] == 0 {
					uniques[j] = i + 1 - count
					assigned[j] = true
				}
				count++
			} else if uniques[i] == 0 {
				if !repeated[i] {
					uniques[i] = i + 1 - count
				} else {
					uniques[i] = i + 2 - count
				}
				assigned[i] = true
			}
		}
	}
	if uniques[natoms-1] == 0 {
		uniques[natoms-1] = natoms - count
		assigned[natoms-1] = true
	}
	//partners always come later, so walking backwards resolves chains.
	for i := natoms - 2; i >= 0; i-- {
		if !assigned[i] && partner[i] != 0 {
			uniques[i] = uniques[partner[i]]
		}
	}
	return uniques, natoms - count
}
