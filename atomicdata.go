/*
 * atomicdata.go, part of gomdft.
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

//Element symbols ordered by atomic number, starting from Z=1.
var symbols = [...]string{
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

//A map for assigning atomic numbers to elements. Filled from symbols.
var symbolZ = make(map[string]int, len(symbols))

func init() {
	for i, s := range symbols {
		symbolZ[s] = i + 1
	}
}

//AtomicNumber returns the atomic number of the element with the given symbol.
//Symbols are case-sensitive ("Cl", not "CL"). Unknown symbols give an Error
//wrapping ErrLookup.
func AtomicNumber(symbol string) (int, error) {
	z, ok := symbolZ[symbol]
	if !ok {
		return 0, NewError(ErrLookup, "", "AtomicNumber", "symbol %q not in the periodic table", symbol)
	}
	return z, nil
}

//Symbol returns the element symbol for atomic number z.
func Symbol(z int) (string, error) {
	if z < 1 || z > len(symbols) {
		return "", NewError(ErrLookup, "", "Symbol", "atomic number %d out of range", z)
	}
	return symbols[z-1], nil
}
