/*
 * params.go, part of gomdft.
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

//Package params reads and writes the parameter files used as input by
//Molecular-DFT (MDFT). They contain, for each atom of a solute, its charge,
//Lennard-Jones sigma and epsilon, cartesian coordinates (Angstrom), atomic
//number, element symbol and a free "surname" label.
//
//The format is:
//
//	comment line
//	natoms  nuniques
//	column titles
//	group charge sigma epsilon x y z Z element surname   (natoms lines)
package params

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	mdft "github.com/rmera/gomdft"
	"github.com/rmera/gomdft/v3"
)

//DefaultComment is the first line written when no comment is given.
const DefaultComment = "Input made with gomdft.\n"

//Parameters holds the contents of a parameter file as parallel slices, one
//element per atom.
type Parameters struct {
	Comment  string //The first line of the file, trailing newline included.
	Uniques  int    //Number of unique groups, as read. Write recomputes it.
	Indices  []int  //Group of each atom, as read. Write recomputes them.
	Elements []string
	Surnames []string
	Coords   *v3.Matrix
	Charge   []float64
	Sigma    []float64
	Epsilon  []float64
}

//Len returns the number of atoms.
func (P *Parameters) Len() int {
	return len(P.Elements)
}

//check verifies that all the per-atom slices have the same length.
func (P *Parameters) check() error {
	ncoords := 0
	if P.Coords != nil {
		ncoords = P.Coords.NVecs()
	}
	err := mdft.CheckLength(len(P.Elements), len(P.Surnames), ncoords, len(P.Charge), len(P.Sigma), len(P.Epsilon))
	if err != nil {
		return err
	}
	if len(P.Elements) == 0 {
		return mdft.NewError(mdft.ErrValidation, "", "check", "no atoms given")
	}
	return nil
}

//Read reads the parameter file fname. Files ending in .gz or .zst are
//decompressed.
func Read(fname string) (*Parameters, error) {
	f, err := mdft.OpenFile(fname)
	if err != nil {
		return nil, mdft.ErrDecorate(err, "Read")
	}
	defer f.Close()
	P, err := decode(f, fname)
	if err != nil {
		return nil, mdft.ErrDecorate(err, "Read")
	}
	return P, nil
}

//Decode reads a parameter file from r.
func Decode(r io.Reader) (*Parameters, error) {
	return decode(r, "")
}

func decode(r io.Reader, fname string) (*Parameters, error) {
	in := bufio.NewReader(r)
	P := new(Parameters)
	var natoms int
	var coords []float64
	ferr := func(format string, args ...interface{}) error {
		return mdft.NewError(mdft.ErrFormat, fname, "Decode", format, args...)
	}
	for i := 0; ; i++ {
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Decode: %w", err)
		}
		if line == "" && errors.Is(err, io.EOF) {
			//the title line can be missing when there are no atoms.
			if i < 2 {
				return nil, ferr("file ends at line %d, before the atom count", i+1)
			}
			break
		}
		switch {
		case i == 0:
			P.Comment = line
		case i == 1:
			fields := strings.Fields(line)
			if len(fields) != 2 {
				return nil, ferr("wrong format in line 2, expected 2 integers")
			}
			var e1, e2 error
			natoms, e1 = strconv.Atoi(fields[0])
			P.Uniques, e2 = strconv.Atoi(fields[1])
			if e1 != nil || e2 != nil {
				return nil, ferr("wrong format in line 2, expected 2 integers")
			}
		case i == 2:
			//column titles
		default:
			fields := strings.Fields(line)
			if len(fields) != 10 {
				return nil, ferr("wrong number of fields in line %d, expected 10, got %d", i+1, len(fields))
			}
			var errs [7]error
			var num [6]float64
			var idx int
			idx, errs[0] = strconv.Atoi(fields[0])
			for k := 0; k < 6; k++ {
				num[k], errs[k+1] = strconv.ParseFloat(fields[k+1], 64)
			}
			//fields[7], the atomic number, is redundant with the element.
			for _, e := range errs {
				if e != nil {
					return nil, ferr("line %d: %s", i+1, e)
				}
			}
			P.Indices = append(P.Indices, idx)
			P.Charge = append(P.Charge, num[0])
			P.Sigma = append(P.Sigma, num[1])
			P.Epsilon = append(P.Epsilon, num[2])
			coords = append(coords, num[3], num[4], num[5])
			P.Elements = append(P.Elements, fields[8])
			P.Surnames = append(P.Surnames, fields[9])
		}
		if errors.Is(err, io.EOF) {
			if i < 1 {
				return nil, ferr("file ends at line %d, before the atom count", i+1)
			}
			break
		}
	}
	if natoms != len(P.Elements) {
		return nil, ferr("number of atoms (%d) and data lines (%d) don't match", natoms, len(P.Elements))
	}
	if natoms > 0 {
		var err error
		P.Coords, err = v3.NewMatrix(coords)
		if err != nil {
			return nil, ferr("can't build coordinates: %s", err)
		}
	}
	return P, nil
}

//Encode writes P to w in the MDFT parameter format. Group numbers and the
//number of unique groups are computed with AssignGroups; P.Indices and
//P.Uniques are ignored. If P.Comment is empty, DefaultComment is used.
//Nothing is written if P is inconsistent or an element is unknown.
func Encode(w io.Writer, P *Parameters) error {
	text, err := encode(P)
	if err != nil {
		return mdft.ErrDecorate(err, "Encode")
	}
	_, err = io.WriteString(w, text)
	return err
}

//Write writes P to the file fname (see Encode). The file is written
//atomically, and compressed if fname ends in .gz or .zst.
func Write(fname string, P *Parameters) error {
	text, err := encode(P)
	if err != nil {
		return mdft.ErrDecorate(err, "Write")
	}
	return mdft.WriteFile(fname, []byte(text))
}

func encode(P *Parameters) (string, error) {
	if err := P.check(); err != nil {
		return "", err
	}
	natoms := P.Len()
	groups, nuniques := AssignGroups(P.Charge, P.Sigma)
	var b strings.Builder
	comment := P.Comment
	if comment == "" {
		comment = DefaultComment
	}
	b.WriteString(comment)
	fmt.Fprintf(&b, "%d  %d\n", natoms, nuniques)
	b.WriteString(titleLine(Layout))
	for i := 0; i < natoms; i++ {
		z, err := mdft.AtomicNumber(P.Elements[i])
		if err != nil {
			return "", mdft.ErrDecorate(err, fmt.Sprintf("encode: atom %d", i+1))
		}
		r := &record{
			group:   groups[i],
			charge:  P.Charge[i],
			sigma:   P.Sigma[i],
			epsilon: P.Epsilon[i],
			coord:   P.Coords.Vec(i),
			z:       z,
			element: P.Elements[i],
			surname: P.Surnames[i],
		}
		b.WriteString(formatRecord(Layout, r))
	}
	return b.String(), nil
}
