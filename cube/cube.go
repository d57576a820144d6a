/*
 * cube.go, part of gomdft.
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

//Package cube reads and writes Gaussian cube files, and builds the
//cartesian grid they describe.
//
//Values are stored with the first axis outermost and the third one
//innermost: the value of point (i,j,k) is Values[(i*Ny+j)*Nz+k].
package cube

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	mdft "github.com/rmera/gomdft"
	"github.com/rmera/gomdft/v3"
)

//Atom is an entry of the atom block of a cube file.
type Atom struct {
	Z      int
	Charge float64 //nuclear charge, usually equal to Z
}

//Cube contains the data of a cube file.
type Cube struct {
	Comment  [2]string //The two comment lines, without newlines.
	Origin   [3]float64
	Shape    [3]int     //Number of points along each axis.
	Vectors  *mat.Dense //3x3, row i is the step vector of axis i.
	Angstrom bool       //Units of Origin, Vectors and Coords. Bohr if false.
	Atoms    []Atom
	Coords   *v3.Matrix //Atomic coordinates, nil if there are no atoms.
	Values   []float64
}

//NPoints returns the number of grid points.
func (C *Cube) NPoints() int {
	return C.Shape[0] * C.Shape[1] * C.Shape[2]
}

//Index returns the position in Values of the point (i,j,k).
func (C *Cube) Index(i, j, k int) int {
	return (i*C.Shape[1]+j)*C.Shape[2] + k
}

//Grid returns the cartesian coordinates of all the points of C, in the
//order of Values.
func (C *Cube) Grid() (*v3.Matrix, error) {
	if C.Vectors == nil {
		return nil, mdft.NewError(mdft.ErrValidation, "", "Grid", "no step vectors")
	}
	return MakeGrid(C.Shape, C.Vectors, C.Origin)
}

//Check verifies that the cube is consistent: positive axis sizes, 3x3 step
//vectors, one value per grid point and one coordinate per atom.
func (C *Cube) Check() error {
	for i, n := range C.Shape {
		if n < 1 {
			return mdft.NewError(mdft.ErrValidation, "", "Check", "axis %d has %d points", i, n)
		}
	}
	if C.Vectors == nil {
		return mdft.NewError(mdft.ErrValidation, "", "Check", "no step vectors")
	}
	if r, c := C.Vectors.Dims(); r != 3 || c != 3 {
		return mdft.NewError(mdft.ErrValidation, "", "Check", "step vectors must be 3x3, not %dx%d", r, c)
	}
	if len(C.Values) != C.NPoints() {
		return mdft.NewError(mdft.ErrValidation, "", "Check", "%d values for %d grid points", len(C.Values), C.NPoints())
	}
	ncoords := 0
	if C.Coords != nil {
		ncoords = C.Coords.NVecs()
	}
	if ncoords != len(C.Atoms) {
		return mdft.NewError(mdft.ErrValidation, "", "Check", "%d atoms but %d coordinates", len(C.Atoms), ncoords)
	}
	return nil
}

//MakeGrid returns the N×3 cartesian coordinates of the points of a grid with
//the given shape, step vectors (rows of a 3x3 matrix) and origin. Point
//(i,j,k) is origin + i*v0 + j*v1 + k*v2, and points come in the cube order:
//first axis outermost, third axis innermost.
func MakeGrid(shape [3]int, vectors mat.Matrix, origin [3]float64) (*v3.Matrix, error) {
	n := shape[0] * shape[1] * shape[2]
	if shape[0] < 1 || shape[1] < 1 || shape[2] < 1 {
		return nil, mdft.NewError(mdft.ErrValidation, "", "MakeGrid", "invalid grid shape %v", shape)
	}
	if r, c := vectors.Dims(); r != 3 || c != 3 {
		return nil, mdft.NewError(mdft.ErrValidation, "", "MakeGrid", "step vectors must be 3x3, not %dx%d", r, c)
	}
	idx := make([]float64, 0, 3*n)
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			for k := 0; k < shape[2]; k++ {
				idx = append(idx, float64(i), float64(j), float64(k))
			}
		}
	}
	I := mat.NewDense(n, 3, idx)
	grid := v3.Zeros(n)
	grid.Mul(I, vectors)
	grid.AddVec(grid, origin)
	return grid, nil
}

//Read reads the cube file fname. Files ending in .gz or .zst are
//decompressed.
func Read(fname string) (*Cube, error) {
	f, err := mdft.OpenFile(fname)
	if err != nil {
		return nil, mdft.ErrDecorate(err, "Read")
	}
	defer f.Close()
	C, err := decode(f, fname)
	if err != nil {
		return nil, mdft.ErrDecorate(err, "Read")
	}
	return C, nil
}

//Decode reads a cube file from r.
func Decode(r io.Reader) (*Cube, error) {
	return decode(r, "")
}

//floats parses all the fields in line, which must be at least min.
func floats(line string, min int) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) < min {
		return nil, fmt.Errorf("expected at least %d fields, got %d", min, len(fields))
	}
	ret := make([]float64, len(fields))
	for i, f := range fields {
		var err error
		ret[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

//header lines are integers written as such; this reads one.
func atoi(f float64) (int, bool) {
	i := int(f)
	return i, float64(i) == f
}

func decode(r io.Reader, fname string) (*Cube, error) {
	ferr := func(format string, args ...interface{}) error {
		return mdft.NewError(mdft.ErrFormat, fname, "Decode", format, args...)
	}
	in := bufio.NewReader(r)
	lineno := 0
	next := func() (string, error) {
		line, err := in.ReadString('\n')
		lineno++
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				return "", ferr("unexpected end of file at line %d", lineno)
			}
			return "", fmt.Errorf("Decode: %w", err)
		}
		return line, nil
	}
	C := new(Cube)
	for i := range C.Comment {
		line, err := next()
		if err != nil {
			return nil, err
		}
		C.Comment[i] = strings.TrimRight(line, "\r\n")
	}
	line, err := next()
	if err != nil {
		return nil, err
	}
	head, err := floats(line, 4)
	if err != nil {
		return nil, ferr("line %d: %s", lineno, err)
	}
	natoms, ok := atoi(head[0])
	if !ok {
		return nil, ferr("line %d: number of atoms is not an integer", lineno)
	}
	dsets := natoms < 0 //there is a line with dataset ids after the atoms.
	if dsets {
		natoms = -natoms
	}
	copy(C.Origin[:], head[1:4])
	vecs := make([]float64, 9)
	for i := 0; i < 3; i++ {
		line, err := next()
		if err != nil {
			return nil, err
		}
		ax, err := floats(line, 4)
		if err != nil {
			return nil, ferr("line %d: %s", lineno, err)
		}
		n, ok := atoi(ax[0])
		if !ok || n == 0 {
			return nil, ferr("line %d: invalid number of points for axis %d", lineno, i)
		}
		if n < 0 {
			n = -n
			C.Angstrom = true
		}
		C.Shape[i] = n
		copy(vecs[3*i:], ax[1:4])
	}
	C.Vectors = mat.NewDense(3, 3, vecs)
	coords := make([]float64, 0, 3*natoms)
	for i := 0; i < natoms; i++ {
		line, err := next()
		if err != nil {
			return nil, err
		}
		at, err := floats(line, 5)
		if err != nil {
			return nil, ferr("line %d: %s", lineno, err)
		}
		z, ok := atoi(at[0])
		if !ok {
			return nil, ferr("line %d: atomic number is not an integer", lineno)
		}
		C.Atoms = append(C.Atoms, Atom{Z: z, Charge: at[1]})
		coords = append(coords, at[2:5]...)
	}
	if natoms > 0 {
		C.Coords, err = v3.NewMatrix(coords)
		if err != nil {
			return nil, ferr("can't build atomic coordinates: %s", err)
		}
	}
	if dsets {
		line, err := next()
		if err != nil {
			return nil, err
		}
		ids, err := floats(line, 1)
		if err != nil {
			return nil, ferr("line %d: %s", lineno, err)
		}
		if ids[0] != 1 {
			return nil, ferr("line %d: only cube files with one dataset are supported, this one has %v", lineno, ids[0])
		}
	}
	npoints := C.NPoints()
	C.Values = make([]float64, 0, npoints)
	for {
		line, err := in.ReadString('\n')
		lineno++
		for _, f := range strings.Fields(line) {
			v, perr := strconv.ParseFloat(f, 64)
			if perr != nil {
				return nil, ferr("line %d: %s", lineno, perr)
			}
			C.Values = append(C.Values, v)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("Decode: %w", err)
		}
	}
	if len(C.Values) != npoints {
		return nil, ferr("%d values read for a %dx%dx%d grid", len(C.Values), C.Shape[0], C.Shape[1], C.Shape[2])
	}
	return C, nil
}

//Write writes C as a cube file named fname. The file is written
//atomically, and compressed if fname ends in .gz or .zst.
func Write(fname string, C *Cube) error {
	var b strings.Builder
	if err := Encode(&b, C); err != nil {
		return mdft.ErrDecorate(err, "Write")
	}
	return mdft.WriteFile(fname, []byte(b.String()))
}

//Encode writes C to w in the cube format. Values are written six per line,
//and each run along the third axis starts a new line.
func Encode(w io.Writer, C *Cube) error {
	if err := C.Check(); err != nil {
		return mdft.ErrDecorate(err, "Encode")
	}
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "%s\n%s\n", C.Comment[0], C.Comment[1])
	fmt.Fprintf(out, "%5d%12.6f%12.6f%12.6f\n", len(C.Atoms), C.Origin[0], C.Origin[1], C.Origin[2])
	sign := 1
	if C.Angstrom {
		sign = -1
	}
	for i := 0; i < 3; i++ {
		fmt.Fprintf(out, "%5d%12.6f%12.6f%12.6f\n", sign*C.Shape[i], C.Vectors.At(i, 0), C.Vectors.At(i, 1), C.Vectors.At(i, 2))
	}
	for i, a := range C.Atoms {
		c := C.Coords.Vec(i)
		fmt.Fprintf(out, "%5d%12.6f%12.6f%12.6f%12.6f\n", a.Z, a.Charge, c[0], c[1], c[2])
	}
	nz := C.Shape[2]
	for start := 0; start < len(C.Values); start += nz {
		for k, v := range C.Values[start : start+nz] {
			fmt.Fprintf(out, "%13.5E", v)
			if k%6 == 5 || k == nz-1 {
				out.WriteString("\n")
			}
		}
	}
	return out.Flush()
}
