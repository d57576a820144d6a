/*
 * cubeplot.go, part of gomdft.
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

//Package cubeplot draws planes of cube grids as heat maps, and histograms
//of grid values, so a reduced grid can be compared by eye with the original.
package cubeplot

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	mdft "github.com/rmera/gomdft"
	"github.com/rmera/gomdft/cube"
)

var axisNames = [3]string{"X", "Y", "Z"}

//Plane is the plane of a cube grid where the given axis is fixed at index.
//It implements plotter.GridXYZ. Columns run along the first of the other
//two axes and rows along the second; X and Y are distances from the
//plane's first point along them.
type Plane struct {
	C     *cube.Cube
	Axis  int
	Index int
	a, b  int     //the axes spanning the plane
	la    float64 //step lengths along a and b
	lb    float64
}

//NewPlane returns the plane of C perpendicular to axis at the given index.
func NewPlane(C *cube.Cube, axis, index int) (*Plane, error) {
	if axis < 0 || axis > 2 {
		return nil, mdft.NewError(mdft.ErrValidation, "", "NewPlane", "axis %d doesn't exist", axis)
	}
	if index < 0 || index >= C.Shape[axis] {
		return nil, mdft.NewError(mdft.ErrValidation, "", "NewPlane", "index %d out of range for axis %d with %d points", index, axis, C.Shape[axis])
	}
	P := &Plane{C: C, Axis: axis, Index: index}
	P.a, P.b = (axis+1)%3, (axis+2)%3
	if P.a > P.b {
		P.a, P.b = P.b, P.a
	}
	if C.Shape[P.a] < 2 || C.Shape[P.b] < 2 {
		return nil, mdft.NewError(mdft.ErrValidation, "", "NewPlane", "plane needs at least 2x2 points, it has %dx%d", C.Shape[P.a], C.Shape[P.b])
	}
	P.la = floats.Norm(C.Vectors.RawRowView(P.a), 2)
	P.lb = floats.Norm(C.Vectors.RawRowView(P.b), 2)
	return P, nil
}

func (P *Plane) Dims() (c, r int) { return P.C.Shape[P.a], P.C.Shape[P.b] }

func (P *Plane) Z(c, r int) float64 {
	var idx [3]int
	idx[P.Axis] = P.Index
	idx[P.a] = c
	idx[P.b] = r
	return P.C.Values[P.C.Index(idx[0], idx[1], idx[2])]
}

func (P *Plane) X(c int) float64 { return float64(c) * P.la }

func (P *Plane) Y(r int) float64 { return float64(r) * P.lb }

func units(C *cube.Cube) string {
	if C.Angstrom {
		return "Angstrom"
	}
	return "Bohr"
}

//HeatMap draws the plane of C perpendicular to axis at index, and saves it to
//fname. The format is given by the extension (png, svg, pdf...).
func HeatMap(C *cube.Cube, axis, index int, title, fname string) error {
	P, err := NewPlane(C, axis, index)
	if err != nil {
		return mdft.ErrDecorate(err, "HeatMap")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = fmt.Sprintf("%s (%s)", axisNames[P.a], units(C))
	p.Y.Label.Text = fmt.Sprintf("%s (%s)", axisNames[P.b], units(C))
	h := plotter.NewHeatMap(P, palette.Heat(12, 1))
	if h.Min == h.Max {
		h.Max = h.Min + 1
	}
	p.Add(h)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, fname); err != nil {
		return fmt.Errorf("HeatMap: %w", err)
	}
	return nil
}

//Histogram draws a histogram of values with the given number of bins, and
//saves it to fname.
func Histogram(values []float64, bins int, title, fname string) error {
	if len(values) == 0 {
		return mdft.NewError(mdft.ErrValidation, "", "Histogram", "no values given")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Points"
	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return fmt.Errorf("Histogram: %w", err)
	}
	p.Add(h)
	if err := p.Save(5*vg.Inch, 4*vg.Inch, fname); err != nil {
		return fmt.Errorf("Histogram: %w", err)
	}
	return nil
}
