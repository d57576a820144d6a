/*
 * reduce.go, part of gomdft.
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

//Package reduce makes cube grids smaller by removing points at regular
//intervals along each axis.
package reduce

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	mdft "github.com/rmera/gomdft"
	"github.com/rmera/gomdft/cube"
	"github.com/rmera/gomdft/v3"
)

//Reducer removes points from cube grids.
type Reducer struct {
	log *zap.Logger
}

//New returns a Reducer that logs to log. A nil log discards everything.
func New(log *zap.Logger) *Reducer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reducer{log: log}
}

//Reduce is Reducer.Reduce without logging.
func Reduce(source interface{}, factors [3]int) (*v3.Matrix, []float64, error) {
	return New(nil).Reduce(source, factors)
}

//Reduce takes factors[i] points off axis i of the cube source, and returns
//the coordinates of the remaining points and their values.
//source is either the name of a cube file or a *cube.Cube (or cube.Cube).
//The cube must pass Check. Each factor must divide the number of points on
//its axis, and can't take all of them off: removing a whole axis is an
//error, not an empty grid.
func (R *Reducer) Reduce(source interface{}, factors [3]int) (*v3.Matrix, []float64, error) {
	var C *cube.Cube
	switch s := source.(type) {
	case string:
		var err error
		C, err = cube.Read(s)
		if err != nil {
			return nil, nil, mdft.ErrDecorate(err, "Reduce")
		}
	case *cube.Cube:
		C = s
	case cube.Cube:
		C = &s
	default:
		return nil, nil, mdft.NewError(mdft.ErrType, "", "Reduce", "source should be a file name or a *cube.Cube, not %T", source)
	}
	if C == nil {
		return nil, nil, mdft.NewError(mdft.ErrType, "", "Reduce", "nil cube given")
	}
	R.log.Info("initial grid shape", zap.Ints("shape", C.Shape[:]), zap.Ints("factors", factors[:]))
	if err := C.Check(); err != nil {
		return nil, nil, mdft.ErrDecorate(err, "Reduce")
	}
	for i, f := range factors {
		if f == C.Shape[i] {
			return nil, nil, mdft.NewError(mdft.ErrValidation, "", "Reduce", "removing %d points takes off the whole axis %d", f, i)
		}
	}
	mask, err := Mask(C.Shape, factors)
	if err != nil {
		return nil, nil, mdft.ErrDecorate(err, "Reduce")
	}
	full, err := C.Grid()
	if err != nil {
		return nil, nil, mdft.ErrDecorate(err, "Reduce")
	}
	kept := Kept(mask)
	grid := v3.Zeros(len(kept))
	if err := grid.SomeVecsSafe(full, kept); err != nil {
		return nil, nil, err
	}
	values := make([]float64, len(kept))
	for i, k := range kept {
		values[i] = C.Values[k]
	}
	if ce := R.log.Check(zap.DebugLevel, "grid reduced"); ce != nil {
		mean, std := stat.MeanStdDev(values, nil)
		ce.Write(zap.Int("points", C.NPoints()),
			zap.Int("kept", len(kept)),
			zap.Float64("min", floats.Min(values)),
			zap.Float64("max", floats.Max(values)),
			zap.Float64("mean", mean),
			zap.Float64("stddev", std))
	}
	return grid, values, nil
}
