/*
 * cubeplot_test.go, part of gomdft.
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

package cubeplot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	mdft "github.com/rmera/gomdft"
	"github.com/rmera/gomdft/cube"
)

func gaussian() *cube.Cube {
	C := &cube.Cube{
		Shape:   [3]int{6, 5, 4},
		Vectors: mat.NewDense(3, 3, []float64{0.5, 0, 0, 0, 0.5, 0, 0, 0, 0.25}),
	}
	C.Values = make([]float64, C.NPoints())
	for i := 0; i < 6; i++ {
		for j := 0; j < 5; j++ {
			for k := 0; k < 4; k++ {
				x, y, z := float64(i)-2.5, float64(j)-2, float64(k)-1.5
				C.Values[C.Index(i, j, k)] = 1 / (1 + x*x + y*y + z*z)
			}
		}
	}
	return C
}

func TestPlane(Te *testing.T) {
	C := gaussian()
	P, err := NewPlane(C, 1, 2)
	require.NoError(Te, err)
	c, r := P.Dims()
	assert.Equal(Te, 6, c)
	assert.Equal(Te, 4, r)
	assert.Equal(Te, C.Values[C.Index(3, 2, 1)], P.Z(3, 1))
	assert.Equal(Te, 1.5, P.X(3))
	assert.Equal(Te, 0.25, P.Y(1))

	P, err = NewPlane(C, 0, 0)
	require.NoError(Te, err)
	c, r = P.Dims()
	assert.Equal(Te, 5, c)
	assert.Equal(Te, 4, r)
	assert.Equal(Te, C.Values[C.Index(0, 4, 3)], P.Z(4, 3))

	for _, ai := range [][2]int{{3, 0}, {-1, 0}, {2, 4}, {0, -1}} {
		_, err := NewPlane(C, ai[0], ai[1])
		assert.True(Te, errors.Is(err, mdft.ErrValidation), "%v", ai)
	}
}

func TestHeatMap(Te *testing.T) {
	fname := filepath.Join(Te.TempDir(), "plane.png")
	require.NoError(Te, HeatMap(gaussian(), 2, 1, "density", fname))
	info, err := os.Stat(fname)
	require.NoError(Te, err)
	assert.NotZero(Te, info.Size())

	flat := gaussian()
	for i := range flat.Values {
		flat.Values[i] = 1
	}
	fname = filepath.Join(Te.TempDir(), "flat.png")
	assert.NoError(Te, HeatMap(flat, 2, 0, "flat", fname))
}

func TestHistogram(Te *testing.T) {
	fname := filepath.Join(Te.TempDir(), "hist.svg")
	require.NoError(Te, Histogram(gaussian().Values, 10, "values", fname))
	info, err := os.Stat(fname)
	require.NoError(Te, err)
	assert.NotZero(Te, info.Size())

	err = Histogram(nil, 10, "none", fname)
	assert.True(Te, errors.Is(err, mdft.ErrValidation))
}
