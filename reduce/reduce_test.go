/*
 * reduce_test.go, part of gomdft.
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
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"

	mdft "github.com/rmera/gomdft"
	"github.com/rmera/gomdft/cube"
)

//testCube returns a cube with unit step vectors, origin at 0 and each value
//equal to its position in Values.
func testCube(shape [3]int) *cube.Cube {
	C := &cube.Cube{
		Shape:   shape,
		Vectors: mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}),
	}
	C.Values = make([]float64, C.NPoints())
	for i := range C.Values {
		C.Values[i] = float64(i)
	}
	return C
}

func TestAxisMask(Te *testing.T) {
	m, err := AxisMask(4, 2)
	require.NoError(Te, err)
	assert.Equal(Te, []bool{false, true, false, true}, m)
	m, err = AxisMask(6, 3)
	require.NoError(Te, err)
	assert.Equal(Te, []bool{false, true, false, true, false, true}, m)
	m, err = AxisMask(6, 2)
	require.NoError(Te, err)
	assert.Equal(Te, []bool{false, true, true, false, true, true}, m)

	for _, r := range [][2]int{{5, 2}, {4, 6}, {4, 0}, {4, -1}} {
		_, err := AxisMask(r[0], r[1])
		assert.True(Te, errors.Is(err, mdft.ErrValidation), "%v: %v", r, err)
	}
	_, err = AxisMask(5, 2)
	assert.Contains(Te, err.Error(), "divisor")
}

func TestMask(Te *testing.T) {
	m, err := Mask([3]int{4, 4, 4}, [3]int{2, 2, 2})
	require.NoError(Te, err)
	require.Len(Te, m, 64)
	assert.Equal(Te, []int{21, 23, 29, 31, 53, 55, 61, 63}, Kept(m))
	again, err := Mask([3]int{4, 4, 4}, [3]int{2, 2, 2})
	require.NoError(Te, err)
	assert.Equal(Te, m, again)

	//The first two axes differ, so the (Y, X, Z) order shows.
	m, err = Mask([3]int{4, 2, 2}, [3]int{2, 1, 1})
	require.NoError(Te, err)
	assert.Equal(Te, []int{11, 15}, Kept(m))

	m, err = Mask([3]int{6, 3, 4}, [3]int{3, 1, 2})
	require.NoError(Te, err)
	assert.Len(Te, Kept(m), 12)

	_, err = Mask([3]int{4, 5, 4}, [3]int{2, 2, 2})
	assert.True(Te, errors.Is(err, mdft.ErrValidation), "%v", err)
}

func TestReduce(Te *testing.T) {
	C := testCube([3]int{4, 4, 4})
	grid, values, err := Reduce(C, [3]int{2, 2, 2})
	require.NoError(Te, err)
	require.Equal(Te, 8, grid.NVecs())
	require.Len(Te, values, 8)
	assert.Equal(Te, []float64{21, 23, 29, 31, 53, 55, 61, 63}, values)
	//value 21 is point (1,1,1), 23 is (1,1,3)
	assert.Equal(Te, [3]float64{1, 1, 1}, grid.Vec(0))
	assert.Equal(Te, [3]float64{1, 1, 3}, grid.Vec(1))
	assert.Equal(Te, [3]float64{3, 3, 3}, grid.Vec(7))

	//cube.Cube values work too
	_, values2, err := Reduce(*C, [3]int{2, 2, 2})
	require.NoError(Te, err)
	assert.Equal(Te, values, values2)
}

func TestReduceKeepsGridAndValuesTogether(Te *testing.T) {
	C := testCube([3]int{4, 2, 2})
	grid, values, err := Reduce(C, [3]int{2, 1, 1})
	require.NoError(Te, err)
	require.Equal(Te, grid.NVecs(), len(values))
	full, err := C.Grid()
	require.NoError(Te, err)
	for i, v := range values {
		assert.Equal(Te, full.Vec(int(v)), grid.Vec(i))
	}
}

func TestReduceFile(Te *testing.T) {
	C := testCube([3]int{4, 4, 2})
	C.Comment = [2]string{"test", "cube"}
	fname := filepath.Join(Te.TempDir(), "test.cube.gz")
	require.NoError(Te, cube.Write(fname, C))
	grid, values, err := Reduce(fname, [3]int{2, 2, 1})
	require.NoError(Te, err)
	assert.Equal(Te, 2*2*1, grid.NVecs())
	assert.Len(Te, values, 4)

	_, _, err = Reduce(filepath.Join(Te.TempDir(), "nothere.cube"), [3]int{2, 2, 1})
	assert.Error(Te, err)
}

func TestReduceErrors(Te *testing.T) {
	C := testCube([3]int{5, 4, 4})
	_, _, err := Reduce(C, [3]int{2, 2, 2})
	assert.True(Te, errors.Is(err, mdft.ErrValidation), "%v", err)

	C = testCube([3]int{4, 4, 4})
	_, _, err = Reduce(C, [3]int{4, 2, 2})
	assert.True(Te, errors.Is(err, mdft.ErrValidation), "%v", err)
	_, _, err = Reduce(C, [3]int{6, 2, 2})
	assert.True(Te, errors.Is(err, mdft.ErrValidation), "%v", err)

	C.Values = C.Values[1:]
	_, _, err = Reduce(C, [3]int{2, 2, 2})
	assert.True(Te, errors.Is(err, mdft.ErrValidation), "%v", err)

	//a cube built by hand, without step vectors
	bare := &cube.Cube{Shape: [3]int{4, 4, 4}, Values: make([]float64, 64)}
	assert.NotPanics(Te, func() {
		_, _, err = Reduce(bare, [3]int{2, 2, 2})
	})
	assert.True(Te, errors.Is(err, mdft.ErrValidation), "%v", err)
	bare.Vectors = mat.NewDense(2, 3, nil)
	_, _, err = Reduce(bare, [3]int{2, 2, 2})
	assert.True(Te, errors.Is(err, mdft.ErrValidation), "%v", err)

	for _, src := range []interface{}{42, nil, (*cube.Cube)(nil), []float64{1}} {
		_, _, err = Reduce(src, [3]int{2, 2, 2})
		assert.True(Te, errors.Is(err, mdft.ErrType), "%T: %v", src, err)
	}
}

func TestReduceLogs(Te *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	R := New(zap.New(core))
	_, _, err := R.Reduce(testCube([3]int{4, 4, 4}), [3]int{2, 2, 2})
	require.NoError(Te, err)
	shape := logs.FilterMessage("initial grid shape").All()
	require.Len(Te, shape, 1)
	assert.Equal(Te, zapcore.InfoLevel, shape[0].Level)
	done := logs.FilterMessage("grid reduced").All()
	require.Len(Te, done, 1)
	assert.Equal(Te, int64(8), done[0].ContextMap()["kept"])
}
