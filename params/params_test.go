/*
 * params_test.go, part of gomdft.
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

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	mdft "github.com/rmera/gomdft"
	"github.com/rmera/gomdft/v3"
)

const waterText = "SPC/E water\n" +
	"3  2\n" +
	"#     charge     sigma    epsilon          x             y             z          Z     Atom name  Surname \n" +
	"1   -0.847600  3.166000  0.650000   0.0000000000   0.0000000000   0.0000000000    8         O         OW\n" +
	"2    0.423800  0.000000  0.000000   0.9572000000   0.0000000000   0.0000000000    1         H         HW\n" +
	"2    0.423800  0.000000  0.000000  -0.2399870000   0.9266270000   0.0000000000    1         H         HW\n"

func water(Te *testing.T) *Parameters {
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 0.9572, 0, 0, -0.239987, 0.926627, 0})
	require.NoError(Te, err)
	return &Parameters{
		Comment:  "SPC/E water\n",
		Elements: []string{"O", "H", "H"},
		Surnames: []string{"OW", "HW", "HW"},
		Coords:   coords,
		Charge:   []float64{-0.8476, 0.4238, 0.4238},
		Sigma:    []float64{3.166, 0, 0},
		Epsilon:  []float64{0.65, 0, 0},
	}
}

func TestAssignGroups(Te *testing.T) {
	tests := []struct {
		name          string
		charge, sigma []float64
		groups        []int
		nuniques      int
	}{
		{"distinct", []float64{1, 2, 3, 4}, []float64{1, 1, 1, 1}, []int{1, 2, 3, 4}, 4},
		{"pair", []float64{1, 1}, []float64{2, 2}, []int{1, 1}, 1},
		{"water", []float64{-0.8476, 0.4238, 0.4238}, []float64{3.166, 0, 0}, []int{1, 2, 2}, 2},
		{"middle pair", []float64{1, 2, 2, 3}, []float64{0, 0, 0, 0}, []int{1, 2, 2, 3}, 3},
		{"leading pair", []float64{1, 1, 2, 3}, []float64{0, 0, 0, 0}, []int{1, 1, 2, 3}, 3},
		{"trailing pair", []float64{1, 2, 3, 3}, []float64{0, 0, 0, 0}, []int{1, 2, 3, 3}, 3},
		{"interleaved", []float64{1, 2, 1, 2}, []float64{0, 0, 0, 0}, []int{1, 1, 1, 1}, 2},
		{"epsilon ignored, sigma compared", []float64{1, 1, 2}, []float64{1, 2, 1}, []int{1, 2, 3}, 3},
		{"five atoms", []float64{0.1, 0.2, 0.1, 0.3, 0.2}, []float64{1, 1, 1, 1, 1}, []int{1, 1, 1, 2, 1}, 3},
		//every duplicate pair counts, so three equal atoms give zero uniques.
		{"three equal", []float64{1, 1, 1}, []float64{2, 2, 2}, []int{1, 1, 0}, 0},
		{"single", []float64{0.5}, []float64{1}, []int{1}, 1},
		//the first atom is numbered 0 in the loop, and keeps it.
		{"zero kept", []float64{2, 2, 2, 1, 2}, []float64{1, 1, 1, 1, 1}, []int{0, 1, -1, -2, -1}, -1},
	}
	for _, tt := range tests {
		Te.Run(tt.name, func(Te *testing.T) {
			groups, n := AssignGroups(tt.charge, tt.sigma)
			assert.Equal(Te, tt.groups, groups)
			assert.Equal(Te, tt.nuniques, n)
		})
	}
}

func TestEncode(Te *testing.T) {
	var b bytes.Buffer
	require.NoError(Te, Encode(&b, water(Te)))
	if diff := cmp.Diff(waterText, b.String()); diff != "" {
		Te.Errorf("encoded file mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeDefaultComment(Te *testing.T) {
	P := water(Te)
	P.Comment = ""
	var b bytes.Buffer
	require.NoError(Te, Encode(&b, P))
	assert.True(Te, strings.HasPrefix(b.String(), DefaultComment))
}

func TestWriteRead(Te *testing.T) {
	dir := Te.TempDir()
	for _, name := range []string{"pars.in", "pars.in.gz", "pars.in.zst"} {
		Te.Run(name, func(Te *testing.T) {
			fname := filepath.Join(dir, name)
			P := water(Te)
			require.NoError(Te, Write(fname, P))
			R, err := Read(fname)
			require.NoError(Te, err)
			assert.Equal(Te, P.Comment, R.Comment)
			assert.Equal(Te, 2, R.Uniques)
			assert.Equal(Te, []int{1, 2, 2}, R.Indices)
			assert.Equal(Te, P.Elements, R.Elements)
			assert.Equal(Te, P.Surnames, R.Surnames)
			assert.True(Te, floats.EqualApprox(P.Charge, R.Charge, 1e-6))
			assert.True(Te, floats.EqualApprox(P.Sigma, R.Sigma, 1e-6))
			assert.True(Te, floats.EqualApprox(P.Epsilon, R.Epsilon, 1e-6))
			assert.True(Te, floats.EqualApprox(P.Coords.RawMatrix().Data, R.Coords.RawMatrix().Data, 1e-10))
		})
	}
}

func TestWriteDistinct(Te *testing.T) {
	const n = 6
	coords := v3.Zeros(n)
	P := &Parameters{Coords: coords}
	for i := 0; i < n; i++ {
		coords.Set(i, 0, float64(i)*1.5)
		P.Elements = append(P.Elements, "C")
		P.Surnames = append(P.Surnames, "CT")
		P.Charge = append(P.Charge, 0.1*float64(i))
		P.Sigma = append(P.Sigma, 3.4)
		P.Epsilon = append(P.Epsilon, 0.36)
	}
	fname := filepath.Join(Te.TempDir(), "distinct.in")
	require.NoError(Te, Write(fname, P))
	R, err := Read(fname)
	require.NoError(Te, err)
	assert.Equal(Te, n, R.Uniques)
	assert.Equal(Te, []int{1, 2, 3, 4, 5, 6}, R.Indices)
	assert.NoError(Te, ValidateFile(fname))
}

func TestWriteErrors(Te *testing.T) {
	dir := Te.TempDir()

	P := water(Te)
	P.Surnames = P.Surnames[:2]
	fname := filepath.Join(dir, "mismatch.in")
	err := Write(fname, P)
	assert.True(Te, errors.Is(err, mdft.ErrValidation), "%v", err)
	assert.Contains(Te, err.Error(), "position 1")
	_, statErr := os.Stat(fname)
	assert.True(Te, os.IsNotExist(statErr))

	P = water(Te)
	P.Elements[2] = "Hx"
	fname = filepath.Join(dir, "lookup.in")
	err = Write(fname, P)
	assert.True(Te, errors.Is(err, mdft.ErrLookup), "%v", err)
	_, statErr = os.Stat(fname)
	assert.True(Te, os.IsNotExist(statErr))

	err = Encode(&bytes.Buffer{}, &Parameters{})
	assert.True(Te, errors.Is(err, mdft.ErrValidation), "%v", err)
}

func TestWriteKeepsOldFileOnError(Te *testing.T) {
	fname := filepath.Join(Te.TempDir(), "pars.in")
	require.NoError(Te, os.WriteFile(fname, []byte(waterText), 0644))
	P := water(Te)
	P.Elements[0] = "Q"
	require.Error(Te, Write(fname, P))
	data, err := os.ReadFile(fname)
	require.NoError(Te, err)
	assert.Equal(Te, waterText, string(data))
}

func TestDecodeErrors(Te *testing.T) {
	lines := strings.SplitAfter(waterText, "\n")
	tests := map[string]string{
		"three integers": lines[0] + "3 2 1\n" + strings.Join(lines[2:], ""),
		"not integers":   lines[0] + "3 x\n" + strings.Join(lines[2:], ""),
		"nine fields":    strings.Join(lines[:4], "") + strings.Replace(lines[4], "HW", "", 1) + lines[5],
		"bad number":     strings.Join(lines[:4], "") + strings.Replace(lines[4], "0.423800", "0.42a800", 1) + lines[5],
		"too few atoms":  strings.Join(lines[:5], ""),
		"too many atoms": waterText + lines[5],
		"no data lines":  lines[0],
		"empty":          "",
	}
	for name, text := range tests {
		Te.Run(name, func(Te *testing.T) {
			P, err := Decode(strings.NewReader(text))
			assert.Nil(Te, P)
			assert.True(Te, errors.Is(err, mdft.ErrFormat), "%v", err)
		})
	}
}

func TestDecodeNoAtoms(Te *testing.T) {
	for _, text := range []string{"empty\n0  0\n", "empty\n0  0", "empty\n0  0\n# titles\n"} {
		P, err := Decode(strings.NewReader(text))
		require.NoError(Te, err, "%q", text)
		assert.Equal(Te, 0, P.Len())
		assert.Nil(Te, P.Coords)
	}
	//the atom count still has to match
	_, err := Decode(strings.NewReader("water\n3  2\n"))
	assert.True(Te, errors.Is(err, mdft.ErrFormat), "%v", err)
}

func TestDecodeNoTrailingNewline(Te *testing.T) {
	P, err := Decode(strings.NewReader(strings.TrimSuffix(waterText, "\n")))
	require.NoError(Te, err)
	assert.Equal(Te, 3, P.Len())
	assert.Equal(Te, "HW", P.Surnames[2])
}

func TestValidate(Te *testing.T) {
	assert.NoError(Te, Validate(strings.NewReader(waterText)))

	//Still readable by fields, but the columns are shifted.
	shifted := strings.Replace(waterText, "\n1   -0.847600", "\n1    -0.847600", 1)
	_, err := Decode(strings.NewReader(shifted))
	assert.NoError(Te, err)
	err = Validate(strings.NewReader(shifted))
	assert.True(Te, errors.Is(err, mdft.ErrFormat), "%v", err)

	wrongZ := strings.Replace(waterText, "    8         O", "    7         O", 1)
	err = Validate(strings.NewReader(wrongZ))
	assert.True(Te, errors.Is(err, mdft.ErrFormat), "%v", err)

	lines := strings.SplitAfter(waterText, "\n")
	err = Validate(strings.NewReader(strings.Join(lines[:5], "")))
	assert.True(Te, errors.Is(err, mdft.ErrFormat), "%v", err)
}

func TestTitleLine(Te *testing.T) {
	assert.Equal(Te, "#     charge     sigma    epsilon          x             y             z          Z     Atom name  Surname \n", titleLine(Layout))
	assert.Equal(Te, "  ab   ", pad("ab", 7, Center))
	assert.Equal(Te, "   ab", pad("ab", 5, Right))
	assert.Equal(Te, "toolong", pad("toolong", 3, Left))
}
