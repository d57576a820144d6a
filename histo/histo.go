/*
 * histo.go, part of gomdft.
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

//Package histo bins grid values into histograms, so the value distribution
//of a reduced grid can be compared with that of the original one.
package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	mdft "github.com/rmera/gomdft"
)

//Data is a histogram. Values outside the dividers are not counted.
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

//Dividers returns bins+1 evenly spaced dividers covering all of values,
//the largest one included.
func Dividers(values []float64, bins int) ([]float64, error) {
	if bins < 1 {
		return nil, mdft.NewError(mdft.ErrValidation, "", "Dividers", "need at least one bin, got %d", bins)
	}
	if len(values) == 0 {
		return nil, mdft.NewError(mdft.ErrValidation, "", "Dividers", "no values")
	}
	min, max := floats.Min(values), floats.Max(values)
	if min == max {
		min, max = min-0.5, max+0.5
	}
	d := floats.Span(make([]float64, bins+1), min, max)
	d[bins] = math.Nextafter(max, math.Inf(1))
	return d, nil
}

//New returns a histogram of values with the given dividers. values is
//not modified. It can be nil, giving an empty histogram.
func New(dividers, values []float64) (*Data, error) {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		return nil, mdft.NewError(mdft.ErrValidation, "", "New", "need at least 2 sorted dividers")
	}
	D := &Data{dividers: append([]float64(nil), dividers...)}
	D.rehisto(values)
	return D, nil
}

func (D *Data) rehisto(values []float64) {
	raw := append([]float64(nil), values...)
	sort.Float64s(raw)
	//stat.Histogram panics on values off limits, so we take them out first.
	maxi := sort.SearchFloat64s(raw, D.dividers[len(D.dividers)-1])
	mini := sort.SearchFloat64s(raw, D.dividers[0])
	raw = raw[mini:maxi]
	D.total = len(raw)
	D.histo = stat.Histogram(nil, D.dividers, raw, nil)
	D.normalized = false
}

//AddData adds the given points to the histogram.
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		if v < D.dividers[0] || v >= D.dividers[last] {
			continue
		}
		//index of the first divider larger than v
		j := sort.Search(last+1, func(i int) bool { return D.dividers[i] > v })
		D.histo[j-1]++
		D.total++
	}
	if norma {
		D.Normalize()
	}
}

//Total is the number of points counted.
func (D *Data) Total() int {
	return D.total
}

//Normalized returns true if the histogram is normalized.
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize divides every bin by the number of points counted.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize undoes Normalize.
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	if normalize {
		n = 1 / n
	}
	D.normalized = normalize
	floats.Scale(n, D.histo)
}

//Dividers returns a copy of the dividers of the histogram.
func (D *Data) Dividers() []float64 {
	return append([]float64(nil), D.dividers...)
}

//View returns the bins of the histogram, not a copy.
func (D *Data) View() []float64 {
	return D.histo
}

//Sum is the sum of all bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//Sub puts a-b, bin by bin, in the receiver. If abs is true, the absolute
//values of the differences are used. a and b must have the same dividers.
func (D *Data) Sub(a, b *Data, abs bool) error {
	if !floats.Equal(a.dividers, b.dividers) {
		return mdft.NewError(mdft.ErrValidation, "", "Sub", "dividers must match in subtracted histograms")
	}
	D.dividers = a.Dividers()
	D.histo = make([]float64, len(a.histo))
	floats.SubTo(D.histo, a.histo, b.histo)
	if abs {
		for i, v := range D.histo {
			D.histo[i] = math.Abs(v)
		}
	}
	D.total = 0
	D.normalized = a.normalized && b.normalized
	return nil
}

//String prints the histogram as two lines: the bin limits and the bins.
func (D *Data) String() string {
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%.3g:%.3g", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%.3f", v))
	}
	return fmt.Sprintf("Normalized: %v, TotalData: %d\n%s\n%s", D.normalized, D.total, strings.Join(d, " "), strings.Join(h, " "))
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{D.normalized, D.total, D.dividers, D.histo})
}

//Compare returns the normalized histograms of original and reduced, with
//the same bins, and the sum of the absolute differences between them,
//which goes from 0 (same distribution) to 2.
func Compare(original, reduced []float64, bins int) (orig, red *Data, diff float64, err error) {
	div, err := Dividers(original, bins)
	if err != nil {
		return nil, nil, 0, mdft.ErrDecorate(err, "Compare")
	}
	orig, _ = New(div, original)
	red, _ = New(div, reduced)
	orig.Normalize()
	red.Normalize()
	d := new(Data)
	if err := d.Sub(orig, red, true); err != nil {
		return nil, nil, 0, mdft.ErrDecorate(err, "Compare")
	}
	return orig, red, d.Sum(), nil
}
