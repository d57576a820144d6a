/*
 * layout.go, part of gomdft.
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
	"strconv"
	"strings"
)

//Align is the alignment of a field within its column.
type Align int

const (
	Left Align = iota
	Right
	Center
)

//record is one data line of a parameter file.
type record struct {
	group   int
	charge  float64
	sigma   float64
	epsilon float64
	coord   [3]float64
	z       int
	element string
	surname string
}

//Column describes one column of the parameter file, both for the data
//lines and for the title line. A Width of 0 means the field is not padded.
//Prec is the number of decimals for floating point columns.
type Column struct {
	Name       string
	Width      int
	Prec       int
	Align      Align
	Title      string
	TitleWidth int
	TitleAlign Align
	//value returns the unpadded text of the field for r.
	value func(c Column, r *record) string
	//parse reads the (trimmed) text of the field into r.
	parse func(s string, r *record) error
}

//Layout is the column layout of MDFT parameter files. The writer and
//Validate both use it.
var Layout = []Column{
	{Name: "group", Width: 3, Align: Left, Title: "#", TitleWidth: 3, TitleAlign: Left,
		value: func(c Column, r *record) string { return strconv.Itoa(r.group) },
		parse: func(s string, r *record) (err error) { r.group, err = strconv.Atoi(s); return }},
	{Name: "charge", Width: 10, Prec: 6, Align: Right, Title: "charge", TitleWidth: 10, TitleAlign: Center,
		value: func(c Column, r *record) string { return ffmt(r.charge, c.Prec) },
		parse: func(s string, r *record) (err error) { r.charge, err = strconv.ParseFloat(s, 64); return }},
	{Name: "sigma", Width: 10, Prec: 6, Align: Right, Title: "sigma", TitleWidth: 10, TitleAlign: Center,
		value: func(c Column, r *record) string { return ffmt(r.sigma, c.Prec) },
		parse: func(s string, r *record) (err error) { r.sigma, err = strconv.ParseFloat(s, 64); return }},
	{Name: "epsilon", Width: 10, Prec: 6, Align: Right, Title: "epsilon", TitleWidth: 10, TitleAlign: Left,
		value: func(c Column, r *record) string { return ffmt(r.epsilon, c.Prec) },
		parse: func(s string, r *record) (err error) { r.epsilon, err = strconv.ParseFloat(s, 64); return }},
	{Name: "x", Width: 15, Prec: 10, Align: Right, Title: "x", TitleWidth: 13, TitleAlign: Center,
		value: func(c Column, r *record) string { return ffmt(r.coord[0], c.Prec) },
		parse: func(s string, r *record) (err error) { r.coord[0], err = strconv.ParseFloat(s, 64); return }},
	{Name: "y", Width: 15, Prec: 10, Align: Right, Title: "y", TitleWidth: 13, TitleAlign: Center,
		value: func(c Column, r *record) string { return ffmt(r.coord[1], c.Prec) },
		parse: func(s string, r *record) (err error) { r.coord[1], err = strconv.ParseFloat(s, 64); return }},
	{Name: "z", Width: 15, Prec: 10, Align: Right, Title: "z", TitleWidth: 13, TitleAlign: Center,
		value: func(c Column, r *record) string { return ffmt(r.coord[2], c.Prec) },
		parse: func(s string, r *record) (err error) { r.coord[2], err = strconv.ParseFloat(s, 64); return }},
	{Name: "Z", Width: 5, Align: Right, Title: "Z", TitleWidth: 8, TitleAlign: Center,
		value: func(c Column, r *record) string { return strconv.Itoa(r.z) },
		parse: func(s string, r *record) (err error) { r.z, err = strconv.Atoi(s); return }},
	{Name: "element", Width: 19, Align: Center, Title: "Atom name", TitleWidth: 10, TitleAlign: Center,
		value: func(c Column, r *record) string { return r.element },
		parse: func(s string, r *record) error { r.element = s; return nil }},
	{Name: "surname", Width: 0, Align: Left, Title: "Surname", TitleWidth: 8, TitleAlign: Center,
		value: func(c Column, r *record) string { return r.surname },
		parse: func(s string, r *record) error { r.surname = s; return nil }},
}

func ffmt(f float64, prec int) string {
	return strconv.FormatFloat(f, 'f', prec, 64)
}

//pad pads s with spaces up to width. Centered fields get the odd
//space on the right. Fields longer than width are not cut.
func pad(s string, width int, align Align) string {
	n := width - len(s)
	if n <= 0 {
		return s
	}
	switch align {
	case Right:
		return strings.Repeat(" ", n) + s
	case Center:
		return strings.Repeat(" ", n/2) + s + strings.Repeat(" ", n-n/2)
	}
	return s + strings.Repeat(" ", n)
}

//titleLine returns the column title line, newline included.
func titleLine(cols []Column) string {
	t := make([]string, len(cols))
	for i, c := range cols {
		t[i] = pad(c.Title, c.TitleWidth, c.TitleAlign)
	}
	return strings.Join(t, " ") + "\n"
}

//formatRecord returns the data line for r, newline included.
func formatRecord(cols []Column, r *record) string {
	var b strings.Builder
	for _, c := range cols {
		b.WriteString(pad(c.value(c, r), c.Width, c.Align))
	}
	b.WriteString("\n")
	return b.String()
}
