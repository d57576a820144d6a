/*
 * validate.go, part of gomdft.
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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	mdft "github.com/rmera/gomdft"
)

//Validate checks that the parameter file read from r follows the fixed
//column Layout, not only the whitespace-separated fields that Decode
//needs. Programs reading the file by column positions need this.
//It also checks that each atomic number matches its element and that the
//number of data lines matches the header.
func Validate(r io.Reader) error {
	return validate(r, "")
}

//ValidateFile runs Validate on the file fname.
func ValidateFile(fname string) error {
	f, err := mdft.OpenFile(fname)
	if err != nil {
		return mdft.ErrDecorate(err, "ValidateFile")
	}
	defer f.Close()
	return validate(f, fname)
}

func validate(r io.Reader, fname string) error {
	ferr := func(format string, args ...interface{}) error {
		return mdft.NewError(mdft.ErrFormat, fname, "Validate", format, args...)
	}
	s := bufio.NewScanner(r)
	natoms, ndata := -1, 0
	for i := 0; s.Scan(); i++ {
		line := s.Text()
		switch {
		case i == 0:
		case i == 1:
			fields := strings.Fields(line)
			if len(fields) != 2 {
				return ferr("wrong format in line 2, expected 2 integers")
			}
			var err error
			if natoms, err = strconv.Atoi(fields[0]); err != nil {
				return ferr("wrong format in line 2, expected 2 integers")
			}
			if _, err = strconv.Atoi(fields[1]); err != nil {
				return ferr("wrong format in line 2, expected 2 integers")
			}
		case i == 2:
		default:
			if err := validateLine(Layout, line); err != nil {
				return ferr("line %d: %s", i+1, err)
			}
			ndata++
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	if natoms < 0 {
		return ferr("missing header")
	}
	if natoms != ndata {
		return ferr("number of atoms (%d) and data lines (%d) don't match", natoms, ndata)
	}
	return nil
}

//validateLine reads line by column positions.
func validateLine(cols []Column, line string) error {
	rec := new(record)
	off := 0
	for _, c := range cols {
		var field string
		if c.Width == 0 {
			if off > len(line) {
				return fmt.Errorf("column %s missing", c.Name)
			}
			field = line[off:]
		} else {
			if off+c.Width > len(line) {
				return fmt.Errorf("line too short for column %s", c.Name)
			}
			field = line[off : off+c.Width]
			off += c.Width
		}
		field = strings.TrimSpace(field)
		if field == "" || strings.ContainsAny(field, " \t") {
			return fmt.Errorf("column %s: %q is not a single field", c.Name, field)
		}
		if err := c.parse(field, rec); err != nil {
			return fmt.Errorf("column %s: %w", c.Name, err)
		}
	}
	z, err := mdft.AtomicNumber(rec.element)
	if err != nil {
		return err
	}
	if z != rec.z {
		return fmt.Errorf("atomic number %d doesn't match element %s (%d)", rec.z, rec.element, z)
	}
	return nil
}
