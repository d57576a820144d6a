/*
 * errors.go, part of gomdft.
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

package mdft

import (
	"errors"
	"fmt"
	"strings"
)

//Sentinels for the kinds of errors returned by gomdft packages. Every Error
//unwraps to one of them, so callers can use errors.Is.
var (
	//ErrFormat means a malformed parameter or cube file.
	ErrFormat = errors.New("wrong format")
	//ErrValidation means arguments with mismatched or insufficient lengths, or
	//reduction factors that do not fit the grid.
	ErrValidation = errors.New("invalid input")
	//ErrLookup means an element symbol that is not in the periodic table.
	ErrLookup = errors.New("unknown element")
	//ErrType means an argument of an unsupported type.
	ErrType = errors.New("unsupported type")
)

//Error is the general error type for gomdft. The deco slice
//carries the names of the functions the error went through, in the
//manner of goChem errors.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	kind     error
	deco     []string
}

//NewError returns an Error of the given kind (one of the Err* sentinels).
//filename can be empty. caller is the first decoration.
func NewError(kind error, filename, caller, format string, args ...interface{}) Error {
	return Error{message: fmt.Sprintf(format, args...), filename: filename, kind: kind, deco: []string{caller}}
}

func (err Error) Error() string {
	var b strings.Builder
	b.WriteString(err.kind.Error())
	if err.filename != "" {
		fmt.Fprintf(&b, " in %s", err.filename)
	}
	b.WriteString(": ")
	b.WriteString(err.message)
	return b.String()
}

//Unwrap returns the sentinel for the kind of error.
func (err Error) Unwrap() error { return err.kind }

//FileName returns the file associated to the error, or an empty string.
func (err Error) FileName() string { return err.filename }

//Decorate adds deco to the trail of callers and returns the trail.
//An empty string just returns the current trail.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//ErrDecorate adds caller to the trail of err if err is an Error. Other
//errors are returned unchanged.
func ErrDecorate(err error, caller string) error {
	e, ok := err.(Error)
	if !ok {
		return err
	}
	e.Decorate(caller)
	return e
}
