/*
 * errors.go, part of kinfp
 *
 * Copyright 2021 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package kinfp

import "fmt"

//Error is the interface for errors that all packages in this library
//implement. The Decorate method allows to add and retrieve info from the
//error, without changing its type or wrapping it around something else.
//The decorate slice should contain a list of functions in the calling stack,
//plus, for each function, any relevant information, or nothing. If
//information is to be added to an element of the slice, it should be in this
//format: "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError is the concrete error type for this library. Unless a more specific
//type applies, functions return a CError.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice of strings of the
//error and returns the resulting slice. If dec is empty, it just returns
//the current decoration.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//AlignmentMismatch reports that a pocket's structural input is inconsistent
//with its position-slot assignment. It is fatal for that pocket only;
//other pockets in a batch are unaffected.
type AlignmentMismatch struct {
	Code string //molecule code of the offending pocket, if known
	msg  string
	deco []string
}

func (err AlignmentMismatch) Error() string {
	if err.Code == "" {
		return err.msg
	}
	return fmt.Sprintf("%s: %s", err.Code, err.msg)
}

//Decorate works as in CError.
func (err AlignmentMismatch) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//NewAlignmentMismatch builds an AlignmentMismatch for the pocket code with
//the given message.
func NewAlignmentMismatch(code, format string, a ...interface{}) AlignmentMismatch {
	return AlignmentMismatch{Code: code, msg: fmt.Sprintf(format, a...)}
}

//NormalizationError reports that a fingerprint value exceeded its bound
//after normalization. With correct data this cannot happen, so it signals
//a bug in the feature calculators, not a data problem.
type NormalizationError struct {
	Code string
	msg  string
	deco []string
}

func (err NormalizationError) Error() string {
	if err.Code == "" {
		return err.msg
	}
	return fmt.Sprintf("%s: %s", err.Code, err.msg)
}

//Decorate works as in CError.
func (err NormalizationError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//NewNormalizationError builds a NormalizationError for the pocket code with
//the given message.
func NewNormalizationError(code, format string, a ...interface{}) NormalizationError {
	return NormalizationError{Code: code, msg: fmt.Sprintf(format, a...)}
}
