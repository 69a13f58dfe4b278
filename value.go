/*
 * value.go, part of kinfp
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

import (
	"bytes"
	"encoding/json"
	"strconv"
)

//Value is a feature scalar that may be missing. Every per-residue feature
//is a Value keyed by position slot, and missing propagates explicitly
//through every downstream computation: no NaN sentinels. The zero Value
//is missing.
type Value struct {
	v  float64
	ok bool
}

//Val returns a present Value holding v.
func Val(v float64) Value {
	return Value{v: v, ok: true}
}

//Missing returns a missing Value.
func Missing() Value {
	return Value{}
}

//Float returns the scalar and whether it is present. The scalar is 0 for
//a missing Value.
func (x Value) Float() (float64, bool) {
	return x.v, x.ok
}

//IsMissing returns whether the Value is missing.
func (x Value) IsMissing() bool {
	return !x.ok
}

//Equal returns whether the two values are both missing, or both present
//and bit-identical.
func (x Value) Equal(y Value) bool {
	return x == y
}

func (x Value) String() string {
	if !x.ok {
		return "missing"
	}
	return strconv.FormatFloat(x.v, 'g', -1, 64)
}

//MarshalJSON serializes a present Value as a JSON number and a missing one
//as null.
func (x Value) MarshalJSON() ([]byte, error) {
	if !x.ok {
		return []byte("null"), nil
	}
	return json.Marshal(x.v)
}

//UnmarshalJSON reads a JSON number as a present Value and null as missing.
func (x *Value) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*x = Value{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*x = Val(v)
	return nil
}
