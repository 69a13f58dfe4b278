/*
 * moments.go, part of kinfp
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

package fingerprint

import (
	"math"

	kinfp "github.com/rmera/kinfp"
	"gonum.org/v1/gonum/stat"
)

//regionMoments summarizes a distance distribution by its first three
//moments: the mean, the population standard deviation (divisor N, not
//N-1) and the cube root of the third central moment, which keeps the
//skew in the same unit as the distances and preserves its sign. Missing
//values are excluded before computing; with fewer than 2 values left the
//moments are not meaningful and are all missing.
func regionMoments(name string, vals []kinfp.Value) RegionMoments {
	xs := make([]float64, 0, len(vals))
	for _, v := range vals {
		if x, ok := v.Float(); ok {
			xs = append(xs, x)
		}
	}
	if len(xs) < 2 {
		return RegionMoments{Name: name, M1: kinfp.Missing(), M2: kinfp.Missing(), M3: kinfp.Missing()}
	}
	m1 := stat.Mean(xs, nil)
	m2 := math.Sqrt(stat.Moment(2, xs, nil))
	m3 := math.Cbrt(stat.Moment(3, xs, nil))
	return RegionMoments{Name: name, M1: kinfp.Val(m1), M2: kinfp.Val(m2), M3: kinfp.Val(m3)}
}
