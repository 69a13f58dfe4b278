/*
 * normalize.go, part of kinfp
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
	kinfp "github.com/rmera/kinfp"
	"github.com/rmera/kinfp/features"
)

//DistanceNormalizer is the length, in Angstroms, that maps to 1.0 when
//normalizing the spatial distance columns. Larger distances saturate at
//1.0 rather than exceeding it.
const DistanceNormalizer = 35.0

//normalizeDense maps every present value of the dense fingerprint into
//[0,1], column by column: the lookup features by their min-max ranges,
//the angle by 180, the exposure ratio as-is, the distances by
//DistanceNormalizer with saturation. Missing values stay missing. The
//lookup and angle ranges cover every value the calculators can emit, so
//a normalized value above 1 means a corrupted table or a broken
//calculator; it is reported as a NormalizationError naming the structure.
func normalizeDense(D *Dense) (*Dense, error) {
	N := &Dense{Code: D.Code}
	for i := range D.Data {
		for c, v := range D.Data[i] {
			x, ok := v.Float()
			if !ok {
				N.Data[i][c] = kinfp.Missing()
				continue
			}
			y := normalizeValue(c, x)
			if y > 1 {
				return nil, kinfp.NewNormalizationError(D.Code, "normalized %s at position %d is %.4f, out of [0,1]", ColumnNames[c], i+1, y)
			}
			N.Data[i][c] = kinfp.Val(y)
		}
	}
	return N, nil
}

//normalizeValue maps one raw value of column c into [0,1].
func normalizeValue(c int, x float64) float64 {
	switch ColumnNames[c] {
	case kinfp.FeatSize:
		return (x - 1) / 2 //sizes run 1 to 3
	case kinfp.FeatHBD:
		return x / 3
	case kinfp.FeatHBA:
		return x / 2
	case kinfp.FeatCharge:
		return (x + 1) / 2 //charges run -1 to 1
	case kinfp.FeatAromatic, kinfp.FeatAliphatic, features.ExposureName:
		return x //already in [0,1]
	case features.SCAName:
		return x / 180
	default: //the four distance columns
		if x >= DistanceNormalizer {
			return 1.0
		}
		return x / DistanceNormalizer
	}
}
